package repository

import (
	"context"
	"errors"

	customerpkg "github.com/astopaal/meksut-order-management/customer"
	"github.com/astopaal/meksut-order-management/entity"
	"gorm.io/gorm"
)

// GormCustomerRepo implements customer.CustomerRepository using GORM.
type GormCustomerRepo struct {
	db *gorm.DB
}

func NewGormCustomerRepo(db *gorm.DB) customerpkg.CustomerRepository {
	return &GormCustomerRepo{db: db}
}

func (r *GormCustomerRepo) StoreCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerpkg.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepo) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	var list []entity.Customer
	if err := r.db.WithContext(ctx).Order("name").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormCustomerRepo) UpdateCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) DeleteCustomer(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return customerpkg.ErrNotFound
	}
	return nil
}

func (r *GormCustomerRepo) PhoneExists(ctx context.Context, phone string, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("phone = ?", phone)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormCustomerRepo) ListOrdersForCustomer(ctx context.Context, customerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
