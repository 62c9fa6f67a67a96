package repository

import (
	"context"
	"errors"

	"github.com/astopaal/meksut-order-management/entity"
	orderpkg "github.com/astopaal/meksut-order-management/order"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOrderRepo struct{ db *gorm.DB }

func NewGormOrderRepo(db *gorm.DB) orderpkg.Repository { return &GormOrderRepo{db: db} }

func (r *GormOrderRepo) CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

func (r *GormOrderRepo) GetOrderByID(ctx context.Context, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.db.WithContext(ctx).Preload("Customer").First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, orderpkg.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *GormOrderRepo) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var list []entity.Order
	if err := r.db.WithContext(ctx).Preload("Customer").Order("order_date DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormOrderRepo) ListOrdersByDate(ctx context.Context, date string) ([]entity.Order, error) {
	var list []entity.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Where("orders.order_date = ?", date).
		Order("orders.delivery_time, customers.name").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormOrderRepo) UpdateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(o).Error; err != nil {
		return nil, err
	}
	return r.GetOrderByID(ctx, o.ID)
}

func (r *GormOrderRepo) DeleteOrder(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Order{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return orderpkg.ErrNotFound
	}
	return nil
}

func (r *GormOrderRepo) CustomerExists(ctx context.Context, customerID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("id = ?", customerID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
