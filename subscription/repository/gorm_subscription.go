package repository

import (
	"context"
	"errors"

	"github.com/astopaal/meksut-order-management/entity"
	subscriptionpkg "github.com/astopaal/meksut-order-management/subscription"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSubscriptionRepo implements subscription.Repository using GORM.
type GormSubscriptionRepo struct{ db *gorm.DB }

func NewGormSubscriptionRepo(db *gorm.DB) subscriptionpkg.Repository {
	return &GormSubscriptionRepo{db: db}
}

func (r *GormSubscriptionRepo) StoreSubscription(ctx context.Context, s *entity.Subscription) (*entity.Subscription, error) {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *GormSubscriptionRepo) GetSubscriptionByID(ctx context.Context, id uint) (*entity.Subscription, error) {
	var s entity.Subscription
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subscriptionpkg.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *GormSubscriptionRepo) ListSubscriptions(ctx context.Context) ([]entity.Subscription, error) {
	var list []entity.Subscription
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Joins("JOIN customers ON customers.id = subscriptions.customer_id").
		Order("customers.name").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormSubscriptionRepo) ListSubscriptionsForCustomer(ctx context.Context, customerID uint) ([]entity.Subscription, error) {
	var list []entity.Subscription
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormSubscriptionRepo) ListActiveSubscriptions(ctx context.Context) ([]entity.Subscription, error) {
	var list []entity.Subscription
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormSubscriptionRepo) UpdateSubscription(ctx context.Context, s *entity.Subscription) (*entity.Subscription, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *GormSubscriptionRepo) DeleteSubscription(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Subscription{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return subscriptionpkg.ErrNotFound
	}
	return nil
}

func (r *GormSubscriptionRepo) CustomerExists(ctx context.Context, customerID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("id = ?", customerID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormSubscriptionRepo) OrderExists(ctx context.Context, customerID uint, orderDate string, slot entity.DeliveryTime) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("customer_id = ? AND order_date = ? AND delivery_time = ?", customerID, orderDate, slot).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormSubscriptionRepo) CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}
