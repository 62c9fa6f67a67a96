package repository

import (
	"context"

	"github.com/astopaal/meksut-order-management/entity"
	reportpkg "github.com/astopaal/meksut-order-management/report"
	"gorm.io/gorm"
)

// GormReportRepo implements report.Repository using GORM.
type GormReportRepo struct{ db *gorm.DB }

func NewGormReportRepo(db *gorm.DB) reportpkg.Repository { return &GormReportRepo{db: db} }

func (r *GormReportRepo) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	var list []entity.Customer
	if err := r.db.WithContext(ctx).Order("name").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormReportRepo) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var list []entity.Order
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormReportRepo) ListOrdersOnOrAfter(ctx context.Context, date string) ([]entity.Order, error) {
	var list []entity.Order
	if err := r.db.WithContext(ctx).Where("order_date >= ?", date).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
