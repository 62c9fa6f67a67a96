package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/astopaal/meksut-order-management/entity"
	subscriptionpkg "github.com/astopaal/meksut-order-management/subscription"
)

// subscriptionService implements subscription.Service.
type subscriptionService struct {
	repo subscriptionpkg.Repository
	log  *logrus.Logger
}

// NewSubscriptionService constructs a Service backed by the provided repository.
func NewSubscriptionService(repo subscriptionpkg.Repository, log *logrus.Logger) subscriptionpkg.Service {
	return &subscriptionService{repo: repo, log: log}
}

func validateDays(days []string) error {
	for _, d := range days {
		if !entity.ValidWeekday(d) {
			return subscriptionpkg.ErrInvalidDay
		}
	}
	return nil
}

func (s *subscriptionService) CreateSubscription(ctx context.Context, req subscriptionpkg.CreateSubscriptionRequest) (*entity.Subscription, error) {
	if req.CustomerID == 0 {
		return nil, subscriptionpkg.ErrCustomerNotFound
	}
	if err := validateDays(req.Days); err != nil {
		return nil, err
	}
	if !req.DeliveryTime.Valid() {
		return nil, subscriptionpkg.ErrInvalidDeliveryTime
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, subscriptionpkg.ErrInvalidQuantity
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	exists, err := s.repo.CustomerExists(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, subscriptionpkg.ErrCustomerNotFound
	}

	sub := &entity.Subscription{
		CustomerID:   req.CustomerID,
		Days:         entity.NewDayList(req.Days),
		DeliveryTime: req.DeliveryTime,
		Quantity:     quantity,
		IsActive:     active,
	}
	return s.repo.StoreSubscription(ctx, sub)
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context) ([]entity.Subscription, error) {
	return s.repo.ListSubscriptions(ctx)
}

func (s *subscriptionService) ListCustomerSubscriptions(ctx context.Context, customerID uint) ([]entity.Subscription, error) {
	return s.repo.ListSubscriptionsForCustomer(ctx, customerID)
}

func (s *subscriptionService) UpdateSubscription(ctx context.Context, id uint, req subscriptionpkg.UpdateSubscriptionRequest) (*entity.Subscription, error) {
	sub, err := s.repo.GetSubscriptionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CustomerID != 0 && req.CustomerID != sub.CustomerID {
		exists, err := s.repo.CustomerExists(ctx, req.CustomerID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, subscriptionpkg.ErrCustomerNotFound
		}
		sub.CustomerID = req.CustomerID
	}
	if req.Days != nil {
		if err := validateDays(req.Days); err != nil {
			return nil, err
		}
		sub.Days = entity.NewDayList(req.Days)
	}
	if req.DeliveryTime != "" {
		if !req.DeliveryTime.Valid() {
			return nil, subscriptionpkg.ErrInvalidDeliveryTime
		}
		sub.DeliveryTime = req.DeliveryTime
	}
	if req.Quantity != 0 {
		if req.Quantity < 1 {
			return nil, subscriptionpkg.ErrInvalidQuantity
		}
		sub.Quantity = req.Quantity
	}
	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}

	return s.repo.UpdateSubscription(ctx, sub)
}

func (s *subscriptionService) DeleteSubscription(ctx context.Context, id uint) error {
	return s.repo.DeleteSubscription(ctx, id)
}

// GenerateOrders walks the horizon day by day and inserts a pending order for
// every active subscription due on that weekday, unless the (customer, date,
// slot) triple already has one. The existence check is backed up by the unique
// index on orders: a concurrent run losing the race gets a duplicate-key error
// and treats it the same as "already exists". Insert failures on one triple do
// not abort the rest of the batch.
func (s *subscriptionService) GenerateOrders(ctx context.Context, horizonDays int, now time.Time) ([]entity.Order, error) {
	if horizonDays <= 0 {
		return nil, subscriptionpkg.ErrInvalidHorizon
	}

	subs, err := s.repo.ListActiveSubscriptions(ctx)
	if err != nil {
		return nil, err
	}

	created := make([]entity.Order, 0)
	today := entity.DateOnly(now)

	var failed int
	for i := 0; i < horizonDays; i++ {
		targetDate := today.AddDate(0, 0, i)
		dayName := entity.WeekdayName(targetDate)
		dateStr := targetDate.Format(entity.OrderDateLayout)

		for _, sub := range subs {
			if !sub.MatchesDay(dayName) {
				continue
			}

			exists, err := s.repo.OrderExists(ctx, sub.CustomerID, dateStr, sub.DeliveryTime)
			if err != nil {
				return created, err
			}
			if exists {
				continue
			}

			o := &entity.Order{
				CustomerID:   sub.CustomerID,
				DeliveryTime: sub.DeliveryTime,
				OrderDate:    dateStr,
				Status:       entity.OrderPending,
				Quantity:     sub.Quantity,
			}
			inserted, err := s.repo.CreateOrder(ctx, o)
			if err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					// another run inserted the same triple between our check and insert
					continue
				}
				failed++
				s.log.WithError(err).WithFields(logrus.Fields{
					"customer_id": sub.CustomerID,
					"order_date":  dateStr,
					"slot":        sub.DeliveryTime,
				}).Error("generate: order insert failed")
				continue
			}
			created = append(created, *inserted)
		}
	}

	s.log.WithFields(logrus.Fields{
		"horizon_days": horizonDays,
		"created":      len(created),
		"failed":       failed,
	}).Info("generate: subscription orders materialized")

	if failed > 0 {
		return created, fmt.Errorf("generate orders: %d of %d inserts failed", failed, failed+len(created))
	}
	return created, nil
}
