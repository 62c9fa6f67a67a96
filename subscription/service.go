package subscription

import (
	"context"
	"errors"
	"time"

	"github.com/astopaal/meksut-order-management/entity"
)

var (
	ErrNotFound            = errors.New("subscription not found")
	ErrCustomerNotFound    = errors.New("invalid customer id")
	ErrInvalidDeliveryTime = errors.New("delivery time must be morning or evening")
	ErrInvalidDay          = errors.New("days must be lowercase weekday names")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrInvalidHorizon      = errors.New("horizon must be a positive number of days")
)

type CreateSubscriptionRequest struct {
	CustomerID   uint
	Days         []string
	DeliveryTime entity.DeliveryTime
	Quantity     int   // zero defaults to 1
	IsActive     *bool // nil defaults to true
}

// UpdateSubscriptionRequest is a partial update: nil/zero fields keep stored values.
type UpdateSubscriptionRequest struct {
	CustomerID   uint
	Days         []string
	DeliveryTime entity.DeliveryTime
	Quantity     int
	IsActive     *bool
}

// Service exposes subscription operations, including materializing future
// orders from active subscriptions.
type Service interface {
	CreateSubscription(ctx context.Context, req CreateSubscriptionRequest) (*entity.Subscription, error)
	ListSubscriptions(ctx context.Context) ([]entity.Subscription, error)
	ListCustomerSubscriptions(ctx context.Context, customerID uint) ([]entity.Subscription, error)
	UpdateSubscription(ctx context.Context, id uint, req UpdateSubscriptionRequest) (*entity.Subscription, error)
	DeleteSubscription(ctx context.Context, id uint) error

	// GenerateOrders materializes pending orders for every active subscription
	// over [now, now+horizonDays). It is idempotent: triples that already have
	// an order are skipped, and re-running with an overlapping horizon creates
	// no duplicates. Returns the newly created orders.
	GenerateOrders(ctx context.Context, horizonDays int, now time.Time) ([]entity.Order, error)
}
