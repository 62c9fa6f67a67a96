package subscription

import (
	"context"

	"github.com/astopaal/meksut-order-management/entity"
)

// Repository defines DB operations for subscriptions and generated orders.
type Repository interface {
	StoreSubscription(ctx context.Context, s *entity.Subscription) (*entity.Subscription, error)
	GetSubscriptionByID(ctx context.Context, id uint) (*entity.Subscription, error)
	// ListSubscriptions returns every subscription with its customer preloaded,
	// ordered by customer name.
	ListSubscriptions(ctx context.Context) ([]entity.Subscription, error)
	// ListSubscriptionsForCustomer returns a customer's subscriptions newest first.
	ListSubscriptionsForCustomer(ctx context.Context, customerID uint) ([]entity.Subscription, error)
	// ListActiveSubscriptions returns subscriptions with is_active = true.
	ListActiveSubscriptions(ctx context.Context) ([]entity.Subscription, error)
	UpdateSubscription(ctx context.Context, s *entity.Subscription) (*entity.Subscription, error)
	DeleteSubscription(ctx context.Context, id uint) error
	CustomerExists(ctx context.Context, customerID uint) (bool, error)

	// OrderExists reports whether an order for the (customer, date, slot)
	// triple is already present.
	OrderExists(ctx context.Context, customerID uint, orderDate string, slot entity.DeliveryTime) (bool, error)
	CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)
}
