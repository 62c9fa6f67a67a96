package order

import (
	"context"

	"github.com/astopaal/meksut-order-management/entity"
)

// Repository defines DB operations for orders.
type Repository interface {
	CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)
	// GetOrderByID returns the order with its customer preloaded.
	GetOrderByID(ctx context.Context, id uint) (*entity.Order, error)
	// ListOrders returns all orders with customers preloaded, newest order date first.
	ListOrders(ctx context.Context) ([]entity.Order, error)
	// ListOrdersByDate returns the orders for one calendar date with customers
	// preloaded, ordered by delivery slot then customer name.
	ListOrdersByDate(ctx context.Context, date string) ([]entity.Order, error)
	UpdateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)
	DeleteOrder(ctx context.Context, id uint) error
	// CustomerExists reports whether a customer row with the id is present.
	CustomerExists(ctx context.Context, customerID uint) (bool, error)
}
