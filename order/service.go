package order

import (
	"context"
	"errors"

	"github.com/astopaal/meksut-order-management/entity"
)

var (
	ErrNotFound            = errors.New("order not found")
	ErrCustomerNotFound    = errors.New("invalid customer id")
	ErrInvalidDeliveryTime = errors.New("delivery time must be morning or evening")
	ErrInvalidStatus       = errors.New("status must be pending, delivered or cancelled")
	ErrDateRequired        = errors.New("order date is required")
	ErrInvalidQuantity     = errors.New("quantity must be a positive number")
)

type CreateOrderRequest struct {
	CustomerID   uint
	DeliveryTime entity.DeliveryTime
	OrderDate    string
	Status       entity.OrderStatus // empty defaults to pending
	Quantity     int                // zero defaults to 1
}

// UpdateOrderRequest is a partial update: zero values keep the stored value.
type UpdateOrderRequest struct {
	CustomerID   uint
	DeliveryTime entity.DeliveryTime
	OrderDate    string
	Status       entity.OrderStatus
	Quantity     int
}

// Service exposes order business operations.
type Service interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*entity.Order, error)
	GetOrder(ctx context.Context, id uint) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]entity.Order, error)
	ListDailyOrders(ctx context.Context, date string) ([]entity.Order, error)
	UpdateOrder(ctx context.Context, id uint, req UpdateOrderRequest) (*entity.Order, error)
	DeleteOrder(ctx context.Context, id uint) error
}
