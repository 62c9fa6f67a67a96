package customer

import (
	"context"

	"github.com/astopaal/meksut-order-management/entity"
)

// CustomerRepository specifies customer related database operations.
type CustomerRepository interface {
	StoreCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error)
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
	UpdateCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	// DeleteCustomer removes the customer and, through FK cascade, all of its
	// orders and subscriptions.
	DeleteCustomer(ctx context.Context, id uint) error
	// PhoneExists reports whether another customer (excluding excludeID, 0 for
	// none) already uses the phone number.
	PhoneExists(ctx context.Context, phone string, excludeID uint) (bool, error)
	// ListOrdersForCustomer returns the customer's orders newest first by order date.
	ListOrdersForCustomer(ctx context.Context, customerID uint) ([]entity.Order, error)
}
