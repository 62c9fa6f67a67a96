package customer

import (
	"context"
	"errors"
	"time"

	"github.com/astopaal/meksut-order-management/entity"
)

var (
	ErrNotFound      = errors.New("customer not found")
	ErrPhoneExists   = errors.New("a customer with this phone already exists")
	ErrNameRequired  = errors.New("name is required")
	ErrPhoneTooShort = errors.New("phone must be at least 10 characters")
	ErrNothingToSet  = errors.New("no fields to update")
)

// CreateCustomerRequest carries the data required to register a customer.
type CreateCustomerRequest struct {
	Name     string
	Phone    string
	Address  string
	Location string
}

// UpdateCustomerRequest is a partial update: empty fields keep their stored value.
type UpdateCustomerRequest struct {
	Name     string
	Phone    string
	Address  string
	Location string
}

// Analytics summarizes a single customer's ordering history relative to a
// reference time. Pointer fields are nil when the customer has never ordered
// (or, for AvgDaysBetweenOrders, has only one order).
type Analytics struct {
	TotalOrders          int     `json:"total_orders"`
	TotalQuantity        int     `json:"total_quantity"`
	FirstOrderDate       *string `json:"first_order_date"`
	LastOrderDate        *string `json:"last_order_date"`
	DaysSinceLastOrder   *int    `json:"days_since_last_order"`
	AvgDaysBetweenOrders *int    `json:"avg_days_between_orders"`
	MorningOrders        int     `json:"morning_orders"`
	EveningOrders        int     `json:"evening_orders"`
	DeliveredOrders      int     `json:"delivered_orders"`
	PendingOrders        int     `json:"pending_orders"`
	CancelledOrders      int     `json:"cancelled_orders"`
}

// CustomerService exposes customer-related business operations.
type CustomerService interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*entity.Customer, error)
	GetCustomer(ctx context.Context, id uint) (*entity.Customer, error)
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
	UpdateCustomer(ctx context.Context, id uint, req UpdateCustomerRequest) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error
	// CustomerAnalytics computes ordering statistics as of the given reference time.
	CustomerAnalytics(ctx context.Context, id uint, now time.Time) (*entity.Customer, *Analytics, error)
}
