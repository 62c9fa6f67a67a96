package report

import (
	"context"

	"github.com/astopaal/meksut-order-management/entity"
)

// Repository provides the read-only rows the report computations run over.
// Reports never write.
type Repository interface {
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
	ListOrders(ctx context.Context) ([]entity.Order, error)
	// ListOrdersOnOrAfter returns orders with order_date >= date (ISO date string).
	ListOrdersOnOrAfter(ctx context.Context, date string) ([]entity.Order, error)
}
