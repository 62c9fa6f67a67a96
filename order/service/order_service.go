package service

import (
	"context"

	"github.com/astopaal/meksut-order-management/entity"
	orderpkg "github.com/astopaal/meksut-order-management/order"
)

type orderService struct {
	repo orderpkg.Repository
}

func NewOrderService(repo orderpkg.Repository) orderpkg.Service { return &orderService{repo: repo} }

func (s *orderService) CreateOrder(ctx context.Context, req orderpkg.CreateOrderRequest) (*entity.Order, error) {
	if req.CustomerID == 0 {
		return nil, orderpkg.ErrCustomerNotFound
	}
	if !req.DeliveryTime.Valid() {
		return nil, orderpkg.ErrInvalidDeliveryTime
	}
	if req.OrderDate == "" {
		return nil, orderpkg.ErrDateRequired
	}
	status := req.Status
	if status == "" {
		status = entity.OrderPending
	}
	if !status.Valid() {
		return nil, orderpkg.ErrInvalidStatus
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, orderpkg.ErrInvalidQuantity
	}

	exists, err := s.repo.CustomerExists(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, orderpkg.ErrCustomerNotFound
	}

	o := &entity.Order{
		CustomerID:   req.CustomerID,
		DeliveryTime: req.DeliveryTime,
		OrderDate:    req.OrderDate,
		Status:       status,
		Quantity:     quantity,
	}
	created, err := s.repo.CreateOrder(ctx, o)
	if err != nil {
		return nil, err
	}
	return s.repo.GetOrderByID(ctx, created.ID)
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (*entity.Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *orderService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *orderService) ListDailyOrders(ctx context.Context, date string) ([]entity.Order, error) {
	return s.repo.ListOrdersByDate(ctx, date)
}

// UpdateOrder applies a partial update. Re-pointing the order at another
// customer re-checks that the customer exists.
func (s *orderService) UpdateOrder(ctx context.Context, id uint, req orderpkg.UpdateOrderRequest) (*entity.Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CustomerID != 0 && req.CustomerID != o.CustomerID {
		exists, err := s.repo.CustomerExists(ctx, req.CustomerID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, orderpkg.ErrCustomerNotFound
		}
		o.CustomerID = req.CustomerID
	}
	if req.DeliveryTime != "" {
		if !req.DeliveryTime.Valid() {
			return nil, orderpkg.ErrInvalidDeliveryTime
		}
		o.DeliveryTime = req.DeliveryTime
	}
	if req.OrderDate != "" {
		o.OrderDate = req.OrderDate
	}
	if req.Status != "" {
		if !req.Status.Valid() {
			return nil, orderpkg.ErrInvalidStatus
		}
		o.Status = req.Status
	}
	if req.Quantity != 0 {
		if req.Quantity < 0 {
			return nil, orderpkg.ErrInvalidQuantity
		}
		o.Quantity = req.Quantity
	}

	return s.repo.UpdateOrder(ctx, o)
}

func (s *orderService) DeleteOrder(ctx context.Context, id uint) error {
	if _, err := s.repo.GetOrderByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteOrder(ctx, id)
}
