package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astopaal/meksut-order-management/entity"
	orderpkg "github.com/astopaal/meksut-order-management/order"
)

// mockRepo is an in-memory order.Repository.
type mockRepo struct {
	orders    map[uint]*entity.Order
	customers map[uint]bool
	nextID    uint
}

func newMockRepo() *mockRepo {
	return &mockRepo{orders: map[uint]*entity.Order{}, customers: map[uint]bool{}, nextID: 1}
}

func (m *mockRepo) CreateOrder(_ context.Context, o *entity.Order) (*entity.Order, error) {
	o.ID = m.nextID
	m.nextID++
	m.orders[o.ID] = o
	return o, nil
}

func (m *mockRepo) GetOrderByID(_ context.Context, id uint) (*entity.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, orderpkg.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *mockRepo) ListOrders(context.Context) ([]entity.Order, error) {
	out := make([]entity.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate > out[j].OrderDate })
	return out, nil
}

func (m *mockRepo) ListOrdersByDate(_ context.Context, date string) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range m.orders {
		if o.OrderDate == date {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateOrder(_ context.Context, o *entity.Order) (*entity.Order, error) {
	if _, ok := m.orders[o.ID]; !ok {
		return nil, orderpkg.ErrNotFound
	}
	cp := *o
	m.orders[o.ID] = &cp
	return o, nil
}

func (m *mockRepo) DeleteOrder(_ context.Context, id uint) error {
	if _, ok := m.orders[id]; !ok {
		return orderpkg.ErrNotFound
	}
	delete(m.orders, id)
	return nil
}

func (m *mockRepo) CustomerExists(_ context.Context, customerID uint) (bool, error) {
	return m.customers[customerID], nil
}

func setup() (orderpkg.Service, *mockRepo) {
	repo := newMockRepo()
	repo.customers[1] = true
	return NewOrderService(repo), repo
}

func TestCreateOrder(t *testing.T) {
	svc, _ := setup()

	t.Run("defaults status and quantity", func(t *testing.T) {
		o, err := svc.CreateOrder(context.Background(), orderpkg.CreateOrderRequest{
			CustomerID:   1,
			DeliveryTime: entity.DeliveryMorning,
			OrderDate:    "2024-03-04",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.OrderPending, o.Status)
		assert.Equal(t, 1, o.Quantity)
	})

	t.Run("rejects a missing customer", func(t *testing.T) {
		_, err := svc.CreateOrder(context.Background(), orderpkg.CreateOrderRequest{
			CustomerID:   99,
			DeliveryTime: entity.DeliveryMorning,
			OrderDate:    "2024-03-04",
		})
		assert.ErrorIs(t, err, orderpkg.ErrCustomerNotFound)
	})

	t.Run("rejects an invalid delivery time", func(t *testing.T) {
		_, err := svc.CreateOrder(context.Background(), orderpkg.CreateOrderRequest{
			CustomerID:   1,
			DeliveryTime: "noon",
			OrderDate:    "2024-03-04",
		})
		assert.ErrorIs(t, err, orderpkg.ErrInvalidDeliveryTime)
	})

	t.Run("rejects an empty order date", func(t *testing.T) {
		_, err := svc.CreateOrder(context.Background(), orderpkg.CreateOrderRequest{
			CustomerID:   1,
			DeliveryTime: entity.DeliveryEvening,
		})
		assert.ErrorIs(t, err, orderpkg.ErrDateRequired)
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		_, err := svc.CreateOrder(context.Background(), orderpkg.CreateOrderRequest{
			CustomerID:   1,
			DeliveryTime: entity.DeliveryEvening,
			OrderDate:    "2024-03-04",
			Status:       "shipped",
		})
		assert.ErrorIs(t, err, orderpkg.ErrInvalidStatus)
	})
}

func TestUpdateOrder(t *testing.T) {
	svc, repo := setup()
	o, err := svc.CreateOrder(context.Background(), orderpkg.CreateOrderRequest{
		CustomerID:   1,
		DeliveryTime: entity.DeliveryMorning,
		OrderDate:    "2024-03-04",
		Quantity:     2,
	})
	require.NoError(t, err)

	t.Run("status transition keeps other fields", func(t *testing.T) {
		updated, err := svc.UpdateOrder(context.Background(), o.ID, orderpkg.UpdateOrderRequest{
			Status: entity.OrderDelivered,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.OrderDelivered, updated.Status)
		assert.Equal(t, 2, updated.Quantity)
		assert.Equal(t, "2024-03-04", updated.OrderDate)
	})

	t.Run("re-pointing at a missing customer fails", func(t *testing.T) {
		_, err := svc.UpdateOrder(context.Background(), o.ID, orderpkg.UpdateOrderRequest{
			CustomerID: 99,
		})
		assert.ErrorIs(t, err, orderpkg.ErrCustomerNotFound)
	})

	t.Run("re-pointing at an existing customer succeeds", func(t *testing.T) {
		repo.customers[2] = true
		updated, err := svc.UpdateOrder(context.Background(), o.ID, orderpkg.UpdateOrderRequest{
			CustomerID: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, uint(2), updated.CustomerID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.UpdateOrder(context.Background(), 42, orderpkg.UpdateOrderRequest{})
		assert.ErrorIs(t, err, orderpkg.ErrNotFound)
	})
}

func TestDeleteOrder(t *testing.T) {
	svc, _ := setup()
	o, err := svc.CreateOrder(context.Background(), orderpkg.CreateOrderRequest{
		CustomerID:   1,
		DeliveryTime: entity.DeliveryMorning,
		OrderDate:    "2024-03-04",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(context.Background(), o.ID))
	err = svc.DeleteOrder(context.Background(), o.ID)
	assert.ErrorIs(t, err, orderpkg.ErrNotFound)
}
