package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/astopaal/meksut-order-management/entity"
	subscriptionpkg "github.com/astopaal/meksut-order-management/subscription"
)

type orderKey struct {
	customerID uint
	date       string
	slot       entity.DeliveryTime
}

// mockRepo is an in-memory subscription.Repository.
type mockRepo struct {
	subs      []entity.Subscription
	customers map[uint]bool
	orders    map[orderKey]entity.Order
	nextID    uint

	failInsertOn  string // order date whose inserts fail
	duplicateOn   string // order date whose inserts report a duplicate key
	insertAttempts int
}

func newMockRepo() *mockRepo {
	return &mockRepo{customers: map[uint]bool{}, orders: map[orderKey]entity.Order{}, nextID: 1}
}

func (m *mockRepo) StoreSubscription(_ context.Context, s *entity.Subscription) (*entity.Subscription, error) {
	s.ID = m.nextID
	m.nextID++
	m.subs = append(m.subs, *s)
	return s, nil
}

func (m *mockRepo) GetSubscriptionByID(_ context.Context, id uint) (*entity.Subscription, error) {
	for i := range m.subs {
		if m.subs[i].ID == id {
			return &m.subs[i], nil
		}
	}
	return nil, subscriptionpkg.ErrNotFound
}

func (m *mockRepo) ListSubscriptions(_ context.Context) ([]entity.Subscription, error) {
	return m.subs, nil
}

func (m *mockRepo) ListSubscriptionsForCustomer(_ context.Context, customerID uint) ([]entity.Subscription, error) {
	var out []entity.Subscription
	for _, s := range m.subs {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockRepo) ListActiveSubscriptions(_ context.Context) ([]entity.Subscription, error) {
	var out []entity.Subscription
	for _, s := range m.subs {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateSubscription(_ context.Context, s *entity.Subscription) (*entity.Subscription, error) {
	for i := range m.subs {
		if m.subs[i].ID == s.ID {
			m.subs[i] = *s
			return s, nil
		}
	}
	return nil, subscriptionpkg.ErrNotFound
}

func (m *mockRepo) DeleteSubscription(_ context.Context, id uint) error {
	for i := range m.subs {
		if m.subs[i].ID == id {
			m.subs = append(m.subs[:i], m.subs[i+1:]...)
			return nil
		}
	}
	return subscriptionpkg.ErrNotFound
}

func (m *mockRepo) CustomerExists(_ context.Context, customerID uint) (bool, error) {
	return m.customers[customerID], nil
}

func (m *mockRepo) OrderExists(_ context.Context, customerID uint, orderDate string, slot entity.DeliveryTime) (bool, error) {
	_, ok := m.orders[orderKey{customerID, orderDate, slot}]
	return ok, nil
}

func (m *mockRepo) CreateOrder(_ context.Context, o *entity.Order) (*entity.Order, error) {
	m.insertAttempts++
	if m.failInsertOn != "" && o.OrderDate == m.failInsertOn {
		return nil, fmt.Errorf("disk I/O error")
	}
	if m.duplicateOn != "" && o.OrderDate == m.duplicateOn {
		return nil, gorm.ErrDuplicatedKey
	}
	key := orderKey{o.CustomerID, o.OrderDate, o.DeliveryTime}
	if _, ok := m.orders[key]; ok {
		return nil, gorm.ErrDuplicatedKey
	}
	o.ID = m.nextID
	m.nextID++
	m.orders[key] = *o
	return o, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func setup() (subscriptionpkg.Service, *mockRepo) {
	repo := newMockRepo()
	return NewSubscriptionService(repo, quietLogger()), repo
}

func addSub(repo *mockRepo, customerID uint, days []string, slot entity.DeliveryTime, quantity int, active bool) {
	repo.customers[customerID] = true
	repo.subs = append(repo.subs, entity.Subscription{
		ID:           repo.nextID,
		CustomerID:   customerID,
		Days:         entity.NewDayList(days),
		DeliveryTime: slot,
		Quantity:     quantity,
		IsActive:     active,
	})
	repo.nextID++
}

// sunday is a fixed reference date (2024-03-03 was a Sunday).
var sunday = time.Date(2024, 3, 3, 9, 30, 0, 0, time.UTC)

func TestGenerateOrders(t *testing.T) {
	t.Run("creates pending orders for matching weekdays", func(t *testing.T) {
		svc, repo := setup()
		addSub(repo, 1, []string{"monday", "wednesday"}, entity.DeliveryMorning, 2, true)

		created, err := svc.GenerateOrders(context.Background(), 7, sunday)
		require.NoError(t, err)
		require.Len(t, created, 2)

		assert.Equal(t, "2024-03-04", created[0].OrderDate)
		assert.Equal(t, "2024-03-06", created[1].OrderDate)
		for _, o := range created {
			assert.Equal(t, entity.OrderPending, o.Status)
			assert.Equal(t, 2, o.Quantity)
			assert.Equal(t, entity.DeliveryMorning, o.DeliveryTime)
			assert.Equal(t, uint(1), o.CustomerID)
		}
	})

	t.Run("is idempotent across overlapping horizons", func(t *testing.T) {
		svc, repo := setup()
		addSub(repo, 1, []string{"monday", "wednesday"}, entity.DeliveryMorning, 2, true)

		first, err := svc.GenerateOrders(context.Background(), 7, sunday)
		require.NoError(t, err)
		require.Len(t, first, 2)

		second, err := svc.GenerateOrders(context.Background(), 7, sunday)
		require.NoError(t, err)
		assert.Empty(t, second)
		assert.Len(t, repo.orders, 2)
	})

	t.Run("single weekday occurs twice in a 14 day horizon", func(t *testing.T) {
		svc, repo := setup()
		addSub(repo, 1, []string{"friday"}, entity.DeliveryEvening, 1, true)

		created, err := svc.GenerateOrders(context.Background(), 14, sunday)
		require.NoError(t, err)
		require.Len(t, created, 2)
		assert.Equal(t, "2024-03-08", created[0].OrderDate)
		assert.Equal(t, "2024-03-15", created[1].OrderDate)
	})

	t.Run("horizon start day itself is included", func(t *testing.T) {
		svc, repo := setup()
		addSub(repo, 1, []string{"sunday"}, entity.DeliveryMorning, 1, true)

		created, err := svc.GenerateOrders(context.Background(), 7, sunday)
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, "2024-03-03", created[0].OrderDate)
	})

	t.Run("empty day set produces nothing", func(t *testing.T) {
		svc, repo := setup()
		addSub(repo, 1, []string{}, entity.DeliveryMorning, 1, true)

		created, err := svc.GenerateOrders(context.Background(), 14, sunday)
		require.NoError(t, err)
		assert.Empty(t, created)
	})

	t.Run("inactive subscriptions are invisible", func(t *testing.T) {
		svc, repo := setup()
		addSub(repo, 1, []string{"monday"}, entity.DeliveryMorning, 1, false)

		created, err := svc.GenerateOrders(context.Background(), 14, sunday)
		require.NoError(t, err)
		assert.Empty(t, created)
		assert.Zero(t, repo.insertAttempts)
	})

	t.Run("duplicate key from a concurrent run is treated as already exists", func(t *testing.T) {
		svc, repo := setup()
		addSub(repo, 1, []string{"monday", "wednesday"}, entity.DeliveryMorning, 1, true)
		repo.duplicateOn = "2024-03-04"

		created, err := svc.GenerateOrders(context.Background(), 7, sunday)
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, "2024-03-06", created[0].OrderDate)
	})

	t.Run("insert failure skips the triple but finishes the batch", func(t *testing.T) {
		svc, repo := setup()
		addSub(repo, 1, []string{"monday", "wednesday"}, entity.DeliveryMorning, 1, true)
		repo.failInsertOn = "2024-03-04"

		created, err := svc.GenerateOrders(context.Background(), 7, sunday)
		require.Error(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, "2024-03-06", created[0].OrderDate)
	})

	t.Run("rejects a non-positive horizon", func(t *testing.T) {
		svc, _ := setup()
		_, err := svc.GenerateOrders(context.Background(), 0, sunday)
		assert.ErrorIs(t, err, subscriptionpkg.ErrInvalidHorizon)
	})

	t.Run("two subscriptions same customer different slots both materialize", func(t *testing.T) {
		svc, repo := setup()
		addSub(repo, 1, []string{"monday"}, entity.DeliveryMorning, 1, true)
		addSub(repo, 1, []string{"monday"}, entity.DeliveryEvening, 3, true)

		created, err := svc.GenerateOrders(context.Background(), 7, sunday)
		require.NoError(t, err)
		assert.Len(t, created, 2)
	})
}

func TestCreateSubscription(t *testing.T) {
	svc, repo := setup()
	repo.customers[5] = true

	t.Run("defaults quantity and active flag", func(t *testing.T) {
		sub, err := svc.CreateSubscription(context.Background(), subscriptionpkg.CreateSubscriptionRequest{
			CustomerID:   5,
			Days:         []string{"monday", "friday"},
			DeliveryTime: entity.DeliveryMorning,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, sub.Quantity)
		assert.True(t, sub.IsActive)
		assert.Equal(t, []string{"monday", "friday"}, sub.DayList())
	})

	t.Run("rejects unknown weekday names", func(t *testing.T) {
		_, err := svc.CreateSubscription(context.Background(), subscriptionpkg.CreateSubscriptionRequest{
			CustomerID:   5,
			Days:         []string{"monday", "funday"},
			DeliveryTime: entity.DeliveryMorning,
		})
		assert.ErrorIs(t, err, subscriptionpkg.ErrInvalidDay)
	})

	t.Run("rejects a missing customer", func(t *testing.T) {
		_, err := svc.CreateSubscription(context.Background(), subscriptionpkg.CreateSubscriptionRequest{
			CustomerID:   99,
			Days:         []string{"monday"},
			DeliveryTime: entity.DeliveryMorning,
		})
		assert.ErrorIs(t, err, subscriptionpkg.ErrCustomerNotFound)
	})

	t.Run("rejects an invalid delivery time", func(t *testing.T) {
		_, err := svc.CreateSubscription(context.Background(), subscriptionpkg.CreateSubscriptionRequest{
			CustomerID:   5,
			Days:         []string{"monday"},
			DeliveryTime: "noon",
		})
		assert.ErrorIs(t, err, subscriptionpkg.ErrInvalidDeliveryTime)
	})
}

func TestUpdateSubscription(t *testing.T) {
	svc, repo := setup()
	addSub(repo, 1, []string{"monday"}, entity.DeliveryMorning, 1, true)

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		inactive := false
		sub, err := svc.UpdateSubscription(context.Background(), 1, subscriptionpkg.UpdateSubscriptionRequest{
			IsActive: &inactive,
		})
		require.NoError(t, err)
		assert.False(t, sub.IsActive)
		assert.Equal(t, []string{"monday"}, sub.DayList())
		assert.Equal(t, entity.DeliveryMorning, sub.DeliveryTime)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.UpdateSubscription(context.Background(), 42, subscriptionpkg.UpdateSubscriptionRequest{})
		assert.True(t, errors.Is(err, subscriptionpkg.ErrNotFound))
	})
}
