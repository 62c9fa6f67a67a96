package service

import (
	"context"
	"math"
	"strings"
	"time"

	customerpkg "github.com/astopaal/meksut-order-management/customer"
	"github.com/astopaal/meksut-order-management/entity"
)

// customerService implements CustomerService.
type customerService struct {
	repo customerpkg.CustomerRepository
}

// NewCustomerService constructs a CustomerService backed by the provided repository.
func NewCustomerService(repo customerpkg.CustomerRepository) customerpkg.CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) CreateCustomer(ctx context.Context, req customerpkg.CreateCustomerRequest) (*entity.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, customerpkg.ErrNameRequired
	}
	if len(req.Phone) < 10 {
		return nil, customerpkg.ErrPhoneTooShort
	}

	exists, err := s.repo.PhoneExists(ctx, req.Phone, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, customerpkg.ErrPhoneExists
	}

	c := &entity.Customer{
		Name:     name,
		Phone:    req.Phone,
		Address:  req.Address,
		Location: req.Location,
	}
	return s.repo.StoreCustomer(ctx, c)
}

func (s *customerService) GetCustomer(ctx context.Context, id uint) (*entity.Customer, error) {
	return s.repo.GetCustomerByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

// UpdateCustomer applies a partial update: only non-empty fields overwrite the
// stored values. Changing the phone re-checks uniqueness against everyone else.
func (s *customerService) UpdateCustomer(ctx context.Context, id uint, req customerpkg.UpdateCustomerRequest) (*entity.Customer, error) {
	c, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name == "" && req.Phone == "" && req.Address == "" && req.Location == "" {
		return nil, customerpkg.ErrNothingToSet
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		c.Name = name
	}
	if req.Phone != "" {
		if len(req.Phone) < 10 {
			return nil, customerpkg.ErrPhoneTooShort
		}
		if req.Phone != c.Phone {
			exists, err := s.repo.PhoneExists(ctx, req.Phone, id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, customerpkg.ErrPhoneExists
			}
		}
		c.Phone = req.Phone
	}
	if req.Address != "" {
		c.Address = req.Address
	}
	if req.Location != "" {
		c.Location = req.Location
	}

	return s.repo.UpdateCustomer(ctx, c)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id uint) error {
	if _, err := s.repo.GetCustomerByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteCustomer(ctx, id)
}

// CustomerAnalytics computes ordering statistics for one customer as of now.
// Day math is date-only: the hour of day never shifts a day count.
func (s *customerService) CustomerAnalytics(ctx context.Context, id uint, now time.Time) (*entity.Customer, *customerpkg.Analytics, error) {
	c, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	orders, err := s.repo.ListOrdersForCustomer(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	a := &customerpkg.Analytics{TotalOrders: len(orders)}
	if len(orders) == 0 {
		return c, a, nil
	}

	// orders arrive newest first
	last := orders[0].OrderDate
	first := orders[len(orders)-1].OrderDate
	a.FirstOrderDate = &first
	a.LastOrderDate = &last

	for _, o := range orders {
		a.TotalQuantity += o.Quantity
		switch o.DeliveryTime {
		case entity.DeliveryMorning:
			a.MorningOrders++
		case entity.DeliveryEvening:
			a.EveningOrders++
		}
		switch o.Status {
		case entity.OrderDelivered:
			a.DeliveredOrders++
		case entity.OrderPending:
			a.PendingOrders++
		case entity.OrderCancelled:
			a.CancelledOrders++
		}
	}

	if lastDate, err := orders[0].Date(); err == nil {
		days := entity.DaysBetween(lastDate, now)
		a.DaysSinceLastOrder = &days
	}
	if len(orders) > 1 {
		firstDate, errF := orders[len(orders)-1].Date()
		lastDate, errL := orders[0].Date()
		if errF == nil && errL == nil {
			avg := int(math.Round(float64(entity.DaysBetween(firstDate, lastDate)) / float64(len(orders)-1)))
			a.AvgDaysBetweenOrders = &avg
		}
	}

	return c, a, nil
}
