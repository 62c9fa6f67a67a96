package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/astopaal/meksut-order-management/entity"
	reportpkg "github.com/astopaal/meksut-order-management/report"
)

// reportService implements report.Service with in-memory aggregation over
// repository reads. All date windows are computed from the caller-supplied
// reference time, never from the wall clock.
type reportService struct {
	repo reportpkg.Repository
}

func NewReportService(repo reportpkg.Repository) reportpkg.Service {
	return &reportService{repo: repo}
}

// round1 rounds to one decimal place for display figures.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// windowStart returns the ISO date string `days` calendar days before now.
func windowStart(now time.Time, days int) string {
	return entity.DateOnly(now).AddDate(0, 0, -days).Format(entity.OrderDateLayout)
}

func (s *reportService) CustomerAnalysis(ctx context.Context, now time.Time) ([]reportpkg.CustomerAnalysisRow, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	byCustomer := make(map[uint][]entity.Order, len(customers))
	for _, o := range orders {
		byCustomer[o.CustomerID] = append(byCustomer[o.CustomerID], o)
	}

	rows := make([]reportpkg.CustomerAnalysisRow, 0, len(customers))
	for _, c := range customers {
		row := reportpkg.CustomerAnalysisRow{CustomerID: c.ID, Name: c.Name, Phone: c.Phone}
		cos := byCustomer[c.ID]
		row.TotalOrders = len(cos)

		var first, last string
		for _, o := range cos {
			if first == "" || o.OrderDate < first {
				first = o.OrderDate
			}
			if o.OrderDate > last {
				last = o.OrderDate
			}
			switch o.Status {
			case entity.OrderDelivered:
				row.DeliveredOrders++
			case entity.OrderPending:
				row.PendingOrders++
			}
		}
		if len(cos) > 0 {
			f, l := first, last
			row.FirstOrderDate = &f
			row.LastOrderDate = &l
			if lastDate, err := time.ParseInLocation(entity.OrderDateLayout, last, time.UTC); err == nil {
				days := entity.DaysBetween(lastDate, now)
				row.DaysSinceLastOrder = &days
			}
		}
		if len(cos) > 1 {
			firstDate, errF := time.ParseInLocation(entity.OrderDateLayout, first, time.UTC)
			lastDate, errL := time.ParseInLocation(entity.OrderDateLayout, last, time.UTC)
			if errF == nil && errL == nil {
				avg := round1(float64(entity.DaysBetween(firstDate, lastDate)) / float64(len(cos)-1))
				row.AvgDaysBetweenOrders = &avg
			}
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalOrders != rows[j].TotalOrders {
			return rows[i].TotalOrders > rows[j].TotalOrders
		}
		li, lj := "", ""
		if rows[i].LastOrderDate != nil {
			li = *rows[i].LastOrderDate
		}
		if rows[j].LastOrderDate != nil {
			lj = *rows[j].LastOrderDate
		}
		return li > lj
	})
	return rows, nil
}

func (s *reportService) TopCustomers30Days(ctx context.Context, now time.Time) ([]reportpkg.TopCustomerRow, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.ListOrdersOnOrAfter(ctx, windowStart(now, 30))
	if err != nil {
		return nil, err
	}

	names := make(map[uint]entity.Customer, len(customers))
	for _, c := range customers {
		names[c.ID] = c
	}

	byCustomer := make(map[uint]*reportpkg.TopCustomerRow)
	for _, o := range orders {
		row, ok := byCustomer[o.CustomerID]
		if !ok {
			c := names[o.CustomerID]
			row = &reportpkg.TopCustomerRow{CustomerID: o.CustomerID, Name: c.Name, Phone: c.Phone}
			byCustomer[o.CustomerID] = row
		}
		row.OrderCount++
		switch o.DeliveryTime {
		case entity.DeliveryMorning:
			row.MorningOrders++
		case entity.DeliveryEvening:
			row.EveningOrders++
		}
	}

	rows := make([]reportpkg.TopCustomerRow, 0, len(byCustomer))
	for _, row := range byCustomer {
		rows = append(rows, *row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].OrderCount != rows[j].OrderCount {
			return rows[i].OrderCount > rows[j].OrderCount
		}
		return rows[i].Name < rows[j].Name
	})
	if len(rows) > 10 {
		rows = rows[:10]
	}
	return rows, nil
}

func (s *reportService) DailyAverage(ctx context.Context, now time.Time) (*reportpkg.DailyAverageStats, error) {
	orders, err := s.repo.ListOrdersOnOrAfter(ctx, windowStart(now, 30))
	if err != nil {
		return nil, err
	}

	stats := &reportpkg.DailyAverageStats{TotalOrders30Days: len(orders)}
	stats.DailyAverage = round1(float64(len(orders)) / 30.0)
	for _, o := range orders {
		switch o.DeliveryTime {
		case entity.DeliveryMorning:
			stats.MorningOrders++
		case entity.DeliveryEvening:
			stats.EveningOrders++
		}
		switch o.Status {
		case entity.OrderDelivered:
			stats.DeliveredOrders++
		case entity.OrderPending:
			stats.PendingOrders++
		}
	}
	return stats, nil
}

// trend groups orders into label buckets and returns the `limit` most recent,
// newest first. Labels must sort lexically in chronological order.
func trend(orders []entity.Order, label func(time.Time) string, limit int) []reportpkg.TrendBucket {
	buckets := make(map[string]*reportpkg.TrendBucket)
	for _, o := range orders {
		d, err := o.Date()
		if err != nil {
			continue
		}
		key := label(d)
		b, ok := buckets[key]
		if !ok {
			b = &reportpkg.TrendBucket{Bucket: key}
			buckets[key] = b
		}
		b.OrderCount++
		switch o.DeliveryTime {
		case entity.DeliveryMorning:
			b.MorningOrders++
		case entity.DeliveryEvening:
			b.EveningOrders++
		}
	}

	rows := make([]reportpkg.TrendBucket, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, *b)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Bucket > rows[j].Bucket })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func (s *reportService) WeeklyTrend(ctx context.Context, now time.Time) ([]reportpkg.TrendBucket, error) {
	orders, err := s.repo.ListOrdersOnOrAfter(ctx, windowStart(now, 56))
	if err != nil {
		return nil, err
	}
	return trend(orders, func(t time.Time) string {
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	}, 8), nil
}

func (s *reportService) MonthlyTrend(ctx context.Context, now time.Time) ([]reportpkg.TrendBucket, error) {
	orders, err := s.repo.ListOrdersOnOrAfter(ctx, windowStart(now, 365))
	if err != nil {
		return nil, err
	}
	return trend(orders, func(t time.Time) string {
		return t.Format("2006-01")
	}, 12), nil
}

const inactivityThresholdDays = 7

func (s *reportService) InactiveCustomers(ctx context.Context, now time.Time) ([]reportpkg.InactiveCustomerRow, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	lastDates := make(map[uint]string)
	totals := make(map[uint]int)
	for _, o := range orders {
		totals[o.CustomerID]++
		if o.OrderDate > lastDates[o.CustomerID] {
			lastDates[o.CustomerID] = o.OrderDate
		}
	}

	rows := make([]reportpkg.InactiveCustomerRow, 0)
	for _, c := range customers {
		row := reportpkg.InactiveCustomerRow{
			CustomerID:  c.ID,
			Name:        c.Name,
			Phone:       c.Phone,
			TotalOrders: totals[c.ID],
		}
		last, ordered := lastDates[c.ID]
		if !ordered {
			// never ordered: most inactive of all
			rows = append(rows, row)
			continue
		}
		lastDate, err := time.ParseInLocation(entity.OrderDateLayout, last, time.UTC)
		if err != nil {
			continue
		}
		days := entity.DaysBetween(lastDate, now)
		if days <= inactivityThresholdDays {
			continue
		}
		l := last
		row.LastOrderDate = &l
		row.DaysInactive = &days
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		di, dj := rows[i].DaysInactive, rows[j].DaysInactive
		switch {
		case di == nil && dj == nil:
			return rows[i].Name < rows[j].Name
		case di == nil:
			return true
		case dj == nil:
			return false
		default:
			return *di > *dj
		}
	})
	return rows, nil
}

func (s *reportService) DeliveryTimeAnalysis(ctx context.Context) ([]reportpkg.DeliverySlotShare, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.DeliveryTime]int)
	for _, o := range orders {
		counts[o.DeliveryTime]++
	}

	rows := make([]reportpkg.DeliverySlotShare, 0, len(counts))
	for slot, count := range counts {
		share := reportpkg.DeliverySlotShare{DeliveryTime: string(slot), OrderCount: count}
		if len(orders) > 0 {
			share.Percentage = round1(float64(count) * 100.0 / float64(len(orders)))
		}
		rows = append(rows, share)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].OrderCount != rows[j].OrderCount {
			return rows[i].OrderCount > rows[j].OrderCount
		}
		return rows[i].DeliveryTime < rows[j].DeliveryTime
	})
	return rows, nil
}

func (s *reportService) DailyDistribution(ctx context.Context, now time.Time) ([]reportpkg.DailyBucket, error) {
	orders, err := s.repo.ListOrdersOnOrAfter(ctx, windowStart(now, 6))
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*reportpkg.DailyBucket)
	for _, o := range orders {
		b, ok := byDate[o.OrderDate]
		if !ok {
			b = &reportpkg.DailyBucket{OrderDate: o.OrderDate}
			byDate[o.OrderDate] = b
		}
		b.OrderCount++
		switch o.DeliveryTime {
		case entity.DeliveryMorning:
			b.MorningOrders++
		case entity.DeliveryEvening:
			b.EveningOrders++
		}
	}

	// one bucket per calendar day, today first, zero-filled
	today := entity.DateOnly(now)
	rows := make([]reportpkg.DailyBucket, 0, 7)
	for i := 0; i < 7; i++ {
		date := today.AddDate(0, 0, -i).Format(entity.OrderDateLayout)
		if b, ok := byDate[date]; ok {
			rows = append(rows, *b)
		} else {
			rows = append(rows, reportpkg.DailyBucket{OrderDate: date})
		}
	}
	return rows, nil
}
