package report

import (
	"context"
	"time"
)

// CustomerAnalysisRow summarizes one customer's full ordering history.
// AvgDaysBetweenOrders is (last-first)/(count-1) rounded to one decimal;
// both pointer fields are nil for customers without orders.
type CustomerAnalysisRow struct {
	CustomerID           uint     `json:"customer_id"`
	Name                 string   `json:"name"`
	Phone                string   `json:"phone"`
	TotalOrders          int      `json:"total_orders"`
	DeliveredOrders      int      `json:"delivered_orders"`
	PendingOrders        int      `json:"pending_orders"`
	FirstOrderDate       *string  `json:"first_order_date"`
	LastOrderDate        *string  `json:"last_order_date"`
	AvgDaysBetweenOrders *float64 `json:"avg_days_between_orders"`
	DaysSinceLastOrder   *int     `json:"days_since_last_order"`
}

// TopCustomerRow is one entry of the 30-day top-customers ranking.
type TopCustomerRow struct {
	CustomerID    uint   `json:"customer_id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	OrderCount    int    `json:"order_count"`
	MorningOrders int    `json:"morning_orders"`
	EveningOrders int    `json:"evening_orders"`
}

// DailyAverageStats covers the trailing 30-day window.
type DailyAverageStats struct {
	TotalOrders30Days int     `json:"total_orders_30days"`
	DailyAverage      float64 `json:"daily_average"`
	MorningOrders     int     `json:"morning_orders"`
	EveningOrders     int     `json:"evening_orders"`
	DeliveredOrders   int     `json:"delivered_orders"`
	PendingOrders     int     `json:"pending_orders"`
}

// TrendBucket is one time bucket of the weekly or monthly trend.
type TrendBucket struct {
	Bucket        string `json:"bucket"`
	OrderCount    int    `json:"order_count"`
	MorningOrders int    `json:"morning_orders"`
	EveningOrders int    `json:"evening_orders"`
}

// InactiveCustomerRow is a customer past the inactivity threshold.
// DaysInactive is nil for customers who never ordered; they rank as the most
// inactive of all.
type InactiveCustomerRow struct {
	CustomerID    uint    `json:"customer_id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	LastOrderDate *string `json:"last_order_date"`
	DaysInactive  *int    `json:"days_inactive"`
	TotalOrders   int     `json:"total_orders"`
}

// DeliverySlotShare is the count and all-time percentage share of one slot.
type DeliverySlotShare struct {
	DeliveryTime string  `json:"delivery_time"`
	OrderCount   int     `json:"order_count"`
	Percentage   float64 `json:"percentage"`
}

// DailyBucket is one calendar day of the last-7-days distribution.
type DailyBucket struct {
	OrderDate     string `json:"order_date"`
	OrderCount    int    `json:"order_count"`
	MorningOrders int    `json:"morning_orders"`
	EveningOrders int    `json:"evening_orders"`
}

// Service computes the dashboard reports. Every method is deterministic with
// respect to the injected reference time and touches no state.
type Service interface {
	CustomerAnalysis(ctx context.Context, now time.Time) ([]CustomerAnalysisRow, error)
	TopCustomers30Days(ctx context.Context, now time.Time) ([]TopCustomerRow, error)
	DailyAverage(ctx context.Context, now time.Time) (*DailyAverageStats, error)
	WeeklyTrend(ctx context.Context, now time.Time) ([]TrendBucket, error)
	MonthlyTrend(ctx context.Context, now time.Time) ([]TrendBucket, error)
	InactiveCustomers(ctx context.Context, now time.Time) ([]InactiveCustomerRow, error)
	DeliveryTimeAnalysis(ctx context.Context) ([]DeliverySlotShare, error)
	DailyDistribution(ctx context.Context, now time.Time) ([]DailyBucket, error)
}
