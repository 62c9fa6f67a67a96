package entity

import (
	"time"
)

// DeliveryTime is one of the two fixed daily delivery slots.
type DeliveryTime string

const (
	DeliveryMorning DeliveryTime = "morning"
	DeliveryEvening DeliveryTime = "evening"
)

// Valid reports whether the value is a known delivery slot.
func (d DeliveryTime) Valid() bool {
	return d == DeliveryMorning || d == DeliveryEvening
}

// OrderStatus enumerates the lifecycle of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"   // created, awaiting delivery
	OrderDelivered OrderStatus = "delivered" // handed over to the customer
	OrderCancelled OrderStatus = "cancelled" // cancelled before delivery
)

// Valid reports whether the value is a known order status.
func (s OrderStatus) Valid() bool {
	return s == OrderPending || s == OrderDelivered || s == OrderCancelled
}

// OrderDateLayout is the date-only layout used for Order.OrderDate.
const OrderDateLayout = "2006-01-02"

// Order is a single delivery on a given date and slot, created either directly
// by the operator or materialized from a subscription.
// The composite unique index makes subscription generation safe to re-run:
// a second insert of the same (customer, date, slot) triple fails with a
// duplicate-key error instead of producing a duplicate delivery.
type Order struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	CustomerID   uint         `json:"customer_id" gorm:"index;not null;uniqueIndex:idx_orders_customer_date_slot"`
	DeliveryTime DeliveryTime `json:"delivery_time" gorm:"type:text;not null;uniqueIndex:idx_orders_customer_date_slot"`
	OrderDate    string       `json:"order_date" gorm:"type:text;not null;index;uniqueIndex:idx_orders_customer_date_slot"`
	Status       OrderStatus  `json:"status" gorm:"type:text;not null;default:'pending';index"`
	Quantity     int          `json:"quantity" gorm:"not null;default:1"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

// Date parses OrderDate as a date-only UTC time.
func (o Order) Date() (time.Time, error) {
	return time.ParseInLocation(OrderDateLayout, o.OrderDate, time.UTC)
}
