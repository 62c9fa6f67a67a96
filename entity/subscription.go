package entity

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Weekday names accepted in Subscription.Days, in calendar order.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// ValidWeekday reports whether name is a lowercase English weekday name.
func ValidWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}

// WeekdayName returns the lowercase English weekday name for t,
// independent of server locale and timezone configuration.
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.UTC().Weekday().String())
}

// Subscription is a recurring delivery rule: on the listed weekdays the
// customer receives an order of the given quantity in the given slot.
// Days is stored as a JSON array; all encoding lives behind datatypes.JSONType
// so callers only ever see []string.
type Subscription struct {
	ID           uint                           `json:"id" gorm:"primaryKey"`
	CustomerID   uint                           `json:"customer_id" gorm:"index;not null"`
	Days         datatypes.JSONType[[]string]   `json:"days" gorm:"not null"`
	DeliveryTime DeliveryTime                   `json:"delivery_time" gorm:"type:text;not null"`
	Quantity     int                            `json:"quantity" gorm:"not null;default:1"`
	IsActive     bool                           `json:"is_active" gorm:"not null;default:true;index"`
	CreatedAt    time.Time                      `json:"created_at"`
	UpdatedAt    time.Time                      `json:"updated_at"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

// DayList returns the decoded weekday set.
func (s Subscription) DayList() []string {
	return s.Days.Data()
}

// MatchesDay reports whether the subscription is due on the given weekday name.
func (s Subscription) MatchesDay(dayName string) bool {
	for _, d := range s.DayList() {
		if d == dayName {
			return true
		}
	}
	return false
}

// NewDayList wraps a weekday slice for storage.
func NewDayList(days []string) datatypes.JSONType[[]string] {
	return datatypes.NewJSONType(days)
}
