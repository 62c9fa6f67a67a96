package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayName(t *testing.T) {
	// 2024-03-03 was a Sunday
	sunday := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "sunday", WeekdayName(sunday))
	assert.Equal(t, "monday", WeekdayName(sunday.AddDate(0, 0, 1)))

	// weekday is taken from the UTC date, whatever zone the value carries
	istanbul := time.FixedZone("TRT", 3*60*60)
	lateNight := time.Date(2024, 3, 4, 1, 30, 0, 0, istanbul) // still March 3 in UTC
	assert.Equal(t, "sunday", WeekdayName(lateNight))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 1, 11, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 10, DaysBetween(a, b))
	assert.Equal(t, -10, DaysBetween(b, a))
	assert.Zero(t, DaysBetween(a, a))
}

func TestSubscriptionMatchesDay(t *testing.T) {
	s := Subscription{Days: NewDayList([]string{"monday", "friday"})}
	assert.True(t, s.MatchesDay("monday"))
	assert.False(t, s.MatchesDay("tuesday"))

	empty := Subscription{Days: NewDayList(nil)}
	assert.False(t, empty.MatchesDay("monday"))
}

func TestValidWeekday(t *testing.T) {
	assert.True(t, ValidWeekday("wednesday"))
	assert.False(t, ValidWeekday("Wednesday"))
	assert.False(t, ValidWeekday("funday"))
}
