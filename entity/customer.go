package entity

import (
	"time"
)

// Customer is a delivery customer of the dairy.
// Location, when present, is a "latitude,longitude" string captured from the map picker.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Phone     string    `json:"phone" gorm:"type:text;uniqueIndex;not null"`
	Address   string    `json:"address,omitempty" gorm:"type:text"`
	Location  string    `json:"location,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Orders        []Order        `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Subscriptions []Subscription `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}
