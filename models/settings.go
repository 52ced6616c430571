package models

import (
	"time"
)

// Default values applied when the settings row is first created
const (
	DefaultNightlyPrice  = 120
	DefaultMinimumNights = 2
	DefaultMaxGuests     = 4
)

// ApartmentSettings is the single-row configuration for the rental:
// pricing, stay rules, and the descriptive content shown on the homepage.
type ApartmentSettings struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	NightlyPrice  int `gorm:"not null" json:"nightly_price"` // whole currency units per night
	MinimumNights int `gorm:"not null" json:"minimum_nights"`
	MaxGuests     int `gorm:"not null" json:"max_guests"`

	Amenities    string `gorm:"type:text" json:"amenities"` // newline-separated list
	HouseRules   string `gorm:"type:text" json:"house_rules"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
}

// TableName specifies the table name for ApartmentSettings model
func (ApartmentSettings) TableName() string {
	return "apartment_settings"
}
