package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking statuses
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusRejected  = "rejected"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a guest's reservation request for the apartment.
// Dates are whole calendar days; CheckIn/CheckOut are stored at midnight UTC.
type Booking struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Code            string    `gorm:"uniqueIndex;not null;type:varchar(10)" json:"code"` // Guest-facing ID, e.g. OST-K4M2PX
	GuestName       string    `gorm:"not null" json:"guest_name"`
	GuestEmail      string    `gorm:"not null;index" json:"guest_email"`
	GuestPhone      string    `gorm:"not null" json:"guest_phone"`
	CheckIn         time.Time `gorm:"not null;index" json:"check_in"`
	CheckOut        time.Time `gorm:"not null;index" json:"check_out"`
	Guests          int       `gorm:"not null" json:"guests"`
	SpecialRequests string    `gorm:"type:text" json:"special_requests"`
	Status          string    `gorm:"not null;default:pending;index" json:"status"`
}

// BeforeCreate hook to generate UUID
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Booking model
func (Booking) TableName() string {
	return "bookings"
}

// Nights returns the length of the stay in whole nights
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// IsPending returns true while the booking awaits an admin decision
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// IsConfirmed returns true if the booking has been confirmed by the admin
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// IsTerminal returns true once no further status transitions are expected
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusRejected || b.Status == BookingStatusCancelled
}
