package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookedDate is the public record of days taken by a confirmed booking.
// It is written when a booking is confirmed and removed when the booking is
// rejected or cancelled, so public availability queries never need access to
// the bookings table itself.
//
// Two shapes exist: a range (StartDate/EndDate) and a legacy single-day form
// (Date only). Interval normalizes both; callers never branch on shape.
type BookedDate struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingID string     `gorm:"type:uuid;index;not null" json:"booking_id"`
	StartDate *time.Time `gorm:"index" json:"start_date,omitempty"`
	EndDate   *time.Time `gorm:"index" json:"end_date,omitempty"`
	Date      *time.Time `gorm:"index" json:"date,omitempty"` // single-day form
}

// BeforeCreate hook to generate UUID
func (b *BookedDate) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for BookedDate model
func (BookedDate) TableName() string {
	return "booked_dates"
}

// Interval returns the inclusive [start, end] day range this record covers.
// Single-day records collapse to start == end. ok is false when the record
// carries no usable dates at all.
func (b *BookedDate) Interval() (start, end time.Time, ok bool) {
	if b.Date != nil {
		return *b.Date, *b.Date, true
	}
	if b.StartDate != nil && b.EndDate != nil {
		return *b.StartDate, *b.EndDate, true
	}
	return time.Time{}, time.Time{}, false
}
