package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlockedDate represents a date range the admin has marked unavailable
// (maintenance, personal use, ...) independent of any booking.
// The range is inclusive on both ends: StartDate and EndDate are blocked days.
type BlockedDate struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	StartDate time.Time `gorm:"not null;index" json:"start_date"`
	EndDate   time.Time `gorm:"not null;index" json:"end_date"`
	Reason    string    `json:"reason"` // "Maintenance", "Personal", "Other"
}

// BeforeCreate hook to generate UUID
func (b *BlockedDate) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for BlockedDate model
func (BlockedDate) TableName() string {
	return "blocked_dates"
}

// Overlaps checks whether this block intersects the inclusive day range [start, end]
func (b *BlockedDate) Overlaps(start, end time.Time) bool {
	return !b.StartDate.After(end) && !b.EndDate.Before(start)
}
