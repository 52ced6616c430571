package services

import (
	"errors"
	"fmt"
	"time"

	"optimum_stay_app_go/models"

	"gorm.io/gorm"
)

// ListBlockedDates fetches all blocked date ranges, soonest first
func ListBlockedDates(db *gorm.DB) ([]models.BlockedDate, error) {
	var blocked []models.BlockedDate
	err := db.Order("start_date asc").Find(&blocked).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked dates: %w", err)
	}
	return blocked, nil
}

// CreateBlockedDate stores a new blocked range after validating it.
// Both endpoints are inclusive blocked days; overlapping an existing block
// is rejected so the admin list stays readable.
func CreateBlockedDate(db *gorm.DB, startDate, endDate time.Time, reason string) (*models.BlockedDate, error) {
	start := Day(startDate)
	end := Day(endDate)
	if end.Before(start) {
		return nil, fmt.Errorf("end date must not be before start date")
	}

	overlaps, err := CheckBlockedDateOverlap(db, start, end, "")
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, fmt.Errorf("range overlaps an existing blocked period")
	}

	blocked := &models.BlockedDate{
		StartDate: start,
		EndDate:   end,
		Reason:    SanitizeText(reason),
	}
	if err := db.Create(blocked).Error; err != nil {
		return nil, fmt.Errorf("failed to create blocked date: %w", err)
	}
	return blocked, nil
}

// CheckBlockedDateOverlap checks if an inclusive day range overlaps existing blocks
func CheckBlockedDateOverlap(db *gorm.DB, start, end time.Time, excludeID string) (bool, error) {
	var count int64
	query := db.Model(&models.BlockedDate{})

	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}

	// Inclusive overlap: (StartA <= EndB) and (EndA >= StartB)
	err := query.Where("start_date <= ? AND end_date >= ?", end, start).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check blocked date overlap: %w", err)
	}

	return count > 0, nil
}

// DeleteBlockedDate removes a blocked range
func DeleteBlockedDate(db *gorm.DB, id string) error {
	var blocked models.BlockedDate
	if err := db.First(&blocked, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("blocked date not found")
		}
		return fmt.Errorf("failed to load blocked date: %w", err)
	}
	if err := db.Delete(&blocked).Error; err != nil {
		return fmt.Errorf("failed to delete blocked date: %w", err)
	}
	return nil
}
