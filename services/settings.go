package services

import (
	"errors"
	"fmt"

	"optimum_stay_app_go/models"

	"gorm.io/gorm"
)

// GetSettings fetches the apartment settings row, creating it with defaults
// on first access so callers never see a missing configuration.
func GetSettings(db *gorm.DB) (*models.ApartmentSettings, error) {
	var settings models.ApartmentSettings
	err := db.First(&settings).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}

		settings = models.ApartmentSettings{
			NightlyPrice:  models.DefaultNightlyPrice,
			MinimumNights: models.DefaultMinimumNights,
			MaxGuests:     models.DefaultMaxGuests,
		}
		if err := db.Create(&settings).Error; err != nil {
			return nil, fmt.Errorf("failed to create default settings: %w", err)
		}
	}

	return &settings, nil
}

// GetMinimumNights returns the configured minimum stay length. Falls back to
// the default when settings cannot be loaded, so the validation path always
// has a usable value.
func GetMinimumNights(db *gorm.DB) int {
	settings, err := GetSettings(db)
	if err != nil {
		return models.DefaultMinimumNights
	}
	if settings.MinimumNights < 1 {
		return models.DefaultMinimumNights
	}
	return settings.MinimumNights
}

// UpdateSettings persists changed settings after validation
func UpdateSettings(db *gorm.DB, updated *models.ApartmentSettings) error {
	if updated.NightlyPrice <= 0 {
		return fmt.Errorf("nightly price must be a positive number")
	}
	if updated.MinimumNights < 1 {
		return fmt.Errorf("minimum nights must be at least 1")
	}
	if updated.MaxGuests < 1 {
		return fmt.Errorf("max guests must be at least 1")
	}

	settings, err := GetSettings(db)
	if err != nil {
		return err
	}

	settings.NightlyPrice = updated.NightlyPrice
	settings.MinimumNights = updated.MinimumNights
	settings.MaxGuests = updated.MaxGuests
	settings.Amenities = SanitizeText(updated.Amenities)
	settings.HouseRules = SanitizeText(updated.HouseRules)
	settings.ContactEmail = updated.ContactEmail
	settings.ContactPhone = updated.ContactPhone
	settings.Address = updated.Address

	if err := db.Save(settings).Error; err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}
