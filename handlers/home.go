package handlers

import (
	"net/http"

	"optimum_stay_app_go/db"
	"optimum_stay_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetContentHandler returns everything the public homepage needs in one call:
// hero block, gallery images and videos.
func GetContentHandler(c echo.Context) error {
	hero, err := services.GetHeroContent(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load content")
	}

	images, err := services.ListGalleryImages(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load content")
	}

	videos, err := services.ListGalleryVideos(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load content")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"hero":   hero,
		"images": images,
		"videos": videos,
	})
}

// GetPublicSettingsHandler returns the settings fields guests are allowed to
// see: pricing, stay rules and contact details.
func GetPublicSettingsHandler(c echo.Context) error {
	settings, err := services.GetSettings(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load settings")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"nightly_price":  settings.NightlyPrice,
		"minimum_nights": settings.MinimumNights,
		"max_guests":     settings.MaxGuests,
		"amenities":      settings.Amenities,
		"house_rules":    settings.HouseRules,
		"contact_email":  settings.ContactEmail,
		"contact_phone":  settings.ContactPhone,
		"address":        settings.Address,
	})
}
