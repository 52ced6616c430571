package handlers

import (
	"net/http"

	"optimum_stay_app_go/db"
	"optimum_stay_app_go/models"
	"optimum_stay_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetSettingsHandler returns the full settings row for the admin dashboard
func GetSettingsHandler(c echo.Context) error {
	settings, err := services.GetSettings(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load settings")
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettingsHandler persists settings changes from the admin dashboard
func UpdateSettingsHandler(c echo.Context) error {
	var updated models.ApartmentSettings
	if err := c.Bind(&updated); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := services.UpdateSettings(db.DB, &updated); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	settings, err := services.GetSettings(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load settings")
	}
	return c.JSON(http.StatusOK, settings)
}
