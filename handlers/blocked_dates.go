package handlers

import (
	"net/http"

	"optimum_stay_app_go/db"
	"optimum_stay_app_go/services"

	"github.com/labstack/echo/v4"
)

// ListBlockedDatesHandler returns all admin-blocked ranges
func ListBlockedDatesHandler(c echo.Context) error {
	blocked, err := services.ListBlockedDates(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load blocked dates")
	}
	return c.JSON(http.StatusOK, blocked)
}

type createBlockedDateRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// CreateBlockedDateHandler blocks an inclusive date range for maintenance,
// personal use, or any other admin reason
func CreateBlockedDateHandler(c echo.Context) error {
	var req createBlockedDateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	start, err := services.ParseDate(req.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid start date: expected YYYY-MM-DD")
	}
	end, err := services.ParseDate(req.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid end date: expected YYYY-MM-DD")
	}

	blocked, err := services.CreateBlockedDate(db.DB, start, end, req.Reason)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, blocked)
}

// DeleteBlockedDateHandler removes a blocked range
func DeleteBlockedDateHandler(c echo.Context) error {
	if err := services.DeleteBlockedDate(db.DB, c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Blocked date removed"})
}
