package handlers

import (
	"fmt"
	"net/http"
	"time"

	"optimum_stay_app_go/config"
	"optimum_stay_app_go/db"
	"optimum_stay_app_go/services"

	"github.com/labstack/echo/v4"
)

// ListBookingsHandler returns bookings for the admin dashboard, optionally
// filtered by ?status=
func ListBookingsHandler(c echo.Context) error {
	bookings, err := services.ListBookings(db.DB, c.QueryParam("status"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load bookings")
	}
	return c.JSON(http.StatusOK, bookings)
}

type updateBookingStatusRequest struct {
	Status string `json:"status"`
}

// UpdateBookingStatusHandler confirms, rejects or cancels a booking
func UpdateBookingStatusHandler(c echo.Context) error {
	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cfg := c.Get("config").(*config.Config)

	booking, err := services.UpdateBookingStatus(db.DB, cfg, c.Param("id"), req.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, booking)
}

// DeleteBookingHandler removes a booking and frees its dates
func DeleteBookingHandler(c echo.Context) error {
	if err := services.DeleteBooking(db.DB, c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Booking deleted"})
}

// ExportBookingsHandler streams the bookings spreadsheet, optionally
// filtered by ?status=
func ExportBookingsHandler(c echo.Context) error {
	f, err := services.ExportBookingsXLSX(db.DB, c.QueryParam("status"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build export")
	}
	defer f.Close()

	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)

	if err := f.Write(c.Response().Writer); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
