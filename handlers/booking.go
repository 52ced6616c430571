package handlers

import (
	"net/http"
	"strings"

	"optimum_stay_app_go/config"
	"optimum_stay_app_go/db"
	"optimum_stay_app_go/services"

	"github.com/labstack/echo/v4"
)

type createBookingRequest struct {
	GuestName       string `json:"guest_name"`
	GuestEmail      string `json:"guest_email"`
	GuestPhone      string `json:"guest_phone"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests"`
}

// CreateBookingHandler accepts a public booking request. Validation and the
// availability re-check happen in the service; anything it rejects comes back
// as a 400 with the reason.
func CreateBookingHandler(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	checkIn, err := services.ParseDate(req.CheckIn)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid check-in date: expected YYYY-MM-DD")
	}
	checkOut, err := services.ParseDate(req.CheckOut)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid check-out date: expected YYYY-MM-DD")
	}

	cfg := c.Get("config").(*config.Config)

	booking, err := services.CreateBooking(c.Request().Context(), db.DB, cfg, services.BookingInput{
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, booking)
}

// GetBookingByCodeHandler lets a guest look up their booking status. The
// email must match the booking so the code alone is not enough.
func GetBookingByCodeHandler(c echo.Context) error {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))
	email := c.QueryParam("email")

	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email is required")
	}

	booking, err := services.GetBookingByCode(db.DB, code, email)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No booking found for that code and email")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"code":      booking.Code,
		"status":    booking.Status,
		"check_in":  booking.CheckIn.Format(services.DayFormat),
		"check_out": booking.CheckOut.Format(services.DayFormat),
		"nights":    booking.Nights(),
		"guests":    booking.Guests,
	})
}
