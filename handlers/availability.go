package handlers

import (
	"net/http"

	"optimum_stay_app_go/db"
	"optimum_stay_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetAvailabilityHandler returns the full unavailable-date set the booking
// calendar renders from. When every stream fails the calendar would show
// everything as open, so we return 503 with an explicit error instead of a
// silently empty set.
func GetAvailabilityHandler(c echo.Context) error {
	snapshot, err := services.LoadUnavailableDates(c.Request().Context(), db.DB, services.AvailabilityOptions{
		IncludeConfirmedBookings: true,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Availability is temporarily unavailable")
	}

	days := snapshot.Unavailable.Days()
	if len(days) == 0 && len(snapshot.Warnings) > 0 {
		// Nothing loaded and at least one stream failed: an empty calendar
		// here would let guests pick dates we cannot verify
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Availability is temporarily unavailable")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"unavailable_dates": days,
		"minimum_nights":    services.GetMinimumNights(db.DB),
		"warnings":          snapshot.Warnings,
		"fetched_at":        snapshot.FetchedAt,
	})
}

type checkAvailabilityRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// CheckAvailabilityHandler validates a proposed stay. When the stay is not
// bookable it also searches forward for the next workable checkout date so
// the frontend can offer it.
func CheckAvailabilityHandler(c echo.Context) error {
	var req checkAvailabilityRequest
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

	snapshot, err := services.LoadUnavailableDates(c.Request().Context(), db.DB, services.AvailabilityOptions{
		IncludeConfirmedBookings: true,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Availability is temporarily unavailable")
	}

	minimumNights := services.GetMinimumNights(db.DB)
	nights := services.DaysBetween(checkIn, checkOut)

	response := map[string]interface{}{
		"available":      false,
		"nights":         nights,
		"minimum_nights": minimumNights,
	}

	if validationErr := snapshot.Unavailable.ValidateStay(checkIn, checkOut, minimumNights); validationErr != nil {
		response["message"] = validationErr.Error()
		if suggested, ok := snapshot.Unavailable.FindNextAvailableCheckout(checkIn, minimumNights); ok {
			response["suggested_checkout"] = suggested.Format(services.DayFormat)
		}
		return c.JSON(http.StatusOK, response)
	}

	response["available"] = true
	return c.JSON(http.StatusOK, response)
}
