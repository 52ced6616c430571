package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"optimum_stay_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestGetAvailabilityHandler(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&models.BlockedDate{
		StartDate: testDay(t, "2024-06-10"),
		EndDate:   testDay(t, "2024-06-12"),
		Reason:    "Maintenance",
	})

	_, c, rec := setupEcho(http.MethodGet, "/api/availability", nil)
	err := GetAvailabilityHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		UnavailableDates []string `json:"unavailable_dates"`
		MinimumNights    int      `json:"minimum_nights"`
		Warnings         []string `json:"warnings"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"2024-06-10", "2024-06-11", "2024-06-12"}, resp.UnavailableDates)
	assert.Equal(t, models.DefaultMinimumNights, resp.MinimumNights)
	assert.Empty(t, resp.Warnings)
}

func TestCheckAvailabilityHandlerAvailable(t *testing.T) {
	setupTestDB(t)

	body := `{"check_in":"2024-07-01","check_out":"2024-07-05"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/availability/check", strings.NewReader(body))

	err := CheckAvailabilityHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["available"])
	assert.Equal(t, float64(4), resp["nights"])
}

func TestCheckAvailabilityHandlerUnavailableSuggestsCheckout(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&models.BlockedDate{
		StartDate: testDay(t, "2024-07-03"),
		EndDate:   testDay(t, "2024-07-04"),
	})

	// One night is below the default 2-night minimum
	body := `{"check_in":"2024-07-05","check_out":"2024-07-06"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/availability/check", strings.NewReader(body))

	err := CheckAvailabilityHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["available"])
	assert.Contains(t, resp["message"], "at least 2 nights")
	assert.Equal(t, "2024-07-07", resp["suggested_checkout"])
}

func TestCheckAvailabilityHandlerBadDates(t *testing.T) {
	setupTestDB(t)

	body := `{"check_in":"07/01/2024","check_out":"2024-07-05"}`
	_, c, _ := setupEcho(http.MethodPost, "/api/availability/check", strings.NewReader(body))

	err := CheckAvailabilityHandler(c)
	assertHTTPError(t, err, http.StatusBadRequest)
}
