package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"optimum_stay_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestUpdateHeroHandler(t *testing.T) {
	setupTestDB(t)

	body := `{"title":"A quiet place","subtitle":"Come stay"}`
	_, c, rec := setupEcho(http.MethodPut, "/admin/api/hero", strings.NewReader(body))

	assert.NoError(t, UpdateHeroHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var hero models.HeroContent
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hero))
	assert.Equal(t, "A quiet place", hero.Title)
}

func TestUpdateHeroHandlerEmptyTitle(t *testing.T) {
	setupTestDB(t)

	_, c, _ := setupEcho(http.MethodPut, "/admin/api/hero", strings.NewReader(`{"title":"  "}`))
	err := UpdateHeroHandler(c)
	assertHTTPError(t, err, http.StatusBadRequest)
}

func TestGetContentHandler(t *testing.T) {
	db := setupTestDB(t)

	db.Create(&models.GalleryImage{URL: "https://cdn.example.com/a.jpg", SortOrder: 1})
	db.Create(&models.GalleryVideo{URL: "https://videos.example.com/tour.mp4", SortOrder: 1})

	_, c, rec := setupEcho(http.MethodGet, "/api/content", nil)
	assert.NoError(t, GetContentHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Hero   models.HeroContent    `json:"hero"`
		Images []models.GalleryImage `json:"images"`
		Videos []models.GalleryVideo `json:"videos"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Hero.Title)
	assert.Len(t, resp.Images, 1)
	assert.Len(t, resp.Videos, 1)
}

func TestGetPublicSettingsHandler(t *testing.T) {
	setupTestDB(t)

	_, c, rec := setupEcho(http.MethodGet, "/api/settings/public", nil)
	assert.NoError(t, GetPublicSettingsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(models.DefaultNightlyPrice), resp["nightly_price"])
	assert.Equal(t, float64(models.DefaultMinimumNights), resp["minimum_nights"])
}

func TestAddGalleryImageHandlerExternalURL(t *testing.T) {
	setupTestDB(t)

	form := "url=https://cdn.example.com/new.jpg&caption=Balcony"
	_, c, rec := setupEcho(http.MethodPost, "/admin/api/images", strings.NewReader(form))
	c.Request().Header.Set("Content-Type", "application/x-www-form-urlencoded")

	assert.NoError(t, AddGalleryImageHandler(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var image models.GalleryImage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &image))
	assert.Equal(t, "https://cdn.example.com/new.jpg", image.URL)
	assert.Equal(t, "Balcony", image.Caption)
}

func TestAddGalleryImageHandlerNothingProvided(t *testing.T) {
	setupTestDB(t)

	_, c, _ := setupEcho(http.MethodPost, "/admin/api/images", strings.NewReader(""))
	c.Request().Header.Set("Content-Type", "application/x-www-form-urlencoded")

	err := AddGalleryImageHandler(c)
	assertHTTPError(t, err, http.StatusBadRequest)
}

func TestReorderGalleryImagesHandler(t *testing.T) {
	db := setupTestDB(t)

	a := &models.GalleryImage{URL: "https://cdn.example.com/a.jpg", SortOrder: 1}
	b := &models.GalleryImage{URL: "https://cdn.example.com/b.jpg", SortOrder: 2}
	db.Create(a)
	db.Create(b)

	body, _ := json.Marshal(map[string][]string{"ordered_ids": {b.ID, a.ID}})
	_, c, rec := setupEcho(http.MethodPut, "/admin/api/images/reorder", strings.NewReader(string(body)))

	assert.NoError(t, ReorderGalleryImagesHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var images []models.GalleryImage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &images))
	assert.Equal(t, b.ID, images[0].ID)
}

func TestAddAndDeleteGalleryVideoHandler(t *testing.T) {
	setupTestDB(t)

	body := `{"url":"https://videos.example.com/tour.mp4","title":"Tour"}`
	_, c, rec := setupEcho(http.MethodPost, "/admin/api/videos", strings.NewReader(body))
	assert.NoError(t, AddGalleryVideoHandler(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var video models.GalleryVideo
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &video))

	_, c, rec = setupEcho(http.MethodDelete, "/admin/api/videos/"+video.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(video.ID)
	assert.NoError(t, DeleteGalleryVideoHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminSettingsRoundTrip(t *testing.T) {
	setupTestDB(t)

	_, c, rec := setupEcho(http.MethodGet, "/admin/api/settings", nil)
	assert.NoError(t, GetSettingsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := `{"nightly_price":175,"minimum_nights":3,"max_guests":5}`
	_, c, rec = setupEcho(http.MethodPut, "/admin/api/settings", strings.NewReader(body))
	assert.NoError(t, UpdateSettingsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var settings models.ApartmentSettings
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, 175, settings.NightlyPrice)
	assert.Equal(t, 3, settings.MinimumNights)
}

func TestUpdateSettingsHandlerInvalid(t *testing.T) {
	setupTestDB(t)

	_, c, _ := setupEcho(http.MethodPut, "/admin/api/settings", strings.NewReader(`{"nightly_price":-5,"minimum_nights":2,"max_guests":4}`))
	err := UpdateSettingsHandler(c)
	assertHTTPError(t, err, http.StatusBadRequest)
}

func TestCreateAndDeleteBlockedDateHandlers(t *testing.T) {
	setupTestDB(t)

	body := `{"start_date":"2024-06-10","end_date":"2024-06-12","reason":"Maintenance"}`
	_, c, rec := setupEcho(http.MethodPost, "/admin/api/blocked-dates", strings.NewReader(body))
	assert.NoError(t, CreateBlockedDateHandler(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var blocked models.BlockedDate
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &blocked))

	_, c, rec = setupEcho(http.MethodGet, "/admin/api/blocked-dates", nil)
	assert.NoError(t, ListBlockedDatesHandler(c))
	var list []models.BlockedDate
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	_, c, rec = setupEcho(http.MethodDelete, "/admin/api/blocked-dates/"+blocked.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(blocked.ID)
	assert.NoError(t, DeleteBlockedDateHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateBlockedDateHandlerOverlap(t *testing.T) {
	setupTestDB(t)

	body := `{"start_date":"2024-06-10","end_date":"2024-06-12"}`
	_, c, _ := setupEcho(http.MethodPost, "/admin/api/blocked-dates", strings.NewReader(body))
	assert.NoError(t, CreateBlockedDateHandler(c))

	_, c, _ = setupEcho(http.MethodPost, "/admin/api/blocked-dates", strings.NewReader(body))
	err := CreateBlockedDateHandler(c)
	assertHTTPError(t, err, http.StatusBadRequest)
}
