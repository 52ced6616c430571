package handlers

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"optimum_stay_app_go/config"
	"optimum_stay_app_go/db"
	"optimum_stay_app_go/models"
	"optimum_stay_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests while allowing shared cache for async tasks
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	// Initialize Storage for tests if not already set
	if services.Storage == nil {
		services.Storage = services.NewLocalStorage("tmp/test_uploads")
	}

	err = testDB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Booking{},
		&models.BookedDate{},
		&models.BlockedDate{},
		&models.ApartmentSettings{},
		&models.HeroContent{},
		&models.GalleryImage{},
		&models.GalleryVideo{},
	)
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment:   "test",
		EmailTestMode: true,
		AppURL:        "http://localhost:8080",
		AdminEmail:    "admin@example.com",
	})

	return e, c, rec
}

func assertHTTPError(t *testing.T, err error, wantCode int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok, "expected *echo.HTTPError, got %T: %v", err, err)
	if ok {
		assert.Equal(t, wantCode, httpErr.Code)
	}
}

func testDay(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := services.ParseDate(s)
	assert.NoError(t, err)
	return parsed
}
