package services

import (
	"testing"

	"optimum_stay_app_go/config"
	"optimum_stay_app_go/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests while allowing shared cache for async tasks
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

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

	return testDB
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:   "test",
		EmailTestMode: true,
		AppURL:        "http://localhost:8080",
		AdminEmail:    "admin@example.com",
	}
}
