package handlers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"optimum_stay_app_go/db"
	"optimum_stay_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MaxImageUploadSize caps gallery uploads at 10MB
const MaxImageUploadSize = 10 << 20

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

type updateHeroRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// UpdateHeroHandler updates the homepage headline block
func UpdateHeroHandler(c echo.Context) error {
	var req updateHeroRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	hero, err := services.UpdateHeroContent(db.DB, req.Title, req.Subtitle)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, hero)
}

// AddGalleryImageHandler adds a gallery image, either as a multipart file
// upload (stored through the storage provider) or as an external URL in the
// "url" form field.
func AddGalleryImageHandler(c echo.Context) error {
	caption := c.FormValue("caption")

	file, err := c.FormFile("image")
	if err != nil {
		// No file attached: fall back to external URL mode
		url := strings.TrimSpace(c.FormValue("url"))
		if url == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "An image file or URL is required")
		}
		image, err := services.AddGalleryImage(db.DB, url, "", caption)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusCreated, image)
	}

	if file.Size > MaxImageUploadSize {
		return echo.NewHTTPError(http.StatusBadRequest, "Image must be smaller than 10MB")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return echo.NewHTTPError(http.StatusBadRequest, "Unsupported image type")
	}

	key := fmt.Sprintf("gallery/%d-%s%s", time.Now().Unix(), uuid.New().String()[:8], ext)
	result, err := services.Storage.Upload(c.Request().Context(), file, key)
	if err != nil {
		log.Printf("[ERROR] Gallery upload failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store image")
	}

	image, err := services.AddGalleryImage(db.DB, result.URL, result.Key, caption)
	if err != nil {
		// Record failed: remove the orphaned object
		if delErr := services.Storage.Delete(c.Request().Context(), result.Key); delErr != nil {
			log.Printf("[WARNING] Failed to clean up orphaned upload %s: %v", result.Key, delErr)
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, image)
}

// DeleteGalleryImageHandler removes a gallery image and, for uploaded images,
// its stored object
func DeleteGalleryImageHandler(c echo.Context) error {
	image, err := services.DeleteGalleryImage(db.DB, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	if image.IsUploaded() {
		if err := services.Storage.Delete(c.Request().Context(), image.StorageKey); err != nil {
			// Record is gone either way; the object becomes unreferenced
			log.Printf("[WARNING] Failed to delete stored image %s: %v", image.StorageKey, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Image deleted"})
}

type reorderImagesRequest struct {
	OrderedIDs []string `json:"ordered_ids"`
}

// ReorderGalleryImagesHandler rewrites the gallery display order
func ReorderGalleryImagesHandler(c echo.Context) error {
	var req reorderImagesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if len(req.OrderedIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "ordered_ids is required")
	}

	if err := services.ReorderGalleryImages(db.DB, req.OrderedIDs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	images, err := services.ListGalleryImages(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load gallery images")
	}
	return c.JSON(http.StatusOK, images)
}

type addVideoRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// AddGalleryVideoHandler adds an external video URL to the gallery
func AddGalleryVideoHandler(c echo.Context) error {
	var req addVideoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	video, err := services.AddGalleryVideo(db.DB, req.URL, req.Title)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, video)
}

// DeleteGalleryVideoHandler removes a gallery video
func DeleteGalleryVideoHandler(c echo.Context) error {
	if err := services.DeleteGalleryVideo(db.DB, c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Video deleted"})
}
