package services

import (
	"errors"
	"fmt"
	"strings"

	"optimum_stay_app_go/models"

	"gorm.io/gorm"
)

// GetHeroContent fetches the homepage hero block, creating a default on first access
func GetHeroContent(db *gorm.DB) (*models.HeroContent, error) {
	var hero models.HeroContent
	err := db.First(&hero).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load hero content: %w", err)
		}
		hero = models.HeroContent{
			Title:    "Optimum Stay Homes",
			Subtitle: "Your home away from home",
		}
		if err := db.Create(&hero).Error; err != nil {
			return nil, fmt.Errorf("failed to create default hero content: %w", err)
		}
	}
	return &hero, nil
}

// UpdateHeroContent updates the homepage hero block
func UpdateHeroContent(db *gorm.DB, title, subtitle string) (*models.HeroContent, error) {
	title = SanitizeText(title)
	if title == "" {
		return nil, fmt.Errorf("hero title is required")
	}

	hero, err := GetHeroContent(db)
	if err != nil {
		return nil, err
	}

	hero.Title = title
	hero.Subtitle = SanitizeText(subtitle)
	if err := db.Save(hero).Error; err != nil {
		return nil, fmt.Errorf("failed to update hero content: %w", err)
	}
	return hero, nil
}

// ListGalleryImages fetches gallery images in display order
func ListGalleryImages(db *gorm.DB) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := db.Order("sort_order asc, created_at asc").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	return images, nil
}

// AddGalleryImage stores a new gallery image entry. StorageKey is empty for
// external URLs and set for files uploaded through our storage provider.
func AddGalleryImage(db *gorm.DB, url, storageKey, caption string) (*models.GalleryImage, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("image URL is required")
	}

	var maxOrder int
	db.Model(&models.GalleryImage{}).Select("COALESCE(MAX(sort_order), 0)").Scan(&maxOrder)

	image := &models.GalleryImage{
		URL:        strings.TrimSpace(url),
		StorageKey: storageKey,
		Caption:    SanitizeText(caption),
		SortOrder:  maxOrder + 1,
	}
	if err := db.Create(image).Error; err != nil {
		return nil, fmt.Errorf("failed to add gallery image: %w", err)
	}
	return image, nil
}

// GetGalleryImage fetches a single gallery image
func GetGalleryImage(db *gorm.DB, id string) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := db.First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("gallery image not found")
		}
		return nil, fmt.Errorf("failed to load gallery image: %w", err)
	}
	return &image, nil
}

// DeleteGalleryImage removes a gallery image record
func DeleteGalleryImage(db *gorm.DB, id string) (*models.GalleryImage, error) {
	image, err := GetGalleryImage(db, id)
	if err != nil {
		return nil, err
	}
	if err := db.Delete(image).Error; err != nil {
		return nil, fmt.Errorf("failed to delete gallery image: %w", err)
	}
	return image, nil
}

// ReorderGalleryImages rewrites sort order to match the given ID sequence
func ReorderGalleryImages(db *gorm.DB, orderedIDs []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			result := tx.Model(&models.GalleryImage{}).Where("id = ?", id).Update("sort_order", i+1)
			if result.Error != nil {
				return fmt.Errorf("failed to reorder gallery images: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("gallery image not found: %s", id)
			}
		}
		return nil
	})
}

// ListGalleryVideos fetches gallery videos in display order
func ListGalleryVideos(db *gorm.DB) ([]models.GalleryVideo, error) {
	var videos []models.GalleryVideo
	if err := db.Order("sort_order asc, created_at asc").Find(&videos).Error; err != nil {
		return nil, fmt.Errorf("failed to list gallery videos: %w", err)
	}
	return videos, nil
}

// AddGalleryVideo stores a new external video URL
func AddGalleryVideo(db *gorm.DB, url, title string) (*models.GalleryVideo, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("video URL is required")
	}

	var maxOrder int
	db.Model(&models.GalleryVideo{}).Select("COALESCE(MAX(sort_order), 0)").Scan(&maxOrder)

	video := &models.GalleryVideo{
		URL:       strings.TrimSpace(url),
		Title:     SanitizeText(title),
		SortOrder: maxOrder + 1,
	}
	if err := db.Create(video).Error; err != nil {
		return nil, fmt.Errorf("failed to add gallery video: %w", err)
	}
	return video, nil
}

// DeleteGalleryVideo removes a gallery video record
func DeleteGalleryVideo(db *gorm.DB, id string) error {
	var video models.GalleryVideo
	if err := db.First(&video, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("gallery video not found")
		}
		return fmt.Errorf("failed to load gallery video: %w", err)
	}
	if err := db.Delete(&video).Error; err != nil {
		return fmt.Errorf("failed to delete gallery video: %w", err)
	}
	return nil
}
