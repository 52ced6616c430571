package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HeroContent is the single-row headline block of the homepage
type HeroContent struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UpdatedAt time.Time `json:"updated_at"`

	Title    string `gorm:"not null" json:"title"`
	Subtitle string `gorm:"type:text" json:"subtitle"`
}

func (HeroContent) TableName() string {
	return "hero_content"
}

// GalleryImage is one image of the homepage gallery, ordered by SortOrder
type GalleryImage struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	URL        string `gorm:"not null" json:"url"`
	StorageKey string `json:"-"` // set only for uploaded images; empty for external URLs
	Caption    string `json:"caption"`
	SortOrder  int    `gorm:"not null;default:0;index" json:"sort_order"`
}

// BeforeCreate hook to generate UUID
func (g *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return nil
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}

// IsUploaded returns true if the image lives in our object storage
func (g *GalleryImage) IsUploaded() bool {
	return g.StorageKey != ""
}

// GalleryVideo is one embedded video (external URL) of the homepage
type GalleryVideo struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	URL       string `gorm:"not null" json:"url"`
	Title     string `json:"title"`
	SortOrder int    `gorm:"not null;default:0;index" json:"sort_order"`
}

// BeforeCreate hook to generate UUID
func (g *GalleryVideo) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return nil
}

func (GalleryVideo) TableName() string {
	return "gallery_videos"
}
