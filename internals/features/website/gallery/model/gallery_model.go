// internals/features/website/gallery/model/gallery_model.go
package model

import (
	"time"
)

type GalleryModel struct {
	ID uint `gorm:"column:id;primaryKey" json:"id"`
	// ImageURL comes from the image host and is stored verbatim; the API
	// does not check that it resolves.
	ImageURL  string    `gorm:"column:image_url;type:varchar(500);not null" json:"image_url"`
	Title     *string   `gorm:"column:title;type:varchar(255)" json:"title"`
	Category  *string   `gorm:"column:category;type:varchar(100)" json:"category"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (GalleryModel) TableName() string { return "gallery" }
