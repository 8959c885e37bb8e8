// internals/features/website/gallery/dto/gallery_dto.go
package dto

import (
	"strings"
	"time"

	model "schoolsite_backend/internals/features/website/gallery/model"
	helper "schoolsite_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateGalleryRequest struct {
	ImageURL string  `json:"image_url" validate:"required"`
	Title    *string `json:"title"`
	Category *string `json:"category"`
}

func (r CreateGalleryRequest) ToModel() *model.GalleryModel {
	return &model.GalleryModel{
		ImageURL: strings.TrimSpace(r.ImageURL),
		Title:    helper.CleanOptional(r.Title),
		Category: helper.CleanOptional(r.Category),
	}
}

type UpdateGalleryRequest struct {
	ImageURL *string `json:"image_url"`
	Title    *string `json:"title"`
	Category *string `json:"category"`
}

func (r *UpdateGalleryRequest) ApplyToModel(m *model.GalleryModel) {
	if r.ImageURL != nil {
		m.ImageURL = strings.TrimSpace(*r.ImageURL)
	}
	if r.Title != nil {
		m.Title = helper.CleanOptional(r.Title)
	}
	if r.Category != nil {
		m.Category = helper.CleanOptional(r.Category)
	}
}

/* ===================== RESPONSES ===================== */

type GalleryResponse struct {
	ID        uint      `json:"id"`
	ImageURL  string    `json:"image_url"`
	Title     *string   `json:"title"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func NewGalleryResponse(m *model.GalleryModel) *GalleryResponse {
	if m == nil {
		return nil
	}
	return &GalleryResponse{
		ID:        m.ID,
		ImageURL:  m.ImageURL,
		Title:     m.Title,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
	}
}
