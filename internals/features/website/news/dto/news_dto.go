// internals/features/website/news/dto/news_dto.go
package dto

import (
	"strings"
	"time"

	model "schoolsite_backend/internals/features/website/news/model"
	helper "schoolsite_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateNewsRequest struct {
	Title    string  `json:"title" validate:"required"`
	Excerpt  *string `json:"excerpt"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

func (r CreateNewsRequest) ToModel() *model.NewsModel {
	return &model.NewsModel{
		Title:    strings.TrimSpace(r.Title),
		Excerpt:  helper.CleanOptional(r.Excerpt),
		Content:  helper.CleanOptional(r.Content),
		Category: helper.CleanOptional(r.Category),
	}
}

type UpdateNewsRequest struct {
	Title    *string `json:"title"`
	Excerpt  *string `json:"excerpt"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

func (r *UpdateNewsRequest) ApplyToModel(m *model.NewsModel) {
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
	}
	if r.Excerpt != nil {
		m.Excerpt = helper.CleanOptional(r.Excerpt)
	}
	if r.Content != nil {
		m.Content = helper.CleanOptional(r.Content)
	}
	if r.Category != nil {
		m.Category = helper.CleanOptional(r.Category)
	}
}

/* ===================== RESPONSES ===================== */

type NewsResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Excerpt   *string   `json:"excerpt"`
	Content   *string   `json:"content"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNewsResponse(m *model.NewsModel) *NewsResponse {
	if m == nil {
		return nil
	}
	return &NewsResponse{
		ID:        m.ID,
		Title:     m.Title,
		Excerpt:   m.Excerpt,
		Content:   m.Content,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
	}
}
