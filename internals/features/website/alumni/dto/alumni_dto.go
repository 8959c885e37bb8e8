// internals/features/website/alumni/dto/alumni_dto.go
package dto

import (
	"strings"
	"time"

	model "schoolsite_backend/internals/features/website/alumni/model"
	helper "schoolsite_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateAlumniRequest struct {
	Name        string  `json:"name" validate:"required"`
	Achievement *string `json:"achievement"`
	Description *string `json:"description"`
}

func (r CreateAlumniRequest) ToModel() *model.AlumniModel {
	return &model.AlumniModel{
		Name:        strings.TrimSpace(r.Name),
		Achievement: helper.CleanOptional(r.Achievement),
		Description: helper.CleanOptional(r.Description),
	}
}

type UpdateAlumniRequest struct {
	Name        *string `json:"name"`
	Achievement *string `json:"achievement"`
	Description *string `json:"description"`
}

func (r *UpdateAlumniRequest) ApplyToModel(m *model.AlumniModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Achievement != nil {
		m.Achievement = helper.CleanOptional(r.Achievement)
	}
	if r.Description != nil {
		m.Description = helper.CleanOptional(r.Description)
	}
}

/* ===================== RESPONSES ===================== */

type AlumniResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Achievement *string   `json:"achievement"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewAlumniResponse(m *model.AlumniModel) *AlumniResponse {
	if m == nil {
		return nil
	}
	return &AlumniResponse{
		ID:          m.ID,
		Name:        m.Name,
		Achievement: m.Achievement,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}
