// internals/features/website/stats/dto/school_stat_dto.go
package dto

import (
	"strings"
	"time"

	model "schoolsite_backend/internals/features/website/stats/model"
	helper "schoolsite_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateSchoolStatRequest struct {
	StatKey      string  `json:"stat_key" validate:"required"`
	StatValue    string  `json:"stat_value" validate:"required"`
	StatLabel    *string `json:"stat_label"`
	StatCategory *string `json:"stat_category"`
}

func (r CreateSchoolStatRequest) ToModel() *model.SchoolStatModel {
	m := &model.SchoolStatModel{
		StatKey:      strings.TrimSpace(r.StatKey),
		StatValue:    strings.TrimSpace(r.StatValue),
		StatLabel:    helper.CleanOptional(r.StatLabel),
		StatCategory: "general",
	}
	if c := helper.CleanOptional(r.StatCategory); c != nil {
		m.StatCategory = *c
	}
	return m
}

// Update: stat_key stays immutable once assigned; only value, label and
// category are updatable.
type UpdateSchoolStatRequest struct {
	StatValue    *string `json:"stat_value"`
	StatLabel    *string `json:"stat_label"`
	StatCategory *string `json:"stat_category"`
}

func (r *UpdateSchoolStatRequest) ApplyToModel(m *model.SchoolStatModel) {
	if r.StatValue != nil {
		m.StatValue = strings.TrimSpace(*r.StatValue)
	}
	if r.StatLabel != nil {
		m.StatLabel = helper.CleanOptional(r.StatLabel)
	}
	if r.StatCategory != nil {
		if c := helper.CleanOptional(r.StatCategory); c != nil {
			m.StatCategory = *c
		}
	}
}

/* ===================== RESPONSES ===================== */

type SchoolStatResponse struct {
	ID           uint      `json:"id"`
	StatKey      string    `json:"stat_key"`
	StatValue    string    `json:"stat_value"`
	StatLabel    *string   `json:"stat_label"`
	StatCategory string    `json:"stat_category"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewSchoolStatResponse(m *model.SchoolStatModel) *SchoolStatResponse {
	if m == nil {
		return nil
	}
	return &SchoolStatResponse{
		ID:           m.ID,
		StatKey:      m.StatKey,
		StatValue:    m.StatValue,
		StatLabel:    m.StatLabel,
		StatCategory: m.StatCategory,
		UpdatedAt:    m.UpdatedAt,
	}
}
