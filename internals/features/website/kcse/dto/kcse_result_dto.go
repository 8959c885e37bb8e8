// internals/features/website/kcse/dto/kcse_result_dto.go
package dto

import (
	"strings"
	"time"

	model "schoolsite_backend/internals/features/website/kcse/model"
	helper "schoolsite_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateKcseResultRequest struct {
	Year                      string  `json:"year" validate:"required"`
	MeanGrade                 *string `json:"mean_grade"`
	UniversityEntryPercentage *string `json:"university_entry_percentage"`
}

func (r CreateKcseResultRequest) ToModel() *model.KcseResultModel {
	return &model.KcseResultModel{
		Year:                      strings.TrimSpace(r.Year),
		MeanGrade:                 helper.CleanOptional(r.MeanGrade),
		UniversityEntryPercentage: helper.CleanOptional(r.UniversityEntryPercentage),
	}
}

type UpdateKcseResultRequest struct {
	Year                      *string `json:"year"`
	MeanGrade                 *string `json:"mean_grade"`
	UniversityEntryPercentage *string `json:"university_entry_percentage"`
}

func (r *UpdateKcseResultRequest) ApplyToModel(m *model.KcseResultModel) {
	if r.Year != nil {
		m.Year = strings.TrimSpace(*r.Year)
	}
	if r.MeanGrade != nil {
		m.MeanGrade = helper.CleanOptional(r.MeanGrade)
	}
	if r.UniversityEntryPercentage != nil {
		m.UniversityEntryPercentage = helper.CleanOptional(r.UniversityEntryPercentage)
	}
}

/* ===================== RESPONSES ===================== */

type KcseResultResponse struct {
	ID                        uint      `json:"id"`
	Year                      string    `json:"year"`
	MeanGrade                 *string   `json:"mean_grade"`
	UniversityEntryPercentage *string   `json:"university_entry_percentage"`
	CreatedAt                 time.Time `json:"created_at"`
}

func NewKcseResultResponse(m *model.KcseResultModel) *KcseResultResponse {
	if m == nil {
		return nil
	}
	return &KcseResultResponse{
		ID:                        m.ID,
		Year:                      m.Year,
		MeanGrade:                 m.MeanGrade,
		UniversityEntryPercentage: m.UniversityEntryPercentage,
		CreatedAt:                 m.CreatedAt,
	}
}
