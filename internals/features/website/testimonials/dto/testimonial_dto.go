// internals/features/website/testimonials/dto/testimonial_dto.go
package dto

import (
	"strings"
	"time"

	model "schoolsite_backend/internals/features/website/testimonials/model"
	helper "schoolsite_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateTestimonialRequest struct {
	StudentName string  `json:"student_name" validate:"required"`
	Year        *string `json:"year"`
	Quote       string  `json:"quote" validate:"required"`
}

func (r CreateTestimonialRequest) ToModel() *model.TestimonialModel {
	return &model.TestimonialModel{
		StudentName: strings.TrimSpace(r.StudentName),
		Year:        helper.CleanOptional(r.Year),
		Quote:       strings.TrimSpace(r.Quote),
	}
}

type UpdateTestimonialRequest struct {
	StudentName *string `json:"student_name"`
	Year        *string `json:"year"`
	Quote       *string `json:"quote"`
}

func (r *UpdateTestimonialRequest) ApplyToModel(m *model.TestimonialModel) {
	if r.StudentName != nil {
		m.StudentName = strings.TrimSpace(*r.StudentName)
	}
	if r.Year != nil {
		m.Year = helper.CleanOptional(r.Year)
	}
	if r.Quote != nil {
		m.Quote = strings.TrimSpace(*r.Quote)
	}
}

/* ===================== RESPONSES ===================== */

type TestimonialResponse struct {
	ID          uint      `json:"id"`
	StudentName string    `json:"student_name"`
	Year        *string   `json:"year"`
	Quote       string    `json:"quote"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTestimonialResponse(m *model.TestimonialModel) *TestimonialResponse {
	if m == nil {
		return nil
	}
	return &TestimonialResponse{
		ID:          m.ID,
		StudentName: m.StudentName,
		Year:        m.Year,
		Quote:       m.Quote,
		CreatedAt:   m.CreatedAt,
	}
}
