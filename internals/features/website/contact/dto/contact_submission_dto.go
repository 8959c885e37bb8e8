// internals/features/website/contact/dto/contact_submission_dto.go
package dto

import (
	"strings"
	"time"

	model "schoolsite_backend/internals/features/website/contact/model"
	helper "schoolsite_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

// Create is the public contact form; is_read always starts false and is not
// part of the payload.
type CreateContactSubmissionRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone"`
	Subject *string `json:"subject"`
	Message string  `json:"message" validate:"required"`
}

func (r CreateContactSubmissionRequest) ToModel() *model.ContactSubmissionModel {
	return &model.ContactSubmissionModel{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   helper.CleanOptional(r.Phone),
		Subject: helper.CleanOptional(r.Subject),
		Message: strings.TrimSpace(r.Message),
	}
}

/* ===================== RESPONSES ===================== */

type ContactSubmissionResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func NewContactSubmissionResponse(m *model.ContactSubmissionModel) *ContactSubmissionResponse {
	if m == nil {
		return nil
	}
	return &ContactSubmissionResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}
