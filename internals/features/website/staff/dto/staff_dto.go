// internals/features/website/staff/dto/staff_dto.go
package dto

import (
	"strings"
	"time"

	model "schoolsite_backend/internals/features/website/staff/model"
	helper "schoolsite_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateStaffRequest struct {
	Name         string  `json:"name" validate:"required"`
	PhotoURL     *string `json:"photo_url"`
	Subject      *string `json:"subject"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Role         *string `json:"role"`
	IsLeadership *bool   `json:"is_leadership"`
}

func (r CreateStaffRequest) ToModel() *model.StaffModel {
	m := &model.StaffModel{
		Name:     strings.TrimSpace(r.Name),
		PhotoURL: helper.CleanOptional(r.PhotoURL),
		Subject:  helper.CleanOptional(r.Subject),
		Email:    helper.CleanOptional(r.Email),
		Phone:    helper.CleanOptional(r.Phone),
		Role:     helper.CleanOptional(r.Role),
	}
	if r.IsLeadership != nil {
		m.IsLeadership = *r.IsLeadership
	}
	return m
}

// Update: every field optional, applied only when present
type UpdateStaffRequest struct {
	Name         *string `json:"name"`
	PhotoURL     *string `json:"photo_url"`
	Subject      *string `json:"subject"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Role         *string `json:"role"`
	IsLeadership *bool   `json:"is_leadership"`
}

func (r *UpdateStaffRequest) ApplyToModel(m *model.StaffModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.PhotoURL != nil {
		m.PhotoURL = helper.CleanOptional(r.PhotoURL)
	}
	if r.Subject != nil {
		m.Subject = helper.CleanOptional(r.Subject)
	}
	if r.Email != nil {
		m.Email = helper.CleanOptional(r.Email)
	}
	if r.Phone != nil {
		m.Phone = helper.CleanOptional(r.Phone)
	}
	if r.Role != nil {
		m.Role = helper.CleanOptional(r.Role)
	}
	if r.IsLeadership != nil {
		m.IsLeadership = *r.IsLeadership
	}
}

/* ===================== RESPONSES ===================== */

type StaffResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	PhotoURL     *string   `json:"photo_url"`
	Subject      *string   `json:"subject"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	Role         *string   `json:"role"`
	IsLeadership bool      `json:"is_leadership"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewStaffResponse(m *model.StaffModel) *StaffResponse {
	if m == nil {
		return nil
	}
	return &StaffResponse{
		ID:           m.ID,
		Name:         m.Name,
		PhotoURL:     m.PhotoURL,
		Subject:      m.Subject,
		Email:        m.Email,
		Phone:        m.Phone,
		Role:         m.Role,
		IsLeadership: m.IsLeadership,
		CreatedAt:    m.CreatedAt,
	}
}
