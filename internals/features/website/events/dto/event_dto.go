// internals/features/website/events/dto/event_dto.go
package dto

import (
	"strings"
	"time"

	model "schoolsite_backend/internals/features/website/events/model"
	helper "schoolsite_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateEventRequest struct {
	Title       string  `json:"title" validate:"required"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

func (r CreateEventRequest) ToModel() *model.EventModel {
	return &model.EventModel{
		Title:       strings.TrimSpace(r.Title),
		Date:        helper.CleanOptional(r.Date),
		Description: helper.CleanOptional(r.Description),
	}
}

type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

func (r *UpdateEventRequest) ApplyToModel(m *model.EventModel) {
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
	}
	if r.Date != nil {
		m.Date = helper.CleanOptional(r.Date)
	}
	if r.Description != nil {
		m.Description = helper.CleanOptional(r.Description)
	}
}

/* ===================== RESPONSES ===================== */

type EventResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Date        *string   `json:"date"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewEventResponse(m *model.EventModel) *EventResponse {
	if m == nil {
		return nil
	}
	return &EventResponse{
		ID:          m.ID,
		Title:       m.Title,
		Date:        m.Date,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}
