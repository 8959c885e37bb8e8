// internals/features/website/contact/controller/contact_submission_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolsite_backend/internals/crud"
	contactDTO "schoolsite_backend/internals/features/website/contact/dto"
	contactModel "schoolsite_backend/internals/features/website/contact/model"
	helper "schoolsite_backend/internals/helpers"
	"schoolsite_backend/internals/helpers/mailer"
)

// ContactSubmissionController wraps the shared CRUD controller with the two
// behaviors unique to contact: a public create that pings the school inbox,
// and the mark-read toggle.
type ContactSubmissionController struct {
	*crud.Controller[contactModel.ContactSubmissionModel]
	Mailer mailer.Notifier
}

func NewContactSubmissionController(db *gorm.DB, notifier mailer.Notifier) *ContactSubmissionController {
	base := crud.NewController(db, crud.Resource[contactModel.ContactSubmissionModel]{
		Singular: "Submission",
		OrderBy:  "created_at DESC",
		Response: func(m *contactModel.ContactSubmissionModel) any {
			return contactDTO.NewContactSubmissionResponse(m)
		},
	})
	return &ContactSubmissionController{Controller: base, Mailer: notifier}
}

// ===================== CREATE (public) =====================
// POST /api/contact
func (h *ContactSubmissionController) Create(c *fiber.Ctx) error {
	req, err := crud.DecodeBody[contactDTO.CreateContactSubmissionRequest](c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	// Best-effort inbox notification; a mail failure never fails the request.
	if h.Mailer != nil {
		subject := "New contact form submission"
		body := fmt.Sprintf("From: %s <%s>\n\n%s", m.Name, m.Email, m.Message)
		if err := h.Mailer.Notify(subject, body); err != nil {
			log.Printf("contact mail notify failed: %v", err)
		}
	}

	return helper.JsonCreated(c, contactDTO.NewContactSubmissionResponse(m))
}

// ===================== MARK READ =====================
// PUT /api/contact/:id/read
// Idempotent: marking an already-read submission stays 200 / is_read:true.
func (h *ContactSubmissionController) MarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
	}

	var m contactModel.ContactSubmissionModel
	if err := h.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if !m.IsRead {
		m.IsRead = true
		if err := h.DB.Save(&m).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	return helper.JsonOK(c, contactDTO.NewContactSubmissionResponse(&m))
}
