// internals/features/website/contact/route/contact_submission_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactController "schoolsite_backend/internals/features/website/contact/controller"
	"schoolsite_backend/internals/helpers/mailer"
	authMW "schoolsite_backend/internals/middlewares/auth"
)

func ContactRoutes(api fiber.Router, db *gorm.DB, notifier mailer.Notifier) {
	ctl := contactController.NewContactSubmissionController(db, notifier)

	r := api.Group("/contact")
	// anyone can write to the school; reading the inbox is admin-only
	r.Post("/", ctl.Create)
	r.Get("/", authMW.RequireAdmin(), ctl.List)
	r.Get("/:id", authMW.RequireAdmin(), ctl.GetByID)
	r.Put("/:id/read", authMW.RequireAdmin(), ctl.MarkRead)
	r.Delete("/:id", authMW.RequireAdmin(), ctl.Delete)
}
