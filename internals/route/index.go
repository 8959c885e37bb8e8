// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "schoolsite_backend/internals/features/admin/auth/route"
	alumniRoute "schoolsite_backend/internals/features/website/alumni/route"
	contactRoute "schoolsite_backend/internals/features/website/contact/route"
	eventRoute "schoolsite_backend/internals/features/website/events/route"
	galleryRoute "schoolsite_backend/internals/features/website/gallery/route"
	kcseRoute "schoolsite_backend/internals/features/website/kcse/route"
	newsRoute "schoolsite_backend/internals/features/website/news/route"
	staffRoute "schoolsite_backend/internals/features/website/staff/route"
	statsRoute "schoolsite_backend/internals/features/website/stats/route"
	testimonialRoute "schoolsite_backend/internals/features/website/testimonials/route"
	"schoolsite_backend/internals/helpers/mailer"
)

// SetupRoutes registers every feature under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up website resources...")
	staffRoute.StaffRoutes(api, db)
	newsRoute.NewsRoutes(api, db)
	eventRoute.EventRoutes(api, db)
	galleryRoute.GalleryRoutes(api, db)
	alumniRoute.AlumniRoutes(api, db)
	kcseRoute.KcseRoutes(api, db)
	testimonialRoute.TestimonialRoutes(api, db)
	statsRoute.SchoolStatRoutes(api, db)

	var notifier mailer.Notifier
	if m := mailer.NewFromEnv(); m != nil {
		notifier = m
	} else {
		log.Println("[INFO] MAIL_USERNAME/MAIL_PASSWORD not set, contact notifications disabled")
	}
	contactRoute.ContactRoutes(api, db, notifier)
}
