// internals/features/admin/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "schoolsite_backend/internals/features/admin/auth/controller"
	"schoolsite_backend/internals/middlewares"
	authMW "schoolsite_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	r := api.Group("/auth")
	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	r.Get("/me", authMW.RequireAdmin(), ctl.Me)
	r.Post("/logout", authMW.RequireAdmin(), ctl.Logout)
}
