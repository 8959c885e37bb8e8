// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	authService "schoolsite_backend/internals/features/admin/auth/service"
	helper "schoolsite_backend/internals/helpers"
)

// RequireAdmin gates every mutating resource route. It verifies the bearer
// token's signature and expiry and stores the admin id in Locals("admin_id").
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		adminID, err := authService.ParseAccessToken(tokenString)
		if err != nil {
			return helper.FromFiberError(c, err)
		}

		c.Locals("admin_id", adminID)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing Authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

// AdminID reads the id RequireAdmin stored on the request context.
func AdminID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("admin_id").(uint)
	return id, ok
}
