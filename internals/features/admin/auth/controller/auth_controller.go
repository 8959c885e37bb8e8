// internals/features/admin/auth/controller/auth_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "schoolsite_backend/internals/features/admin/auth/dto"
	authModel "schoolsite_backend/internals/features/admin/auth/model"
	authService "schoolsite_backend/internals/features/admin/auth/service"
	helper "schoolsite_backend/internals/helpers"
	authMW "schoolsite_backend/internals/middlewares/auth"
)

type AuthController struct{ DB *gorm.DB }

func NewAuthController(db *gorm.DB) *AuthController { return &AuthController{DB: db} }

// ===================== LOGIN =====================
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}
	if req.Email == "" || req.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	// Exact-match lookup; a missing row and a wrong password produce the
	// same response so the endpoint does not leak which emails exist.
	var admin authModel.AdminUserModel
	if err := h.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if err := authService.CheckPasswordHash(admin.PasswordHash, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := authService.CreateAccessToken(admin.ID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, authDTO.LoginResponse{
		AccessToken: token,
		Admin:       authDTO.NewAdminResponse(&admin),
	})
}

// ===================== ME =====================
// GET /api/auth/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	adminID, ok := authMW.AdminID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var admin authModel.AdminUserModel
	if err := h.DB.First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.JsonOK(c, authDTO.NewAdminResponse(&admin))
}

// ===================== LOGOUT =====================
// POST /api/auth/logout
// Stateless: the client discards the token; nothing is revoked server-side.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	return helper.JsonMessage(c, fiber.StatusOK, "Logged out successfully")
}
