// internals/features/admin/auth/dto/auth_dto.go
package dto

import (
	"time"

	model "schoolsite_backend/internals/features/admin/auth/model"
)

/* ===================== REQUESTS ===================== */

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

/* ===================== RESPONSES ===================== */

// AdminResponse externalizes an admin without the password hash.
type AdminResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	Admin       AdminResponse `json:"admin"`
}

func NewAdminResponse(m *model.AdminUserModel) AdminResponse {
	return AdminResponse{
		ID:        m.ID,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}
