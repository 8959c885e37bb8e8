// internals/features/admin/auth/model/admin_user_model.go
package model

import (
	"time"
)

// AdminUserModel is the single privileged identity for the site. Rows are
// created by the seeder (cmd/seeder), never through the API.
type AdminUserModel struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	Email        string    `gorm:"column:email;type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (AdminUserModel) TableName() string { return "admin_users" }
