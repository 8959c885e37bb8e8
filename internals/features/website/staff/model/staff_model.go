// internals/features/website/staff/model/staff_model.go
package model

import (
	"time"
)

type StaffModel struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	Name         string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	PhotoURL     *string   `gorm:"column:photo_url;type:varchar(500)" json:"photo_url"`
	Subject      *string   `gorm:"column:subject;type:varchar(120)" json:"subject"`
	Email        *string   `gorm:"column:email;type:varchar(120)" json:"email"`
	Phone        *string   `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Role         *string   `gorm:"column:role;type:varchar(120)" json:"role"`
	IsLeadership bool      `gorm:"column:is_leadership;not null;default:false" json:"is_leadership"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (StaffModel) TableName() string { return "staff" }
