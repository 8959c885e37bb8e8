// internals/features/website/contact/model/contact_submission_model.go
package model

import (
	"time"
)

type ContactSubmissionModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(120);not null" json:"email"`
	Phone     *string   `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Subject   *string   `gorm:"column:subject;type:varchar(255)" json:"subject"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	IsRead    bool      `gorm:"column:is_read;not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (ContactSubmissionModel) TableName() string { return "contact_submissions" }
