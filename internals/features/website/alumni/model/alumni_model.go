// internals/features/website/alumni/model/alumni_model.go
package model

import (
	"time"
)

type AlumniModel struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(120);not null" json:"name"`
	Achievement *string   `gorm:"column:achievement;type:varchar(255)" json:"achievement"`
	Description *string   `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (AlumniModel) TableName() string { return "alumni" }
