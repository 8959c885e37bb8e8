// internals/features/website/events/model/event_model.go
package model

import (
	"time"
)

type EventModel struct {
	ID    uint   `gorm:"column:id;primaryKey" json:"id"`
	Title string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	// Date is free text, e.g. "March 15, 2026" — displayed verbatim.
	Date        *string   `gorm:"column:date;type:varchar(100)" json:"date"`
	Description *string   `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (EventModel) TableName() string { return "events" }
