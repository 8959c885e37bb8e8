// internals/features/website/news/model/news_model.go
package model

import (
	"time"
)

type NewsModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Excerpt   *string   `gorm:"column:excerpt;type:varchar(500)" json:"excerpt"`
	Content   *string   `gorm:"column:content;type:text" json:"content"`
	Category  *string   `gorm:"column:category;type:varchar(100)" json:"category"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (NewsModel) TableName() string { return "news" }
