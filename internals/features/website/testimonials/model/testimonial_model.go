// internals/features/website/testimonials/model/testimonial_model.go
package model

import (
	"time"
)

type TestimonialModel struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	StudentName string `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	// Year is a class label, e.g. "Form 4R" or "Class of 2024".
	Year      *string   `gorm:"column:year;type:varchar(50)" json:"year"`
	Quote     string    `gorm:"column:quote;type:text;not null" json:"quote"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (TestimonialModel) TableName() string { return "testimonials" }
