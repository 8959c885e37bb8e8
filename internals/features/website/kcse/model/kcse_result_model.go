// internals/features/website/kcse/model/kcse_result_model.go
package model

import (
	"time"
)

// KcseResultModel holds one year's national exam summary.
type KcseResultModel struct {
	ID        uint    `gorm:"column:id;primaryKey" json:"id"`
	Year      string  `gorm:"column:year;type:varchar(10);not null" json:"year"`
	MeanGrade *string `gorm:"column:mean_grade;type:varchar(10)" json:"mean_grade"`
	// Free text, e.g. "92%"
	UniversityEntryPercentage *string   `gorm:"column:university_entry_percentage;type:varchar(10)" json:"university_entry_percentage"`
	CreatedAt                 time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (KcseResultModel) TableName() string { return "kcse_results" }
