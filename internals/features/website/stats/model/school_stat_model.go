// internals/features/website/stats/model/school_stat_model.go
package model

import (
	"time"
)

// SchoolStatModel is a single keyed figure shown on the homepage,
// e.g. stat_key "students_count" → "1200".
type SchoolStatModel struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	StatKey      string    `gorm:"column:stat_key;type:varchar(100);uniqueIndex;not null" json:"stat_key"`
	StatValue    string    `gorm:"column:stat_value;type:varchar(100);not null" json:"stat_value"`
	StatLabel    *string   `gorm:"column:stat_label;type:varchar(100)" json:"stat_label"`
	StatCategory string    `gorm:"column:stat_category;type:varchar(50);not null;default:general" json:"stat_category"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (SchoolStatModel) TableName() string { return "school_stats" }
