package models

import (
	"time"

	"gorm.io/datatypes"
)

// HabitLog records which habits were done on a day.
type HabitLog struct {
	ID        uint                                `gorm:"primaryKey" json:"-"`
	Person    string                              `gorm:"size:64;not null;uniqueIndex:uidx_habit_person_date" json:"person"`
	LogDate   string                              `gorm:"size:10;not null;uniqueIndex:uidx_habit_person_date" json:"log_date"`
	Completed datatypes.JSONType[map[string]bool] `json:"completed"`
	Score     float64                             `json:"score"`
	UpdatedAt time.Time                           `json:"updated_at"`
}
