package models

import "time"

// Cycle flow categories. The empty string means not recorded.
const (
	FlowNone     = ""
	FlowSpotting = "Spotting"
	FlowLight    = "Light"
	FlowMedium   = "Medium"
	FlowHeavy    = "Heavy"
)

var PeriodFlows = []string{FlowNone, FlowSpotting, FlowLight, FlowMedium, FlowHeavy}

// DailyCheckin holds one person's metrics for one day.
// Every metric is optional; a save replaces the whole row.
type DailyCheckin struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	Person  string `gorm:"size:64;not null;uniqueIndex:uidx_daily_person_date" json:"person"`
	LogDate string `gorm:"size:10;not null;uniqueIndex:uidx_daily_person_date" json:"log_date"`

	WeightKg    *float64 `json:"weight_kg"`
	SleepHours  *float64 `json:"sleep_hours"`
	ExerciseMin *float64 `json:"exercise_min"`
	Mood        *int     `json:"mood"`
	Stress      *int     `json:"stress"`

	// profile-conditional
	GerdSymptom    *int     `json:"gerd_symptom"`
	GlucoseMgdl    *float64 `gorm:"column:glucose_mgdl" json:"glucose_mgdl"`
	InsulinUnits   *float64 `json:"insulin_units"`
	PeriodDay      *int     `json:"period_day"`
	PeriodFlow     *string  `gorm:"size:16" json:"period_flow"`
	PeriodSymptoms *string  `json:"period_symptoms"`

	ExtraNotes string    `json:"extra_notes"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (DailyCheckin) TableName() string { return "daily" }
