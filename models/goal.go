package models

import "time"

// Goal is a person's active weight target for one goal type.
type Goal struct {
	Person        string    `gorm:"primaryKey;size:64" json:"person"`
	GoalType      string    `gorm:"primaryKey;size:16" json:"goal_type"` // gain|loss
	StartDate     string    `gorm:"size:10" json:"start_date"`
	StartWeight   float64   `json:"start_weight"`
	TargetWeight  float64   `json:"target_weight"`
	TargetDate    string    `gorm:"size:10" json:"target_date"`
	KcalAdjust    int       `json:"kcal_adjust"`
	ProteinTarget float64   `json:"protein_target"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Goal) TableName() string { return "goals" }
