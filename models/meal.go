package models

import "time"

// MealEntry is one logged serving. Entries are append-only.
type MealEntry struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Person   string  `gorm:"size:64;not null;index:idx_logs_person_date" json:"person"`
	LogDate  string  `gorm:"size:10;not null;index:idx_logs_person_date" json:"log_date"` // YYYY-MM-DD
	MealType string  `gorm:"size:16" json:"meal_type"`                                    // Breakfast|Lunch|Dinner|Snacks
	MealTime string  `gorm:"size:5" json:"meal_time"`                                     // HH:MM
	Dish     string  `json:"dish"`
	Grams    float64 `json:"grams"`

	// nutrition snapshot at save time
	CarbsG   float64 `gorm:"column:carbs_g" json:"carbs_g"`
	ProteinG float64 `gorm:"column:protein_g" json:"protein_g"`
	FatG     float64 `gorm:"column:fat_g" json:"fat_g"`
	Kcal     float64 `json:"kcal"`
	Reflux   float64 `gorm:"column:gerd" json:"reflux_load"`

	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func (MealEntry) TableName() string { return "logs" }
