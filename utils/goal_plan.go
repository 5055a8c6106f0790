package utils

import (
	"math"
	"time"
)

// Goal types.
const (
	GoalGain = "gain"
	GoalLoss = "loss"
)

const DateLayout = "2006-01-02"

// GoalPlan is the pacing required to reach a target weight by a deadline.
type GoalPlan struct {
	DaysLeft       int     `json:"days_left"`
	TotalChangeKg  float64 `json:"total_change_kg"`
	PerDayChangeKg float64 `json:"per_day_change_kg"`
}

// PlanGoal computes the daily rate of change from start to target weight.
// A deadline on or before today counts as one day left.
func PlanGoal(startKg, targetKg float64, targetDate, today time.Time) GoalPlan {
	days := DaysBetween(today, targetDate)
	if days < 1 {
		days = 1
	}
	total := targetKg - startKg
	return GoalPlan{
		DaysLeft:       days,
		TotalChangeKg:  total,
		PerDayChangeKg: total / float64(days),
	}
}

// ProteinTarget returns grams of protein per day for a body weight and goal type.
func ProteinTarget(weightKg float64, goalType string) float64 {
	perKg := 1.5
	switch goalType {
	case GoalGain:
		perKg = 1.8
	case GoalLoss:
		perKg = 1.6
	}
	return round1(weightKg * perKg)
}

// DaysBetween counts calendar days from a to b, ignoring time of day.
func DaysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Round(db.Sub(da).Hours() / 24))
}
