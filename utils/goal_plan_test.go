package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlanGoalLoss(t *testing.T) {
	today := time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)
	p := PlanGoal(70, 65, today.AddDate(0, 0, 10), today)
	assert.Equal(t, 10, p.DaysLeft)
	assert.Equal(t, -5.0, p.TotalChangeKg)
	assert.Equal(t, -0.5, p.PerDayChangeKg)
}

func TestPlanGoalPastDeadline(t *testing.T) {
	today := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, target := range []time.Time{today, today.AddDate(0, 0, -3)} {
		p := PlanGoal(48, 54, target, today)
		assert.Equal(t, 1, p.DaysLeft)
		assert.Equal(t, 6.0, p.PerDayChangeKg)
	}
}

func TestPlanGoalIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	target := time.Date(2024, 3, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, PlanGoal(60, 61, target, today).DaysLeft)
	assert.Equal(t, 31, DaysBetween(today, target.AddDate(0, 0, 30)))
}

func TestProteinTarget(t *testing.T) {
	assert.Equal(t, 86.4, ProteinTarget(48, GoalGain))
	assert.Equal(t, 112.0, ProteinTarget(70, GoalLoss))
	assert.Equal(t, 90.0, ProteinTarget(60, "maintain"))
}
