package services

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoalService(t *testing.T) *GoalService {
	svc := NewGoalService(newTestStore(t))
	svc.now = fixedClock("2024-03-01")
	return svc
}

func TestGetGoalFallsBackToProfileDefaults(t *testing.T) {
	svc := newGoalService(t)
	v, err := svc.GetGoal(context.Background(), mustProfile(t, "Chido"), "loss")
	require.NoError(t, err)
	assert.False(t, v.Saved)
	assert.Equal(t, 70.0, v.Goal.StartWeight)
	assert.Equal(t, 65.0, v.Goal.TargetWeight)
	assert.Equal(t, "2024-04-15", v.Goal.TargetDate)
	assert.Equal(t, -300, v.Goal.KcalAdjust)
	assert.Equal(t, 110.0, v.Goal.ProteinTarget)
	assert.Equal(t, 45, v.Plan.DaysLeft)
	assert.Equal(t, -5.0, v.Plan.TotalChangeKg)
	assert.Equal(t, 112.0, v.SuggestedProtein)
}

func TestSaveGoalUpserts(t *testing.T) {
	ctx := context.Background()
	svc := newGoalService(t)
	p := mustProfile(t, "Sushil")

	v, err := svc.SaveGoal(ctx, p, "gain", GoalRequest{StartWeight: 48, TargetWeight: 54, TargetDate: "2024-03-31"})
	require.NoError(t, err)
	assert.True(t, v.Saved)
	assert.Equal(t, "2024-03-01", v.Goal.StartDate)
	assert.Equal(t, 300, v.Goal.KcalAdjust)
	assert.Equal(t, 30, v.Plan.DaysLeft)
	assert.InDelta(t, 0.2, v.Plan.PerDayChangeKg, 1e-9)

	adj, pt := 500, 120.0
	_, err = svc.SaveGoal(ctx, p, "gain", GoalRequest{StartWeight: 49, TargetWeight: 54, TargetDate: "2024-02-01", KcalAdjust: &adj, ProteinTarget: &pt})
	require.NoError(t, err)

	v, err = svc.GetGoal(ctx, p, "gain")
	require.NoError(t, err)
	assert.True(t, v.Saved)
	assert.Equal(t, 49.0, v.Goal.StartWeight)
	assert.Equal(t, 500, v.Goal.KcalAdjust)
	assert.Equal(t, 120.0, v.Goal.ProteinTarget)
	assert.Equal(t, 1, v.Plan.DaysLeft)
}

func TestSaveGoalValidation(t *testing.T) {
	ctx := context.Background()
	svc := newGoalService(t)
	p := mustProfile(t, "Sushil")
	ok := GoalRequest{StartWeight: 48, TargetWeight: 54, TargetDate: "2024-03-31"}

	_, err := svc.SaveGoal(ctx, p, "bulk", ok)
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad := ok
	bad.TargetDate = "31-03-2024"
	_, err = svc.SaveGoal(ctx, p, "gain", bad)
	assert.ErrorIs(t, err, ErrInvalidDate)

	bad = ok
	bad.TargetWeight = 300
	_, err = svc.SaveGoal(ctx, p, "gain", bad)
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad = ok
	bad.StartWeight = math.NaN()
	_, err = svc.SaveGoal(ctx, p, "gain", bad)
	assert.ErrorIs(t, err, ErrInvalidInput)

	pt := math.NaN()
	bad = ok
	bad.ProteinTarget = &pt
	_, err = svc.SaveGoal(ctx, p, "gain", bad)
	assert.ErrorIs(t, err, ErrInvalidInput)

	adj := 2000
	bad = ok
	bad.KcalAdjust = &adj
	_, err = svc.SaveGoal(ctx, p, "gain", bad)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPlan(t *testing.T) {
	svc := newGoalService(t)
	plan, err := svc.Plan(70, 65, "2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, 10, plan.DaysLeft)
	assert.Equal(t, -0.5, plan.PerDayChangeKg)

	_, err = svc.Plan(70, 65, "soon")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
