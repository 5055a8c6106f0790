package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushiludps-lang/wellness-app/models"
	"github.com/sushiludps-lang/wellness-app/utils"
)

func TestMergeDaysOuterJoin(t *testing.T) {
	meals := []models.MealEntry{
		{LogDate: "2024-03-02", Kcal: 500, ProteinG: 30, CarbsG: 60, FatG: 10, Reflux: 0.1},
		{LogDate: "2024-03-02", Kcal: 700, ProteinG: 40, CarbsG: 80, FatG: 20, Reflux: 0.2},
		{LogDate: "2024-03-01", Kcal: 300, ProteinG: 10},
	}
	daily := []models.DailyCheckin{
		{LogDate: "2024-03-02", SleepHours: fptr(7.5), ExerciseMin: fptr(30), Stress: iptr(4), WeightKg: fptr(48)},
		{LogDate: "2024-03-03", WeightKg: fptr(48.4)},
	}

	days := MergeDays(meals, daily)
	require.Len(t, days, 3)
	assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-03"}, []string{days[0].Date, days[1].Date, days[2].Date})

	d := days[1]
	assert.Equal(t, 2, d.MealCount)
	assert.Equal(t, 1200.0, d.Kcal)
	assert.Equal(t, 70.0, d.ProteinG)
	assert.Equal(t, 0.3, d.Reflux)
	assert.Equal(t, utils.WellnessIndex(1200, 70, 7.5, 30, 4), d.Wellness)

	// check-in only: nutrition zero, no sleep, stress treated as 0
	assert.Equal(t, 0, days[2].MealCount)
	assert.Equal(t, utils.WellnessIndex(0, 0, 0, 0, 0), days[2].Wellness)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	clock := fixedClock("2024-03-10")

	goals := NewGoalService(store)
	goals.now = clock
	svc := NewAnalyticsService(store, goals, 60, 90)
	svc.now = clock
	p := mustProfile(t, "Sushil")

	for i, date := range []string{"2024-03-08", "2024-03-09", "2024-03-10"} {
		require.NoError(t, store.InsertMeal(ctx, &models.MealEntry{Person: p.Name, LogDate: date, MealTime: "09:00", Dish: "poha", Kcal: 400, ProteinG: 20}))
		require.NoError(t, store.UpsertDaily(ctx, &models.DailyCheckin{Person: p.Name, LogDate: date, WeightKg: fptr(48 + float64(i)*0.5), SleepHours: fptr(7)}))
	}
	for i := 0; i < 25; i++ {
		require.NoError(t, store.InsertMeal(ctx, &models.MealEntry{Person: p.Name, LogDate: "2024-03-07", MealTime: "13:00", Dish: "dal_rice", Kcal: 10}))
	}

	dash, err := svc.Dashboard(ctx, p)
	require.NoError(t, err)
	assert.Len(t, dash.Days, 4)
	assert.Len(t, dash.RecentMeals, recentMealsLimit)
	assert.Equal(t, "2024-03-10", dash.RecentMeals[0].LogDate)
	assert.Len(t, dash.MacrosPerDay, 4)
	require.NotNil(t, dash.Week)
	require.NotNil(t, dash.Week.WeightChange)
	assert.InDelta(t, 1.0, *dash.Week.WeightChange, 1e-9)
	require.NotNil(t, dash.Goal)
	assert.False(t, dash.Goal.Saved)
	require.NotNil(t, dash.LatestWeight)
	assert.Equal(t, 49.0, *dash.LatestWeight)

	week, err := svc.Week(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, dash.Week, week)
}

func TestWeekWithoutData(t *testing.T) {
	store := newTestStore(t)
	svc := NewAnalyticsService(store, NewGoalService(store), 60, 90)
	week, err := svc.Week(context.Background(), mustProfile(t, "Chido"))
	require.NoError(t, err)
	assert.Nil(t, week)
}

func TestBMI(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewAnalyticsService(store, NewGoalService(store), 60, 90)
	p := mustProfile(t, "Sushil")

	_, err := svc.BMI(ctx, p, 170)
	assert.ErrorIs(t, err, ErrNoWeight)

	require.NoError(t, store.UpsertDaily(ctx, &models.DailyCheckin{Person: p.Name, LogDate: "2024-03-01", WeightKg: fptr(65)}))
	r, err := svc.BMI(ctx, p, 170)
	require.NoError(t, err)
	assert.Equal(t, 22.5, r.BMI)

	_, err = svc.BMI(ctx, p, 20)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHabits(t *testing.T) {
	ctx := context.Background()
	svc := NewHabitService(newTestStore(t), 30)
	svc.now = fixedClock("2024-03-10")
	p := mustProfile(t, "Chido")

	h, err := svc.SaveHabits(ctx, p, "", map[string]bool{"Water 2L": true, "Read 10 min": false, " ": true})
	require.NoError(t, err)
	assert.Equal(t, 0.5, h.Score)

	_, err = svc.SaveHabits(ctx, p, "2024-03-10", map[string]bool{"Water 2L": true})
	require.NoError(t, err)

	rows, err := svc.ListHabits(ctx, p, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1.0, rows[0].Score)
	assert.Equal(t, map[string]bool{"Water 2L": true}, rows[0].Completed.Data())

	_, err = svc.SaveHabits(ctx, p, "tomorrow", nil)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
