package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sushiludps-lang/wellness-app/config"
	"github.com/sushiludps-lang/wellness-app/models"
)

func newTestStore(t *testing.T) *RecordStore {
	t.Helper()
	cfg := &config.Config{DB: config.DBConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")}}
	db, err := config.InitDB(cfg, zap.NewNop())
	require.NoError(t, err)
	return NewRecordStore(db)
}

func fixedClock(date string) func() time.Time {
	t, err := time.Parse("2006-01-02 15:04", date+" 12:30")
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }

func mustProfile(t *testing.T, name string) models.Profile {
	t.Helper()
	p, ok := models.LookupProfile(name)
	require.True(t, ok)
	return p
}

func TestRecordStoreMealsOrdering(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	for _, m := range []models.MealEntry{
		{Person: "Sushil", LogDate: "2024-03-01", MealTime: "08:00", Dish: "poha"},
		{Person: "Sushil", LogDate: "2024-03-02", MealTime: "08:00", Dish: "upma"},
		{Person: "Sushil", LogDate: "2024-03-02", MealTime: "20:00", Dish: "dal_rice"},
		{Person: "Sushil", LogDate: "2024-01-01", MealTime: "08:00", Dish: "old"},
		{Person: "Chido", LogDate: "2024-03-02", MealTime: "09:00", Dish: "idli_sambar"},
	} {
		m := m
		require.NoError(t, s.InsertMeal(ctx, &m))
		assert.NotZero(t, m.ID)
	}

	rows, err := s.LoadMeals(ctx, "Sushil", "2024-02-01")
	require.NoError(t, err)
	var dishes []string
	for _, r := range rows {
		dishes = append(dishes, r.Dish)
	}
	assert.Equal(t, []string{"dal_rice", "upma", "poha"}, dishes)
}

func TestRecordStoreUpsertDailyOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first := &models.DailyCheckin{Person: "Chido", LogDate: "2024-03-01", WeightKg: fptr(70), Mood: iptr(6), PeriodFlow: sptr("Light")}
	require.NoError(t, s.UpsertDaily(ctx, first))

	second := &models.DailyCheckin{Person: "Chido", LogDate: "2024-03-01", SleepHours: fptr(8)}
	require.NoError(t, s.UpsertDaily(ctx, second))

	rows, err := s.LoadDaily(ctx, "Chido", "2024-01-01")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].WeightKg)
	assert.Nil(t, rows[0].Mood)
	assert.Nil(t, rows[0].PeriodFlow)
	require.NotNil(t, rows[0].SleepHours)
	assert.Equal(t, 8.0, *rows[0].SleepHours)

	_, err = s.GetDaily(ctx, "Sushil", "2024-03-01")
	assert.ErrorIs(t, err, ErrCheckinNotFound)
}

func TestRecordStoreLoadDailyAscending(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	for _, d := range []string{"2024-03-03", "2024-03-01", "2024-03-02"} {
		require.NoError(t, s.UpsertDaily(ctx, &models.DailyCheckin{Person: "Sushil", LogDate: d, WeightKg: fptr(48)}))
	}
	rows, err := s.LoadDaily(ctx, "Sushil", "2024-03-02")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-03-02", rows[0].LogDate)
	assert.Equal(t, "2024-03-03", rows[1].LogDate)
}

func TestRecordStoreLatestWeight(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	w, err := s.LatestWeight(ctx, "Sushil")
	require.NoError(t, err)
	assert.Nil(t, w)

	require.NoError(t, s.UpsertDaily(ctx, &models.DailyCheckin{Person: "Sushil", LogDate: "2024-03-01", WeightKg: fptr(48.2)}))
	require.NoError(t, s.UpsertDaily(ctx, &models.DailyCheckin{Person: "Sushil", LogDate: "2024-03-02", WeightKg: fptr(48.6)}))
	require.NoError(t, s.UpsertDaily(ctx, &models.DailyCheckin{Person: "Sushil", LogDate: "2024-03-03", SleepHours: fptr(7)}))

	w, err = s.LatestWeight(ctx, "Sushil")
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, 48.6, *w)
}

func TestRecordStoreGoals(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.GetGoal(ctx, "Sushil", "gain")
	assert.ErrorIs(t, err, ErrGoalNotFound)

	require.NoError(t, s.UpsertGoal(ctx, &models.Goal{Person: "Sushil", GoalType: "gain", StartWeight: 48, TargetWeight: 54, TargetDate: "2024-04-01"}))
	require.NoError(t, s.UpsertGoal(ctx, &models.Goal{Person: "Sushil", GoalType: "gain", StartWeight: 49, TargetWeight: 55, TargetDate: "2024-05-01"}))

	g, err := s.GetGoal(ctx, "Sushil", "gain")
	require.NoError(t, err)
	assert.Equal(t, 49.0, g.StartWeight)
	assert.Equal(t, "2024-05-01", g.TargetDate)

	_, err = s.GetGoal(ctx, "Sushil", "loss")
	assert.ErrorIs(t, err, ErrGoalNotFound)
}
