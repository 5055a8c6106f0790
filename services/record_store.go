package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sushiludps-lang/wellness-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordStore persists meals, check-ins, goals and habit logs.
// Every query is scoped to one person.
type RecordStore struct{ db *gorm.DB }

func NewRecordStore(db *gorm.DB) *RecordStore { return &RecordStore{db: db} }

// ---------- meals ----------

func (s *RecordStore) InsertMeal(ctx context.Context, m *models.MealEntry) error {
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("insert meal: %w", err)
	}
	return nil
}

// LoadMeals returns meals on or after since, newest first.
func (s *RecordStore) LoadMeals(ctx context.Context, person, since string) ([]models.MealEntry, error) {
	var rows []models.MealEntry
	if err := s.db.WithContext(ctx).
		Where("person = ? AND log_date >= ?", person, since).
		Order("log_date DESC").Order("meal_time DESC").Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load meals: %w", err)
	}
	return rows, nil
}

// ---------- daily check-ins ----------

var dailyColumns = []string{
	"weight_kg", "sleep_hours", "exercise_min", "mood", "stress",
	"gerd_symptom", "glucose_mgdl", "insulin_units",
	"period_day", "period_flow", "period_symptoms",
	"extra_notes", "updated_at",
}

// UpsertDaily writes the check-in for (person, log_date), replacing every field of an existing row.
func (s *RecordStore) UpsertDaily(ctx context.Context, d *models.DailyCheckin) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "person"}, {Name: "log_date"}},
		DoUpdates: clause.AssignmentColumns(dailyColumns),
	}).Create(d).Error
	if err != nil {
		return fmt.Errorf("upsert daily: %w", err)
	}
	return nil
}

// LoadDaily returns check-ins on or after since, oldest first.
func (s *RecordStore) LoadDaily(ctx context.Context, person, since string) ([]models.DailyCheckin, error) {
	var rows []models.DailyCheckin
	if err := s.db.WithContext(ctx).
		Where("person = ? AND log_date >= ?", person, since).
		Order("log_date ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load daily: %w", err)
	}
	return rows, nil
}

func (s *RecordStore) GetDaily(ctx context.Context, person, date string) (*models.DailyCheckin, error) {
	var d models.DailyCheckin
	err := s.db.WithContext(ctx).Where("person = ? AND log_date = ?", person, date).First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCheckinNotFound
		}
		return nil, fmt.Errorf("get daily: %w", err)
	}
	return &d, nil
}

// LatestWeight is the most recent logged weight, or nil when none was ever logged.
func (s *RecordStore) LatestWeight(ctx context.Context, person string) (*float64, error) {
	var d models.DailyCheckin
	err := s.db.WithContext(ctx).
		Where("person = ? AND weight_kg IS NOT NULL", person).
		Order("log_date DESC").
		First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest weight: %w", err)
	}
	return d.WeightKg, nil
}

// ---------- goals ----------

func (s *RecordStore) UpsertGoal(ctx context.Context, g *models.Goal) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "person"}, {Name: "goal_type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"start_date", "start_weight", "target_weight", "target_date",
			"kcal_adjust", "protein_target", "updated_at",
		}),
	}).Create(g).Error
	if err != nil {
		return fmt.Errorf("upsert goal: %w", err)
	}
	return nil
}

func (s *RecordStore) GetGoal(ctx context.Context, person, goalType string) (*models.Goal, error) {
	var g models.Goal
	err := s.db.WithContext(ctx).
		Where("person = ? AND goal_type = ?", person, goalType).
		First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return &g, nil
}

// ---------- habits ----------

func (s *RecordStore) UpsertHabits(ctx context.Context, h *models.HabitLog) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "person"}, {Name: "log_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "score", "updated_at"}),
	}).Create(h).Error
	if err != nil {
		return fmt.Errorf("upsert habits: %w", err)
	}
	return nil
}

func (s *RecordStore) LoadHabits(ctx context.Context, person, since string) ([]models.HabitLog, error) {
	var rows []models.HabitLog
	if err := s.db.WithContext(ctx).
		Where("person = ? AND log_date >= ?", person, since).
		Order("log_date ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load habits: %w", err)
	}
	return rows, nil
}
