package services

import (
	"context"
	"strings"
	"time"

	"github.com/sushiludps-lang/wellness-app/models"
	"github.com/sushiludps-lang/wellness-app/utils"

	"gorm.io/datatypes"
)

type HabitStore interface {
	UpsertHabits(ctx context.Context, h *models.HabitLog) error
	LoadHabits(ctx context.Context, person, since string) ([]models.HabitLog, error)
}

type HabitService struct {
	store       HabitStore
	historyDays int
	now         func() time.Time
}

func NewHabitService(store HabitStore, historyDays int) *HabitService {
	return &HabitService{store: store, historyDays: historyDays, now: time.Now}
}

// SaveHabits stores the completion map for a day and scores it.
func (s *HabitService) SaveHabits(ctx context.Context, p models.Profile, date string, completed map[string]bool) (*models.HabitLog, error) {
	if date == "" {
		date = s.now().Format(utils.DateLayout)
	} else if _, err := parseDate(date); err != nil {
		return nil, err
	}

	clean := make(map[string]bool, len(completed))
	for name, done := range completed {
		if name = strings.TrimSpace(name); name != "" {
			clean[name] = done
		}
	}

	h := &models.HabitLog{
		Person:    p.Name,
		LogDate:   date,
		Completed: datatypes.NewJSONType(clean),
		Score:     utils.HabitScore(clean),
	}
	if err := s.store.UpsertHabits(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *HabitService) ListHabits(ctx context.Context, p models.Profile, days int) ([]models.HabitLog, error) {
	if days <= 0 {
		days = s.historyDays
	}
	return s.store.LoadHabits(ctx, p.Name, sinceDate(s.now(), days))
}
