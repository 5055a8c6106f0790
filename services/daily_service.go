package services

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/sushiludps-lang/wellness-app/models"
	"github.com/sushiludps-lang/wellness-app/utils"
)

type DailyStore interface {
	UpsertDaily(ctx context.Context, d *models.DailyCheckin) error
	LoadDaily(ctx context.Context, person, since string) ([]models.DailyCheckin, error)
	GetDaily(ctx context.Context, person, date string) (*models.DailyCheckin, error)
}

type DailyService struct {
	store       DailyStore
	historyDays int
	now         func() time.Time
}

func NewDailyService(store DailyStore, historyDays int) *DailyService {
	return &DailyService{store: store, historyDays: historyDays, now: time.Now}
}

// CheckinRequest is one day's metrics. Absent fields are stored as null.
type CheckinRequest struct {
	WeightKg    *float64 `json:"weight_kg"`
	SleepHours  *float64 `json:"sleep_hours"`
	ExerciseMin *float64 `json:"exercise_min"`
	Mood        *int     `json:"mood"`
	Stress      *int     `json:"stress"`

	GerdSymptom    *int     `json:"gerd_symptom"`
	GlucoseMgdl    *float64 `json:"glucose_mgdl"`
	InsulinUnits   *float64 `json:"insulin_units"`
	PeriodDay      *int     `json:"period_day"`
	PeriodFlow     *string  `json:"period_flow"`
	PeriodSymptoms *string  `json:"period_symptoms"`

	ExtraNotes string `json:"extra_notes"`
}

// SaveCheckin upserts the check-in for date, dropping fields the profile does not track.
func (s *DailyService) SaveCheckin(ctx context.Context, p models.Profile, date string, req CheckinRequest) (*models.DailyCheckin, error) {
	if date == "" {
		date = s.now().Format(utils.DateLayout)
	} else if _, err := parseDate(date); err != nil {
		return nil, err
	}

	if !p.Reflux {
		req.GerdSymptom = nil
	}
	if !p.Glucose {
		req.GlucoseMgdl, req.InsulinUnits = nil, nil
	}
	if !p.Period {
		req.PeriodDay, req.PeriodFlow, req.PeriodSymptoms = nil, nil, nil
	}
	if err := validateCheckin(req); err != nil {
		return nil, err
	}

	d := &models.DailyCheckin{
		Person:         p.Name,
		LogDate:        date,
		WeightKg:       req.WeightKg,
		SleepHours:     req.SleepHours,
		ExerciseMin:    req.ExerciseMin,
		Mood:           req.Mood,
		Stress:         req.Stress,
		GerdSymptom:    req.GerdSymptom,
		GlucoseMgdl:    req.GlucoseMgdl,
		InsulinUnits:   req.InsulinUnits,
		PeriodDay:      req.PeriodDay,
		PeriodFlow:     req.PeriodFlow,
		PeriodSymptoms: req.PeriodSymptoms,
		ExtraNotes:     strings.TrimSpace(req.ExtraNotes),
	}
	if err := s.store.UpsertDaily(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DailyService) GetCheckin(ctx context.Context, p models.Profile, date string) (*models.DailyCheckin, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}
	return s.store.GetDaily(ctx, p.Name, date)
}

// ListCheckins returns the last days of check-ins, oldest first.
func (s *DailyService) ListCheckins(ctx context.Context, p models.Profile, days int) ([]models.DailyCheckin, error) {
	if days <= 0 {
		days = s.historyDays
	}
	return s.store.LoadDaily(ctx, p.Name, sinceDate(s.now(), days))
}

func validateCheckin(r CheckinRequest) error {
	type fRange struct {
		name   string
		v      *float64
		lo, hi float64
	}
	for _, c := range []fRange{
		{"weight_kg", r.WeightKg, 25, 200},
		{"sleep_hours", r.SleepHours, 0, 14},
		{"exercise_min", r.ExerciseMin, 0, 600},
		{"glucose_mgdl", r.GlucoseMgdl, 20, 600},
		{"insulin_units", r.InsulinUnits, 0, 200},
	} {
		if c.v != nil && outside(*c.v, c.lo, c.hi) {
			return invalidf("%s must be between %g and %g", c.name, c.lo, c.hi)
		}
	}

	type iRange struct {
		name   string
		v      *int
		lo, hi int
	}
	for _, c := range []iRange{
		{"mood", r.Mood, 0, 10},
		{"stress", r.Stress, 0, 10},
		{"gerd_symptom", r.GerdSymptom, 0, 10},
		{"period_day", r.PeriodDay, 0, 60},
	} {
		if c.v != nil && (*c.v < c.lo || *c.v > c.hi) {
			return invalidf("%s must be between %d and %d", c.name, c.lo, c.hi)
		}
	}

	if r.PeriodFlow != nil && !slices.Contains(models.PeriodFlows, *r.PeriodFlow) {
		return invalidf("period_flow must be one of Spotting, Light, Medium, Heavy or empty")
	}
	return nil
}
