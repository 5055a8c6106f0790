package services

import (
	"context"
	"strings"
	"time"

	"github.com/sushiludps-lang/wellness-app/models"
	"github.com/sushiludps-lang/wellness-app/utils"
)

const (
	minServingG = 10
	maxServingG = 2500
)

type MealStore interface {
	InsertMeal(ctx context.Context, m *models.MealEntry) error
	LoadMeals(ctx context.Context, person, since string) ([]models.MealEntry, error)
}

type MealService struct {
	store       MealStore
	historyDays int
	now         func() time.Time
}

func NewMealService(store MealStore, historyDays int) *MealService {
	return &MealService{store: store, historyDays: historyDays, now: time.Now}
}

// MacroOverride carries nutrients taken from an external app instead of the recipe table.
type MacroOverride struct {
	CarbsG   float64 `json:"carbs_g"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	Kcal     float64 `json:"kcal"`
}

type MealRequest struct {
	LogDate  string         `json:"log_date"`  // default today
	MealType string         `json:"meal_type"` // default from meal time
	MealTime string         `json:"meal_time"` // HH:MM, default now
	Dish     string         `json:"dish" binding:"required"`
	Grams    float64        `json:"grams" binding:"required"`
	Notes    string         `json:"notes"`
	Override *MacroOverride `json:"override,omitempty"`
}

type MealPreview struct {
	Dish       string          `json:"dish"`
	Grams      float64         `json:"grams"`
	KnownDish  bool            `json:"known_dish"`
	Overridden bool            `json:"overridden"`
	Macros     utils.Macros    `json:"macros"`
	Warnings   []utils.Warning `json:"warnings"`
}

type LoggedMeal struct {
	Meal     models.MealEntry `json:"meal"`
	Warnings []utils.Warning  `json:"warnings"`
}

// Preview computes what a meal would store without saving it.
// Unknown dishes preview as zero macros.
func (s *MealService) Preview(p models.Profile, req MealRequest) (*MealPreview, error) {
	if err := s.normalize(&req); err != nil {
		return nil, err
	}
	return s.preview(p, req)
}

func (s *MealService) preview(p models.Profile, req MealRequest) (*MealPreview, error) {
	_, known := utils.LookupRecipe(req.Dish)
	out := &MealPreview{Dish: req.Dish, Grams: req.Grams, KnownDish: known, Warnings: []utils.Warning{}}

	if req.Override != nil {
		if !p.Glucose {
			return nil, ErrOverrideNotAllowed
		}
		if err := validateOverride(*req.Override); err != nil {
			return nil, err
		}
		out.Overridden = true
		out.Macros = utils.Macros{
			CarbsG:   req.Override.CarbsG,
			ProteinG: req.Override.ProteinG,
			FatG:     req.Override.FatG,
			Kcal:     req.Override.Kcal,
		}
	} else {
		out.Macros = utils.ComputeMacros(req.Dish, req.Grams)
	}

	if !p.Reflux {
		out.Macros.Reflux = 0
		return out, nil
	}
	out.Warnings = utils.AssessReflux(out.Macros, req.MealTime)
	return out, nil
}

// LogMeal computes and stores one meal. Without an override the dish must be in the catalogue.
func (s *MealService) LogMeal(ctx context.Context, p models.Profile, req MealRequest) (*LoggedMeal, error) {
	if err := s.normalize(&req); err != nil {
		return nil, err
	}
	pv, err := s.preview(p, req)
	if err != nil {
		return nil, err
	}
	if !pv.KnownDish && !pv.Overridden {
		return nil, ErrUnknownDish
	}

	m := models.MealEntry{
		Person:   p.Name,
		LogDate:  req.LogDate,
		MealType: req.MealType,
		MealTime: req.MealTime,
		Dish:     req.Dish,
		Grams:    req.Grams,
		CarbsG:   pv.Macros.CarbsG,
		ProteinG: pv.Macros.ProteinG,
		FatG:     pv.Macros.FatG,
		Kcal:     pv.Macros.Kcal,
		Reflux:   pv.Macros.Reflux,
		Notes:    req.Notes,
	}
	if err := s.store.InsertMeal(ctx, &m); err != nil {
		return nil, err
	}
	return &LoggedMeal{Meal: m, Warnings: pv.Warnings}, nil
}

// ListMeals returns the last days of meals, newest first. days <= 0 uses the configured window.
func (s *MealService) ListMeals(ctx context.Context, p models.Profile, days int) ([]models.MealEntry, error) {
	if days <= 0 {
		days = s.historyDays
	}
	return s.store.LoadMeals(ctx, p.Name, sinceDate(s.now(), days))
}

func (s *MealService) normalize(req *MealRequest) error {
	now := s.now()
	req.Dish = strings.TrimSpace(req.Dish)
	if req.Dish == "" {
		return invalidf("dish is required")
	}
	if outside(req.Grams, minServingG, maxServingG) {
		return invalidf("grams must be between %d and %d", minServingG, maxServingG)
	}

	if req.LogDate == "" {
		req.LogDate = now.Format(utils.DateLayout)
	} else if _, err := parseDate(req.LogDate); err != nil {
		return err
	}

	if req.MealTime == "" {
		req.MealTime = now.Format("15:04")
	} else {
		t, err := time.Parse("15:04", strings.TrimSpace(req.MealTime))
		if err != nil {
			return invalidf("meal_time must be HH:MM")
		}
		req.MealTime = t.Format("15:04")
	}

	if req.MealType == "" {
		req.MealType = utils.MealTypeAt(req.MealTime)
	} else if !utils.IsMealType(req.MealType) {
		return invalidf("meal_type must be one of %s", strings.Join(utils.MealTypes(), ", "))
	}
	return nil
}

func validateOverride(o MacroOverride) error {
	switch {
	case outside(o.CarbsG, 0, 600):
		return invalidf("override carbs_g must be between 0 and 600")
	case outside(o.ProteinG, 0, 300):
		return invalidf("override protein_g must be between 0 and 300")
	case outside(o.FatG, 0, 300):
		return invalidf("override fat_g must be between 0 and 300")
	case outside(o.Kcal, 0, 4000):
		return invalidf("override kcal must be between 0 and 4000")
	}
	return nil
}
