package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/sushiludps-lang/wellness-app/models"
	"github.com/sushiludps-lang/wellness-app/utils"
)

const recentMealsLimit = 20

var ErrNoWeight = errors.New("no weight logged yet")

type HistoryStore interface {
	LoadMeals(ctx context.Context, person, since string) ([]models.MealEntry, error)
	LoadDaily(ctx context.Context, person, since string) ([]models.DailyCheckin, error)
	LatestWeight(ctx context.Context, person string) (*float64, error)
}

type GoalReader interface {
	GetGoal(ctx context.Context, p models.Profile, goalType string) (*GoalView, error)
}

type AnalyticsService struct {
	store     HistoryStore
	goals     GoalReader
	mealDays  int
	dailyDays int
	now       func() time.Time
}

func NewAnalyticsService(store HistoryStore, goals GoalReader, mealDays, dailyDays int) *AnalyticsService {
	return &AnalyticsService{store: store, goals: goals, mealDays: mealDays, dailyDays: dailyDays, now: time.Now}
}

// ---------- Dashboard ----------

// DayRow merges one day's meal totals with its check-in.
type DayRow struct {
	Date      string  `json:"log_date"`
	MealCount int     `json:"meal_count"`
	Kcal      float64 `json:"kcal"`
	ProteinG  float64 `json:"protein_g"`
	CarbsG    float64 `json:"carbs_g"`
	FatG      float64 `json:"fat_g"`
	Reflux    float64 `json:"reflux_load"`

	WeightKg     *float64 `json:"weight_kg"`
	SleepHours   *float64 `json:"sleep_hours"`
	ExerciseMin  *float64 `json:"exercise_min"`
	Mood         *int     `json:"mood"`
	Stress       *int     `json:"stress"`
	GerdSymptom  *int     `json:"gerd_symptom,omitempty"`
	GlucoseMgdl  *float64 `json:"glucose_mgdl,omitempty"`
	InsulinUnits *float64 `json:"insulin_units,omitempty"`
	PeriodDay    *int     `json:"period_day,omitempty"`

	Wellness float64 `json:"wellness_index"`
}

type MacroDay struct {
	Date     string  `json:"log_date"`
	CarbsG   float64 `json:"carbs_g"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
}

type Dashboard struct {
	Profile      models.Profile     `json:"profile"`
	Days         []DayRow           `json:"days"`
	Week         *utils.WeekSummary `json:"week"`
	MacrosPerDay []MacroDay         `json:"macros_per_day"`
	RecentMeals  []models.MealEntry `json:"recent_meals"`
	Goal         *GoalView          `json:"goal"`
	LatestWeight *float64           `json:"latest_weight_kg"`
}

func (s *AnalyticsService) Dashboard(ctx context.Context, p models.Profile) (*Dashboard, error) {
	now := s.now()
	meals, err := s.store.LoadMeals(ctx, p.Name, sinceDate(now, s.mealDays))
	if err != nil {
		return nil, err
	}
	daily, err := s.store.LoadDaily(ctx, p.Name, sinceDate(now, s.dailyDays))
	if err != nil {
		return nil, err
	}

	days := MergeDays(meals, daily)
	out := &Dashboard{
		Profile:      p,
		Days:         days,
		Week:         utils.SummarizeWeek(dayRecords(days)),
		MacrosPerDay: macrosPerDay(days),
		RecentMeals:  meals[:min(len(meals), recentMealsLimit)],
	}

	if out.Goal, err = s.goals.GetGoal(ctx, p, p.GoalType); err != nil {
		return nil, err
	}
	if out.LatestWeight, err = s.store.LatestWeight(ctx, p.Name); err != nil {
		return nil, err
	}
	return out, nil
}

// Week is the trailing weekly summary alone; nil means not enough data.
func (s *AnalyticsService) Week(ctx context.Context, p models.Profile) (*utils.WeekSummary, error) {
	now := s.now()
	meals, err := s.store.LoadMeals(ctx, p.Name, sinceDate(now, s.mealDays))
	if err != nil {
		return nil, err
	}
	daily, err := s.store.LoadDaily(ctx, p.Name, sinceDate(now, s.dailyDays))
	if err != nil {
		return nil, err
	}
	return utils.SummarizeWeek(dayRecords(MergeDays(meals, daily))), nil
}

// BMI uses the most recent logged weight.
func (s *AnalyticsService) BMI(ctx context.Context, p models.Profile, heightCm float64) (*utils.BMIReport, error) {
	w, err := s.store.LatestWeight(ctx, p.Name)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNoWeight
	}
	r, err := utils.AssessBMI(heightCm, *w)
	if err != nil {
		return nil, invalidf("%v", err)
	}
	return &r, nil
}

// ---------- internals ----------

// MergeDays outer-joins meal totals and check-ins by date, ascending.
func MergeDays(meals []models.MealEntry, daily []models.DailyCheckin) []DayRow {
	idx := map[string]*DayRow{}
	row := func(date string) *DayRow {
		r, ok := idx[date]
		if !ok {
			r = &DayRow{Date: date}
			idx[date] = r
		}
		return r
	}

	for _, m := range meals {
		r := row(m.LogDate)
		r.MealCount++
		r.Kcal += m.Kcal
		r.ProteinG += m.ProteinG
		r.CarbsG += m.CarbsG
		r.FatG += m.FatG
		r.Reflux += m.Reflux
	}
	for _, d := range daily {
		r := row(d.LogDate)
		r.WeightKg = d.WeightKg
		r.SleepHours = d.SleepHours
		r.ExerciseMin = d.ExerciseMin
		r.Mood = d.Mood
		r.Stress = d.Stress
		r.GerdSymptom = d.GerdSymptom
		r.GlucoseMgdl = d.GlucoseMgdl
		r.InsulinUnits = d.InsulinUnits
		r.PeriodDay = d.PeriodDay
	}

	out := make([]DayRow, 0, len(idx))
	for _, r := range idx {
		r.Kcal = round2(r.Kcal)
		r.ProteinG = round2(r.ProteinG)
		r.CarbsG = round2(r.CarbsG)
		r.FatG = round2(r.FatG)
		r.Reflux = round2(r.Reflux)
		r.Wellness = utils.WellnessIndex(
			r.Kcal, r.ProteinG,
			valueOr(r.SleepHours), valueOr(r.ExerciseMin), float64(intOr(r.Stress)),
		)
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// dayRecords feeds merged days to the weekly summary. Protein counts only on days with meals.
func dayRecords(days []DayRow) []utils.DayRecord {
	out := make([]utils.DayRecord, 0, len(days))
	for _, d := range days {
		rec := utils.DayRecord{Date: d.Date, Weight: d.WeightKg}
		w := d.Wellness
		rec.Wellness = &w
		if d.MealCount > 0 {
			p := d.ProteinG
			rec.Protein = &p
		}
		out = append(out, rec)
	}
	return out
}

func macrosPerDay(days []DayRow) []MacroDay {
	out := []MacroDay{}
	for _, d := range days {
		if d.MealCount == 0 {
			continue
		}
		out = append(out, MacroDay{Date: d.Date, CarbsG: d.CarbsG, ProteinG: d.ProteinG, FatG: d.FatG})
	}
	return out
}

func valueOr(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOr(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
