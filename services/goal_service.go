package services

import (
	"context"
	"errors"
	"time"

	"github.com/sushiludps-lang/wellness-app/models"
	"github.com/sushiludps-lang/wellness-app/utils"
)

type GoalStore interface {
	UpsertGoal(ctx context.Context, g *models.Goal) error
	GetGoal(ctx context.Context, person, goalType string) (*models.Goal, error)
}

type GoalService struct {
	store GoalStore
	now   func() time.Time
}

func NewGoalService(store GoalStore) *GoalService {
	return &GoalService{store: store, now: time.Now}
}

type GoalRequest struct {
	StartWeight   float64  `json:"start_weight" binding:"required"`
	TargetWeight  float64  `json:"target_weight" binding:"required"`
	TargetDate    string   `json:"target_date" binding:"required"`
	KcalAdjust    *int     `json:"kcal_adjust"`
	ProteinTarget *float64 `json:"protein_target"`
}

// GoalView is a goal with its pacing. Saved is false when the profile defaults are shown.
type GoalView struct {
	Goal             models.Goal    `json:"goal"`
	Saved            bool           `json:"saved"`
	Plan             utils.GoalPlan `json:"plan"`
	SuggestedProtein float64        `json:"suggested_protein_g"`
}

func (s *GoalService) SaveGoal(ctx context.Context, p models.Profile, goalType string, req GoalRequest) (*GoalView, error) {
	if err := validGoalType(goalType); err != nil {
		return nil, err
	}
	if _, err := parseDate(req.TargetDate); err != nil {
		return nil, err
	}
	for _, w := range []float64{req.StartWeight, req.TargetWeight} {
		if outside(w, 25, 200) {
			return nil, invalidf("weights must be between 25 and 200 kg")
		}
	}

	g := models.Goal{
		Person:        p.Name,
		GoalType:      goalType,
		StartDate:     s.now().Format(utils.DateLayout),
		StartWeight:   req.StartWeight,
		TargetWeight:  req.TargetWeight,
		TargetDate:    req.TargetDate,
		KcalAdjust:    models.DefaultKcalAdjust(goalType),
		ProteinTarget: models.DefaultProteinTarget,
	}
	if req.KcalAdjust != nil {
		if *req.KcalAdjust < -800 || *req.KcalAdjust > 1200 {
			return nil, invalidf("kcal_adjust must be between -800 and 1200")
		}
		g.KcalAdjust = *req.KcalAdjust
	}
	if req.ProteinTarget != nil {
		if outside(*req.ProteinTarget, 20, 250) {
			return nil, invalidf("protein_target must be between 20 and 250")
		}
		g.ProteinTarget = *req.ProteinTarget
	}

	if err := s.store.UpsertGoal(ctx, &g); err != nil {
		return nil, err
	}
	return s.view(g, true), nil
}

// GetGoal returns the saved goal, or the profile defaults when none was saved.
func (s *GoalService) GetGoal(ctx context.Context, p models.Profile, goalType string) (*GoalView, error) {
	if err := validGoalType(goalType); err != nil {
		return nil, err
	}
	g, err := s.store.GetGoal(ctx, p.Name, goalType)
	if err == nil {
		return s.view(*g, true), nil
	}
	if !errors.Is(err, ErrGoalNotFound) {
		return nil, err
	}
	return s.view(s.defaults(p, goalType), false), nil
}

func (s *GoalService) defaults(p models.Profile, goalType string) models.Goal {
	now := today(s.now())
	return models.Goal{
		Person:        p.Name,
		GoalType:      goalType,
		StartDate:     now.Format(utils.DateLayout),
		StartWeight:   p.StartWeight,
		TargetWeight:  p.TargetWeight,
		TargetDate:    now.AddDate(0, 0, p.GoalDays).Format(utils.DateLayout),
		KcalAdjust:    models.DefaultKcalAdjust(goalType),
		ProteinTarget: models.DefaultProteinTarget,
	}
}

func (s *GoalService) view(g models.Goal, saved bool) *GoalView {
	// stored dates were validated on save
	target, _ := time.Parse(utils.DateLayout, g.TargetDate)
	return &GoalView{
		Goal:             g,
		Saved:            saved,
		Plan:             utils.PlanGoal(g.StartWeight, g.TargetWeight, target, s.now()),
		SuggestedProtein: utils.ProteinTarget(g.StartWeight, g.GoalType),
	}
}

// Plan is the stateless planner used by the bare /plan endpoint.
func (s *GoalService) Plan(startKg, targetKg float64, targetDate string) (utils.GoalPlan, error) {
	t, err := parseDate(targetDate)
	if err != nil {
		return utils.GoalPlan{}, err
	}
	return utils.PlanGoal(startKg, targetKg, t, s.now()), nil
}

func validGoalType(goalType string) error {
	if goalType != utils.GoalGain && goalType != utils.GoalLoss {
		return invalidf("goal type must be gain or loss")
	}
	return nil
}
