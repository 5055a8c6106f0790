package bot

import (
	"fmt"
	"strings"

	"github.com/sushiludps-lang/wellness-app/models"
	"github.com/sushiludps-lang/wellness-app/services"
	"github.com/sushiludps-lang/wellness-app/utils"
)

func formatMeal(p models.Profile, m *services.LoggedMeal) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Logged %s %gg (%s, %s %s)\n", m.Meal.Dish, m.Meal.Grams, m.Meal.MealType, m.Meal.LogDate, m.Meal.MealTime)
	fmt.Fprintf(&sb, "%g kcal | P %gg | C %gg | F %gg", m.Meal.Kcal, m.Meal.ProteinG, m.Meal.CarbsG, m.Meal.FatG)
	if p.Reflux {
		fmt.Fprintf(&sb, " | reflux %g", m.Meal.Reflux)
	}
	for _, msg := range utils.Messages(m.Warnings) {
		sb.WriteString("\n! " + msg)
	}
	return sb.String()
}

func formatGoal(v *services.GoalView) string {
	g := v.Goal
	state := "default"
	if v.Saved {
		state = "saved"
	}
	return fmt.Sprintf("Goal (%s, %s): %g -> %g kg by %s\n%d days left, %+.2f kg/day\nkcal adjust %+d, protein %g g (suggested %g g)",
		g.GoalType, state, g.StartWeight, g.TargetWeight, g.TargetDate,
		v.Plan.DaysLeft, v.Plan.PerDayChangeKg, g.KcalAdjust, g.ProteinTarget, v.SuggestedProtein)
}

func formatWeek(w *utils.WeekSummary) string {
	if w == nil {
		return "Not enough data yet."
	}
	return fmt.Sprintf("Last 7 days\nwellness: %s\nprotein: %s g/day\nweight change: %s kg",
		orDash(w.AvgWellness), orDash(w.AvgProtein), orDash(w.WeightChange))
}

func formatDay(d services.DayRow) string {
	return fmt.Sprintf("%s: %d meals, %g kcal, P %g / C %g / F %g g, wellness %g",
		d.Date, d.MealCount, d.Kcal, d.ProteinG, d.CarbsG, d.FatG, d.Wellness)
}

func orDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}
