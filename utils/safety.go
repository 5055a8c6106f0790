package utils

import (
	"fmt"
	"math"
)

// WarningSeverity categorizes how serious the flag is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
	High    WarningSeverity = "high"
)

// Warning is a structured finding you can show in the API or the bot.
type Warning struct {
	Code     string          `json:"code"`
	Severity WarningSeverity `json:"severity"`
	Message  string          `json:"message"`
	Metric   string          `json:"metric,omitempty"`
	Value    float64         `json:"value,omitempty"`
	Limit    float64         `json:"limit,omitempty"`
}

// Advisory thresholds for reflux-prone profiles.
const (
	RefluxHighLoad    = 0.25
	RefluxCautionLoad = 0.12
	RefluxFatLimitG   = 30.0
	LateMealCutoff    = "21:00"
)

// AssessReflux flags a serving that is likely to aggravate reflux.
// mealTime is HH:MM; an empty or malformed time skips the late-meal rule.
func AssessReflux(m Macros, mealTime string) []Warning {
	warnings := []Warning{}

	switch {
	case m.Reflux >= RefluxHighLoad:
		warnings = append(warnings, Warning{
			Code:     "reflux_load_high",
			Severity: High,
			Message:  fmt.Sprintf("High reflux load (%.2f). Consider a smaller portion or a milder dish.", m.Reflux),
			Metric:   "reflux_load",
			Value:    round2(m.Reflux),
			Limit:    RefluxHighLoad,
		})
	case m.Reflux >= RefluxCautionLoad:
		warnings = append(warnings, Warning{
			Code:     "reflux_load_moderate",
			Severity: Caution,
			Message:  fmt.Sprintf("Moderate reflux load (%.2f).", m.Reflux),
			Metric:   "reflux_load",
			Value:    round2(m.Reflux),
			Limit:    RefluxCautionLoad,
		})
	}

	if m.FatG >= RefluxFatLimitG {
		warnings = append(warnings, Warning{
			Code:     "fat_high",
			Severity: Caution,
			Message:  fmt.Sprintf("Fatty meal (%.0f g fat) slows digestion and can trigger reflux.", m.FatG),
			Metric:   "fat_g",
			Value:    round2(m.FatG),
			Limit:    RefluxFatLimitG,
		})
	}

	if isClock(mealTime) && mealTime >= LateMealCutoff {
		warnings = append(warnings, Warning{
			Code:     "late_meal",
			Severity: Caution,
			Message:  "Late meal: leave 2-3 hours before lying down.",
			Metric:   "meal_time",
		})
	}

	if len(warnings) == 0 && m.Reflux < 0 {
		warnings = append(warnings, Warning{
			Code:     "reflux_soothing",
			Severity: Info,
			Message:  "Soothing choice for reflux.",
			Metric:   "reflux_load",
			Value:    round2(m.Reflux),
		})
	}

	return warnings
}

// Messages flattens warnings to their user-facing text.
func Messages(ws []Warning) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Message)
	}
	return out
}

// isClock reports whether s looks like a zero-padded HH:MM.
func isClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for i, r := range s {
		if i == 2 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
