package bot

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sushiludps-lang/wellness-app/services"
	"github.com/sushiludps-lang/wellness-app/utils"
)

var errUsage = errors.New("usage")

// parseMealArgs reads "/meal <dish> <grams> [HH:MM] [MealType]".
func parseMealArgs(args []string) (services.MealRequest, error) {
	var req services.MealRequest
	if len(args) < 2 {
		return req, errUsage
	}
	req.Dish = strings.ToLower(args[0])
	grams, err := floatArg(args[1])
	if err != nil {
		return req, fmt.Errorf("grams %q is not a number", args[1])
	}
	req.Grams = *grams

	for _, a := range args[2:] {
		switch {
		case strings.Contains(a, ":"):
			req.MealTime = a
		case utils.IsMealType(title(a)):
			req.MealType = title(a)
		default:
			return req, fmt.Errorf("unexpected argument %q", a)
		}
	}
	return req, nil
}

// parseCheckinArgs reads "key=value" pairs; "date" picks the day, the rest
// map onto check-in fields.
func parseCheckinArgs(args []string) (string, services.CheckinRequest, error) {
	var (
		req  services.CheckinRequest
		date string
	)
	if len(args) == 0 {
		return "", req, errUsage
	}
	for _, a := range args {
		key, val, ok := strings.Cut(a, "=")
		if !ok || val == "" {
			return "", req, fmt.Errorf("expected key=value, got %q", a)
		}
		var err error
		switch strings.ToLower(key) {
		case "date":
			date = val
		case "weight":
			req.WeightKg, err = floatArg(val)
		case "sleep":
			req.SleepHours, err = floatArg(val)
		case "exercise":
			req.ExerciseMin, err = floatArg(val)
		case "mood":
			req.Mood, err = intArg(val)
		case "stress":
			req.Stress, err = intArg(val)
		case "gerd":
			req.GerdSymptom, err = intArg(val)
		case "glucose":
			req.GlucoseMgdl, err = floatArg(val)
		case "insulin":
			req.InsulinUnits, err = floatArg(val)
		case "cycle":
			req.PeriodDay, err = intArg(val)
		case "flow":
			f := title(val)
			req.PeriodFlow = &f
		case "symptoms":
			s := strings.ReplaceAll(val, "_", " ")
			req.PeriodSymptoms = &s
		case "notes":
			req.ExtraNotes = strings.ReplaceAll(val, "_", " ")
		default:
			return "", req, fmt.Errorf("unknown field %q", key)
		}
		if err != nil {
			return "", req, fmt.Errorf("%s: %w", key, err)
		}
	}
	return date, req, nil
}

func floatArg(s string) (*float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	return &v, nil
}

func intArg(s string) (*int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a whole number", s)
	}
	return &v, nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}
