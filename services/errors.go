package services

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrGoalNotFound       = errors.New("goal not found")
	ErrCheckinNotFound    = errors.New("check-in not found")
	ErrOverrideNotAllowed = errors.New("macro override is only available to glucose-tracking profiles")
	ErrUnknownDish        = errors.New("unknown dish")
	ErrInvalidDate        = errors.New("invalid date, use YYYY-MM-DD")
	ErrInvalidInput       = errors.New("invalid input")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// outside reports whether v is NaN, infinite or not within [lo, hi].
func outside(v, lo, hi float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0) || v < lo || v > hi
}

// IsValidation reports whether err should be shown to the caller as a bad request.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrUnknownDish) ||
		errors.Is(err, ErrOverrideNotAllowed)
}
