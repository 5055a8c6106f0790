package utils

import "math"

// Sub-score weights of the wellness index. They must sum to 1.
const (
	sleepWeight    = 0.30
	exerciseWeight = 0.20
	stressWeight   = 0.25
	proteinWeight  = 0.15
	kcalWeight     = 0.10
)

// WellnessIndex blends one day's signals into a 0-100 score.
// Every input saturates, so the result never leaves the range.
func WellnessIndex(kcal, proteinG, sleepHours, exerciseMin, stress float64) float64 {
	sleep := clamp(1-math.Abs(sleepHours-7.5)/4, 0, 1)
	exercise := clamp(math.Min(exerciseMin, 60)/60, 0, 1)
	calm := clamp(1-stress/10, 0, 1)
	protein := clamp(math.Min(proteinG, 120)/120, 0, 1)
	energy := clamp(math.Min(kcal, 3200)/3200, 0, 1)

	score := sleepWeight*sleep +
		exerciseWeight*exercise +
		stressWeight*calm +
		proteinWeight*protein +
		kcalWeight*energy
	return round1(100 * score)
}
