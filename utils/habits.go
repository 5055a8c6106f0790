package utils

var defaultHabits = []string{
	"Walk 20+ min",
	"Sunlight 10 min",
	"Protein target met",
	"Stretching 5 min",
	"Water 2L",
	"No late-night snack",
	"Read 10 min",
	"Meditation 5 min",
}

// DefaultHabits returns the standard daily habit checklist.
func DefaultHabits() []string {
	return append([]string(nil), defaultHabits...)
}

// HabitScore is the fraction of tracked habits marked done.
func HabitScore(completed map[string]bool) float64 {
	if len(completed) == 0 {
		return 0
	}
	done := 0
	for _, v := range completed {
		if v {
			done++
		}
	}
	return float64(done) / float64(len(completed))
}
