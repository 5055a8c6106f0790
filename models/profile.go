package models

// Profile describes what a person tracks and their goal defaults.
// Profiles are built in; there is no account table.
type Profile struct {
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Tag      string `json:"tag"`

	Reflux  bool `json:"reflux"`  // reflux load on meals, symptom score on check-ins
	Glucose bool `json:"glucose"` // glucose + insulin on check-ins, macro override on meals
	Period  bool `json:"period"`  // cycle day, flow and symptoms on check-ins

	GoalType      string  `json:"goal_type"`
	StartWeight   float64 `json:"default_start_weight"`
	TargetWeight  float64 `json:"default_target_weight"`
	GoalDays      int     `json:"default_goal_days"`
	DefaultWeight float64 `json:"default_weight"`
}

// Goal defaults shared by every profile.
const (
	DefaultProteinTarget = 110.0
	GainKcalAdjust       = 300
	LossKcalAdjust       = -300
)

var profiles = []Profile{
	{
		Name:          "Sushil",
		Subtitle:      "Weight gain + GERD-aware tracking + protein planning",
		Tag:           "GAIN + GERD",
		Reflux:        true,
		GoalType:      "gain",
		StartWeight:   48,
		TargetWeight:  54,
		GoalDays:      30,
		DefaultWeight: 48,
	},
	{
		Name:          "Chido",
		Subtitle:      "Weight loss + wellness tracking + period tracking",
		Tag:           "LOSS",
		Period:        true,
		GoalType:      "loss",
		StartWeight:   70,
		TargetWeight:  65,
		GoalDays:      45,
		DefaultWeight: 55,
	},
	{
		Name:          "Stupid",
		Subtitle:      "Type 1 diabetes tracker: meals, glucose, insulin logging + weight gain goal",
		Tag:           "T1D + GAIN",
		Glucose:       true,
		Period:        true,
		GoalType:      "gain",
		StartWeight:   48,
		TargetWeight:  54,
		GoalDays:      30,
		DefaultWeight: 55,
	},
}

// Profiles lists the built-in profiles in display order.
func Profiles() []Profile {
	return append([]Profile(nil), profiles...)
}

func LookupProfile(name string) (Profile, bool) {
	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// DefaultKcalAdjust is the daily calorie offset suggested for a goal type.
func DefaultKcalAdjust(goalType string) int {
	if goalType == "gain" {
		return GainKcalAdjust
	}
	return LossKcalAdjust
}
