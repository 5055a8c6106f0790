package utils

import "math"

// Reflux load is clamped to this closed range.
const (
	MinRefluxLoad = -0.3
	MaxRefluxLoad = 1.0
)

// Macros is the nutrient total of one serving.
type Macros struct {
	CarbsG   float64 `json:"carbs_g"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	Kcal     float64 `json:"kcal"`
	Reflux   float64 `json:"reflux_load"`
}

// ComputeMacros scales a dish's recipe to the served weight and sums its nutrients.
// Unknown dishes yield zero macros.
func ComputeMacros(dish string, grams float64) Macros {
	return macrosFor(recipes[dish], grams, ingredients)
}

// macrosFor does the actual work against an arbitrary ingredient table.
// The reflux load is weighted by recipe composition and does not depend on grams.
func macrosFor(recipe []Portion, grams float64, table map[string]Nutrients) Macros {
	if len(recipe) == 0 {
		return Macros{}
	}

	refTotal := 0.0
	for _, p := range recipe {
		refTotal += p.Grams
	}
	if refTotal <= 0 {
		refTotal = 1
	}
	scale := grams / refTotal

	var carbs, protein, fat, kcal, reflux float64
	for _, p := range recipe {
		n, ok := table[p.Ingredient]
		if !ok {
			continue
		}
		factor := p.Grams * scale / 100
		carbs += n.Carbs * factor
		protein += n.Protein * factor
		fat += n.Fat * factor
		kcal += n.Kcal * factor
		reflux += n.Reflux * (p.Grams / refTotal)
	}

	return Macros{
		CarbsG:   round1(carbs),
		ProteinG: round1(protein),
		FatG:     round1(fat),
		Kcal:     math.RoundToEven(kcal),
		Reflux:   clamp(reflux, MinRefluxLoad, MaxRefluxLoad),
	}
}

// round1 rounds half to even at one decimal.
func round1(f float64) float64 {
	return math.RoundToEven(f*10) / 10
}

func clamp(f, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, f))
}
