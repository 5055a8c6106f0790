package utils

import (
	"errors"
	"math"
)

var ErrImplausibleBody = errors.New("height/weight out of plausible range")

// BMIReport is a body-mass index with its category.
type BMIReport struct {
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

// bmiBands are upper bounds (exclusive) of the WHO adult categories.
var bmiBands = []struct {
	below float64
	label string
}{
	{18.5, "Underweight"},
	{25, "Normal weight"},
	{30, "Overweight"},
	{35, "Obesity class I"},
	{40, "Obesity class II"},
}

// AssessBMI expects height in centimeters and weight in kilograms and
// reports the index rounded to one decimal.
func AssessBMI(heightCm, weightKg float64) (BMIReport, error) {
	if !plausible(heightCm, 50, 250) || !plausible(weightKg, 10, 400) {
		return BMIReport{}, ErrImplausibleBody
	}
	h := heightCm / 100
	bmi := weightKg / (h * h)

	category := "Obesity class III"
	for _, b := range bmiBands {
		if bmi < b.below {
			category = b.label
			break
		}
	}
	return BMIReport{HeightCm: heightCm, WeightKg: weightKg, BMI: round1(bmi), Category: category}, nil
}

func plausible(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}
