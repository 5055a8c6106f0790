package utils

import (
	"sort"
	"time"
)

const weekWindow = 7

// DayRecord is one day of history fed to the weekly summary.
type DayRecord struct {
	Date     string
	Wellness *float64
	Protein  *float64
	Weight   *float64
}

// WeekSummary aggregates the trailing week. Nil fields mean no data.
type WeekSummary struct {
	AvgWellness  *float64 `json:"avg_wellness"`
	AvgProtein   *float64 `json:"avg_protein"`
	WeightChange *float64 `json:"weight_change"`
}

// SummarizeWeek averages the last seven dated records.
// It returns nil when no record carries a parseable date.
func SummarizeWeek(records []DayRecord) *WeekSummary {
	type dated struct {
		at time.Time
		r  DayRecord
	}
	rows := make([]dated, 0, len(records))
	for _, r := range records {
		at, err := time.Parse(DateLayout, r.Date)
		if err != nil {
			continue
		}
		rows = append(rows, dated{at, r})
	}
	if len(rows) == 0 {
		return nil
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].at.Before(rows[j].at) })
	if len(rows) > weekWindow {
		rows = rows[len(rows)-weekWindow:]
	}

	var wellness, protein, weights []float64
	for _, d := range rows {
		if d.r.Wellness != nil {
			wellness = append(wellness, *d.r.Wellness)
		}
		if d.r.Protein != nil {
			protein = append(protein, *d.r.Protein)
		}
		if d.r.Weight != nil {
			weights = append(weights, *d.r.Weight)
		}
	}

	out := &WeekSummary{
		AvgWellness: mean(wellness),
		AvgProtein:  mean(protein),
	}
	if len(weights) >= 2 {
		change := weights[len(weights)-1] - weights[0]
		out.WeightChange = &change
	}
	return out
}

func mean(vs []float64) *float64 {
	if len(vs) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	m := sum / float64(len(vs))
	return &m
}
