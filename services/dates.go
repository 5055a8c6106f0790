package services

import (
	"time"

	"github.com/sushiludps-lang/wellness-app/utils"
)

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(utils.DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// sinceDate is the first calendar day of a trailing window of days.
func sinceDate(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format(utils.DateLayout)
}

func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
