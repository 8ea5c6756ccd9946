// Package streak computes the consecutive-day completion streak.
package streak

import (
	"time"

	"github.com/aitbekov/tirlik/internal/models"
)

// Calculate returns the number of consecutive calendar days, counted backward
// from today, with at least one completion of any kind. Today itself being
// empty does not break the streak: a run ending yesterday still counts until
// a day is actually missed.
func Calculate(completions []*models.CompletionLog) int {
	return CalculateAt(completions, time.Now())
}

// CalculateAt is Calculate with an explicit "now", for tests and for views
// of past days. Multiple completions on one day count once; order and
// task/room mix are irrelevant.
func CalculateAt(completions []*models.CompletionLog, now time.Time) int {
	if len(completions) == 0 {
		return 0
	}

	completed := Dates(completions)

	streak := 0
	day := now
	if _, ok := completed[day.Format(models.DateLayout)]; ok {
		streak = 1
	}

	// Walk backward one day at a time until the first gap. Terminates after
	// at most len(completed)+1 steps: every hit consumes a distinct date.
	for {
		day = day.AddDate(0, 0, -1)
		if _, ok := completed[day.Format(models.DateLayout)]; !ok {
			return streak
		}
		streak++
	}
}

// Dates returns the set of distinct calendar days present in completions.
func Dates(completions []*models.CompletionLog) map[string]struct{} {
	dates := make(map[string]struct{}, len(completions))
	for _, c := range completions {
		dates[c.Date] = struct{}{}
	}
	return dates
}
