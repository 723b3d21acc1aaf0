package stats

import (
	"time"

	"github.com/anhvtran/perftrack"
)

// CategoryTotal is one entry of a per-category duration breakdown.
type CategoryTotal struct {
	Category string
	Minutes  int
}

// Summary is the rollup of the activities falling within a bucket range.
type Summary struct {
	TotalMinutes int
	// TotalHours is TotalMinutes / 60, unrounded. Rounding is a
	// presentation concern.
	TotalHours    float64
	ActivityCount int
	// Categories holds summed minutes per category name in first-seen
	// order. Only categories present in the filtered set appear.
	Categories []CategoryTotal
}

// Aggregate filters activities whose calendar date lies within [start, end]
// inclusive and reduces them. An empty filtered set yields a zero Summary.
func Aggregate(activities []perftrack.ActivityLog, start, end time.Time) Summary {
	startDate := perftrack.DateOf(start)
	endDate := perftrack.DateOf(end)

	var s Summary
	idx := make(map[string]int)
	for _, a := range activities {
		if !a.Date.Between(startDate, endDate) {
			continue
		}
		s.TotalMinutes += a.Duration
		s.ActivityCount++
		if i, ok := idx[a.Category]; ok {
			s.Categories[i].Minutes += a.Duration
		} else {
			idx[a.Category] = len(s.Categories)
			s.Categories = append(s.Categories, CategoryTotal{Category: a.Category, Minutes: a.Duration})
		}
	}
	s.TotalHours = float64(s.TotalMinutes) / 60
	return s
}
