package stats

import (
	"math"
	"time"

	"github.com/anhvtran/perftrack"
)

// DaySummary is a Summary pinned to a specific calendar day.
type DaySummary struct {
	Date perftrack.Date
	Summary
}

// WeekSummary is the weekly rollup plus a per-day sub-breakdown.
type WeekSummary struct {
	Summary
	// Days holds exactly 7 entries in chronological ascending order, one
	// per day from (week end - 6 days) through week end inclusive.
	Days []DaySummary
}

func Daily(activities []perftrack.ActivityLog, ref time.Time) Summary {
	start, end := Range(Day, ref)
	return Aggregate(activities, start, end)
}

func Weekly(activities []perftrack.ActivityLog, ref time.Time) WeekSummary {
	start, end := Range(Week, ref)
	w := WeekSummary{Summary: Aggregate(activities, start, end)}
	for i := range 7 {
		day := end.AddDate(0, 0, i-6)
		w.Days = append(w.Days, DaySummary{
			Date:    perftrack.DateOf(day),
			Summary: Daily(activities, day),
		})
	}
	return w
}

func Monthly(activities []perftrack.ActivityLog, ref time.Time) Summary {
	start, end := Range(Month, ref)
	return Aggregate(activities, start, end)
}

func Quarterly(activities []perftrack.ActivityLog, ref time.Time) Summary {
	start, end := Range(Quarter, ref)
	return Aggregate(activities, start, end)
}

// CompletionRate returns the rounded percentage of tasks marked done.
// Zero tasks yields 0.
func CompletionRate(tasks []perftrack.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	var completed int
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return Percent(completed, len(tasks))
}

// Percent computes round(part/total*100), or 0 when total is 0.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
