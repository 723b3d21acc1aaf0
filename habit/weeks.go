package habit

import (
	"time"

	"github.com/anhvtran/perftrack"
)

// Week is one Monday-start calendar week of a month, clipped to the month's
// boundaries. The first and last week of a month may hold fewer than 7 days.
type Week struct {
	Number int
	// Start and End are the unclipped Monday and Sunday of the calendar
	// week; Start may precede the month and End may follow it.
	Start time.Time
	End   time.Time
	// Days holds only the days belonging to the month.
	Days []perftrack.Date
}

// maxWeeksPerMonth caps the partition loop. A month spans at most six
// Monday-start calendar weeks (31 days starting on a weekend).
const maxWeeksPerMonth = 6

// MonthDays returns every calendar day of the month in ascending order.
func MonthDays(year int, month time.Month) []perftrack.Date {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	days := make([]perftrack.Date, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, perftrack.DateOf(d))
	}
	return days
}

// MonthWeeks partitions the month's days into calendar weeks. The union of
// all returned Days is exactly the month's calendar days, with no gaps or
// overlaps and no week longer than 7 days.
func MonthWeeks(year int, month time.Month) []Week {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	offset := (int(first.Weekday()) + 6) % 7 // Monday = 0
	weekStart := first.AddDate(0, 0, -offset)

	var weeks []Week
	for number := 1; !weekStart.After(last) && number <= maxWeeksPerMonth; number++ {
		weekEnd := weekStart.AddDate(0, 0, 6)

		from := weekStart
		if from.Before(first) {
			from = first
		}
		to := weekEnd
		if to.After(last) {
			to = last
		}
		var days []perftrack.Date
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			days = append(days, perftrack.DateOf(d))
		}

		weeks = append(weeks, Week{
			Number: number,
			Start:  weekStart,
			End:    weekEnd,
			Days:   days,
		})
		weekStart = weekStart.AddDate(0, 0, 7)
	}
	return weeks
}
