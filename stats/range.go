// Package stats turns a flat activity log into time-bucketed rollups.
package stats

import "time"

// Bucket is a named time-range kind used for aggregation.
type Bucket int

const (
	Day Bucket = iota
	Week
	Month
	Quarter
)

// Range returns the inclusive first and last calendar days of the bucket
// containing ref, at midnight in ref's location. Weeks start Monday.
func Range(b Bucket, ref time.Time) (start, end time.Time) {
	d := dateOnly(ref)
	switch b {
	case Week:
		offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
		start = d.AddDate(0, 0, -offset)
		end = start.AddDate(0, 0, 6)
	case Month:
		start = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
		end = start.AddDate(0, 1, -1)
	case Quarter:
		qm := time.Month((int(d.Month())-1)/3*3 + 1)
		start = time.Date(d.Year(), qm, 1, 0, 0, 0, 0, d.Location())
		end = start.AddDate(0, 3, -1)
	default:
		start, end = d, d
	}
	return start, end
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
