package habit_test

import (
	"testing"
	"time"

	"github.com/anhvtran/perftrack"
	"github.com/anhvtran/perftrack/habit"
)

func TestMonthDays(t *testing.T) {
	days := habit.MonthDays(2024, time.February)

	if len(days) != 29 {
		t.Fatalf("expected 29 days in leap February, got %d", len(days))
	}
	if days[0] != "2024-02-01" || days[28] != "2024-02-29" {
		t.Errorf("unexpected boundary days %s..%s", days[0], days[len(days)-1])
	}
}

func TestMonthWeeks_Coverage(t *testing.T) {
	tests := []struct {
		year      int
		month     time.Month
		wantWeeks int
	}{
		{2024, time.March, 5},    // starts Friday, ends Sunday
		{2021, time.February, 4}, // starts Monday, exactly 4 weeks
		{2021, time.May, 6},      // starts Saturday, 31 days spans 6 calendar weeks
		{2026, time.August, 6},   // starts Saturday
		{2024, time.April, 5},
	}

	for _, tc := range tests {
		weeks := habit.MonthWeeks(tc.year, tc.month)
		if len(weeks) != tc.wantWeeks {
			t.Errorf("%v %d: expected %d weeks, got %d", tc.month, tc.year, tc.wantWeeks, len(weeks))
		}

		// union of week days must equal the month's days, in order,
		// with no gaps or overlaps
		var union []perftrack.Date
		for _, w := range weeks {
			if len(w.Days) == 0 || len(w.Days) > 7 {
				t.Errorf("%v %d week %d: %d days", tc.month, tc.year, w.Number, len(w.Days))
			}
			if w.Start.Weekday() != time.Monday {
				t.Errorf("%v %d week %d: starts %v", tc.month, tc.year, w.Number, w.Start.Weekday())
			}
			union = append(union, w.Days...)
		}

		monthDays := habit.MonthDays(tc.year, tc.month)
		if len(union) != len(monthDays) {
			t.Fatalf("%v %d: expected %d days in union, got %d", tc.month, tc.year, len(monthDays), len(union))
		}
		for i := range monthDays {
			if union[i] != monthDays[i] {
				t.Errorf("%v %d day %d: expected %s, got %s", tc.month, tc.year, i, monthDays[i], union[i])
			}
		}
	}
}

func TestMonthWeeks_ClipsToMonth(t *testing.T) {
	// March 2024 starts on a Friday
	weeks := habit.MonthWeeks(2024, time.March)

	first := weeks[0]
	if len(first.Days) != 3 {
		t.Errorf("expected first week clipped to 3 days, got %d", len(first.Days))
	}
	if first.Days[0] != "2024-03-01" {
		t.Errorf("expected first day 2024-03-01, got %s", first.Days[0])
	}
	if perftrack.DateOf(first.Start) != "2024-02-26" {
		t.Errorf("expected calendar week start 2024-02-26, got %v", first.Start)
	}

	last := weeks[len(weeks)-1]
	if last.Days[len(last.Days)-1] != "2024-03-31" {
		t.Errorf("expected last day 2024-03-31, got %s", last.Days[len(last.Days)-1])
	}
}
