package stats_test

import (
	"testing"

	"github.com/anhvtran/perftrack"
	"github.com/anhvtran/perftrack/stats"
)

func activity(taskID string, date perftrack.Date, minutes int, category string) perftrack.ActivityLog {
	return perftrack.ActivityLog{
		ID:       taskID + "-" + string(date),
		TaskID:   taskID,
		Date:     date,
		Duration: minutes,
		Category: category,
	}
}

func TestAggregate_FiltersByDate(t *testing.T) {
	activities := []perftrack.ActivityLog{
		activity("t1", "2024-03-03", 30, "Gym"),     // before range
		activity("t1", "2024-03-04", 90, "Gym"),     // start boundary
		activity("t2", "2024-03-07", 45, "Reading"), // inside
		activity("t1", "2024-03-10", 15, "Gym"),     // end boundary
		activity("t2", "2024-03-11", 60, "Reading"), // after range
	}

	got := stats.Aggregate(activities, date(2024, 3, 4), date(2024, 3, 10))

	if got.TotalMinutes != 150 {
		t.Errorf("expected 150 total minutes, got %d", got.TotalMinutes)
	}
	if got.TotalHours != 2.5 {
		t.Errorf("expected 2.5 total hours, got %v", got.TotalHours)
	}
	if got.ActivityCount != 3 {
		t.Errorf("expected 3 activities, got %d", got.ActivityCount)
	}
}

func TestAggregate_EmptySet(t *testing.T) {
	got := stats.Aggregate(nil, date(2024, 3, 4), date(2024, 3, 10))

	if got.TotalMinutes != 0 || got.TotalHours != 0 || got.ActivityCount != 0 {
		t.Errorf("expected zero summary, got %+v", got)
	}
	if len(got.Categories) != 0 {
		t.Errorf("expected no categories, got %v", got.Categories)
	}
}

func TestAggregate_CategoryBreakdownFirstSeenOrder(t *testing.T) {
	activities := []perftrack.ActivityLog{
		activity("t1", "2024-03-04", 30, "Reading"),
		activity("t2", "2024-03-04", 60, "Gym"),
		activity("t1", "2024-03-05", 15, "Reading"),
	}

	got := stats.Aggregate(activities, date(2024, 3, 4), date(2024, 3, 10))

	want := []stats.CategoryTotal{
		{Category: "Reading", Minutes: 45},
		{Category: "Gym", Minutes: 60},
	}
	if len(got.Categories) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got.Categories))
	}
	for i := range want {
		if got.Categories[i] != want[i] {
			t.Errorf("category %d: expected %+v, got %+v", i, want[i], got.Categories[i])
		}
	}
}

func TestAggregate_OutsideRangeContributesZero(t *testing.T) {
	activities := []perftrack.ActivityLog{
		activity("t1", "2024-01-01", 500, "Gym"),
		activity("t1", "2024-12-31", 500, "Gym"),
	}

	got := stats.Aggregate(activities, date(2024, 6, 1), date(2024, 6, 30))
	if got.TotalMinutes != 0 {
		t.Errorf("expected 0 minutes, got %d", got.TotalMinutes)
	}
}
