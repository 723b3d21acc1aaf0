package habit_test

import (
	"testing"

	"github.com/anhvtran/perftrack"
	"github.com/anhvtran/perftrack/habit"
)

func activity(id, taskID string, date perftrack.Date, minutes int) perftrack.ActivityLog {
	return perftrack.ActivityLog{
		ID:       id,
		TaskID:   taskID,
		Date:     date,
		Duration: minutes,
	}
}

var testTasks = []perftrack.Task{
	{ID: "t1", Name: "Morning run", Category: "Gym"},
	{ID: "t2", Name: "Read a chapter", Category: "Reading Book"},
}

func TestNewTracker_DerivesFromLog(t *testing.T) {
	activities := []perftrack.ActivityLog{
		activity("a1", "t1", "2024-03-04", 90),
		activity("a2", "t1", "2024-03-04", 30), // duplicate pair, collapses
		activity("a3", "t2", "2024-03-05", 45),
	}

	tracker := habit.NewTracker(activities)

	if !tracker.IsCompleted("t1", "2024-03-04") {
		t.Error("expected t1 completed on 2024-03-04")
	}
	if !tracker.IsCompleted("t2", "2024-03-05") {
		t.Error("expected t2 completed on 2024-03-05")
	}
	if tracker.IsCompleted("t1", "2024-03-05") {
		t.Error("expected t1 not completed on 2024-03-05")
	}
	if got := tracker.CompletedOn("2024-03-04"); got != 1 {
		t.Errorf("expected duplicates to collapse to 1 completion, got %d", got)
	}
}

func TestToggle_CreatesSyntheticActivity(t *testing.T) {
	tracker := habit.NewTracker(nil)

	updated, completed := tracker.Toggle("t1", "2024-03-04", testTasks, nil)

	if !completed {
		t.Error("expected completed state true")
	}
	if len(updated) != 1 {
		t.Fatalf("expected exactly one new activity, got %d", len(updated))
	}
	a := updated[0]
	if a.TaskID != "t1" || a.Date != "2024-03-04" {
		t.Errorf("unexpected activity %+v", a)
	}
	if a.Duration != habit.DefaultDuration {
		t.Errorf("expected duration %d, got %d", habit.DefaultDuration, a.Duration)
	}
	if a.Notes != habit.CompletionNote {
		t.Errorf("expected note %q, got %q", habit.CompletionNote, a.Notes)
	}
	if a.TaskName != "Morning run" || a.Category != "Gym" {
		t.Errorf("expected task snapshot, got name=%q category=%q", a.TaskName, a.Category)
	}
	if a.ID == "" {
		t.Error("expected generated id")
	}
}

func TestToggle_Idempotence(t *testing.T) {
	tracker := habit.NewTracker(nil)

	once, completed := tracker.Toggle("t1", "2024-03-04", testTasks, nil)
	if !completed {
		t.Fatal("expected first toggle to complete")
	}

	twice, completed := tracker.Toggle("t1", "2024-03-04", testTasks, once)
	if completed {
		t.Error("expected second toggle to clear completion")
	}
	if len(twice) != 0 {
		t.Errorf("expected activity log back to empty, got %d records", len(twice))
	}
	if tracker.IsCompleted("t1", "2024-03-04") {
		t.Error("expected completion state back to false")
	}
}

func TestToggle_ExistingActivityNotDuplicated(t *testing.T) {
	manual := activity("a1", "t1", "2024-03-04", 90)
	tracker := habit.NewTracker(nil)

	updated, completed := tracker.Toggle("t1", "2024-03-04", testTasks, []perftrack.ActivityLog{manual})

	if !completed {
		t.Error("expected completed state true")
	}
	if len(updated) != 1 {
		t.Errorf("expected no duplicate record, got %d records", len(updated))
	}
	if updated[0].ID != "a1" {
		t.Errorf("expected the manual record to survive, got %+v", updated[0])
	}
}

func TestToggle_OffRemovesAllMatchingActivities(t *testing.T) {
	activities := []perftrack.ActivityLog{
		activity("a1", "t1", "2024-03-04", 90), // manually logged
		activity("a2", "t1", "2024-03-04", 60),
		activity("a3", "t1", "2024-03-05", 30),
		activity("a4", "t2", "2024-03-04", 45),
	}
	tracker := habit.NewTracker(activities)

	updated, completed := tracker.Toggle("t1", "2024-03-04", testTasks, activities)

	if completed {
		t.Error("expected completed state false")
	}
	if len(updated) != 2 {
		t.Fatalf("expected both matching records removed, got %d remaining", len(updated))
	}
	for _, a := range updated {
		if a.TaskID == "t1" && a.Date == "2024-03-04" {
			t.Errorf("expected no t1/2024-03-04 record, found %+v", a)
		}
	}
	// input snapshot untouched
	if len(activities) != 4 {
		t.Errorf("expected input slice unmodified, got %d records", len(activities))
	}
}

func TestToggle_UnknownTaskCreatesOrphan(t *testing.T) {
	tracker := habit.NewTracker(nil)

	updated, completed := tracker.Toggle("ghost", "2024-03-04", testTasks, nil)

	if !completed {
		t.Error("expected completed state true")
	}
	if len(updated) != 1 {
		t.Fatalf("expected orphan activity, got %d records", len(updated))
	}
	if updated[0].TaskName != "" || updated[0].Category != "" {
		t.Errorf("expected empty snapshot for unknown task, got %+v", updated[0])
	}
	if !tracker.IsCompleted("ghost", "2024-03-04") {
		t.Error("expected orphan completion recorded")
	}
}
