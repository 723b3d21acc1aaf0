package habit_test

import (
	"testing"
	"time"

	"github.com/anhvtran/perftrack"
	"github.com/anhvtran/perftrack/habit"
)

func trackerWith(pairs ...[2]string) *habit.Tracker {
	activities := make([]perftrack.ActivityLog, 0, len(pairs))
	for i, p := range pairs {
		activities = append(activities, activity(string(rune('a'+i)), p[0], perftrack.Date(p[1]), 60))
	}
	return habit.NewTracker(activities)
}

func TestWeeklyProgress(t *testing.T) {
	tasks := []perftrack.Task{{ID: "t1", Name: "gym"}, {ID: "t2", Name: "reading"}}
	tr := trackerWith(
		[2]string{"t1", "2024-03-04"},
		[2]string{"t2", "2024-03-04"},
		[2]string{"t1", "2024-03-05"},
	)

	progress := tr.WeeklyProgress(tasks, habit.MonthWeeks(2024, time.March))
	if len(progress) != 5 {
		t.Fatalf("got %d weeks, want 5", len(progress))
	}

	// week 1 covers only March 1-3, no completions
	w1 := progress[0]
	if w1.Total != 6 || w1.Completed != 0 || w1.Left != 6 || w1.Percentage != 0 {
		t.Errorf("week 1 = %+v, want total 6 completed 0", w1)
	}

	w2 := progress[1]
	if w2.Completed != 3 {
		t.Errorf("week 2 completed = %d, want 3", w2.Completed)
	}
	if w2.Total != 14 {
		t.Errorf("week 2 total = %d, want 14", w2.Total)
	}
	if w2.Left != 11 {
		t.Errorf("week 2 left = %d, want 11", w2.Left)
	}
	if w2.Percentage != 21 {
		t.Errorf("week 2 percentage = %d, want 21", w2.Percentage)
	}
	if len(w2.Days) != 7 {
		t.Fatalf("week 2 has %d days, want 7", len(w2.Days))
	}
	if d := w2.Days[0]; d.Date != "2024-03-04" || d.Completed != 2 || d.Total != 2 {
		t.Errorf("week 2 day 0 = %+v, want 2024-03-04 2/2", d)
	}
	if d := w2.Days[1]; d.Date != "2024-03-05" || d.Completed != 1 {
		t.Errorf("week 2 day 1 = %+v, want 2024-03-05 1/2", d)
	}
}

func TestWeeklyProgress_CountsOrphanedTasks(t *testing.T) {
	// the tracked task list no longer contains t2, but its completion
	// still counts toward the week it landed in
	tasks := []perftrack.Task{{ID: "t1", Name: "gym"}}
	tr := trackerWith([2]string{"t2", "2024-03-04"})

	progress := tr.WeeklyProgress(tasks, habit.MonthWeeks(2024, time.March))
	if got := progress[1].Completed; got != 1 {
		t.Errorf("week 2 completed = %d, want 1", got)
	}
}

func TestMonthlyProgress(t *testing.T) {
	tasks := []perftrack.Task{{ID: "t1"}, {ID: "t2"}}
	tr := trackerWith(
		[2]string{"t1", "2024-03-04"},
		[2]string{"t2", "2024-03-04"},
		[2]string{"t1", "2024-03-05"},
		[2]string{"t1", "2024-02-29"}, // previous month, excluded
	)

	got := tr.MonthlyProgress(tasks, 2024, time.March)
	want := habit.Progress{Completed: 3, Left: 59, Total: 62, Percentage: 5}
	if got != want {
		t.Errorf("MonthlyProgress = %+v, want %+v", got, want)
	}
}

func TestTaskProgressFor(t *testing.T) {
	tasks := []perftrack.Task{
		{ID: "t1", Name: "gym", Goal: 20},
		{ID: "t2", Name: "reading", Goal: 5},
	}
	tr := trackerWith(
		[2]string{"t1", "2024-03-04"},
		[2]string{"t1", "2024-03-05"},
		[2]string{"t2", "2024-03-04"},
		[2]string{"t2", "2024-04-01"}, // next month, excluded
	)

	progress := tr.TaskProgressFor(tasks, 2024, time.March)
	if len(progress) != 2 {
		t.Fatalf("got %d entries, want 2", len(progress))
	}
	if p := progress[0]; p.Task.ID != "t1" || p.Completed != 2 || p.Left != 29 || p.Percentage != 6 {
		t.Errorf("t1 progress = %+v, want completed 2 left 29 percentage 6", p)
	}
	if p := progress[1]; p.Completed != 1 || p.Left != 30 {
		t.Errorf("t2 progress = %+v, want completed 1 left 30", p)
	}
}

func TestTaskProgressFor_GoalDoesNotAffectPercentage(t *testing.T) {
	tr := trackerWith(
		[2]string{"t1", "2024-03-04"},
		[2]string{"t2", "2024-03-04"},
	)

	progress := tr.TaskProgressFor([]perftrack.Task{
		{ID: "t1", Goal: 1},
		{ID: "t2", Goal: 31},
	}, 2024, time.March)
	if progress[0].Percentage != progress[1].Percentage {
		t.Errorf("percentages %d and %d differ across goals",
			progress[0].Percentage, progress[1].Percentage)
	}
}

func TestTrend(t *testing.T) {
	tasks := []perftrack.Task{{ID: "t1"}, {ID: "t2"}}
	tr := trackerWith(
		[2]string{"t1", "2024-03-04"},
		[2]string{"t1", "2024-03-05"},
	)

	today := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	points := tr.Trend(tasks, today, 30)
	if len(points) != 30 {
		t.Fatalf("got %d points, want 30", len(points))
	}
	if points[0].Date != "2024-02-15" {
		t.Errorf("first point date = %s, want 2024-02-15", points[0].Date)
	}
	if points[29].Date != "2024-03-15" {
		t.Errorf("last point date = %s, want 2024-03-15", points[29].Date)
	}
	for i := 1; i < len(points); i++ {
		if points[i-1].Date >= points[i].Date {
			t.Fatalf("points not ascending at %d: %s then %s", i, points[i-1].Date, points[i].Date)
		}
	}
	for _, p := range points {
		want := 0
		if p.Date == "2024-03-04" || p.Date == "2024-03-05" {
			want = 50
		}
		if p.Percentage != want {
			t.Errorf("percentage on %s = %d, want %d", p.Date, p.Percentage, want)
		}
	}
}

func TestTopTasks(t *testing.T) {
	progress := make([]habit.TaskProgress, 0, 12)
	for i := range 12 {
		progress = append(progress, habit.TaskProgress{
			Task:      perftrack.Task{ID: string(rune('a' + i))},
			Completed: i % 4,
		})
	}

	top := habit.TopTasks(progress)
	if len(top) != habit.TopTasksLimit {
		t.Fatalf("got %d entries, want %d", len(top), habit.TopTasksLimit)
	}
	for i := 1; i < len(top); i++ {
		if top[i-1].Completed < top[i].Completed {
			t.Fatalf("not descending at %d: %d then %d", i, top[i-1].Completed, top[i].Completed)
		}
	}
	// ties keep original order: ids d, h, l all completed 3 times
	if top[0].Task.ID != "d" || top[1].Task.ID != "h" || top[2].Task.ID != "l" {
		t.Errorf("tie order = %s, %s, %s, want d, h, l", top[0].Task.ID, top[1].Task.ID, top[2].Task.ID)
	}
	if len(habit.TopTasks(progress[:3])) != 3 {
		t.Errorf("short input should not be padded")
	}
}
