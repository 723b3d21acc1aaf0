package habit

import (
	"sort"
	"time"

	"github.com/anhvtran/perftrack"
	"github.com/anhvtran/perftrack/stats"
)

type DayProgress struct {
	Date      perftrack.Date
	Completed int
	Total     int
}

type WeekProgress struct {
	Week       Week
	Completed  int
	Left       int
	Total      int
	Percentage int
	Days       []DayProgress
}

type Progress struct {
	Completed  int
	Left       int
	Total      int
	Percentage int
}

type TaskProgress struct {
	Task       perftrack.Task
	Completed  int
	Left       int
	Percentage int
}

type TrendPoint struct {
	Date       perftrack.Date
	Percentage int
}

// TopTasksLimit bounds the most-completed-tasks ranking.
const TopTasksLimit = 10

// WeeklyProgress folds the completion state over the given weeks. Completed
// counts every completion whose date falls on one of the week's (clipped)
// days, whether or not its task still exists.
func (t *Tracker) WeeklyProgress(tasks []perftrack.Task, weeks []Week) []WeekProgress {
	out := make([]WeekProgress, 0, len(weeks))
	for _, w := range weeks {
		total := len(tasks) * len(w.Days)
		var completed int
		if len(w.Days) > 0 {
			completed = t.CompletedBetween(w.Days[0], w.Days[len(w.Days)-1])
		}

		days := make([]DayProgress, 0, len(w.Days))
		for _, day := range w.Days {
			days = append(days, DayProgress{
				Date:      day,
				Completed: t.CompletedOn(day),
				Total:     len(tasks),
			})
		}

		out = append(out, WeekProgress{
			Week:       w,
			Completed:  completed,
			Left:       total - completed,
			Total:      total,
			Percentage: stats.Percent(completed, total),
			Days:       days,
		})
	}
	return out
}

// MonthlyProgress applies the weekly formula to the whole month.
func (t *Tracker) MonthlyProgress(tasks []perftrack.Task, year int, month time.Month) Progress {
	days := MonthDays(year, month)
	total := len(tasks) * len(days)
	completed := t.CompletedBetween(days[0], days[len(days)-1])
	return Progress{
		Completed:  completed,
		Left:       total - completed,
		Total:      total,
		Percentage: stats.Percent(completed, total),
	}
}

// TaskProgressFor reports each task's completion-days within the month.
// Goal is display-only and does not enter the percentage formula.
func (t *Tracker) TaskProgressFor(tasks []perftrack.Task, year int, month time.Month) []TaskProgress {
	days := MonthDays(year, month)
	out := make([]TaskProgress, 0, len(tasks))
	for _, task := range tasks {
		completed := t.CompletedForTask(task.ID, days[0], days[len(days)-1])
		out = append(out, TaskProgress{
			Task:       task,
			Completed:  completed,
			Left:       len(days) - completed,
			Percentage: stats.Percent(completed, len(days)),
		})
	}
	return out
}

// Trend returns one point per day for the given number of days ending today
// inclusive, in chronological ascending order.
func (t *Tracker) Trend(tasks []perftrack.Task, today time.Time, days int) []TrendPoint {
	out := make([]TrendPoint, 0, days)
	for i := range days {
		date := perftrack.DateOf(today.AddDate(0, 0, i-(days-1)))
		out = append(out, TrendPoint{
			Date:       date,
			Percentage: stats.Percent(t.CompletedOn(date), len(tasks)),
		})
	}
	return out
}

// TopTasks ranks tasks descending by completed count, ties kept in original
// order, truncated to TopTasksLimit.
func TopTasks(progress []TaskProgress) []TaskProgress {
	ranked := make([]TaskProgress, len(progress))
	copy(ranked, progress)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Completed > ranked[j].Completed
	})
	if len(ranked) > TopTasksLimit {
		ranked = ranked[:TopTasksLimit]
	}
	return ranked
}
