// Package session owns the four persisted collections and the derived
// completion tracker, and funnels every mutation through the store as a
// whole-collection replace.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/anhvtran/perftrack"
	"github.com/anhvtran/perftrack/habit"
	"github.com/anhvtran/perftrack/stats"
	"github.com/google/uuid"
)

type Session struct {
	store perftrack.Store
	l     perftrack.Logger

	tasks      []perftrack.Task
	activities []perftrack.ActivityLog
	categories []perftrack.Category
	settings   perftrack.Settings

	tracker *habit.Tracker
}

// New loads all collections from the store and derives the completion
// tracker from the activity log.
func New(ctx context.Context, store perftrack.Store, logger perftrack.Logger) (*Session, error) {
	s := &Session{
		store: store,
		l:     logger,
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh reloads every collection and rebuilds the completion tracker.
func (s *Session) Refresh(ctx context.Context) error {
	tasks, err := s.store.GetTasks(ctx)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	activities, err := s.store.GetActivities(ctx)
	if err != nil {
		return fmt.Errorf("loading activities: %w", err)
	}
	categories, err := s.store.GetCategories(ctx)
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	s.tasks = tasks
	s.activities = activities
	s.categories = categories
	s.settings = settings
	s.tracker = habit.NewTracker(activities)
	return nil
}

func (s *Session) Tasks() []perftrack.Task { return s.tasks }

func (s *Session) Activities() []perftrack.ActivityLog { return s.activities }

func (s *Session) Categories() []perftrack.Category { return s.categories }

func (s *Session) Settings() perftrack.Settings { return s.settings }

func (s *Session) Tracker() *habit.Tracker { return s.tracker }

func (s *Session) AddTask(ctx context.Context, name, category string, priority perftrack.Priority, goal int) (perftrack.Task, error) {
	if name == "" {
		return perftrack.Task{}, fmt.Errorf("provide required field 'Name'")
	}
	if goal < 0 {
		goal = 0
	}
	t := perftrack.Task{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  category,
		Priority:  priority,
		CreatedAt: time.Now(),
		Goal:      goal,
	}
	updated := append(cloneTasks(s.tasks), t)
	if err := s.store.SaveTasks(ctx, updated); err != nil {
		return perftrack.Task{}, err
	}
	s.tasks = updated
	return t, nil
}

// ToggleTask flips a task's completed flag. Completing stamps CompletedAt
// with now; clearing removes the stamp.
func (s *Session) ToggleTask(ctx context.Context, id string) (perftrack.Task, error) {
	updated := cloneTasks(s.tasks)
	var toggled *perftrack.Task
	for i := range updated {
		if updated[i].ID == id {
			updated[i].Completed = !updated[i].Completed
			if updated[i].Completed {
				updated[i].CompletedAt = time.Now()
			} else {
				updated[i].CompletedAt = time.Time{}
			}
			toggled = &updated[i]
			break
		}
	}
	if toggled == nil {
		return perftrack.Task{}, fmt.Errorf("task %s: not found", id)
	}
	if err := s.store.SaveTasks(ctx, updated); err != nil {
		return perftrack.Task{}, err
	}
	s.tasks = updated
	return *toggled, nil
}

// DeleteTask removes the task by id. Activity logs referencing it are left
// in place; deletion does not cascade.
func (s *Session) DeleteTask(ctx context.Context, id string) error {
	updated := make([]perftrack.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			updated = append(updated, t)
		}
	}
	if err := s.store.SaveTasks(ctx, updated); err != nil {
		return err
	}
	s.tasks = updated
	return nil
}

func (s *Session) AddCategory(ctx context.Context, name, color string) (perftrack.Category, error) {
	if name == "" {
		return perftrack.Category{}, fmt.Errorf("provide required field 'Name'")
	}
	c := perftrack.Category{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		CreatedAt: time.Now(),
	}
	updated := append(cloneCategories(s.categories), c)
	if err := s.store.SaveCategories(ctx, updated); err != nil {
		return perftrack.Category{}, err
	}
	s.categories = updated
	return c, nil
}

// DeleteCategory removes the category by id. Tasks and activities keep
// referencing the name; consumers treat it as unknown.
func (s *Session) DeleteCategory(ctx context.Context, id string) error {
	updated := make([]perftrack.Category, 0, len(s.categories))
	for _, c := range s.categories {
		if c.ID != id {
			updated = append(updated, c)
		}
	}
	if err := s.store.SaveCategories(ctx, updated); err != nil {
		return err
	}
	s.categories = updated
	return nil
}

// CategoryColor resolves a category name to its display color, falling back
// to the unknown-category color for dangling references.
func (s *Session) CategoryColor(name string) string {
	for _, c := range s.categories {
		if c.Name == name {
			return c.Color
		}
	}
	return perftrack.UnknownCategoryColor
}

// LogActivity records time against a task, snapshotting the task's name and
// category. A negative duration is coerced to 0.
func (s *Session) LogActivity(ctx context.Context, taskID string, date perftrack.Date, duration int, notes string) (perftrack.ActivityLog, error) {
	if duration < 0 {
		duration = 0
	}
	a := perftrack.ActivityLog{
		ID:       uuid.NewString(),
		TaskID:   taskID,
		Date:     date,
		Duration: duration,
		Notes:    notes,
	}
	for _, t := range s.tasks {
		if t.ID == taskID {
			a.TaskName = t.Name
			a.Category = t.Category
			break
		}
	}
	updated := append(cloneActivities(s.activities), a)
	if err := s.saveActivities(ctx, updated); err != nil {
		return perftrack.ActivityLog{}, err
	}
	return a, nil
}

func (s *Session) DeleteActivity(ctx context.Context, id string) error {
	updated := make([]perftrack.ActivityLog, 0, len(s.activities))
	for _, a := range s.activities {
		if a.ID != id {
			updated = append(updated, a)
		}
	}
	return s.saveActivities(ctx, updated)
}

// ToggleCompletion flips the habit-grid state for (taskID, date), persists
// the resulting activity log in one transaction, and returns the new state.
// On a persistence failure the tracker is re-derived from the unchanged log
// so no intermediate state is observable.
func (s *Session) ToggleCompletion(ctx context.Context, taskID string, date perftrack.Date) (bool, error) {
	updated, completed := s.tracker.Toggle(taskID, date, s.tasks, s.activities)

	err := s.store.WithinTransaction(ctx, func(ctx context.Context) error {
		return s.store.SaveActivities(ctx, updated)
	})
	if err != nil {
		s.tracker = habit.NewTracker(s.activities)
		return false, err
	}

	s.activities = updated
	return completed, nil
}

func (s *Session) IsCompleted(taskID string, date perftrack.Date) bool {
	return s.tracker.IsCompleted(taskID, date)
}

func (s *Session) UpdateSettings(ctx context.Context, settings perftrack.Settings) error {
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return err
	}
	s.settings = settings
	return nil
}

// Stats facade over the session's activity snapshot.

func (s *Session) DailyStats(ref time.Time) stats.Summary {
	return stats.Daily(s.activities, ref)
}

func (s *Session) WeeklyStats(ref time.Time) stats.WeekSummary {
	return stats.Weekly(s.activities, ref)
}

func (s *Session) MonthlyStats(ref time.Time) stats.Summary {
	return stats.Monthly(s.activities, ref)
}

func (s *Session) QuarterlyStats(ref time.Time) stats.Summary {
	return stats.Quarterly(s.activities, ref)
}

func (s *Session) CompletionRate() int {
	return stats.CompletionRate(s.tasks)
}

func (s *Session) saveActivities(ctx context.Context, updated []perftrack.ActivityLog) error {
	if err := s.store.SaveActivities(ctx, updated); err != nil {
		return err
	}
	s.activities = updated
	s.tracker = habit.NewTracker(updated)
	return nil
}

func cloneTasks(in []perftrack.Task) []perftrack.Task {
	out := make([]perftrack.Task, len(in))
	copy(out, in)
	return out
}

func cloneActivities(in []perftrack.ActivityLog) []perftrack.ActivityLog {
	out := make([]perftrack.ActivityLog, len(in))
	copy(out, in)
	return out
}

func cloneCategories(in []perftrack.Category) []perftrack.Category {
	out := make([]perftrack.Category, len(in))
	copy(out, in)
	return out
}
