// Package habit maintains the derived (task, date) completion mapping and
// keeps it synchronized with the activity log.
package habit

import (
	"slices"

	"github.com/anhvtran/perftrack"
	"github.com/google/uuid"
)

// CompletionNote marks activity records auto-created by toggling a day
// complete on the calendar grid.
const CompletionNote = "Completed via tracker"

// DefaultDuration is the minute count of an auto-created activity.
const DefaultDuration = 60

type completionKey struct {
	taskID string
	date   perftrack.Date
}

// Tracker holds the derived completion mapping. It is rebuilt wholesale
// from the activity log on every log change rather than maintained
// incrementally; the log stays the source of truth.
type Tracker struct {
	completions map[completionKey]bool
}

// NewTracker derives the completion mapping by a single pass over the
// activity log in original order. The first activity seen for a
// (task, date) pair wins; duplicates on the same day collapse to one entry.
func NewTracker(activities []perftrack.ActivityLog) *Tracker {
	t := &Tracker{
		completions: make(map[completionKey]bool, len(activities)),
	}
	for _, a := range activities {
		k := completionKey{taskID: a.TaskID, date: a.Date}
		if _, seen := t.completions[k]; !seen {
			t.completions[k] = true
		}
	}
	return t
}

func (t *Tracker) IsCompleted(taskID string, date perftrack.Date) bool {
	return t.completions[completionKey{taskID: taskID, date: date}]
}

// Toggle flips the completion state for (taskID, date) and returns the
// updated activity log the caller must persist, plus the new state. The
// input slice is not modified.
//
// Turning a day on appends an auto-created activity only when no record
// already matches the pair; the task's name and category are snapshotted
// when the task exists, and an unknown taskID still produces an (orphan)
// record. Turning a day off removes every activity matching the pair,
// manually logged ones included.
func (t *Tracker) Toggle(taskID string, date perftrack.Date, tasks []perftrack.Task, activities []perftrack.ActivityLog) ([]perftrack.ActivityLog, bool) {
	k := completionKey{taskID: taskID, date: date}

	if t.completions[k] {
		delete(t.completions, k)
		updated := slices.DeleteFunc(slices.Clone(activities), func(a perftrack.ActivityLog) bool {
			return a.TaskID == taskID && a.Date == date
		})
		return updated, false
	}

	t.completions[k] = true
	for _, a := range activities {
		if a.TaskID == taskID && a.Date == date {
			// a manually logged entry already backs this completion
			return slices.Clone(activities), true
		}
	}

	var name, category string
	for _, task := range tasks {
		if task.ID == taskID {
			name = task.Name
			category = task.Category
			break
		}
	}
	updated := append(slices.Clone(activities), perftrack.ActivityLog{
		ID:       uuid.NewString(),
		TaskID:   taskID,
		TaskName: name,
		Category: category,
		Date:     date,
		Duration: DefaultDuration,
		Notes:    CompletionNote,
	})
	return updated, true
}

// CompletedOn counts completions on the given date across all tasks,
// orphaned task ids included.
func (t *Tracker) CompletedOn(date perftrack.Date) int {
	var n int
	for k := range t.completions {
		if k.date == date {
			n++
		}
	}
	return n
}

// CompletedBetween counts completions within [start, end] inclusive across
// all tasks.
func (t *Tracker) CompletedBetween(start, end perftrack.Date) int {
	var n int
	for k := range t.completions {
		if k.date.Between(start, end) {
			n++
		}
	}
	return n
}

// CompletedForTask counts completions for one task within [start, end]
// inclusive.
func (t *Tracker) CompletedForTask(taskID string, start, end perftrack.Date) int {
	var n int
	for k := range t.completions {
		if k.taskID == taskID && k.date.Between(start, end) {
			n++
		}
	}
	return n
}
