package perftrack

import (
	"context"
	"time"
)

// NotificationKind names a last-sent timestamp tracked by the Store.
type NotificationKind string

const (
	WeeklyReminder NotificationKind = "weekly_reminder"
	WeeklyReport   NotificationKind = "weekly_report"
)

// Store is the persistence collaborator: four named slots, each holding a
// whole JSON-serialized collection. Writes replace the whole collection;
// reads substitute defaults for missing or malformed data.
type Store interface {
	GetTasks(context.Context) ([]Task, error)
	SaveTasks(context.Context, []Task) error

	GetActivities(context.Context) ([]ActivityLog, error)
	SaveActivities(context.Context, []ActivityLog) error

	// GetCategories seeds and returns the default categories when the
	// slot is absent.
	GetCategories(context.Context) ([]Category, error)
	SaveCategories(context.Context, []Category) error

	GetSettings(context.Context) (Settings, error)
	SaveSettings(context.Context, Settings) error

	// LastSent returns the zero time when no notification of the given
	// kind has been recorded.
	LastSent(context.Context, NotificationKind) (time.Time, error)
	SetLastSent(context.Context, NotificationKind, time.Time) error

	// WithinTransaction runs fn atomically; writes made through the
	// context-aware store inside fn commit or roll back together.
	WithinTransaction(context.Context, func(context.Context) error) error
}
