package perftrack

import "context"

// Notifier is the outbound email collaborator. Both operations short-circuit
// to false when the settings are not fully configured, and report transport
// failures as false rather than an error; each call is independent, with no
// retry or ordering guarantee.
type Notifier interface {
	SendWeeklyReport(ctx context.Context, activities []ActivityLog, tasks []Task, settings Settings) bool
	SendWeeklyReminder(ctx context.Context, activities []ActivityLog, tasks []Task, settings Settings) bool
}
