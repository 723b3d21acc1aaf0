// Package reminder periodically re-evaluates whether the weekly reminder or
// report is due and dispatches it through the Notifier.
package reminder

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/anhvtran/perftrack"
)

const sendWindow = 7 * 24 * time.Hour

type Options struct {
	Store    perftrack.Store
	Notifier perftrack.Notifier
	Logger   perftrack.Logger
	// Interval between checks. Defaults to 24h.
	Interval time.Duration
	// Desktop enables a local desktop notification after a successful
	// send.
	Desktop bool
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Scheduler owns the periodic check with an explicit start/stop lifecycle.
// Checks only read tasks and activities and write last-sent timestamps, so
// they may safely overlap user edits.
type Scheduler struct {
	store    perftrack.Store
	notifier perftrack.Notifier
	l        perftrack.Logger
	interval time.Duration
	desktop  bool
	now      func() time.Time

	started  atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewScheduler(opts Options) *Scheduler {
	if opts.Interval <= 0 {
		opts.Interval = 24 * time.Hour
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Scheduler{
		store:    opts.Store,
		notifier: opts.Notifier,
		l:        opts.Logger,
		interval: opts.Interval,
		desktop:  opts.Desktop,
		now:      opts.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs a check immediately, then on every interval tick until Stop.
// Calls after the first are no-ops.
func (s *Scheduler) Start(ctx context.Context) {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer close(s.done)

		s.Check(ctx)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Check(ctx)
			case <-s.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the periodic check and waits for an in-flight one to finish.
// Stop is safe to call repeatedly, or without a prior Start.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	if s.started.Load() {
		<-s.done
	}
}

// Check sends the weekly reminder on Mondays and the weekly report on
// Sundays, or whenever 7 or more days have passed since the last send of
// that kind. A kind already sent today is never re-sent, so the check is
// idempotent within a day.
func (s *Scheduler) Check(ctx context.Context) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		s.l.Error("reminder check: loading settings", "error", err)
		return
	}
	if settings.Email == "" {
		return
	}

	now := s.now()
	if settings.WeeklyReminderEnabled && s.due(ctx, perftrack.WeeklyReminder, now, time.Monday) {
		s.dispatch(ctx, perftrack.WeeklyReminder, settings, now)
	}
	if settings.WeeklyReportEnabled && s.due(ctx, perftrack.WeeklyReport, now, time.Sunday) {
		s.dispatch(ctx, perftrack.WeeklyReport, settings, now)
	}
}

func (s *Scheduler) due(ctx context.Context, kind perftrack.NotificationKind, now time.Time, weekday time.Weekday) bool {
	last, err := s.store.LastSent(ctx, kind)
	if err != nil {
		s.l.Error("reminder check: loading last-sent", "kind", kind, "error", err)
		return false
	}
	if !last.IsZero() && perftrack.DateOf(last) == perftrack.DateOf(now) {
		return false
	}
	return now.Weekday() == weekday || last.IsZero() || now.Sub(last) >= sendWindow
}

func (s *Scheduler) dispatch(ctx context.Context, kind perftrack.NotificationKind, settings perftrack.Settings, now time.Time) {
	tasks, err := s.store.GetTasks(ctx)
	if err != nil {
		s.l.Error("reminder check: loading tasks", "error", err)
		return
	}
	activities, err := s.store.GetActivities(ctx)
	if err != nil {
		s.l.Error("reminder check: loading activities", "error", err)
		return
	}

	var sent bool
	var title string
	switch kind {
	case perftrack.WeeklyReminder:
		sent = s.notifier.SendWeeklyReminder(ctx, activities, tasks, settings)
		title = "Weekly reminder sent"
	case perftrack.WeeklyReport:
		sent = s.notifier.SendWeeklyReport(ctx, activities, tasks, settings)
		title = "Weekly report sent"
	}
	if !sent {
		s.l.Warn("notification not sent", "kind", kind)
		return
	}

	if err := s.store.SetLastSent(ctx, kind, now); err != nil {
		s.l.Error("recording last-sent", "kind", kind, "error", err)
	}
	s.l.Info("notification sent", "kind", kind)

	if s.desktop {
		if err := beeep.Notify("perftrack", title+" to "+settings.Email, ""); err != nil {
			s.l.Warn("desktop notification failed", "error", err)
		}
	}
}
