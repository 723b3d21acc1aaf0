package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Thiht/transactor"
	txStdLib "github.com/Thiht/transactor/stdlib"

	"github.com/anhvtran/perftrack"
)

const (
	slotTasks      = "tasks"
	slotActivities = "activities"
	slotCategories = "categories"
	slotSettings   = "settings"

	lastSentPrefix = "last_sent:"
)

// store persists each collection as one JSON document in the slots table.
// Every write replaces the whole slot.
type store struct {
	transactor transactor.Transactor
	dbGetter   txStdLib.DBGetter
	l          perftrack.Logger
}

var _ perftrack.Store = (*store)(nil)

func NewStore(tx transactor.Transactor, dbGetter txStdLib.DBGetter, logger perftrack.Logger) perftrack.Store {
	return &store{
		transactor: tx,
		dbGetter:   dbGetter,
		l:          logger,
	}
}

// getSlot unmarshals the named slot into out. A missing slot or a slot
// holding malformed JSON both report false with no error; malformed data is
// treated as absent.
func (s *store) getSlot(ctx context.Context, name string, out any) (bool, error) {
	db := s.dbGetter(ctx)
	row := db.QueryRowContext(ctx, "SELECT value FROM slots WHERE name=?", name)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.l.Warn("discarding malformed slot", "slot", name, "error", err)
		return false, nil
	}
	return true, nil
}

func (s *store) setSlot(ctx context.Context, name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	query := `INSERT INTO slots (name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`
	s.l.Debug("writing slot", "slot", name, "bytes", len(raw))
	_, err = s.dbGetter(ctx).ExecContext(ctx, query, name, string(raw), time.Now().Unix())
	return err
}

func (s *store) GetTasks(ctx context.Context) ([]perftrack.Task, error) {
	var tasks []perftrack.Task
	if _, err := s.getSlot(ctx, slotTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *store) SaveTasks(ctx context.Context, tasks []perftrack.Task) error {
	return s.setSlot(ctx, slotTasks, tasks)
}

func (s *store) GetActivities(ctx context.Context) ([]perftrack.ActivityLog, error) {
	var activities []perftrack.ActivityLog
	if _, err := s.getSlot(ctx, slotActivities, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *store) SaveActivities(ctx context.Context, activities []perftrack.ActivityLog) error {
	return s.setSlot(ctx, slotActivities, activities)
}

func (s *store) GetCategories(ctx context.Context) ([]perftrack.Category, error) {
	var categories []perftrack.Category
	ok, err := s.getSlot(ctx, slotCategories, &categories)
	if err != nil {
		return nil, err
	}
	if !ok {
		categories = perftrack.DefaultCategories()
		if err := s.SaveCategories(ctx, categories); err != nil {
			return nil, err
		}
	}
	return categories, nil
}

func (s *store) SaveCategories(ctx context.Context, categories []perftrack.Category) error {
	return s.setSlot(ctx, slotCategories, categories)
}

func (s *store) GetSettings(ctx context.Context) (perftrack.Settings, error) {
	var settings perftrack.Settings
	if _, err := s.getSlot(ctx, slotSettings, &settings); err != nil {
		return perftrack.Settings{}, err
	}
	return settings, nil
}

func (s *store) SaveSettings(ctx context.Context, settings perftrack.Settings) error {
	return s.setSlot(ctx, slotSettings, settings)
}

func (s *store) LastSent(ctx context.Context, kind perftrack.NotificationKind) (time.Time, error) {
	var unix int64
	ok, err := s.getSlot(ctx, lastSentPrefix+string(kind), &unix)
	if err != nil || !ok {
		return time.Time{}, err
	}
	return time.Unix(unix, 0).Local(), nil
}

func (s *store) SetLastSent(ctx context.Context, kind perftrack.NotificationKind, t time.Time) error {
	return s.setSlot(ctx, lastSentPrefix+string(kind), t.Unix())
}

func (s *store) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	return s.transactor.WithinTransaction(ctx, fn)
}
