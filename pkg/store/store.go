// Package store loads and saves the habit ledger.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tableflip.dev/habit/pkg/habit"
	"tableflip.dev/habit/pkg/logging"
)

// ErrStorageUnavailable wraps failures to write the store. A store that cannot
// be read is not an error: it loads as empty.
var ErrStorageUnavailable = errors.New("store: storage unavailable")

// Persistence defines the persistence contract for habits.
type Persistence interface {
	// Load returns the stored habits in display order, at most the configured
	// capacity. Habits stored for a year other than now's are reset.
	Load(ctx context.Context, now time.Time) ([]*habit.Habit, error)
	// Save replaces the whole store with habits.
	Save(ctx context.Context, habits []*habit.Habit) error
	// Watch streams change events until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
	// Location describes where the habits live.
	Location() string
}

// Load creates the Persistence selected by cfg. A nil cfg is resolved with
// LoadConfig.
func Load(cfg Config, logger *slog.Logger) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	logger = logging.OrDiscard(logger).With("backend", cfg.Backend())

	switch cfg.Backend() {
	case BackendFile:
		return newFilePersistence(cfg.BasePath(), cfg.Capacity(), logger), nil
	case BackendDiskv:
		return newDiskvPersistence(cfg.BasePath(), cfg.Capacity(), logger), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
}

// hydrate decodes rows into habits. Malformed rows are logged and skipped,
// rows past capacity are ignored and rows from another year are reset.
func hydrate(rows []string, now time.Time, capacity int, logger *slog.Logger) []*habit.Habit {
	year := now.Year()
	habits := make([]*habit.Habit, 0, len(rows))
	for i, row := range rows {
		if len(habits) >= capacity {
			logger.Warn("ignoring rows beyond capacity", "capacity", capacity, "remaining", len(rows)-i)
			break
		}
		h, err := DecodeRow(row)
		if err != nil {
			logger.Warn("skipping row", "row", i+1, "err", err)
			continue
		}
		if h.Year != year {
			logger.Info("resetting habit for new year", "habit", h.Name, "stored_year", h.Year, "year", year)
			h.ResetForNewYear(year)
		}
		habits = append(habits, h)
	}
	return habits
}
