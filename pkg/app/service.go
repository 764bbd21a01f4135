// Package app wires the habit ledger to persistence so the TUI and the CLI
// share one set of operations.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/habit/pkg/calendar"
	"tableflip.dev/habit/pkg/habit"
	"tableflip.dev/habit/pkg/ledger"
	"tableflip.dev/habit/pkg/logging"
	"tableflip.dev/habit/pkg/store"
)

var (
	// ErrNotFound is returned when a reference names no habit.
	ErrNotFound = errors.New("app: habit not found")
	// ErrOtherYear is returned when toggling a day outside the ledger's year.
	// Only the current year's history is held.
	ErrOtherYear = errors.New("app: day is outside the tracked year")
	// ErrFutureDay is returned by ToggleDate for a day after today.
	ErrFutureDay = errors.New("app: day is in the future")

	errNoPersistence = errors.New("app: no persistence configured")
)

// Service provides high-level operations over the habit ledger. Every
// successful mutation is saved immediately.
type Service struct {
	Persistence store.Persistence
	// Capacity bounds the ledger. Zero uses ledger.DefaultCapacity.
	Capacity int
	// Clock defaults to time.Now.
	Clock  func() time.Time
	Logger *slog.Logger

	ledger *ledger.Ledger
}

// Now returns the current time from the service clock.
func (s *Service) Now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}

func (s *Service) logger() *slog.Logger {
	return logging.OrDiscard(s.Logger)
}

// Open loads the stored habits into a fresh ledger. A store that cannot be
// read opens empty.
func (s *Service) Open(ctx context.Context) (*ledger.Ledger, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	now := s.Now()
	habits, err := s.Persistence.Load(ctx, now)
	if err != nil {
		return nil, err
	}
	s.ledger = ledger.New(s.Capacity, habits...)
	if n := s.ledger.Rollover(now.Year()); n > 0 {
		s.logger().Info("reset habits for new year", "count", n, "year", now.Year())
	}
	s.logger().Debug("opened", "location", s.Persistence.Location(), "habits", s.ledger.Len())
	return s.ledger, nil
}

// Ledger returns the open ledger, loading it on first use.
func (s *Service) Ledger(ctx context.Context) (*ledger.Ledger, error) {
	if s.ledger != nil {
		return s.ledger, nil
	}
	return s.Open(ctx)
}

// Habits lists the habits in display order.
func (s *Service) Habits(ctx context.Context) ([]*habit.Habit, error) {
	l, err := s.Ledger(ctx)
	if err != nil {
		return nil, err
	}
	return l.All(), nil
}

// Save writes the open ledger. It is a no-op before Open.
func (s *Service) Save(ctx context.Context) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	if s.ledger == nil {
		return nil
	}
	return s.Persistence.Save(ctx, s.ledger.All())
}

// Add creates a habit for the current year and returns its index.
func (s *Service) Add(ctx context.Context, name string) (int, error) {
	l, err := s.Ledger(ctx)
	if err != nil {
		return -1, err
	}
	index, err := l.Add(name, s.Now().Year())
	if err != nil {
		return -1, err
	}
	if err := s.Save(ctx); err != nil {
		return index, err
	}
	s.logger().Info("added habit", "index", index)
	return index, nil
}

// Remove deletes the habit at index.
func (s *Service) Remove(ctx context.Context, index int) error {
	l, err := s.Ledger(ctx)
	if err != nil {
		return err
	}
	if err := l.Remove(index); err != nil {
		return err
	}
	s.logger().Info("removed habit", "index", index)
	return s.Save(ctx)
}

// Rename renames the habit at index.
func (s *Service) Rename(ctx context.Context, index int, name string) error {
	l, err := s.Ledger(ctx)
	if err != nil {
		return err
	}
	if err := l.Rename(index, name); err != nil {
		return err
	}
	return s.Save(ctx)
}

// Toggle flips the habit at index on the given day of year and returns the
// new state. Days outside the ledger's year return ErrOtherYear and change
// nothing.
func (s *Service) Toggle(ctx context.Context, index, year, day int) (bool, error) {
	l, err := s.Ledger(ctx)
	if err != nil {
		return false, err
	}
	if _, err := l.Get(index); err != nil {
		return false, err
	}
	if year != s.Now().Year() || day < 0 || day >= calendar.DaysInYear(year) {
		return false, fmt.Errorf("%w: %d day %d", ErrOtherYear, year, day)
	}
	done, err := l.Toggle(index, day, s.Now())
	if err != nil {
		return false, err
	}
	return done, s.Save(ctx)
}

// ToggleDate flips the habit at index on the day of t, which may not be
// after today.
func (s *Service) ToggleDate(ctx context.Context, index int, t time.Time) (bool, error) {
	now := s.Now()
	if t.Year() == now.Year() && calendar.DayOfYear(t) > calendar.DayOfYear(now) {
		return false, fmt.Errorf("%w: %s", ErrFutureDay, t.Format("2006-01-02"))
	}
	return s.Toggle(ctx, index, t.Year(), calendar.DayOfYear(t))
}

// Resolve turns a user reference into a ledger index. A number is the
// 1-based position shown by list; anything else must match a name, first
// exactly and then ignoring case.
func (s *Service) Resolve(ctx context.Context, ref string) (int, error) {
	l, err := s.Ledger(ctx)
	if err != nil {
		return -1, err
	}
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > l.Len() {
			return -1, fmt.Errorf("%w: no habit at position %d", ErrNotFound, n)
		}
		return n - 1, nil
	}
	if i := l.Find(ref); i >= 0 {
		return i, nil
	}
	for i, h := range l.All() {
		if strings.EqualFold(h.Name, ref) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrNotFound, ref)
}

// Watch subscribes to store change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// Reload discards the open ledger and loads it again, for example after a
// Watch event.
func (s *Service) Reload(ctx context.Context) (*ledger.Ledger, error) {
	s.ledger = nil
	return s.Open(ctx)
}
