// Package ledger holds the ordered, bounded collection of tracked habits.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/habit/pkg/habit"
)

// DefaultCapacity is the number of habits a ledger holds unless configured
// otherwise.
const DefaultCapacity = 10

var (
	// ErrCapacityExceeded is returned by Add on a full ledger.
	ErrCapacityExceeded = errors.New("ledger: capacity exceeded")
	// ErrIndexOutOfRange is returned for an index that names no habit.
	ErrIndexOutOfRange = errors.New("ledger: index out of range")
)

// Ledger is an ordered list of habits. Insertion order is display order and
// the list never has gaps.
type Ledger struct {
	capacity int
	habits   []*habit.Habit
}

// New returns a ledger bounded by capacity holding habits. Habits beyond the
// capacity are dropped. A capacity below one uses DefaultCapacity.
func New(capacity int, habits ...*habit.Habit) *Ledger {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	l := &Ledger{capacity: capacity, habits: make([]*habit.Habit, 0, capacity)}
	for _, h := range habits {
		if h == nil || len(l.habits) >= capacity {
			continue
		}
		l.habits = append(l.habits, h)
	}
	return l
}

// Len returns the number of habits.
func (l *Ledger) Len() int { return len(l.habits) }

// Cap returns the maximum number of habits.
func (l *Ledger) Cap() int { return l.capacity }

// Full reports whether Add would fail with ErrCapacityExceeded.
func (l *Ledger) Full() bool { return len(l.habits) >= l.capacity }

// All returns the habits in display order. The slice is a copy; the habits
// are shared.
func (l *Ledger) All() []*habit.Habit {
	return append([]*habit.Habit(nil), l.habits...)
}

// Get returns the habit at index.
func (l *Ledger) Get(index int) (*habit.Habit, error) {
	if err := l.check(index); err != nil {
		return nil, err
	}
	return l.habits[index], nil
}

func (l *Ledger) check(index int) error {
	if index < 0 || index >= len(l.habits) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(l.habits))
	}
	return nil
}

// Add appends a new habit for year and returns its index.
func (l *Ledger) Add(name string, year int) (int, error) {
	if l.Full() {
		return -1, fmt.Errorf("%w: at most %d habits", ErrCapacityExceeded, l.capacity)
	}
	h, err := habit.New(name, year)
	if err != nil {
		return -1, err
	}
	l.habits = append(l.habits, h)
	return len(l.habits) - 1, nil
}

// Remove deletes the habit at index and shifts later habits left by one.
func (l *Ledger) Remove(index int) error {
	if err := l.check(index); err != nil {
		return err
	}
	copy(l.habits[index:], l.habits[index+1:])
	l.habits[len(l.habits)-1] = nil
	l.habits = l.habits[:len(l.habits)-1]
	return nil
}

// Rename replaces the name of the habit at index.
func (l *Ledger) Rename(index int, name string) error {
	h, err := l.Get(index)
	if err != nil {
		return err
	}
	return h.Rename(name)
}

// Toggle flips day for the habit at index and returns the new state.
func (l *Ledger) Toggle(index, day int, now time.Time) (bool, error) {
	h, err := l.Get(index)
	if err != nil {
		return false, err
	}
	return h.Toggle(day, now), nil
}

// Find returns the index of the first habit named name, or -1.
func (l *Ledger) Find(name string) int {
	for i, h := range l.habits {
		if h.Name == name {
			return i
		}
	}
	return -1
}

// CompletedOn counts the habits completed on day.
func (l *Ledger) CompletedOn(day int) int {
	n := 0
	for _, h := range l.habits {
		if h.Done(day) {
			n++
		}
	}
	return n
}

// Rollover resets every habit whose year differs from year and returns how
// many were reset.
func (l *Ledger) Rollover(year int) int {
	n := 0
	for _, h := range l.habits {
		if h.Year != year {
			h.ResetForNewYear(year)
			n++
		}
	}
	return n
}
