package habit

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newHabit(t *testing.T, year int, days ...int) *Habit {
	t.Helper()
	h, err := New("Read", year)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	now := time.Date(year, time.March, 1, 9, 0, 0, 0, time.UTC)
	for _, d := range days {
		h.Toggle(d, now)
	}
	return h
}

func TestNewRejectsEmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", ",,", " , "} {
		if _, err := New(name, 2024); !errors.Is(err, ErrEmptyName) {
			t.Fatalf("New(%q) error = %v, want ErrEmptyName", name, err)
		}
	}
}

func TestCleanName(t *testing.T) {
	got, err := CleanName("  run, then stretch  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "run then stretch" {
		t.Fatalf("unexpected name %q", got)
	}

	long := strings.Repeat("é", NameMaxLength+5)
	got, err = CleanName(long)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len([]rune(got)); n != NameMaxLength {
		t.Fatalf("expected %d runes, got %d", NameMaxLength, n)
	}
}

func TestToggleSetsAndClearsLastDone(t *testing.T) {
	h := newHabit(t, 2024)
	now := time.Date(2024, time.May, 2, 8, 30, 0, 0, time.UTC)

	if !h.Toggle(10, now) {
		t.Fatalf("expected day to be on after first toggle")
	}
	if !h.LastDone.Equal(now) {
		t.Fatalf("expected LastDone %v, got %v", now, h.LastDone)
	}
	if h.Count != 1 {
		t.Fatalf("expected count 1, got %d", h.Count)
	}

	if h.Toggle(10, now.Add(time.Hour)) {
		t.Fatalf("expected day to be off after second toggle")
	}
	if !h.LastDone.IsZero() {
		t.Fatalf("expected LastDone cleared, got %v", h.LastDone)
	}
}

func TestDoubleToggleRestoresState(t *testing.T) {
	h := newHabit(t, 2024, 3, 4, 5)
	for _, day := range []int{0, 4, 200, 365} {
		before := h.History[day]
		count := h.Count
		h.Toggle(day, time.Now())
		h.Toggle(day, time.Now())
		if h.History[day] != before {
			t.Fatalf("day %d changed after double toggle", day)
		}
		if h.Count != count {
			t.Fatalf("count changed after double toggle on day %d: %d -> %d", day, count, h.Count)
		}
	}
}

func TestToggleCountNeverNegative(t *testing.T) {
	h := &Habit{Name: "Walk", Year: 2024}
	h.History[7] = true // loaded from disk, Count never incremented
	h.Toggle(7, time.Now())
	if h.Count != 0 {
		t.Fatalf("expected count clamped at 0, got %d", h.Count)
	}
}

func TestToggleOutOfRangeIsNoop(t *testing.T) {
	h := newHabit(t, 2024)
	if h.Toggle(-1, time.Now()) || h.Toggle(366, time.Now()) {
		t.Fatalf("expected out of range toggles to report false")
	}
	if h.Count != 0 || h.Total() != 0 {
		t.Fatalf("out of range toggle mutated habit")
	}
}

func TestCurrentStreak(t *testing.T) {
	// [T,T,F,T,T,T]
	h := newHabit(t, 2024, 0, 1, 3, 4, 5)

	tests := []struct {
		reference int
		want      int
	}{
		{5, 3},
		{4, 2},
		{3, 1},
		{2, 0},
		{1, 2},
		{0, 1},
		{6, 0},
		{-1, 0},
		{400, 0},
	}
	for _, tc := range tests {
		if got := h.CurrentStreak(tc.reference); got != tc.want {
			t.Fatalf("CurrentStreak(%d) = %d, want %d", tc.reference, got, tc.want)
		}
	}
}

func TestCurrentStreakLastDay(t *testing.T) {
	h := newHabit(t, 2024, 363, 364, 365)
	if got := h.CurrentStreak(365); got != 3 {
		t.Fatalf("expected streak 3 at day 365, got %d", got)
	}
}

func TestLongestStreak(t *testing.T) {
	h := newHabit(t, 2024, 0, 1, 3, 4, 5, 100)
	if got := h.LongestStreak(); got != 3 {
		t.Fatalf("expected longest streak 3, got %d", got)
	}
}

func TestResetForNewYear(t *testing.T) {
	h := newHabit(t, 2024, 1, 2, 3)
	h.ResetForNewYear(2025)

	if h.Year != 2025 {
		t.Fatalf("expected year 2025, got %d", h.Year)
	}
	if h.Total() != 0 {
		t.Fatalf("expected empty history, got %d completed days", h.Total())
	}
	if h.Count != 0 || !h.LastDone.IsZero() {
		t.Fatalf("expected counters cleared, got count=%d last=%v", h.Count, h.LastDone)
	}
	if h.Name != "Read" {
		t.Fatalf("reset should keep the name, got %q", h.Name)
	}
}

func TestDoneInMonth(t *testing.T) {
	// Feb 2024: days 31..59.
	h := newHabit(t, 2024, 30, 31, 45, 59, 60)
	if got := h.DoneInMonth(time.February); got != 3 {
		t.Fatalf("expected 3 done in February, got %d", got)
	}
	if got := h.DoneInMonth(time.January); got != 1 {
		t.Fatalf("expected 1 done in January, got %d", got)
	}
}

func TestRename(t *testing.T) {
	h := newHabit(t, 2024)
	if err := h.Rename("  "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if h.Name != "Read" {
		t.Fatalf("failed rename changed name to %q", h.Name)
	}
	if err := h.Rename("Meditate"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Name != "Meditate" {
		t.Fatalf("expected Meditate, got %q", h.Name)
	}
}
