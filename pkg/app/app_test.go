package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tableflip.dev/habit/pkg/calendar"
	"tableflip.dev/habit/pkg/habit"
	"tableflip.dev/habit/pkg/ledger"
	"tableflip.dev/habit/pkg/store"
	"tableflip.dev/habit/pkg/streak"
)

type memoryPersistence struct {
	mu      sync.Mutex
	habits  []*habit.Habit
	saves   int
	saveErr error
}

func newMemoryPersistence(habits ...*habit.Habit) *memoryPersistence {
	mp := &memoryPersistence{}
	for _, h := range habits {
		mp.habits = append(mp.habits, cloneHabit(h))
	}
	return mp
}

func cloneHabit(h *habit.Habit) *habit.Habit {
	cp := *h
	return &cp
}

func (m *memoryPersistence) Load(_ context.Context, now time.Time) ([]*habit.Habit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*habit.Habit, 0, len(m.habits))
	for _, h := range m.habits {
		cp := cloneHabit(h)
		if cp.Year != now.Year() {
			cp.ResetForNewYear(now.Year())
		}
		out = append(out, cp)
	}
	return out, nil
}

func (m *memoryPersistence) Save(_ context.Context, habits []*habit.Habit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.habits = m.habits[:0]
	for _, h := range habits {
		m.habits = append(m.habits, cloneHabit(h))
	}
	return nil
}

func (m *memoryPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func (m *memoryPersistence) Location() string { return "memory" }

func (m *memoryPersistence) stored() []*habit.Habit {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*habit.Habit(nil), m.habits...)
}

var fixedNow = time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC)

func newService(mp *memoryPersistence) *Service {
	return &Service{
		Persistence: mp,
		Capacity:    3,
		Clock:       func() time.Time { return fixedNow },
	}
}

func mustHabit(t *testing.T, name string, year int, days ...int) *habit.Habit {
	t.Helper()
	h, err := habit.New(name, year)
	if err != nil {
		t.Fatalf("new habit: %v", err)
	}
	for _, d := range days {
		h.Toggle(d, fixedNow)
	}
	return h
}

func TestServiceAddSaves(t *testing.T) {
	mp := newMemoryPersistence()
	svc := newService(mp)
	ctx := context.Background()

	index, err := svc.Add(ctx, "  Stretch  ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if index != 0 {
		t.Fatalf("expected index 0, got %d", index)
	}
	stored := mp.stored()
	if len(stored) != 1 || stored[0].Name != "Stretch" || stored[0].Year != 2024 {
		t.Fatalf("unexpected stored habits %+v", stored)
	}
	if mp.saves != 1 {
		t.Fatalf("expected one save, got %d", mp.saves)
	}
}

func TestServiceAddCapacity(t *testing.T) {
	mp := newMemoryPersistence()
	svc := newService(mp)
	ctx := context.Background()
	for _, name := range []string{"a", "b", "c"} {
		if _, err := svc.Add(ctx, name); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	if _, err := svc.Add(ctx, "d"); !errors.Is(err, ledger.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if len(mp.stored()) != 3 {
		t.Fatalf("expected 3 stored habits, got %d", len(mp.stored()))
	}
}

func TestServiceAddEmptyName(t *testing.T) {
	mp := newMemoryPersistence()
	svc := newService(mp)
	if _, err := svc.Add(context.Background(), "   "); !errors.Is(err, habit.ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if mp.saves != 0 {
		t.Fatalf("expected no save after a failed add")
	}
}

func TestServiceRemoveAndRename(t *testing.T) {
	mp := newMemoryPersistence(
		mustHabit(t, "a", 2024),
		mustHabit(t, "b", 2024),
		mustHabit(t, "c", 2024),
	)
	svc := newService(mp)
	ctx := context.Background()

	if err := svc.Remove(ctx, 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Rename(ctx, 1, "see"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	stored := mp.stored()
	if len(stored) != 2 || stored[0].Name != "a" || stored[1].Name != "see" {
		t.Fatalf("unexpected stored habits %q", names(stored))
	}
	if err := svc.Remove(ctx, 5); !errors.Is(err, ledger.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestServiceToggle(t *testing.T) {
	mp := newMemoryPersistence(mustHabit(t, "read", 2024))
	svc := newService(mp)
	ctx := context.Background()
	today := calendar.DayOfYear(fixedNow)

	done, err := svc.ToggleDate(ctx, 0, fixedNow)
	if err != nil || !done {
		t.Fatalf("expected toggle on, got %v %v", done, err)
	}
	if !mp.stored()[0].Done(today) {
		t.Fatalf("expected today stored as done")
	}
	done, err = svc.Toggle(ctx, 0, 2024, today)
	if err != nil || done {
		t.Fatalf("expected toggle off, got %v %v", done, err)
	}

	if _, err := svc.Toggle(ctx, 0, 2023, 364); !errors.Is(err, ErrOtherYear) {
		t.Fatalf("expected ErrOtherYear, got %v", err)
	}
	if _, err := svc.Toggle(ctx, 4, 2024, today); !errors.Is(err, ledger.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestServiceToggleDateRejectsFuture(t *testing.T) {
	mp := newMemoryPersistence(mustHabit(t, "read", 2024))
	svc := newService(mp)
	ctx := context.Background()

	tomorrow := fixedNow.AddDate(0, 0, 1)
	if _, err := svc.ToggleDate(ctx, 0, tomorrow); !errors.Is(err, ErrFutureDay) {
		t.Fatalf("expected ErrFutureDay for tomorrow, got %v", err)
	}
	newYearsEve := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	if _, err := svc.ToggleDate(ctx, 0, newYearsEve); !errors.Is(err, ErrFutureDay) {
		t.Fatalf("expected ErrFutureDay for Dec 31, got %v", err)
	}
	if mp.stored()[0].Total() != 0 {
		t.Fatalf("expected nothing stored for future days")
	}

	yesterday := fixedNow.AddDate(0, 0, -1)
	done, err := svc.ToggleDate(ctx, 0, yesterday)
	if err != nil || !done {
		t.Fatalf("expected yesterday toggled on, got %v %v", done, err)
	}
}

func TestServiceSaveFailureSurfaces(t *testing.T) {
	mp := newMemoryPersistence()
	mp.saveErr = store.ErrStorageUnavailable
	svc := newService(mp)
	if _, err := svc.Add(context.Background(), "x"); !errors.Is(err, store.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestServiceResolve(t *testing.T) {
	mp := newMemoryPersistence(mustHabit(t, "Read", 2024), mustHabit(t, "Walk", 2024))
	svc := newService(mp)
	ctx := context.Background()

	cases := map[string]int{"1": 0, "2": 1, "Walk": 1, "read": 0, " Read ": 0}
	for ref, want := range cases {
		got, err := svc.Resolve(ctx, ref)
		if err != nil {
			t.Fatalf("resolve %q: %v", ref, err)
		}
		if got != want {
			t.Fatalf("resolve %q: got %d, want %d", ref, got, want)
		}
	}
	for _, ref := range []string{"0", "3", "swim"} {
		if _, err := svc.Resolve(ctx, ref); !errors.Is(err, ErrNotFound) {
			t.Fatalf("resolve %q: expected ErrNotFound, got %v", ref, err)
		}
	}
}

func TestServiceOpenResetsOldYear(t *testing.T) {
	mp := newMemoryPersistence(mustHabit(t, "old", 2023, 1, 2, 3))
	svc := newService(mp)
	habits, err := svc.Habits(context.Background())
	if err != nil {
		t.Fatalf("habits: %v", err)
	}
	if habits[0].Year != 2024 || habits[0].Total() != 0 {
		t.Fatalf("expected reset habit, got year %d total %d", habits[0].Year, habits[0].Total())
	}
}

func TestSummary(t *testing.T) {
	today := calendar.DayOfYear(fixedNow)
	mp := newMemoryPersistence(
		mustHabit(t, "none", 2024),
		mustHabit(t, "short", 2024, today-1, today),
		mustHabit(t, "long", 2024, today-8, today-7, today-6, today-5, today-4, today-3, today-2, today-1, today),
	)
	svc := newService(mp)
	sum, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Completed != 2 || sum.Percent != 66 {
		t.Fatalf("expected 2 completed at 66%%, got %d at %d%%", sum.Completed, sum.Percent)
	}
	wantBands := []streak.Band{streak.Inactive, streak.Building, streak.Sustained}
	wantStreaks := []int{0, 2, 9}
	for i, h := range sum.Habits {
		if h.Band != wantBands[i] || h.Streak != wantStreaks[i] {
			t.Fatalf("habit %s: streak %d band %s", h.Name, h.Streak, h.Band)
		}
		if h.Position != i+1 {
			t.Fatalf("habit %s: position %d", h.Name, h.Position)
		}
	}
	if sum.Habits[0].LastDone != nil {
		t.Fatalf("expected no last done for an untouched habit")
	}
	if sum.Capacity != 3 || sum.Location != "memory" {
		t.Fatalf("unexpected capacity/location %d %q", sum.Capacity, sum.Location)
	}
}

func TestPercent(t *testing.T) {
	cases := []struct{ done, total, want int }{
		{0, 0, 0},
		{0, 3, 0},
		{1, 3, 33},
		{3, 3, 100},
	}
	for _, tc := range cases {
		if got := Percent(tc.done, tc.total); got != tc.want {
			t.Fatalf("Percent(%d,%d)=%d, want %d", tc.done, tc.total, got, tc.want)
		}
	}
}

func TestMonth(t *testing.T) {
	feb1 := calendar.YearDay(2024, time.February, 1)
	mp := newMemoryPersistence(mustHabit(t, "read", 2024, feb1, feb1+28, feb1+29))
	svc := newService(mp)

	view, err := svc.Month(context.Background(), 0, time.February)
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	if len(view.Days) != 29 {
		t.Fatalf("expected 29 days in February 2024, got %d", len(view.Days))
	}
	if !view.Days[0] || !view.Days[28] || view.Days[1] {
		t.Fatalf("unexpected days %v", view.Days)
	}
	if view.Done != 2 {
		t.Fatalf("expected 2 done, got %d", view.Done)
	}
	if view.Today != 0 {
		t.Fatalf("expected no today marker outside the current month, got %d", view.Today)
	}

	march, err := svc.Month(context.Background(), 0, time.March)
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	if march.Today != 5 || march.Done != 1 || !march.Days[0] {
		t.Fatalf("unexpected March view %+v", march)
	}
}

func names(habits []*habit.Habit) []string {
	out := make([]string, len(habits))
	for i, h := range habits {
		out[i] = h.Name
	}
	return out
}
