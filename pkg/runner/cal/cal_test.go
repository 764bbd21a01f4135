package cal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/habit/pkg/app"
	"tableflip.dev/habit/pkg/store"
)

var now = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(store.StaticConfig{Path: filepath.Join(t.TempDir(), ".habits.csv")}, nil)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	svc := &app.Service{Persistence: p, Clock: func() time.Time { return now }}
	for _, name := range []string{"Read", "Walk"} {
		if _, err := svc.Add(context.Background(), name); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if _, err := svc.ToggleDate(context.Background(), 0, now); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	return svc
}

func TestCalEveryHabitJSON(t *testing.T) {
	svc := newService(t)
	var out bytes.Buffer
	c := Cal{Service: svc, JSON: true, Out: &out}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}

	var views []app.MonthView
	if err := json.Unmarshal(out.Bytes(), &views); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 months, got %d", len(views))
	}
	if views[0].Name != "Read" || views[0].Done != 1 || !views[0].Days[0] {
		t.Fatalf("unexpected first month %+v", views[0])
	}
	if views[1].Done != 0 || views[1].Today != 1 || len(views[1].Days) != 31 {
		t.Fatalf("unexpected second month %+v", views[1])
	}
}

func TestCalOneHabitPretty(t *testing.T) {
	color.NoColor = true
	svc := newService(t)
	var out bytes.Buffer
	c := Cal{Service: svc, Ref: "2", Month: time.April, Out: &out}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Walk April") || !strings.Contains(got, "Done: 0") {
		t.Fatalf("unexpected calendar:\n%s", got)
	}
	if strings.Contains(got, "Read") {
		t.Fatalf("expected only the named habit:\n%s", got)
	}
}

func TestCalUnknownHabit(t *testing.T) {
	svc := newService(t)
	c := Cal{Service: svc, Ref: "Swim", Out: &bytes.Buffer{}}
	if err := c.Do(context.Background()); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
