package info

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"tableflip.dev/habit/pkg/app"
	"tableflip.dev/habit/pkg/store"
)

func TestInfoJSON(t *testing.T) {
	t.Setenv("HABIT_CONFIG_PATH", "")
	dir := t.TempDir()
	cfg := store.StaticConfig{Path: filepath.Join(dir, "habits.d"), BackendName: store.BackendDiskv, Max: 4}
	p, err := store.Load(cfg, nil)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	svc := &app.Service{Persistence: p, Capacity: cfg.Capacity()}
	if _, err := svc.Add(context.Background(), "Read"); err != nil {
		t.Fatalf("add: %v", err)
	}

	var out bytes.Buffer
	i := Info{Config: cfg, Service: svc, JSON: true, Out: &out}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var d details
	if err := json.Unmarshal(out.Bytes(), &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Backend != store.BackendDiskv || d.Capacity != 4 || d.Habits != 1 || d.Location != cfg.Path {
		t.Fatalf("unexpected details %+v", d)
	}
}
