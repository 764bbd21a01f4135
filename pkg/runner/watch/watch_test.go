package watch

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/habit/pkg/app"
	"tableflip.dev/habit/pkg/store"
)

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func waitFor(t *testing.T, out *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q in:\n%s", want, out.String())
}

func TestWatchReprintsOnChange(t *testing.T) {
	color.NoColor = true
	p, err := store.Load(store.StaticConfig{Path: filepath.Join(t.TempDir(), ".habits.csv")}, nil)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	clock := func() time.Time { return time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC) }
	svc := &app.Service{Persistence: p, Clock: clock}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &syncBuffer{}
	errs := make(chan error, 1)
	go func() {
		w := Watch{Service: svc, Out: out}
		errs <- w.Do(ctx)
	}()

	waitFor(t, out, "No habits yet")

	other := &app.Service{Persistence: p, Clock: clock}
	if _, err := other.Add(context.Background(), "Stretch"); err != nil {
		t.Fatalf("add: %v", err)
	}
	waitFor(t, out, "Stretch")

	cancel()
	select {
	case err := <-errs:
		if err != nil {
			t.Fatalf("watch: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("watch did not stop after cancel")
	}
}
