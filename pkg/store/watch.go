package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventChanged indicates the stored habits were rewritten.
	EventChanged EventType = iota
	// EventRemoved indicates the store disappeared.
	EventRemoved
)

func (t EventType) String() string {
	if t == EventRemoved {
		return "removed"
	}
	return "changed"
}

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Path string
}

// watchPath streams events for files in dir accepted by match. A burst of
// writes (a save is a write plus a rename) is coalesced into one event. The
// channel is closed once ctx is done or the watcher fails.
func watchPath(ctx context.Context, dir string, match func(name string) bool) (<-chan Event, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure watch dir: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)
	go func() {
		var mu sync.Mutex
		closed := false
		defer func() {
			mu.Lock()
			closed = true
			close(events)
			mu.Unlock()
		}()
		defer watcher.Close()

		send := func(ev Event) {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				return
			}
			select {
			case events <- ev:
			default:
				// Drop events the consumer is not ready for; the next one
				// triggers the same reload.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Type: EventChanged, Path: dir}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !match(evt.Name) {
					continue
				}
				typ := EventChanged
				if evt.Op&fsnotify.Remove == fsnotify.Remove {
					if _, err := os.Stat(evt.Name); os.IsNotExist(err) {
						typ = EventRemoved
					}
				}
				throttle.Enqueue(Event{Type: typ, Path: evt.Name}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so listeners reload
// once per burst of filesystem activity.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]string
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]string),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Type] = ev.Path
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]string)
	t.timer = nil
	t.mu.Unlock()

	// A rename onto the store shows up as remove+create; report the
	// change, not the removal, when both happened in one burst.
	if path, ok := pending[EventChanged]; ok {
		send(Event{Type: EventChanged, Path: path})
		return
	}
	if path, ok := pending[EventRemoved]; ok {
		send(Event{Type: EventRemoved, Path: path})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
