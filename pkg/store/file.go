package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tableflip.dev/habit/pkg/habit"
)

// filePersistence keeps every habit as one line of a flat file.
type filePersistence struct {
	path     string
	capacity int
	logger   *slog.Logger
}

func newFilePersistence(path string, capacity int, logger *slog.Logger) *filePersistence {
	return &filePersistence{path: path, capacity: capacity, logger: logger}
}

func (p *filePersistence) Location() string { return p.path }

func (p *filePersistence) Load(_ context.Context, now time.Time) ([]*habit.Habit, error) {
	f, err := os.Open(p.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			p.logger.Warn("cannot read store, starting empty", "path", p.path, "err", err)
		}
		return nil, nil
	}
	defer f.Close()

	// Overlong lines are read whole and skipped like any malformed row.
	var rows []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			rows = append(rows, line)
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.logger.Warn("stopped reading store early", "path", p.path, "err", err)
			}
			break
		}
	}
	return hydrate(rows, now, p.capacity, p.logger), nil
}

// Save writes every habit to a temporary file next to the store and renames
// it into place, so readers see either the old or the new ledger.
func (p *filePersistence) Save(_ context.Context, habits []*habit.Habit) error {
	if p.path == "" {
		return fmt.Errorf("%w: path unknown", ErrStorageUnavailable)
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("%w: ensure dir: %v", ErrStorageUnavailable, err)
	}

	var b strings.Builder
	for _, h := range habits {
		if h == nil {
			continue
		}
		b.WriteString(EncodeRow(h))
		b.WriteByte('\n')
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		p.logger.Error("save failed", "path", p.path, "err", err)
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		_ = os.Remove(tmp)
		p.logger.Error("save failed", "path", p.path, "err", err)
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	p.logger.Debug("saved", "path", p.path, "habits", len(habits))
	return nil
}

func (p *filePersistence) Watch(ctx context.Context) (<-chan Event, error) {
	return watchPath(ctx, filepath.Dir(p.path), func(name string) bool {
		return filepath.Clean(name) == filepath.Clean(p.path)
	})
}
