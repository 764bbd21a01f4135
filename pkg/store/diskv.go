package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/habit/pkg/habit"
)

const rowsBucket = "rows"

// diskvPersistence keeps every habit under its own diskv key, named after
// its position in the ledger.
type diskvPersistence struct {
	d        *diskv.Diskv
	basePath string
	capacity int
	logger   *slog.Logger
}

func newDiskvPersistence(basePath string, capacity int, logger *slog.Logger) *diskvPersistence {
	return &diskvPersistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			TempDir:           filepath.Join(basePath, ".tmp"),
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      64 * 1024,
		}),
		basePath: basePath,
		capacity: capacity,
		logger:   logger,
	}
}

func (p *diskvPersistence) Location() string { return p.basePath }

func (p *diskvPersistence) Load(ctx context.Context, now time.Time) ([]*habit.Habit, error) {
	if _, err := os.Stat(p.basePath); err != nil {
		if !os.IsNotExist(err) {
			p.logger.Warn("cannot read store, starting empty", "path", p.basePath, "err", err)
		}
		return nil, nil
	}

	keys := p.keys(ctx)
	rows := make([]string, 0, len(keys))
	for _, key := range keys {
		val, err := p.d.Read(key)
		if err != nil {
			p.logger.Warn("skipping unreadable key", "key", key, "err", err)
			continue
		}
		rows = append(rows, string(val))
	}
	return hydrate(rows, now, p.capacity, p.logger), nil
}

// Save writes one key per habit and erases keys left over from a longer
// ledger.
func (p *diskvPersistence) Save(ctx context.Context, habits []*habit.Habit) error {
	if p.basePath == "" {
		return fmt.Errorf("%w: base path unknown", ErrStorageUnavailable)
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("%w: ensure base path: %v", ErrStorageUnavailable, err)
	}

	written := make(map[string]struct{}, len(habits))
	i := 0
	for _, h := range habits {
		if h == nil {
			continue
		}
		key := toKey(i)
		if err := p.d.Write(key, []byte(EncodeRow(h))); err != nil {
			p.logger.Error("save failed", "key", key, "err", err)
			return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, key, err)
		}
		written[key] = struct{}{}
		i++
	}

	for _, key := range p.keys(ctx) {
		if _, ok := written[key]; ok {
			continue
		}
		if err := p.d.Erase(key); err != nil {
			p.logger.Error("erase stale key failed", "key", key, "err", err)
			return fmt.Errorf("%w: erase %s: %v", ErrStorageUnavailable, key, err)
		}
	}
	p.logger.Debug("saved", "path", p.basePath, "habits", i)
	return nil
}

func (p *diskvPersistence) Watch(ctx context.Context) (<-chan Event, error) {
	bucket := filepath.Join(p.basePath, rowsBucket)
	if err := os.MkdirAll(bucket, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure bucket: %w", err)
	}
	return watchPath(ctx, bucket, func(name string) bool {
		_, err := strconv.Atoi(filepath.Base(name))
		return err == nil
	})
}

// keys returns the stored row keys in ledger order.
func (p *diskvPersistence) keys(ctx context.Context) []string {
	var keys []string
	for key := range p.d.KeysPrefix(rowsBucket+"-", ctx.Done()) {
		if _, ok := positionOf(key); ok {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := positionOf(keys[i])
		b, _ := positionOf(keys[j])
		return a < b
	})
	return keys
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `rows-NNN`.
func toKey(position int) string {
	return fmt.Sprintf("%s-%03d", rowsBucket, position)
}

func positionOf(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, rowsBucket+"-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
