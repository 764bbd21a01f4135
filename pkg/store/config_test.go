package store

import (
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/habit/pkg/ledger"
)

// isolate points the config search at dir and moves away from any
// .habit.yaml in the working directory or home.
func isolate(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("HABIT_CONFIG_PATH", dir)
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestConfigDefaults(t *testing.T) {
	isolate(t, t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Backend() != BackendFile {
		t.Fatalf("expected file backend, got %q", cfg.Backend())
	}
	if cfg.Capacity() != ledger.DefaultCapacity {
		t.Fatalf("expected capacity %d, got %d", ledger.DefaultCapacity, cfg.Capacity())
	}
	if filepath.Base(cfg.BasePath()) != ".habits.csv" {
		t.Fatalf("unexpected default path %q", cfg.BasePath())
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	isolate(t, dir)
	t.Setenv("HABIT_BACKEND", "diskv")
	t.Setenv("HABIT_PATH", filepath.Join(dir, "store"))
	t.Setenv("HABIT_CAPACITY", "4")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Backend() != BackendDiskv || cfg.Capacity() != 4 || cfg.BasePath() != filepath.Join(dir, "store") {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	isolate(t, dir)
	body := "backend: diskv\ncapacity: 0\nlog_file: " + filepath.Join(dir, "habit.log") + "\n"
	if err := os.WriteFile(filepath.Join(dir, ".habit.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Backend() != BackendDiskv {
		t.Fatalf("expected diskv backend, got %q", cfg.Backend())
	}
	if cfg.Capacity() != ledger.DefaultCapacity {
		t.Fatalf("expected capacity below 1 to fall back to default, got %d", cfg.Capacity())
	}
	if filepath.Base(cfg.BasePath()) != ".habits.d" {
		t.Fatalf("unexpected diskv default path %q", cfg.BasePath())
	}
	if cfg.LogFile() != filepath.Join(dir, "habit.log") {
		t.Fatalf("unexpected log file %q", cfg.LogFile())
	}
}

func TestConfigRejectsUnknownBackend(t *testing.T) {
	isolate(t, t.TempDir())
	t.Setenv("HABIT_BACKEND", "bolt")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
