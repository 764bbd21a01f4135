package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/habit/pkg/ledger"
)

const (
	// BackendFile stores every habit as one line of a flat file.
	BackendFile = "file"
	// BackendDiskv stores every habit as one diskv key.
	BackendDiskv = "diskv"

	defaultFilePath  = "~/.habits.csv"
	defaultDiskvPath = "~/.habits.d"
)

// Config describes where and how habits are stored.
type Config interface {
	BasePath() string
	Backend() string
	Capacity() int
	LogFile() string
}

// NewViper returns a viper instance with the habit defaults, environment
// binding and config search paths set up. Callers may bind flags to it before
// handing it to ConfigFrom.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("backend", BackendFile)
	v.SetDefault("capacity", ledger.DefaultCapacity)
	v.SetConfigName(".habit") // .yaml is implicit
	v.SetEnvPrefix("HABIT")
	v.AutomaticEnv()

	if override := os.Getenv("HABIT_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	return v
}

// ConfigFrom reads the config file, if any, and resolves the settings in v.
func ConfigFrom(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	backend := strings.ToLower(strings.TrimSpace(v.GetString("backend")))
	switch backend {
	case "":
		backend = BackendFile
	case BackendFile, BackendDiskv:
	default:
		return nil, fmt.Errorf("store: unknown backend %q (expected %s or %s)", backend, BackendFile, BackendDiskv)
	}

	path := strings.TrimSpace(v.GetString("path"))
	if path == "" {
		path = defaultFilePath
		if backend == BackendDiskv {
			path = defaultDiskvPath
		}
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("store: expand %s: %w", path, err)
	}

	logFile := strings.TrimSpace(v.GetString("log_file"))
	if logFile != "" {
		if logFile, err = homedir.Expand(logFile); err != nil {
			return nil, fmt.Errorf("store: expand log file: %w", err)
		}
	}

	capacity := v.GetInt("capacity")
	if capacity < 1 {
		capacity = ledger.DefaultCapacity
	}

	return &fileConfig{
		Path:        expanded,
		BackendName: backend,
		Max:         capacity,
		Log:         logFile,
	}, nil
}

// LoadConfig resolves the configuration from defaults, environment and the
// optional .habit.yaml.
func LoadConfig() (Config, error) {
	return ConfigFrom(NewViper())
}

type fileConfig struct {
	Path        string `json:"path"`
	BackendName string `json:"backend"`
	Max         int    `json:"capacity"`
	Log         string `json:"log_file,omitempty"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) Backend() string  { return f.BackendName }
func (f *fileConfig) Capacity() int    { return f.Max }
func (f *fileConfig) LogFile() string  { return f.Log }

// StaticConfig is a Config with fixed values, mostly for tests and embedding.
type StaticConfig struct {
	Path        string
	BackendName string
	Max         int
	Log         string
}

func (s StaticConfig) BasePath() string { return s.Path }
func (s StaticConfig) Backend() string {
	if s.BackendName == "" {
		return BackendFile
	}
	return s.BackendName
}
func (s StaticConfig) Capacity() int {
	if s.Max < 1 {
		return ledger.DefaultCapacity
	}
	return s.Max
}
func (s StaticConfig) LogFile() string { return s.Log }
