// Package config loads the run settings of the polycubes command from a YAML
// file and turns them into a cache store and generator options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polycubes/cache"
	"github.com/katalvlaran/polycubes/polycube"
)

// Cache backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// maxFileSize bounds the config file we are willing to read.
const maxFileSize = 1 << 20

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// CacheConfig selects and locates the cache store.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Backend    string `yaml:"backend"`
	Dir        string `yaml:"dir"`
	SQLitePath string `yaml:"sqlite_path"`
}

// Config is the root of the YAML document.
type Config struct {
	Cache         CacheConfig `yaml:"cache"`
	Workers       int         `yaml:"workers"`
	ProgressEvery int         `yaml:"progress_every"`
}

// Default returns the settings used when no file is given: file cache in the
// working directory, sequential build, progress every 100 base shapes.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled:    true,
			Backend:    BackendFile,
			Dir:        ".",
			SQLitePath: "polycubes.db",
		},
		Workers:       polycube.DefaultWorkers,
		ProgressEvery: polycube.DefaultProgressEvery,
	}
}

// Load reads a YAML file over Default, so omitted keys keep their defaults.
// Unknown keys are rejected. The result is validated.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile:
		if c.Cache.Enabled && c.Cache.Dir == "" {
			return fmt.Errorf("%w: cache.dir must be set for the file backend", ErrInvalid)
		}
	case BackendSQLite:
		if c.Cache.Enabled && c.Cache.SQLitePath == "" {
			return fmt.Errorf("%w: cache.sqlite_path must be set for the sqlite backend", ErrInvalid)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown cache.backend %q", ErrInvalid, c.Cache.Backend)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	if c.ProgressEvery < 1 {
		return fmt.Errorf("%w: progress_every must be >= 1, got %d", ErrInvalid, c.ProgressEvery)
	}
	return nil
}

// OpenStore builds the configured cache store. It returns a nil store when
// caching is disabled. closeFn must be called once the store is no longer used.
func (c *Config) OpenStore() (store cache.Store, closeFn func() error, err error) {
	noop := func() error { return nil }
	if !c.Cache.Enabled {
		return nil, noop, nil
	}
	switch c.Cache.Backend {
	case BackendFile:
		return cache.NewFile(c.Cache.Dir), noop, nil
	case BackendSQLite:
		s, err := cache.OpenSQLite(c.Cache.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case BackendMemory:
		return cache.NewMemory(), noop, nil
	}
	return nil, noop, fmt.Errorf("%w: unknown cache.backend %q", ErrInvalid, c.Cache.Backend)
}

// Options translates the settings into generator options. store may be nil.
// workers = 0 means one worker per CPU.
func (c *Config) Options(store cache.Store) []polycube.Option {
	return []polycube.Option{
		polycube.WithCache(store),
		polycube.WithWorkers(c.Workers),
		polycube.WithProgressEvery(c.ProgressEvery),
	}
}
