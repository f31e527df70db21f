// Package config persists the logsift configuration: the base directory
// that relative paths resolve against, and optional named filter profiles.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"logsift/internal/errors"
)

// Config is the single persisted record holding the base directory.
type Config struct {
	BaseDir string `json:"base_dir"`
}

// Store loads and persists the Config record at a fixed path. The record
// is read once per process and cached; SetBaseDir is the only mutation.
// A Store with an injected path gives tests an isolated configuration.
type Store struct {
	path string

	mu     sync.Mutex
	cfg    *Config
	loaded bool
}

// DefaultPath returns the fixed configuration location
// (~/.config/logsift/config.json).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "logsift", "config.json"), nil
}

// NewStore creates a store backed by the given config file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// NewDefaultStore creates a store backed by the default config location.
func NewDefaultStore() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.NewConfigError("cannot locate config directory", "", errors.ConfigNotFound, err)
	}
	return NewStore(path), nil
}

// Path returns the config file path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Load reads the config record from disk. The first successful read is
// cached for the lifetime of the process.
func (s *Store) Load() (*Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() (*Config, error) {
	if s.loaded {
		return s.cfg, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewConfigError("config file not found, run set-base-dir first", s.path, errors.ConfigNotFound, nil)
		}
		return nil, errors.NewConfigError("cannot read config file", s.path, errors.ConfigInvalid, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewConfigError("cannot parse config file", s.path, errors.ConfigInvalid, err)
	}

	s.cfg = &cfg
	s.loaded = true
	return s.cfg, nil
}

// BaseDir returns the persisted base directory.
func (s *Store) BaseDir() (string, error) {
	cfg, err := s.Load()
	if err != nil {
		return "", err
	}
	return cfg.BaseDir, nil
}

// SetBaseDir persists dir as the base directory and updates the cached
// record. The config directory is created if needed.
func (s *Store) SetBaseDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFound(dir)
		}
		return errors.IoError("cannot access path", dir, err)
	}
	if !info.IsDir() {
		return errors.NotDirectory(dir)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := &Config{BaseDir: dir}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.NewConfigError("cannot encode config", s.path, errors.ConfigInvalid, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.NewConfigError("cannot create config directory", s.path, errors.ConfigInvalid, err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.NewConfigError("cannot write config file", s.path, errors.ConfigInvalid, err)
	}

	s.cfg = cfg
	s.loaded = true
	return nil
}

// Resolve turns a user-supplied path into an absolute one: absolute paths
// pass through untouched, relative paths are joined onto the base
// directory. The resolved path must exist.
func (s *Store) Resolve(path string) (string, error) {
	resolved := path
	if !filepath.IsAbs(path) {
		base, err := s.BaseDir()
		if err != nil {
			return "", err
		}
		resolved = filepath.Join(base, path)
	}

	if _, err := os.Stat(resolved); err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFound(resolved)
		}
		return "", errors.IoError("cannot access path", resolved, err)
	}
	return resolved, nil
}
