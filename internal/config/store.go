package config

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Loader produces a fresh configuration, typically by re-reading the file
// that was found at startup.
type Loader func() (*Config, error)

// Store holds the active configuration. Reload swaps it only on success, so a
// failed reload leaves the previous configuration in effect.
type Store struct {
	current atomic.Pointer[Config]
	load    Loader
}

// NewStore creates a store holding initial. A nil initial falls back to Default.
func NewStore(initial *Config, load Loader) *Store {
	if initial == nil {
		initial = Default()
	}
	s := &Store{load: load}
	s.current.Store(initial)
	return s
}

// Current returns the active configuration snapshot. Callers must treat it as
// read-only.
func (s *Store) Current() *Config {
	return s.current.Load()
}

// Reload runs the loader and installs its result.
func (s *Store) Reload() error {
	if s.load == nil {
		return nil
	}

	cfg, err := s.load()
	if err != nil {
		logrus.Warnf("Config reload failed, keeping previous configuration: %v", err)
		return err
	}

	s.current.Store(cfg)
	logrus.Infof("Config reloaded")
	return nil
}
