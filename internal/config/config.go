// Package config provides YAML-based configuration loading for Gem Hunters.
// Gameplay rules are fixed; configuration only covers presentation, key
// bindings, storage and logging.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level configuration document.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Keys    KeysConfig    `yaml:"keys"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig controls the terminal board view.
type DisplayConfig struct {
	// TrackPlayers draws players at their live positions. The board grid
	// keeps the markers placed at setup regardless.
	TrackPlayers bool `yaml:"track_players"`
	ShowHelp     bool `yaml:"show_help"`
}

// KeysConfig lists the terminal keys bound to each action.
// Key names follow Bubble Tea (e.g. "up", "ctrl+c").
type KeysConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// StorageConfig locates the match history database.
type StorageConfig struct {
	DBPath   string `yaml:"db_path"`
	Disabled bool   `yaml:"disabled"`
}

// LogConfig sets the log level and optional log file.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means stderr (or discard under the TUI)
}

// Validate checks that every action has a key and no key is bound twice.
func (c Config) Validate() error {
	bindings := []struct {
		name string
		keys []string
	}{
		{"up", c.Keys.Up},
		{"down", c.Keys.Down},
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"restart", c.Keys.Restart},
		{"quit", c.Keys.Quit},
	}

	owner := make(map[string]string)
	for _, b := range bindings {
		if len(b.keys) == 0 {
			return fmt.Errorf("%w: no keys bound to %s", ErrInvalid, b.name)
		}
		for _, k := range b.keys {
			if k == "" {
				return fmt.Errorf("%w: empty key in %s", ErrInvalid, b.name)
			}
			if prev, ok := owner[k]; ok && prev != b.name {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, prev, b.name)
			}
			owner[k] = b.name
		}
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}
