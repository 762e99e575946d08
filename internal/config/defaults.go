package config

import (
	_ "embed"
)

//go:embed defaults/gemhunters.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			TrackPlayers: false,
			ShowHelp:     true,
		},
		Keys: KeysConfig{
			Up:      []string{"u", "U", "up"},
			Down:    []string{"d", "D", "down"},
			Left:    []string{"l", "L", "left"},
			Right:   []string{"r", "R", "right"},
			Restart: []string{"n"},
			Quit:    []string{"q", "ctrl+c"},
		},
		Storage: StorageConfig{
			DBPath: "~/.gemhunters/matches.db",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
