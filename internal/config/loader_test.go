package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
display:
  track_players: true
keys:
  up: ["w"]
log:
  level: debug
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !cfg.Display.TrackPlayers {
		t.Error("TrackPlayers should be true")
	}
	if !reflect.DeepEqual(cfg.Keys.Up, []string{"w"}) {
		t.Errorf("Keys.Up = %v, expected [w]", cfg.Keys.Up)
	}
	// Unset fields keep defaults
	if !reflect.DeepEqual(cfg.Keys.Down, Default().Keys.Down) {
		t.Errorf("Keys.Down = %v, expected default %v", cfg.Keys.Down, Default().Keys.Down)
	}
	if cfg.Storage.DBPath != Default().Storage.DBPath {
		t.Errorf("Storage.DBPath = %q, expected default", cfg.Storage.DBPath)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, expected debug", cfg.Log.Level)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, expected wrapped ErrNotExist", err)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"duplicate key", `keys: {up: ["x"], down: ["x"]}`},
		{"empty binding", `keys: {left: []}`},
		{"empty key name", `keys: {quit: [""]}`},
		{"bad log level", `log: {level: loud}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("display: [")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
}

func TestValidateAllowsRepeatWithinBinding(t *testing.T) {
	cfg := Default()
	cfg.Keys.Up = []string{"u", "u"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}
