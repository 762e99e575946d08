package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gem-hunters/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"", log.WarnLevel},
		{"debug", log.DebugLevel},
		{"error", log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, closeFn, err := newLogger(config.LogConfig{Level: tt.level}, io.Discard)
			if err != nil {
				t.Fatalf("newLogger() failed: %v", err)
			}
			defer closeFn()
			if logger.GetLevel() != tt.want {
				t.Errorf("GetLevel() = %v, expected %v", logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	if _, _, err := newLogger(config.LogConfig{Level: "loud"}, io.Discard); err == nil {
		t.Error("newLogger() with invalid level should fail")
	}
}

func TestNewLoggerFallbackAndFile(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := newLogger(config.LogConfig{Level: "info"}, &buf)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("hello")
	closeFn()
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("fallback output = %q, expected log line", buf.String())
	}

	path := filepath.Join(t.TempDir(), "game.log")
	buf.Reset()
	logger, closeFn, err = newLogger(config.LogConfig{Level: "info", File: path}, &buf)
	if err != nil {
		t.Fatalf("newLogger() with file failed: %v", err)
	}
	logger.Info("to file")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "to file") || buf.Len() != 0 {
		t.Errorf("log file = %q, fallback = %q, expected the line in the file only", data, buf.String())
	}
}

func TestOpenStoreDisabled(t *testing.T) {
	logger := log.New(io.Discard)
	if store := openStore(config.StorageConfig{DBPath: "x.db", Disabled: true}, logger); store != nil {
		t.Error("openStore() with history disabled should return nil")
	}

	store := openStore(config.StorageConfig{DBPath: filepath.Join(t.TempDir(), "m.db")}, logger)
	if store == nil {
		t.Fatal("openStore() = nil, expected a store")
	}
	store.Close()
}
