// gemhunters is a two-player, turn-based gem collecting game for the terminal.
//
// Usage:
//
//	gemhunters play          - Play a hot-seat game (TUI, or plain with --plain)
//	gemhunters scores        - Show recent matches and totals
//	gemhunters serve         - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for a reproducible board
//	--db <path>         - Set database path (default: ~/.gemhunters/matches.db)
//	--config <path>     - Use a custom config YAML
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gem-hunters/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gemhunters",
	Short: "Gem Hunters - a two-player gem race on a 6x6 board",
	Long: `Gem Hunters is a turn-based game for two players sharing one keyboard.
Players take turns moving across a 6x6 board, collecting gems and avoiding
obstacles. After 30 moves the player with the most gems wins.

Available commands:
  play     - Play a game
  scores   - View match history
  serve    - Start SSH server for remote play

Examples:
  gemhunters play
  gemhunters play --plain --seed 42
  gemhunters scores
  gemhunters serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to match database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg. Without a log file, logs go
// to fallback; pass io.Discard when the terminal is owned by the TUI.
// The returned close function releases the log file.
func newLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, func(), error) {
	level := log.WarnLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	w := fallback
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gemhunters",
		Level:           level,
	})
	return logger, closeFn, nil
}
