package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gem-hunters/internal/config"
	"github.com/vovakirdan/gem-hunters/internal/core"
	"github.com/vovakirdan/gem-hunters/internal/games/gemhunt"
	"github.com/vovakirdan/gem-hunters/internal/platform/console"
	"github.com/vovakirdan/gem-hunters/internal/platform/tui"
	"github.com/vovakirdan/gem-hunters/internal/storage"
)

var flagPlain bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a hot-seat game",
	Long: `Start a two-player game on this terminal.

Controls (default bindings, see config):
  U/D/L/R or arrows - Move the current player
  N                 - New game (after game over)
  Q/Ctrl+C          - Quit

Plain mode prints the board as text and reads one key per move, like a
classic console game. It is used automatically when stdin is not a terminal.

Examples:
  gemhunters play
  gemhunters play --seed 42
  gemhunters play --plain
  echo "RDRDLU" | gemhunters play --plain`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use plain text console mode instead of the TUI")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	plain := flagPlain || !console.IsTerminal(os.Stdin)

	// Log lines would interleave with the board, so without a log file
	// they reach stderr only when asked for in plain mode.
	var fallback io.Writer = io.Discard
	if plain && flagLogLevel != "" {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger(cfg.Log, fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	store := openStore(cfg.Storage, logger)
	if store != nil {
		defer store.Close()
	}

	if plain {
		return runConsole(rc, store, logger)
	}
	return tui.Run(rc, tui.Options{
		Store:  store,
		Config: cfg,
		Logger: logger,
	})
}

// openStore opens the match history. Failures are logged and play
// continues without history.
func openStore(cfg config.StorageConfig, logger *log.Logger) *storage.Store {
	if cfg.Disabled || cfg.DBPath == "" {
		return nil
	}
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open match database", "error", err)
		return nil
	}
	return store
}

// runConsole plays one game on stdin/stdout. A terminal is switched to raw
// mode so every key press is a move; piped input is read token by token.
func runConsole(rc core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	game := gemhunt.New(rc, gemhunt.WithLogger(logger))

	var (
		in  gemhunt.Input
		out gemhunt.Output
	)
	if console.IsTerminal(os.Stdin) {
		restore, err := console.MakeRaw(os.Stdin)
		if err != nil {
			return err
		}
		defer restore()
		in = console.NewRawKeyReader(os.Stdin, os.Stdout)
		out = console.NewRawPrinter(os.Stdout)
	} else {
		in = console.NewKeyReader(os.Stdin)
		out = console.NewPrinter(os.Stdout)
	}

	if err := game.Run(in, out); err != nil {
		if errors.Is(err, console.ErrInterrupted) {
			return nil
		}
		return fmt.Errorf("game aborted after %d moves: %w", game.Turns(), err)
	}

	if store != nil {
		if _, err := store.SaveMatch(storage.RecordFromResult(game.Result())); err != nil {
			logger.Warn("could not save match", "error", err)
		}
	}
	return nil
}
