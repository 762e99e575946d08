package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gem-hunters/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Gem Hunters SSH server",
	Long: `Start an SSH server that lets players connect and play.

Each SSH connection gets its own hot-seat game for two players sharing the
connecting terminal. Finished matches are stored in one shared history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gemhunters/host_key

Examples:
  gemhunters serve                           # Listen on :23234 with auto-generated key
  gemhunters serve --ssh :2222               # Listen on port 2222
  gemhunters serve --host-key ./my_host_key  # Use specific host key
  gemhunters serve --db ./matches.db         # Use specific database

Players can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := log.InfoLevel
	if flagLogLevel != "" {
		if level, err = log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
		}
	}

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        cfg,
		LogLevel:    level,
	}
	if !cfg.Storage.Disabled {
		srvCfg.DBPath = cfg.Storage.DBPath
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Gem Hunters SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
