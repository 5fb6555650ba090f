package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/typeracer/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Type Racer SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game with its own random seed.
Sound is disabled for remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.typeracer/host_key

Examples:
  typeracer serve                           # Listen on :23234 with auto-generated key
  typeracer serve --ssh :2222               # Listen on port 2222
  typeracer serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
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
	gameCfg, list, err := loadGame()
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Practice = flagPractice

	// The server log is the only output, so show session events.
	srvLogger := logger.WithPrefix("typeracer-ssh")
	if logger.GetLevel() > log.InfoLevel {
		srvLogger.SetLevel(log.InfoLevel)
	}

	server, err := tui.NewSSHServer(cfg, gameCfg, list, srvLogger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Type Racer SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
