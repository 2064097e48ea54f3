package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeRecord bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pong SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game, starting at the menu. With
--record, a session's input is saved when the player quits with q.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pong/host_key

Examples:
  pong serve                           # Listen on the configured address
  pong serve --ssh :2222               # Listen on port 2222
  pong serve --host-key ./my_host_key  # Use specific host key
  pong serve --record --db ./pong.db   # Save sessions to a specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes before disconnecting (default from config)")
	serveCmd.Flags().BoolVar(&flagServeRecord, "record", false, "Save each session's input as a recording")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKey = flagHostKey
	}
	if flagIdleTimeout >= 0 {
		cfg.SSH.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	logger, closer := mustLogger(cfg, true)
	defer closer.Close()

	var store *storage.Store
	if flagServeRecord {
		var err error
		store, err = storage.Open(cfg.Storage.DBPath)
		if err != nil {
			logger.Warn("recording disabled", "error", err)
			store = nil
		}
	}

	serverCfg := tui.SSHServerConfigFrom(cfg)
	serverCfg.Record = store != nil

	server, err := tui.NewSSHServer(serverCfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting pong SSH server on %s\n", serverCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	runErr := server.ListenAndServe()
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", runErr)
		os.Exit(1)
	}
}
