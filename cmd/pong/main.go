// pong is a two-paddle ball game for the terminal, a desktop window, or SSH.
//
// Usage:
//
//	pong play                - Play in the terminal
//	pong window              - Play in a desktop window
//	pong serve               - Start SSH server for remote play
//	pong recordings          - List or browse saved recordings
//	pong replay <id>         - Replay a saved recording
//
// Global flags:
//
//	--config <path>     - Config file (YAML or TOML)
//	--db <path>         - Recordings database (default: from config)
//	--fps <rate>        - Tick rate (default: from config)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two paddles, one ball, in your terminal",
	Long: `Pong is a two-paddle ball game rendered in software and shown in a
terminal, a desktop window, or over SSH.

Available commands:
  play        - Play in the terminal
  window      - Play in a desktop window
  serve       - Start SSH server for remote play
  recordings  - List or browse saved recordings
  replay      - Replay a saved recording

Controls:
  Up/Down     - Right paddle (or AI)
  W/S         - Left paddle
  Left/Right  - Choose opponent in the menu
  Enter       - Start

Examples:
  pong play --record
  pong window
  pong serve --ssh :2222
  pong recordings --browse
  pong replay 3 --headless`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to recordings database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordingsCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig loads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS != 0 {
		cfg.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// mustLoadConfig loads the config or exits.
func mustLoadConfig() config.Config {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the application logger. Interactive commands own the
// terminal, so they log to the configured file; serve logs to stderr.
func newLogger(cfg config.Config, toStderr bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if !toStderr {
		path := config.ExpandHome(cfg.Log.File)
		if path == "" {
			w = io.Discard
		} else {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, nil, fmt.Errorf("cannot open log file: %w", err)
			}
			w, closer = f, f
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// mustLogger builds the logger or exits.
func mustLogger(cfg config.Config, toStderr bool) (*log.Logger, io.Closer) {
	logger, closer, err := newLogger(cfg, toStderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closer
}

// openStore opens the recordings database or exits.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening recordings database: %v\n", err)
		os.Exit(1)
	}
	return store
}
