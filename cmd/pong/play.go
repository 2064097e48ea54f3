package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagPlayRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

The game opens on a menu: Left/Right picks the opponent (AI or a second
human on W/S), Enter starts. There is no way back to the menu; quit and
start again for a new game.

Controls:
  Up/Down     - Right paddle
  W/S         - Left paddle
  Ctrl+S      - Save a PNG screenshot to ~/.pong/screenshots
  ?           - Show all keys
  Q/Ctrl+C    - Quit

Terminals do not report key releases, so a key counts as held for
input.hold_window after its last press or repeat.

Examples:
  pong play
  pong play --record
  pong play --fps 30 --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlayRecord, "record", false, "Save this session's input as a recording")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger, closer := mustLogger(cfg, false)
	defer closer.Close()

	// Get terminal size early; the first WindowSizeMsg corrects it
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open recordings storage only when recording
	var store *storage.Store
	if flagPlayRecord {
		var err error
		store, err = storage.Open(cfg.Storage.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open recordings database: %v\n", err)
			logger.Warn("recording disabled", "error", err)
			// Continue without storage - game still works
			store = nil
		}
	}

	opts := tui.Options{
		Runtime:       core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: cfg.TickRate},
		Keys:          cfg.Keys,
		HoldWindow:    cfg.Input.HoldWindow,
		Store:         store,
		Record:        flagPlayRecord,
		Frontend:      "tui",
		Player:        currentUser(),
		ScreenshotDir: screenshotDir(),
		Logger:        logger,
	}

	logger.Info("session started", "frontend", "tui", "fps", cfg.TickRate, "record", store != nil)
	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// screenshotDir returns ~/.pong/screenshots, or empty to disable screenshots.
func screenshotDir() string {
	dir := config.UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "screenshots")
}

// currentUser names the local player in recordings.
func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
