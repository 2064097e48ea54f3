package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/window"
	"github.com/vovakirdan/tui-pong/internal/recording"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagWindowRecord bool

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

The window shows the same software framebuffer as the terminal, at the
size and scale set in the window section of the config. Keys are real
key-down/key-up here, so there is no hold window. Escape closes the window.

Examples:
  pong window
  pong window --record`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagWindowRecord, "record", false, "Save this session's input as a recording")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger, closer := mustLogger(cfg, false)
	defer closer.Close()

	opts := window.Options{
		Window:   cfg.Window,
		Keys:     cfg.Keys,
		TickRate: cfg.TickRate,
		Record:   flagWindowRecord,
		Logger:   logger,
	}

	game, err := window.NewGame(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("session started", "frontend", "window", "fps", cfg.TickRate, "record", flagWindowRecord)
	if err := window.Run(game, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	rec := game.Recorder()
	if rec == nil || rec.Len() == 0 {
		return
	}

	// Best-effort save, the game is already over
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: recording not saved: %v\n", err)
		logger.Warn("recording not saved", "error", err)
		return
	}
	defer store.Close()

	data, err := recording.Encode(rec.Frames())
	if err == nil {
		var id int64
		id, err = store.SaveRecording("window", currentUser(), rec.Len(), rec.Duration(), data)
		if err == nil {
			fmt.Printf("Saved recording #%d (%d frames)\n", id, rec.Len())
			logger.Info("recording saved", "id", id, "frames", rec.Len())
			return
		}
	}
	fmt.Fprintf(os.Stderr, "Warning: recording not saved: %v\n", err)
	logger.Warn("recording not saved", "error", err)
}
