package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/recording"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagReplayHeadless bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a saved recording",
	Long: `Replay a saved recording in the terminal.

Replays feed the recorded input back into a fresh game at the recorded
frame times, so the result matches the original session exactly.
With --headless, runs the whole recording without drawing and prints
the final state and its hash.

Examples:
  pong replay 3
  pong replay 3 --headless`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayHeadless, "headless", false, "Print the final state instead of drawing")
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid recording id %q\n", args[0])
		os.Exit(1)
	}

	cfg := mustLoadConfig()
	store := openStore(cfg)
	rec, err := store.LoadRecording(id)
	store.Close()
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no recording #%d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'pong recordings' to see saved recordings.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading recording: %v\n", err)
		os.Exit(1)
	}

	frames, err := recording.Decode(rec.Frames)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagReplayHeadless {
		snap := recording.Replay(frames)
		fmt.Printf("Recording #%d (%s, %d frames, %s)\n", rec.ID, rec.Frontend, len(frames), recording.Duration(frames))
		fmt.Println()
		fmt.Printf("  Score:   %d - %d\n", snap.Score1, snap.Score2)
		fmt.Printf("  Mode:    %s\n", snap.Mode)
		fmt.Printf("  Ball:    (%.3f, %.3f) vel (%.3f, %.3f)\n", snap.BallX, snap.BallY, snap.BallDX, snap.BallDY)
		fmt.Printf("  Paddles: %.3f / %.3f\n", snap.Paddle1P, snap.Paddle2P)
		fmt.Printf("  Hash:    %016x\n", snap.Hash())
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	if _, err := tui.RunReplay(rec.ID, frames, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
		os.Exit(1)
	}
}
