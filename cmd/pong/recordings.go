package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var (
	flagRecordingsLimit  int
	flagRecordingsBrowse bool
)

var recordingsCmd = &cobra.Command{
	Use:   "recordings",
	Short: "List saved recordings",
	Long: `List the most recent saved recordings.

With --browse, opens an interactive table: Enter replays the selected
recording, d deletes it, q quits.

Examples:
  pong recordings
  pong recordings --limit 50
  pong recordings --browse`,
	Args: cobra.NoArgs,
	Run:  runRecordings,
}

func init() {
	recordingsCmd.Flags().IntVar(&flagRecordingsLimit, "limit", 20, "Number of recordings to list")
	recordingsCmd.Flags().BoolVar(&flagRecordingsBrowse, "browse", false, "Browse and replay recordings interactively")
}

func runRecordings(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	store := openStore(cfg)
	defer store.Close()

	if flagRecordingsBrowse {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunRecordingsBrowser(store, width, height); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	recs, err := store.ListRecordings(flagRecordingsLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving recordings: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recordings")
	fmt.Println()

	if len(recs) == 0 {
		fmt.Println("No recordings saved yet.")
		fmt.Println()
		fmt.Println("Play 'pong play --record' to save one.")
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-8s  %-12s  %-7s  %-8s  %s\n", "ID", "Frontend", "Player", "Frames", "Length", "Date")
	fmt.Printf("  %-5s  %-8s  %-12s  %-7s  %-8s  %s\n", "--", "--------", "------", "------", "------", "----")

	for _, r := range recs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-5d  %-8s  %-12s  %-7d  %-8s  %s\n",
			r.ID, r.Frontend, player, r.FrameCount,
			r.Duration.Round(100*time.Millisecond),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
