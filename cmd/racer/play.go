package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/platform/tui"
	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <track>",
	Short: "Race on a track",
	Long: `Start racing on the specified track.

Controls:
  Up/W/K     - Steer up (hold)
  Down/S/J   - Steer down (hold)
  P/Space    - Pause
  R          - Restart (after game over)
  B/Esc      - Back (when paused or after game over)
  Ctrl+S     - Save a screenshot to ~/.racer/screenshots
  Q/Ctrl+C   - Quit

Examples:
  racer play classic
  racer play rush --seed 42
  racer play cruise --config ./my-racer.yaml
  racer play classic --mute --log racer.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	trackID := args[0]

	if !registry.Exists(trackID) {
		fmt.Fprintf(os.Stderr, "Error: unknown track %q\n", trackID)
		fmt.Fprintln(os.Stderr, "Run 'racer list' to see available tracks.")
		os.Exit(1)
	}

	logger, cleanup := setupHost(true)

	game, err := registry.Create(trackID)
	if err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the race still works
		store = nil
	}

	_, runErr := tui.Run(game, store, runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
