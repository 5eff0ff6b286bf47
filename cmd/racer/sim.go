package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/games/racer"
	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

var (
	flagSimSeconds float64
	flagSimVerbose bool
	flagSimSave    bool
)

var simCmd = &cobra.Command{
	Use:   "sim <track>",
	Short: "Run a headless autopilot race",
	Long: `Run a race without a terminal UI. The autopilot steers, frames advance
at a fixed 1/fps step, and a summary is printed when the run ends or the
time limit is reached. With the same --seed the result is reproducible.

Examples:
  racer sim classic
  racer sim rush --seconds 120 --seed 42 -v
  racer sim cruise --save`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 60, "Simulated time limit")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log every hit")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the runs database")
}

func runSim(_ *cobra.Command, args []string) {
	trackID := args[0]

	level := log.InfoLevel
	if flagSimVerbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "racer-sim",
		Level:           level,
	})
	racer.SetConfigPath(flagConfig)
	racer.SetLogger(logger)

	created, err := registry.Create(trackID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'racer list' to see available tracks.")
		os.Exit(1)
	}
	game, ok := created.(*racer.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: track %q cannot run headless\n", trackID)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	game.Reset(cfg)

	maxFrames := int(flagSimSeconds * float64(max(cfg.TickRate, 1)))
	var state core.GameState
	for i := 0; i < maxFrames; i++ {
		state = game.Step(game.Autopilot()).State
		if state.GameOver {
			break
		}
	}

	st := game.Stats()
	outcome := "survived"
	if state.GameOver {
		outcome = "crashed"
	}

	fmt.Printf("Track:    %s\n", game.Title())
	fmt.Printf("Seed:     %d\n", cfg.Seed)
	fmt.Printf("Outcome:  %s after %.1fs (%d frames)\n", outcome, st.Elapsed, st.Frames)
	fmt.Printf("Score:    %d\n", state.Score)
	fmt.Printf("Distance: %.0f\n", st.Distance)
	fmt.Printf("Hits:     %d\n", st.Hits)
	fmt.Printf("Health:   %d\n", state.Health)

	if !flagSimSave || state.Score <= 0 {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("could not open runs database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	best, err := store.BestScore(trackID)
	if err != nil {
		logger.Warn("could not read best score", "error", err)
	}

	id, err := store.SaveRun(storage.RunRecord{
		TrackID:  trackID,
		Score:    state.Score,
		Distance: st.Distance,
		Hits:     st.Hits,
		Frames:   st.Frames,
		Seconds:  st.Elapsed,
		Seed:     cfg.Seed,
	})
	if err != nil {
		logger.Error("could not save run", "error", err)
		return
	}
	logger.Info("run saved", "id", id)
	if state.Score > best {
		fmt.Printf("New best on %s (previous %d)\n", game.Title(), best)
	}
}
