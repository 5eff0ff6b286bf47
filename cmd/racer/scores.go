package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <track>",
	Short: "Show best runs on a track",
	Long: `Display the best runs and lifetime statistics for the specified track.

Examples:
  racer scores classic
  racer scores rush --limit 25
  racer scores cruise --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every run on the track")
}

func runScores(_ *cobra.Command, args []string) {
	trackID := args[0]

	info, ok := registry.Lookup(trackID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown track %q\n", trackID)
		fmt.Fprintln(os.Stderr, "Run 'racer list' to see available tracks.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(trackID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs on %s.\n", info.Title)
		return
	}

	runs, err := store.TopRuns(trackID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", info.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'racer play %s' to set the first best score!\n", trackID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %s\n", "Rank", "Score", "Distance", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %s\n", "----", "-----", "--------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-10.0f  %-8s  %s\n",
			i+1, r.Score, r.Distance, fmt.Sprintf("%.1fs", r.Seconds), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.TrackStats(trackID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.1f  |  Hits taken: %d\n",
			stats.BestScore, stats.Runs, stats.AvgScore, stats.TotalHits)
	}
}
