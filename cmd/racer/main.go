// racer is an endless-runner road racer for the terminal.
//
// Usage:
//
//	racer list               - List available tracks
//	racer play <track>       - Race on a track
//	racer menu               - Pick tracks interactively
//	racer serve              - Start SSH server for remote play
//	racer scores <track>     - Show best runs on a track
//	racer sim <track>        - Run a headless autopilot race
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--db <path>      - Set database path (default: ~/.racer/runs.db)
//	--config <path>  - Use a custom racer.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the racer to register its tracks
	_ "github.com/vovakirdan/tui-racer/internal/games/racer"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagMute    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Road Racer - dodge traffic in your terminal",
	Long: `Road Racer is an endless runner: steer your car up and down the road,
dodge barrels and cones, and see how far you get before your health runs out.

Available commands:
  list     - Show all tracks
  play     - Race on a specific track
  menu     - Interactive track picker
  serve    - Start SSH server for remote play
  scores   - View best runs
  sim      - Headless autopilot race

Examples:
  racer list
  racer play classic
  racer menu
  racer serve --ssh :2222
  racer scores rush
  racer sim classic --seconds 60 --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.racer/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom racer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Write debug log to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}
