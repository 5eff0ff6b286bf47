package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-racer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available tracks",
	Long:  `Shows a list of all registered tracks.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	tracks := registry.List()

	if len(tracks) == 0 {
		fmt.Println("No tracks available.")
		return
	}

	fmt.Println("Available tracks:")
	fmt.Println()

	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, t := range tracks {
		maxIDLen = max(maxIDLen, len(t.ID))
		maxTitleLen = max(maxTitleLen, len(t.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----------")

	for _, t := range tracks {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, t.ID, maxTitleLen, t.Title, t.Description)
	}

	fmt.Println()
	fmt.Println("Run 'racer play <id>' to race.")
}
