package racer

import (
	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/registry"
)

// Track is a named variation of the base configuration.
type Track struct {
	Info registry.Info
	Tune func(cfg *config.RacerConfig)
}

// Tracks lists every built-in track.
var Tracks = []Track{
	{
		Info: registry.Info{
			ID:          "classic",
			Title:       "Classic Highway",
			Description: "Three hazards, five hits, steady traffic.",
		},
		Tune: func(*config.RacerConfig) {},
	},
	{
		Info: registry.Info{
			ID:          "cruise",
			Title:       "Sunday Cruise",
			Description: "Slower road and a sturdier car.",
		},
		Tune: func(cfg *config.RacerConfig) {
			cfg.Physics.RoadSpeed = 300
			cfg.Player.MaxHealth = 8
		},
	},
	{
		Info: registry.Info{
			ID:          "rush",
			Title:       "Rush Hour",
			Description: "Fast road, quick steering, three hits.",
		},
		Tune: func(cfg *config.RacerConfig) {
			cfg.Physics.RoadSpeed = 560
			cfg.Physics.PlayerSpeed = 320
			cfg.Player.MaxHealth = 3
		},
	},
}

// Register the tracks with the registry
func init() {
	for _, tr := range Tracks {
		tr := tr
		registry.Register(tr.Info, func() registry.Game {
			return New(tr)
		})
	}
}
