package config

import (
	_ "embed"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the hardcoded default configuration.
// It mirrors defaults/racer.yaml.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Physics: Physics{
			PlayerSpeed:   250,
			RoadSpeed:     400,
			VerticalBound: 360,
			Tilt:          0.15,
		},
		Player: Player{
			X:         -500,
			MaxHealth: 5,
			Width:     90,
			Height:    44,
		},
		Road: Road{
			Segments:  10,
			StartX:    -600,
			Spacing:   150,
			Scale:     0.1,
			WrapBelow: -675,
		},
		Obstacles: Obstacles{
			Presets:      []string{"barrel_blue", "barrel_red", "cone"},
			SpawnX:       Span{Min: 800, Max: 1600},
			SpawnY:       Span{Min: -300, Max: 300},
			RespawnBelow: -800,
			Width:        56,
			Height:       56,
		},
		Audio: Audio{
			MusicVolume:  0.2,
			ImpactVolume: 0.5,
			JingleVolume: 0.5,
		},
		HUD: HUD{
			GameOverFontSize: 128,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRacerYAML
}
