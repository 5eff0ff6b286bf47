package racer

import (
	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/sim"
)

// ParamsFromConfig converts a validated config into simulation tunables.
func ParamsFromConfig(cfg config.RacerConfig) sim.Params {
	p := sim.DefaultParams()

	p.PlayerSpeed = cfg.Physics.PlayerSpeed
	p.RoadSpeed = cfg.Physics.RoadSpeed
	p.VerticalBound = cfg.Physics.VerticalBound
	p.Tilt = cfg.Physics.Tilt

	p.PlayerX = cfg.Player.X
	p.MaxHealth = cfg.Player.MaxHealth

	p.RoadCount = cfg.Road.Segments
	p.RoadStartX = cfg.Road.StartX
	p.RoadSpacing = cfg.Road.Spacing
	p.RoadScale = cfg.Road.Scale
	p.RoadWrapBelow = cfg.Road.WrapBelow

	p.SpawnX = sim.Range{Min: cfg.Obstacles.SpawnX.Min, Max: cfg.Obstacles.SpawnX.Max}
	p.SpawnY = sim.Range{Min: cfg.Obstacles.SpawnY.Min, Max: cfg.Obstacles.SpawnY.Max}
	p.ObstacleRespawnBelow = cfg.Obstacles.RespawnBelow
	p.ObstaclePresets = make([]sim.ObstaclePreset, len(cfg.Obstacles.Presets))
	for i, name := range cfg.Obstacles.Presets {
		p.ObstaclePresets[i] = sim.ObstaclePreset(name)
	}

	p.ImpactVolume = cfg.Audio.ImpactVolume
	p.JingleVolume = cfg.Audio.JingleVolume
	p.GameOverFontSize = cfg.HUD.GameOverFontSize
	return p
}
