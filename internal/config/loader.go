package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRacer loads the racer configuration.
// Search order: customPath -> ~/.racer/configs/racer.yaml -> ./configs/racer.yaml -> embedded default
//
// Files are decoded over the defaults, so a file may set only the keys it
// wants to change. The result is validated.
func LoadRacer(customPath string) (RacerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RacerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RacerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("racer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/racer.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRacerYAML)
	if err != nil {
		return DefaultRacerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the hardcoded defaults and validates the result.
func Parse(data []byte) (RacerConfig, error) {
	cfg := DefaultRacerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RacerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RacerConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable run.
func (c RacerConfig) Validate() error {
	switch {
	case c.Physics.PlayerSpeed <= 0:
		return fmt.Errorf("config: physics.player_speed must be positive, got %v", c.Physics.PlayerSpeed)
	case c.Physics.RoadSpeed <= 0:
		return fmt.Errorf("config: physics.road_speed must be positive, got %v", c.Physics.RoadSpeed)
	case c.Physics.VerticalBound <= 0:
		return fmt.Errorf("config: physics.vertical_bound must be positive, got %v", c.Physics.VerticalBound)
	case c.Player.MaxHealth < 1:
		return fmt.Errorf("config: player.max_health must be at least 1, got %d", c.Player.MaxHealth)
	case c.Road.Segments < 1:
		return fmt.Errorf("config: road.segments must be at least 1, got %d", c.Road.Segments)
	case c.Road.Spacing <= 0:
		return fmt.Errorf("config: road.spacing must be positive, got %v", c.Road.Spacing)
	case c.Road.WrapBelow > c.Road.StartX:
		return fmt.Errorf("config: road.wrap_below (%v) must not exceed road.start_x (%v)", c.Road.WrapBelow, c.Road.StartX)
	case len(c.Obstacles.Presets) == 0:
		return fmt.Errorf("config: obstacles.presets must not be empty")
	case c.Obstacles.SpawnX.Min >= c.Obstacles.SpawnX.Max:
		return fmt.Errorf("config: obstacles.spawn_x is empty: [%v, %v)", c.Obstacles.SpawnX.Min, c.Obstacles.SpawnX.Max)
	case c.Obstacles.SpawnY.Min >= c.Obstacles.SpawnY.Max:
		return fmt.Errorf("config: obstacles.spawn_y is empty: [%v, %v)", c.Obstacles.SpawnY.Min, c.Obstacles.SpawnY.Max)
	case c.Obstacles.RespawnBelow >= c.Obstacles.SpawnX.Min:
		return fmt.Errorf("config: obstacles.respawn_below (%v) must be left of spawn_x.min (%v)", c.Obstacles.RespawnBelow, c.Obstacles.SpawnX.Min)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".racer", "configs", filename)
}
