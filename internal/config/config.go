// Package config provides YAML-based configuration loading for the racer.
package config

// RacerConfig contains all tunables of a run and of its host.
type RacerConfig struct {
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Road      Road      `yaml:"road"`
	Obstacles Obstacles `yaml:"obstacles"`
	Audio     Audio     `yaml:"audio"`
	HUD       HUD       `yaml:"hud"`
}

// Physics defines motion parameters.
type Physics struct {
	PlayerSpeed   float64 `yaml:"player_speed"`
	RoadSpeed     float64 `yaml:"road_speed"`
	VerticalBound float64 `yaml:"vertical_bound"`
	Tilt          float64 `yaml:"tilt"`
}

// Player defines the car.
type Player struct {
	X         float64 `yaml:"x"`
	MaxHealth int     `yaml:"max_health"`
	Width     float64 `yaml:"width"`  // Collider width
	Height    float64 `yaml:"height"` // Collider height
}

// Road defines the scrolling road lines.
type Road struct {
	Segments  int     `yaml:"segments"`
	StartX    float64 `yaml:"start_x"`
	Spacing   float64 `yaml:"spacing"`
	Scale     float64 `yaml:"scale"`
	WrapBelow float64 `yaml:"wrap_below"`
}

// Span is a half-open numeric interval.
type Span struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Obstacles defines the hazards and their respawn corridor.
type Obstacles struct {
	Presets      []string `yaml:"presets"`
	SpawnX       Span     `yaml:"spawn_x"`
	SpawnY       Span     `yaml:"spawn_y"`
	RespawnBelow float64  `yaml:"respawn_below"`
	Width        float64  `yaml:"width"`
	Height       float64  `yaml:"height"`
}

// Audio defines cue volumes (0..1).
type Audio struct {
	MusicVolume  float64 `yaml:"music_volume"`
	ImpactVolume float64 `yaml:"impact_volume"`
	JingleVolume float64 `yaml:"jingle_volume"`
}

// HUD defines text display parameters.
type HUD struct {
	GameOverFontSize float64 `yaml:"game_over_font_size"`
}
