// Package sim implements the per-frame simulation of the racer: road and
// obstacle scrolling, collision damage and the run state machine.
//
// The package is host-agnostic. It never renders, plays audio or polls
// devices; instead Step returns Effects that the host realizes.
package sim

// Range is a half-open interval [Min, Max).
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// Params holds the tunables of a run. World units follow a 1280x720 play
// area centered on the origin with y pointing up.
type Params struct {
	PlayerSpeed   float64 // Vertical move rate (units/second)
	RoadSpeed     float64 // Horizontal scroll rate (units/second)
	MaxHealth     int     // Starting and maximum health
	SpawnX        Range   // Obstacle respawn corridor, horizontal
	SpawnY        Range   // Obstacle respawn corridor, vertical
	VerticalBound float64 // Player is out of bounds when |y| > bound

	PlayerX float64 // Fixed horizontal player position
	Tilt    float64 // Rotation per unit of direction

	RoadCount     int     // Number of road segments
	RoadStartX    float64 // x of the first segment
	RoadSpacing   float64 // Distance between neighbouring segments
	RoadScale     float64 // Visual scale of a segment
	RoadWrapBelow float64 // Segments left of this x wrap around

	ObstacleRespawnBelow float64          // Obstacles left of this x respawn
	ObstaclePresets      []ObstaclePreset // One obstacle per preset

	ImpactVolume     float64
	JingleVolume     float64
	GameOverFontSize float64
}

// TileSpan is the distance a wrapped road segment jumps forward. It equals
// the length of the whole band so the segment lands behind the rightmost one.
func (p Params) TileSpan() float64 {
	return float64(p.RoadCount) * p.RoadSpacing
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		PlayerSpeed:   250,
		RoadSpeed:     400,
		MaxHealth:     5,
		SpawnX:        Range{Min: 800, Max: 1600},
		SpawnY:        Range{Min: -300, Max: 300},
		VerticalBound: 360,

		PlayerX: -500,
		Tilt:    0.15,

		RoadCount:     10,
		RoadStartX:    -600,
		RoadSpacing:   150,
		RoadScale:     0.1,
		RoadWrapBelow: -675,

		ObstacleRespawnBelow: -800,
		ObstaclePresets:      []ObstaclePreset{PresetBarrelBlue, PresetBarrelRed, PresetCone},

		ImpactVolume:     0.5,
		JingleVolume:     0.5,
		GameOverFontSize: 128,
	}
}
