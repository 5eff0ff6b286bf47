package sim

import (
	"github.com/vovakirdan/tui-racer/internal/core"
)

// Stats summarizes a run so far.
type Stats struct {
	Frames   int     // Frames simulated while running
	Elapsed  float64 // Simulated seconds while running
	Distance float64 // Road units scrolled
	Hits     int     // Damaging collisions
}

// Simulator owns all state of one run. It is not safe for concurrent use;
// the host calls Step once per frame from a single goroutine.
type Simulator struct {
	params Params
	reg    *Registry
	health Health
	run    RunState
	rng    Rand
	stats  Stats
}

// New builds a run: the player, the road band and one obstacle per preset
// placed randomly inside the spawn corridor.
func New(p Params, rng Rand) *Simulator {
	reg := NewRegistry(core.Vec2{X: p.PlayerX})
	for i := 0; i < p.RoadCount; i++ {
		reg.AddRoad(RoadSegment{
			Label: RoadLabel(i),
			Pos:   core.Vec2{X: p.RoadStartX + p.RoadSpacing*float64(i)},
			Scale: p.RoadScale,
		})
	}
	for i, preset := range p.ObstaclePresets {
		reg.AddObstacle(Obstacle{
			Label:      ObstacleLabel(i),
			Pos:        core.Vec2{X: uniform(rng, p.SpawnX), Y: uniform(rng, p.SpawnY)},
			Preset:     preset,
			Collidable: true,
		})
	}

	return &Simulator{
		params: p,
		reg:    reg,
		health: NewHealth(p.MaxHealth),
		rng:    rng,
	}
}

// Step advances the run by dt seconds.
//
// Pending events are always drained, so none leak into the next frame. Once
// the run is Lost, Step changes nothing and returns empty Effects.
func (s *Simulator) Step(dt float64, in Input, q *EventQueue) Effects {
	var events []CollisionEvent
	if q != nil {
		events = q.Drain()
	}

	var fx Effects
	if s.run.Over() {
		return fx
	}
	if dt < 0 {
		dt = 0
	}

	distance := s.params.RoadSpeed * dt
	scrollRoads(s.reg.Roads, distance, s.params.RoadWrapBelow, s.params.TileSpan())
	scrollObstacles(s.reg.Obstacles, distance, s.params.ObstacleRespawnBelow,
		s.params.SpawnX, s.params.SpawnY, s.rng)

	s.movePlayer(dt, in.Direction(), &fx)

	s.stats.Hits += resolveCollisions(events, &s.health, &s.params, &fx)

	s.run.Check(s.health, &s.params, &fx)

	s.stats.Frames++
	s.stats.Elapsed += dt
	s.stats.Distance += distance
	return fx
}

// movePlayer applies steering and the out-of-bounds rule, which empties
// health immediately.
func (s *Simulator) movePlayer(dt float64, dir Direction, fx *Effects) {
	p := &s.reg.Player
	p.Direction = dir
	p.Pos.Y += float64(dir) * s.params.PlayerSpeed * dt
	p.Rotation = float64(dir) * s.params.Tilt

	bound := s.params.VerticalBound
	if p.Pos.Y < -bound || p.Pos.Y > bound {
		if s.health.Deplete() {
			fx.setText(HealthLabel, s.health.Text(), 0)
		}
	}
}

// Registry exposes the entities for host rendering and collision detection.
// Hosts must not mutate it between frames.
func (s *Simulator) Registry() *Registry {
	return s.reg
}

// Health returns the current health.
func (s *Simulator) Health() Health {
	return s.health
}

// Status returns the run status.
func (s *Simulator) Status() RunStatus {
	return s.run.Status()
}

// Params returns the tuning the run was built with.
func (s *Simulator) Params() Params {
	return s.params
}

// Stats returns the run statistics.
func (s *Simulator) Stats() Stats {
	return s.stats
}
