package racer

import (
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/sim"
)

// Autopilot lookahead window and clearances, in world units.
const (
	lookBehind  = 60
	lookAhead   = 450
	threatBand  = 90
	edgeMargin  = 80
	centerSlack = 20
)

// Autopilot picks steering for the current frame: dodge the nearest obstacle
// ahead in the car's lane, otherwise drift back to the center line.
func (g *Game) Autopilot() core.InputFrame {
	frame := core.NewInputFrame()
	reg := g.sim.Registry()
	p := g.sim.Params()
	car := reg.Player.Pos

	var threat *sim.Obstacle
	for i := range reg.Obstacles {
		o := &reg.Obstacles[i]
		dx := o.Pos.X - car.X
		if dx < -lookBehind || dx > lookAhead || core.AbsF(o.Pos.Y-car.Y) >= threatBand {
			continue
		}
		if threat == nil || o.Pos.X < threat.Pos.X {
			threat = o
		}
	}

	switch {
	case threat != nil:
		// Move away from the obstacle unless that would run off the road.
		up := threat.Pos.Y < car.Y
		if up && car.Y > p.VerticalBound-edgeMargin {
			up = false
		} else if !up && car.Y < -p.VerticalBound+edgeMargin {
			up = true
		}
		if up {
			frame.Set(core.ActionUp)
		} else {
			frame.Set(core.ActionDown)
		}
	case car.Y > centerSlack:
		frame.Set(core.ActionDown)
	case car.Y < -centerSlack:
		frame.Set(core.ActionUp)
	}

	return frame
}
