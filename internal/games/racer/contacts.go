package racer

import (
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/sim"
)

type pair struct {
	a, b sim.Label
}

func makePair(a, b sim.Label) pair {
	if b < a {
		a, b = b, a
	}
	return pair{a: a, b: b}
}

// ContactTracker turns overlaps between collidable entities into begin/end
// events. Obstacle pairs are reported too; the simulation ignores them.
type ContactTracker struct {
	playerSize   core.Vec2
	obstacleSize core.Vec2
	active       map[pair]bool
	bodies       []body
}

type body struct {
	label sim.Label
	box   core.Box
}

// NewContactTracker creates a tracker with the given collider sizes.
func NewContactTracker(playerSize, obstacleSize core.Vec2) *ContactTracker {
	return &ContactTracker{
		playerSize:   playerSize,
		obstacleSize: obstacleSize,
		active:       make(map[pair]bool),
	}
}

// Active returns the number of ongoing contacts.
func (ct *ContactTracker) Active() int {
	return len(ct.active)
}

// Detect compares current positions with the previous call and pushes one
// event per changed pair, in registry order.
func (ct *ContactTracker) Detect(reg *sim.Registry, q *sim.EventQueue) {
	ct.bodies = ct.bodies[:0]
	reg.Each(func(v sim.EntityView) {
		if !v.Collidable {
			return
		}
		size := ct.obstacleSize
		if v.Kind == sim.KindPlayer {
			size = ct.playerSize
		}
		ct.bodies = append(ct.bodies, body{label: v.Label, box: core.NewBox(v.Pos, size.X, size.Y)})
	})

	for i := 0; i < len(ct.bodies); i++ {
		for j := i + 1; j < len(ct.bodies); j++ {
			a, b := ct.bodies[i], ct.bodies[j]
			key := makePair(a.label, b.label)
			touching := a.box.Intersects(b.box)

			switch {
			case touching && !ct.active[key]:
				ct.active[key] = true
				q.Push(sim.CollisionEvent{A: a.label, B: b.label, State: sim.ContactBegin})
			case !touching && ct.active[key]:
				delete(ct.active, key)
				q.Push(sim.CollisionEvent{A: a.label, B: b.label, State: sim.ContactEnd})
			}
		}
	}
}
