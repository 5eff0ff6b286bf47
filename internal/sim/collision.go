package sim

// ContactState says whether two entities started or stopped overlapping.
type ContactState int

const (
	ContactBegin ContactState = iota
	ContactEnd
)

// String returns a human-readable name for the state.
func (s ContactState) String() string {
	if s == ContactEnd {
		return "end"
	}
	return "begin"
}

// CollisionEvent reports a contact change between an unordered pair.
type CollisionEvent struct {
	A, B  Label
	State ContactState
}

// Involves reports whether l is one side of the pair.
func (e CollisionEvent) Involves(l Label) bool {
	return e.A == l || e.B == l
}

// Other returns the partner of l in the pair, or "" if l is not involved.
func (e CollisionEvent) Other(l Label) Label {
	switch l {
	case e.A:
		return e.B
	case e.B:
		return e.A
	default:
		return ""
	}
}

// EventQueue buffers collision events produced by the host between frames.
type EventQueue struct {
	events []CollisionEvent
}

// Push appends an event.
func (q *EventQueue) Push(e CollisionEvent) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events and empties the queue. The returned slice
// is owned by the caller.
func (q *EventQueue) Drain() []CollisionEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]CollisionEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// resolveCollisions turns player contact-begin events into damage. Every
// qualifying event costs one point, repeats included. It returns the number of
// hits applied.
func resolveCollisions(events []CollisionEvent, h *Health, p *Params, fx *Effects) int {
	hits := 0
	for _, e := range events {
		if !e.Involves(PlayerLabel) || e.State == ContactEnd {
			continue
		}
		if !h.Damage() {
			continue
		}
		hits++
		fx.HitBy = append(fx.HitBy, e.Other(PlayerLabel))
		fx.setText(HealthLabel, h.Text(), 0)
		fx.playSfx(SfxImpact, p.ImpactVolume)
	}
	return hits
}
