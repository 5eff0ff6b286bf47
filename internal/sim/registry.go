package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Label is the stable name of an entity.
type Label string

// Well-known labels.
const (
	PlayerLabel   Label = "player1"
	HealthLabel   Label = "health_message"
	GameOverLabel Label = "game over"
)

// RoadLabel returns the label of the i-th road segment.
func RoadLabel(i int) Label {
	return Label(fmt.Sprintf("roadline_%d", i))
}

// ObstacleLabel returns the label of the i-th obstacle.
func ObstacleLabel(i int) Label {
	return Label(fmt.Sprintf("obstacle_%d", i))
}

// Kind partitions entities.
type Kind int

const (
	KindPlayer Kind = iota
	KindRoad
	KindObstacle
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindRoad:
		return "road"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// ObstaclePreset selects an obstacle's look.
type ObstaclePreset string

const (
	PresetBarrelBlue ObstaclePreset = "barrel_blue"
	PresetBarrelRed  ObstaclePreset = "barrel_red"
	PresetCone       ObstaclePreset = "cone"
)

// Player is the car steered by the user.
type Player struct {
	Label     Label
	Pos       core.Vec2
	Direction Direction
	Rotation  float64
}

// RoadSegment is one scrolling road line.
type RoadSegment struct {
	Label Label
	Pos   core.Vec2
	Scale float64
}

// Obstacle is a scrolling hazard.
type Obstacle struct {
	Label      Label
	Pos        core.Vec2
	Preset     ObstaclePreset
	Collidable bool
}

// Ref points at one entity inside a Registry.
type Ref struct {
	Kind  Kind
	Index int
}

// EntityView is a read-only snapshot of an entity for hosts.
type EntityView struct {
	Label      Label
	Kind       Kind
	Pos        core.Vec2
	Rotation   float64
	Collidable bool
	Preset     ObstaclePreset
}

// Registry stores every simulation entity, partitioned by kind.
// The set is fixed once built.
type Registry struct {
	Player    Player
	Roads     []RoadSegment
	Obstacles []Obstacle
	index     map[Label]Ref
}

// NewRegistry creates a registry holding only the player at pos.
func NewRegistry(pos core.Vec2) *Registry {
	r := &Registry{
		Player: Player{Label: PlayerLabel, Pos: pos},
		index:  make(map[Label]Ref),
	}
	r.index[PlayerLabel] = Ref{Kind: KindPlayer}
	return r
}

// AddRoad registers a road segment. Panics on a duplicate label.
func (r *Registry) AddRoad(seg RoadSegment) {
	r.claim(seg.Label, Ref{Kind: KindRoad, Index: len(r.Roads)})
	r.Roads = append(r.Roads, seg)
}

// AddObstacle registers an obstacle. Panics on a duplicate label.
func (r *Registry) AddObstacle(o Obstacle) {
	r.claim(o.Label, Ref{Kind: KindObstacle, Index: len(r.Obstacles)})
	r.Obstacles = append(r.Obstacles, o)
}

func (r *Registry) claim(l Label, ref Ref) {
	if _, exists := r.index[l]; exists {
		panic(fmt.Sprintf("sim: entity %q already registered", l))
	}
	r.index[l] = ref
}

// Lookup resolves a label. Unknown labels are programming errors and panic.
func (r *Registry) Lookup(l Label) Ref {
	ref, ok := r.index[l]
	if !ok {
		panic(fmt.Sprintf("sim: unknown entity %q", l))
	}
	return ref
}

// Position returns a mutable pointer to the entity's position.
func (r *Registry) Position(l Label) *core.Vec2 {
	ref := r.Lookup(l)
	switch ref.Kind {
	case KindRoad:
		return &r.Roads[ref.Index].Pos
	case KindObstacle:
		return &r.Obstacles[ref.Index].Pos
	default:
		return &r.Player.Pos
	}
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return 1 + len(r.Roads) + len(r.Obstacles)
}

// Each calls fn for every entity: player first, then roads, then obstacles.
func (r *Registry) Each(fn func(EntityView)) {
	fn(EntityView{
		Label:      r.Player.Label,
		Kind:       KindPlayer,
		Pos:        r.Player.Pos,
		Rotation:   r.Player.Rotation,
		Collidable: true,
	})
	for _, seg := range r.Roads {
		fn(EntityView{Label: seg.Label, Kind: KindRoad, Pos: seg.Pos})
	}
	for _, o := range r.Obstacles {
		fn(EntityView{
			Label:      o.Label,
			Kind:       KindObstacle,
			Pos:        o.Pos,
			Collidable: o.Collidable,
			Preset:     o.Preset,
		})
	}
}
