package sim

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

// seqRand replays fixed values, cycling when exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func newTestSim(t *testing.T, mutate func(*Params)) *Simulator {
	t.Helper()
	p := DefaultParams()
	if mutate != nil {
		mutate(&p)
	}
	return New(p, rand.New(rand.NewSource(42)))
}

func beginWithPlayer(other Label) CollisionEvent {
	return CollisionEvent{A: PlayerLabel, B: other, State: ContactBegin}
}

func TestNewLayout(t *testing.T) {
	s := newTestSim(t, nil)
	reg := s.Registry()

	if len(reg.Roads) != 10 {
		t.Fatalf("expected 10 road segments, got %d", len(reg.Roads))
	}
	for i, seg := range reg.Roads {
		want := -600.0 + 150*float64(i)
		if seg.Pos.X != want {
			t.Errorf("road %d x = %f, expected %f", i, seg.Pos.X, want)
		}
		if seg.Label != RoadLabel(i) {
			t.Errorf("road %d label = %q", i, seg.Label)
		}
	}

	if len(reg.Obstacles) != 3 {
		t.Fatalf("expected 3 obstacles, got %d", len(reg.Obstacles))
	}
	p := s.Params()
	for _, o := range reg.Obstacles {
		if !p.SpawnX.Contains(o.Pos.X) || !p.SpawnY.Contains(o.Pos.Y) {
			t.Errorf("obstacle %s spawned outside corridor at %+v", o.Label, o.Pos)
		}
		if !o.Collidable {
			t.Errorf("obstacle %s should be collidable", o.Label)
		}
	}

	if reg.Player.Pos.X != -500 || reg.Player.Pos.Y != 0 {
		t.Errorf("player starts at %+v, expected (-500, 0)", reg.Player.Pos)
	}
	if s.Health().Value() != 5 || s.Status() != Running {
		t.Errorf("run should start Running with 5 health, got %s/%d", s.Status(), s.Health().Value())
	}
}

func TestRoadWrap(t *testing.T) {
	s := newTestSim(t, nil)
	reg := s.Registry()

	// Segment 0 starts at -600; one second at 400 units/s puts it at -1000,
	// past the -675 threshold, so it wraps to -1000 + 1500.
	s.Step(1.0, Input{}, nil)

	if got := reg.Roads[0].Pos.X; got != 500 {
		t.Errorf("road 0 x = %f, expected 500", got)
	}
	// Segment 9 starts at 750 and should simply scroll to 350.
	if got := reg.Roads[9].Pos.X; got != 350 {
		t.Errorf("road 9 x = %f, expected 350", got)
	}
}

func TestRoadsStayEvenlySpaced(t *testing.T) {
	s := newTestSim(t, nil)

	for frame := 0; frame < 2000; frame++ {
		s.Step(1.0/60, Input{}, nil)

		xs := make([]float64, 0, len(s.Registry().Roads))
		for _, seg := range s.Registry().Roads {
			xs = append(xs, seg.Pos.X)
		}
		sort.Float64s(xs)

		for i := 1; i < len(xs); i++ {
			if gap := xs[i] - xs[i-1]; math.Abs(gap-150) > 1e-6 {
				t.Fatalf("frame %d: gap between segments = %f, expected 150", frame, gap)
			}
		}
		if xs[0] < -675 {
			t.Fatalf("frame %d: segment left behind at %f", frame, xs[0])
		}
	}
}

func TestZeroDeltaChangesNothing(t *testing.T) {
	s := newTestSim(t, nil)
	reg := s.Registry()

	roads := append([]RoadSegment(nil), reg.Roads...)
	obstacles := append([]Obstacle(nil), reg.Obstacles...)
	player := reg.Player.Pos

	fx := s.Step(0, Input{Up: true}, nil)

	for i := range roads {
		if reg.Roads[i].Pos != roads[i].Pos {
			t.Errorf("road %d moved on a zero-delta frame", i)
		}
	}
	for i := range obstacles {
		if reg.Obstacles[i].Pos != obstacles[i].Pos {
			t.Errorf("obstacle %d moved on a zero-delta frame", i)
		}
	}
	if reg.Player.Pos != player {
		t.Errorf("player moved on a zero-delta frame: %+v", reg.Player.Pos)
	}
	if !fx.Empty() {
		t.Errorf("zero-delta frame should have no effects, got %+v", fx)
	}
}

func TestObstacleRespawn(t *testing.T) {
	// Initial placement consumes six draws, then the respawn draws 0.25 and 0.5.
	rng := &seqRand{vals: []float64{0.1, 0.1, 0.2, 0.2, 0.3, 0.3, 0.25, 0.5}}
	s := New(DefaultParams(), rng)
	reg := s.Registry()

	reg.Obstacles[1].Pos.X = -790
	reg.Obstacles[1].Pos.Y = 120
	reg.Obstacles[0].Pos.X = 1000
	reg.Obstacles[2].Pos.X = 1000

	s.Step(0.05, Input{}, nil) // 20 units: -790 -> -810

	got := reg.Obstacles[1].Pos
	if got.X != 1000 || got.Y != 0 {
		t.Errorf("respawned obstacle at %+v, expected (1000, 0)", got)
	}
	if reg.Obstacles[0].Pos.X != 980 {
		t.Errorf("non-respawned obstacle x = %f, expected 980", reg.Obstacles[0].Pos.X)
	}
}

func TestRespawnDistribution(t *testing.T) {
	p := DefaultParams()
	rng := rand.New(rand.NewSource(7))

	const draws = 20000
	obstacles := []Obstacle{{Label: ObstacleLabel(0)}}
	var sumX, sumY float64
	buckets := make([]int, 4)

	for i := 0; i < draws; i++ {
		obstacles[0].Pos.X = p.ObstacleRespawnBelow + 1
		respawned := scrollObstacles(obstacles, 2, p.ObstacleRespawnBelow, p.SpawnX, p.SpawnY, rng)
		if len(respawned) != 1 {
			t.Fatalf("draw %d: expected a respawn", i)
		}
		pos := obstacles[0].Pos
		if !p.SpawnX.Contains(pos.X) {
			t.Fatalf("x = %f outside [%f, %f)", pos.X, p.SpawnX.Min, p.SpawnX.Max)
		}
		if !p.SpawnY.Contains(pos.Y) {
			t.Fatalf("y = %f outside [%f, %f)", pos.Y, p.SpawnY.Min, p.SpawnY.Max)
		}
		sumX += pos.X
		sumY += pos.Y
		buckets[int((pos.X-p.SpawnX.Min)/200)]++
	}

	if meanX := sumX / draws; math.Abs(meanX-1200) > 15 {
		t.Errorf("mean respawn x = %f, expected about 1200", meanX)
	}
	if meanY := sumY / draws; math.Abs(meanY) > 10 {
		t.Errorf("mean respawn y = %f, expected about 0", meanY)
	}
	for i, n := range buckets {
		if n < draws/4-500 || n > draws/4+500 {
			t.Errorf("bucket %d has %d draws, expected about %d", i, n, draws/4)
		}
	}
}

func TestCollisionResolution(t *testing.T) {
	tests := []struct {
		name       string
		events     []CollisionEvent
		wantHealth int
		wantSounds int
		wantHitBy  []Label
	}{
		{
			name:       "begin with player",
			events:     []CollisionEvent{beginWithPlayer(ObstacleLabel(0))},
			wantHealth: 4,
			wantSounds: 1,
			wantHitBy:  []Label{ObstacleLabel(0)},
		},
		{
			name:       "player listed second",
			events:     []CollisionEvent{{A: ObstacleLabel(2), B: PlayerLabel, State: ContactBegin}},
			wantHealth: 4,
			wantSounds: 1,
			wantHitBy:  []Label{ObstacleLabel(2)},
		},
		{
			name:       "end with player",
			events:     []CollisionEvent{{A: PlayerLabel, B: ObstacleLabel(0), State: ContactEnd}},
			wantHealth: 5,
		},
		{
			name:       "obstacles touching each other",
			events:     []CollisionEvent{{A: ObstacleLabel(0), B: ObstacleLabel(1), State: ContactBegin}},
			wantHealth: 5,
		},
		{
			name: "repeated begins are not deduplicated",
			events: []CollisionEvent{
				beginWithPlayer(ObstacleLabel(0)),
				beginWithPlayer(ObstacleLabel(0)),
				beginWithPlayer(ObstacleLabel(1)),
			},
			wantHealth: 2,
			wantSounds: 3,
			wantHitBy:  []Label{ObstacleLabel(0), ObstacleLabel(0), ObstacleLabel(1)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSim(t, nil)
			q := &EventQueue{}
			for _, e := range tc.events {
				q.Push(e)
			}

			fx := s.Step(0, Input{}, q)

			if got := s.Health().Value(); got != tc.wantHealth {
				t.Errorf("health = %d, expected %d", got, tc.wantHealth)
			}
			if len(fx.Sounds) != tc.wantSounds {
				t.Errorf("got %d sound cues, expected %d", len(fx.Sounds), tc.wantSounds)
			}
			if len(fx.HitBy) != len(tc.wantHitBy) {
				t.Fatalf("hit by %v, expected %v", fx.HitBy, tc.wantHitBy)
			}
			for i, l := range tc.wantHitBy {
				if fx.HitBy[i] != l {
					t.Errorf("hit %d by %q, expected %q", i, fx.HitBy[i], l)
				}
			}
			for _, snd := range fx.Sounds {
				if snd.Sfx != SfxImpact || snd.Volume != 0.5 {
					t.Errorf("unexpected cue %+v", snd)
				}
			}
			if tc.wantHealth < 5 {
				last := fx.Texts[len(fx.Texts)-1]
				want := HealthText(tc.wantHealth)
				if last.Label != HealthLabel || last.Value != want {
					t.Errorf("last text = %+v, expected %q", last, want)
				}
			}
			if q.Len() != 0 {
				t.Errorf("queue should be drained, %d events left", q.Len())
			}
		})
	}
}

func TestHealthFiveToFour(t *testing.T) {
	s := newTestSim(t, nil)
	q := &EventQueue{}
	q.Push(beginWithPlayer(ObstacleLabel(1)))

	fx := s.Step(1.0/60, Input{}, q)

	if s.Health().Value() != 4 {
		t.Fatalf("health = %d, expected 4", s.Health().Value())
	}
	if len(fx.Texts) != 1 || fx.Texts[0].Value != "Health: 4" {
		t.Errorf("texts = %+v, expected a single \"Health: 4\"", fx.Texts)
	}
}

func TestLastHitLosesRunOnce(t *testing.T) {
	s := newTestSim(t, func(p *Params) { p.MaxHealth = 1 })
	q := &EventQueue{}
	q.Push(beginWithPlayer(ObstacleLabel(0)))

	fx := s.Step(1.0/60, Input{}, q)

	if s.Health().Value() != 0 {
		t.Errorf("health = %d, expected 0", s.Health().Value())
	}
	if s.Status() != Lost || !fx.Lost {
		t.Fatalf("run should be lost, status = %s", s.Status())
	}
	if !fx.StopMusic {
		t.Error("losing should stop the music")
	}

	var sawGameOver, sawJingle bool
	for _, txt := range fx.Texts {
		if txt.Label == GameOverLabel && txt.Value == "Game Over" && txt.FontSize == 128 {
			sawGameOver = true
		}
	}
	for _, snd := range fx.Sounds {
		if snd.Sfx == SfxJingle {
			sawJingle = true
		}
	}
	if !sawGameOver || !sawJingle {
		t.Errorf("terminal effects missing: %+v", fx)
	}

	// Later frames are no-ops, even with more events pending.
	for i := 0; i < 5; i++ {
		q.Push(beginWithPlayer(ObstacleLabel(0)))
		later := s.Step(1.0/60, Input{Up: true}, q)
		if !later.Empty() {
			t.Fatalf("frame %d after loss produced effects: %+v", i, later)
		}
		if q.Len() != 0 {
			t.Fatalf("frame %d after loss left events in the queue", i)
		}
	}
	if s.Status() != Lost {
		t.Error("Lost must be terminal")
	}
}

func TestOutOfBoundsForcesLoss(t *testing.T) {
	s := newTestSim(t, nil)
	s.Registry().Player.Pos.Y = 361

	fx := s.Step(1.0/60, Input{}, nil)

	if s.Health().Value() != 0 {
		t.Errorf("health = %d, expected 0", s.Health().Value())
	}
	if s.Status() != Lost || !fx.Lost {
		t.Errorf("status = %s, expected lost", s.Status())
	}
	if fx.Texts[0].Label != HealthLabel || fx.Texts[0].Value != "Health: 0" {
		t.Errorf("health text should mirror the forced zero, got %+v", fx.Texts[0])
	}
}

func TestSteeringOffTheTrack(t *testing.T) {
	s := newTestSim(t, nil)

	// 250 units/s upward: the bound at 360 is crossed after ~1.44s.
	frames := 0
	for s.Status() == Running && frames < 200 {
		s.Step(1.0/60, Input{Up: true}, nil)
		frames++
	}

	if s.Status() != Lost {
		t.Fatal("holding up should eventually leave the track")
	}
	if frames < 86 || frames > 88 {
		t.Errorf("left the track after %d frames, expected about 87", frames)
	}
	if got := s.Registry().Player.Rotation; got != 0.15 {
		t.Errorf("rotation = %f, expected 0.15", got)
	}
}

func TestLostFreezesState(t *testing.T) {
	s := newTestSim(t, nil)
	s.Registry().Player.Pos.Y = -400
	s.Step(1.0/60, Input{}, nil)

	before := append([]RoadSegment(nil), s.Registry().Roads...)
	stats := s.Stats()
	s.Step(1.0, Input{Down: true}, nil)

	for i, seg := range s.Registry().Roads {
		if seg.Pos != before[i].Pos {
			t.Errorf("road %d moved after the run was lost", i)
		}
	}
	if s.Stats() != stats {
		t.Errorf("stats changed after loss: %+v -> %+v", stats, s.Stats())
	}
}

func TestHealthNeverIncreases(t *testing.T) {
	s := newTestSim(t, func(p *Params) { p.MaxHealth = 20 })
	rng := rand.New(rand.NewSource(99))
	q := &EventQueue{}
	prev := s.Health().Value()

	for frame := 0; frame < 600; frame++ {
		for n := rng.Intn(3); n > 0; n-- {
			state := ContactBegin
			if rng.Intn(2) == 0 {
				state = ContactEnd
			}
			q.Push(CollisionEvent{A: PlayerLabel, B: ObstacleLabel(rng.Intn(3)), State: state})
		}
		in := Input{Up: rng.Intn(2) == 0, Down: rng.Intn(2) == 0}
		s.Step(1.0/60, in, q)

		h := s.Health().Value()
		if h > prev || h < 0 || h > 20 {
			t.Fatalf("frame %d: health went from %d to %d", frame, prev, h)
		}
		prev = h
	}
}

func TestInputDirection(t *testing.T) {
	tests := []struct {
		in   Input
		want Direction
	}{
		{Input{}, DirNone},
		{Input{Up: true}, DirUp},
		{Input{Down: true}, DirDown},
		{Input{Up: true, Down: true}, DirNone},
	}
	for _, tc := range tests {
		if got := tc.in.Direction(); got != tc.want {
			t.Errorf("%+v.Direction() = %d, expected %d", tc.in, got, tc.want)
		}
	}
}

func TestStatsAccumulate(t *testing.T) {
	s := newTestSim(t, nil)
	for i := 0; i < 30; i++ {
		s.Step(0.5, Input{}, nil)
	}
	st := s.Stats()
	if st.Frames != 30 || st.Elapsed != 15 || st.Distance != 6000 {
		t.Errorf("stats = %+v, expected 30 frames, 15s, 6000 units", st)
	}
}
