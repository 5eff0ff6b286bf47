package racer

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/sim"
)

type recordingSink struct {
	sfx        []sim.Sfx
	musicPlays int
	musicStops int
}

func (r *recordingSink) PlaySfx(s sim.Sfx, _ float64) { r.sfx = append(r.sfx, s) }
func (r *recordingSink) PlayMusic(float64)            { r.musicPlays++ }
func (r *recordingSink) StopMusic()                   { r.musicStops++ }

func newTestGame(t *testing.T, seed int64) (*Game, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	SetSoundSink(sink)
	t.Cleanup(func() { SetSoundSink(nil) })

	g := New(Tracks[0])
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g, sink
}

// clearObstacles parks every obstacle far ahead of the player.
func clearObstacles(g *Game) {
	for i := range g.sim.Registry().Obstacles {
		g.sim.Registry().Obstacles[i].Pos = core.Vec2{X: 1500, Y: float64(i) * 200}
	}
}

func TestTracksRegistered(t *testing.T) {
	for _, id := range []string{"classic", "cruise", "rush"} {
		if !registry.Exists(id) {
			t.Errorf("track %q should be registered", id)
		}
	}
}

func TestParamsFromDefaultConfig(t *testing.T) {
	got := ParamsFromConfig(config.DefaultRacerConfig())
	if !reflect.DeepEqual(got, sim.DefaultParams()) {
		t.Errorf("default config should map to default params:\n%+v\n%+v", got, sim.DefaultParams())
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch (i / 40) % 3 {
		case 0:
			inputs[i].Set(core.ActionUp)
		case 2:
			inputs[i].Set(core.ActionDown)
		}
	}

	run := func() (*Game, core.GameState) {
		g, _ := newTestGame(t, 12345)
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
		}
		return g, st
	}

	g1, s1 := run()
	g2, s2 := run()

	if s1 != s2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", s1, s2)
	}
	if !reflect.DeepEqual(g1.sim.Registry().Obstacles, g2.sim.Registry().Obstacles) {
		t.Error("Determinism failed: obstacle positions differ")
	}
}

func TestContactTracker(t *testing.T) {
	reg := sim.NewRegistry(core.Vec2{X: -500})
	reg.AddObstacle(sim.Obstacle{Label: sim.ObstacleLabel(0), Pos: core.Vec2{X: -480}, Collidable: true})
	reg.AddObstacle(sim.Obstacle{Label: sim.ObstacleLabel(1), Pos: core.Vec2{X: 900}, Collidable: true})

	ct := NewContactTracker(core.Vec2{X: 90, Y: 44}, core.Vec2{X: 56, Y: 56})
	var q sim.EventQueue

	ct.Detect(reg, &q)
	events := q.Drain()
	if len(events) != 1 || events[0].State != sim.ContactBegin || !events[0].Involves(sim.PlayerLabel) {
		t.Fatalf("expected one begin event with the player, got %+v", events)
	}

	// Still overlapping: no new events.
	ct.Detect(reg, &q)
	if q.Len() != 0 {
		t.Errorf("continuous contact should not repeat, got %+v", q.Drain())
	}

	reg.Obstacles[0].Pos.X = 0
	ct.Detect(reg, &q)
	events = q.Drain()
	if len(events) != 1 || events[0].State != sim.ContactEnd {
		t.Fatalf("expected one end event, got %+v", events)
	}
	if ct.Active() != 0 {
		t.Errorf("no contacts should remain, got %d", ct.Active())
	}
}

func TestContactTrackerReportsObstaclePairs(t *testing.T) {
	reg := sim.NewRegistry(core.Vec2{X: -500})
	reg.AddObstacle(sim.Obstacle{Label: sim.ObstacleLabel(0), Pos: core.Vec2{X: 900}, Collidable: true})
	reg.AddObstacle(sim.Obstacle{Label: sim.ObstacleLabel(1), Pos: core.Vec2{X: 910}, Collidable: true})

	ct := NewContactTracker(core.Vec2{X: 90, Y: 44}, core.Vec2{X: 56, Y: 56})
	var q sim.EventQueue
	ct.Detect(reg, &q)

	events := q.Drain()
	if len(events) != 1 || events[0].Involves(sim.PlayerLabel) {
		t.Errorf("expected one obstacle-only event, got %+v", events)
	}
}

func TestCollisionDamagesThroughHost(t *testing.T) {
	g, sink := newTestGame(t, 1)
	clearObstacles(g)
	g.sim.Registry().Obstacles[0].Pos = g.sim.Registry().Player.Pos

	st := g.Step(core.NewInputFrame()).State

	if st.Health != 4 {
		t.Errorf("health = %d, expected 4", st.Health)
	}
	txt, _ := g.Text(sim.HealthLabel)
	if txt.Value != "Health: 4" {
		t.Errorf("HUD text = %q, expected \"Health: 4\"", txt.Value)
	}
	if len(sink.sfx) != 1 || sink.sfx[0] != sim.SfxImpact {
		t.Errorf("expected one impact cue, got %v", sink.sfx)
	}

	// The obstacle is still touching the car: no second hit.
	g.Step(core.NewInputFrame())
	if g.State().Health != 4 {
		t.Errorf("continuous contact should not hurt again, health = %d", g.State().Health)
	}
}

func TestLeavingTrackEndsRun(t *testing.T) {
	g, sink := newTestGame(t, 1)
	clearObstacles(g)
	g.sim.Registry().Player.Pos.Y = 361

	st := g.Step(core.NewInputFrame()).State

	if !st.GameOver || st.Health != 0 {
		t.Fatalf("state = %+v, expected game over with 0 health", st)
	}
	if sink.musicStops < 2 { // once on Reset, once on loss
		t.Errorf("music should stop on loss, stops = %d", sink.musicStops)
	}
	if len(sink.sfx) != 1 || sink.sfx[0] != sim.SfxJingle {
		t.Errorf("expected the jingle, got %v", sink.sfx)
	}
	if txt, ok := g.Text(sim.GameOverLabel); !ok || txt.Value != "Game Over" {
		t.Errorf("game over text = %+v", txt)
	}

	// Frozen afterwards
	score := st.Score
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.State().Score != score || len(sink.sfx) != 1 {
		t.Error("run should stay frozen after loss")
	}
}

func TestPauseFreezesRun(t *testing.T) {
	g, _ := newTestGame(t, 3)
	clearObstacles(g)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.sim.Registry().Roads[0].Pos
	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	g.Step(up)

	if g.sim.Registry().Roads[0].Pos != before {
		t.Error("road should not scroll while paused")
	}
	if g.sim.Registry().Player.Pos.Y != 0 {
		t.Error("player should not steer while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("game should be unpaused")
	}
}

func TestStepDeltaScrollsByElapsedTime(t *testing.T) {
	tests := []struct {
		name string
		dts  []float64
	}{
		{"one long frame", []float64{0.1}},
		{"uneven frames", []float64{0.016, 0.05, 0.034}},
		{"zero delta", []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, 4)
			clearObstacles(g)

			total := 0.0
			for _, dt := range tt.dts {
				g.StepDelta(core.NewInputFrame(), dt)
				total += dt
			}

			st := g.Stats()
			if math.Abs(st.Elapsed-total) > 1e-9 {
				t.Errorf("elapsed = %v, expected %v", st.Elapsed, total)
			}
			if want := g.cfg.Physics.RoadSpeed * total; math.Abs(st.Distance-want) > 1e-9 {
				t.Errorf("distance = %v, expected %v", st.Distance, want)
			}
			if st.Frames != len(tt.dts) {
				t.Errorf("frames = %d, expected %d", st.Frames, len(tt.dts))
			}
		})
	}
}

func TestHealthColor(t *testing.T) {
	tests := []struct {
		hits int
		want core.Color
	}{
		{0, core.ColorGreen},
		{2, core.ColorGreen},
		{3, core.ColorYellow},
		{4, core.ColorBrightRed},
		{5, core.ColorBrightRed},
	}

	for _, tt := range tests {
		h := sim.NewHealth(5)
		for i := 0; i < tt.hits; i++ {
			h.Damage()
		}
		if got := healthColor(h); got != tt.want {
			t.Errorf("after %d hits: color = %v, expected %v", tt.hits, got, tt.want)
		}
	}
}

func TestResetStartsFreshRun(t *testing.T) {
	g, sink := newTestGame(t, 5)
	g.sim.Registry().Player.Pos.Y = -500
	g.Step(core.NewInputFrame())
	if !g.State().GameOver {
		t.Fatal("setup: run should be lost")
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 6})

	st := g.State()
	if st.GameOver || st.Health != 5 || st.Score != 0 {
		t.Errorf("Reset should start a fresh run, got %+v", st)
	}
	if sink.musicPlays != 2 {
		t.Errorf("music should restart, plays = %d", sink.musicPlays)
	}
	if _, ok := g.Text(sim.GameOverLabel); ok {
		t.Error("Reset should clear the game over text")
	}
}

func TestTrackTuning(t *testing.T) {
	var rush Track
	for _, tr := range Tracks {
		if tr.Info.ID == "rush" {
			rush = tr
		}
	}
	g := New(rush)
	g.Reset(core.DefaultConfig())

	if g.State().Health != 3 {
		t.Errorf("rush health = %d, expected 3", g.State().Health)
	}
	if g.sim.Params().RoadSpeed != 560 {
		t.Errorf("rush road speed = %f, expected 560", g.sim.Params().RoadSpeed)
	}
}

func TestGameRender(t *testing.T) {
	g, _ := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Health: 5") {
		t.Error("HUD should show health")
	}
	if !strings.ContainsRune(out, CarChar) {
		t.Error("car should be drawn")
	}
	if !strings.ContainsRune(out, RoadChar) {
		t.Error("road lines should be drawn")
	}

	// Game over box
	g.sim.Registry().Player.Pos.Y = 400
	g.Step(core.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "G a m e   O v e r") {
		t.Errorf("game over message missing:\n%s", screen.String())
	}
}
