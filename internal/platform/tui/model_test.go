package tui

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/games/racer"
	"github.com/vovakirdan/tui-racer/internal/sim"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

// stubGame ends the run after a fixed number of frames.
type stubGame struct {
	frames  int
	endAt   int
	resets  int
	lastIn  core.InputFrame
	history []core.InputFrame
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.frames = 0
	g.resets++
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if !g.State().GameOver {
		g.frames++
	}
	g.lastIn = in
	g.history = append(g.history, in)
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(*core.Screen) {}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.frames * 10, GameOver: g.frames >= g.endAt}
}

func (g *stubGame) Stats() sim.Stats {
	return sim.Stats{Frames: g.frames, Distance: float64(g.frames) * 1000, Hits: 5}
}

// timedGame records the frame time it is stepped with.
type timedGame struct {
	stubGame
	dts []float64
}

func (g *timedGame) StepDelta(in core.InputFrame, dt float64) core.StepResult {
	g.dts = append(g.dts, dt)
	return g.Step(in)
}

func newTestModel(t *testing.T, g *stubGame, store *storage.Store) GameModel {
	t.Helper()
	m := NewGameModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, nil)
	m.Init()
	return m
}

func tick(m GameModel, at time.Time) GameModel {
	next, _ := m.handleTick(at)
	return next.(GameModel)
}

func TestGameModelSteeringIsHeldAcrossTicks(t *testing.T) {
	g := &stubGame{endAt: 1000}
	m := newTestModel(t, g, nil)

	now := time.Unix(2000, 0)
	next, _ := m.handleKey(keyMsg("up"), now)
	m = next.(GameModel)

	m = tick(m, now.Add(16*time.Millisecond))
	m = tick(m, now.Add(33*time.Millisecond))
	m = tick(m, now.Add(300*time.Millisecond))
	m = tick(m, now.Add(600*time.Millisecond))

	for i := 0; i < 3; i++ {
		if !g.history[i].Has(core.ActionUp) {
			t.Errorf("tick %d: up should be held until the terminal starts repeating", i)
		}
	}
	if g.history[3].Has(core.ActionUp) {
		t.Error("up should be released when no repeat follows the press")
	}
}

func TestGameModelFrameDelta(t *testing.T) {
	ms := time.Millisecond
	start := time.Unix(2000, 0)

	tests := []struct {
		name  string
		ticks []time.Duration
		want  []float64
	}{
		{"first tick uses nominal step", []time.Duration{0}, []float64{1.0 / 60}},
		{"spaced ticks", []time.Duration{0, 100 * ms, 150 * ms}, []float64{1.0 / 60, 0.1, 0.05}},
		{"stall is capped", []time.Duration{0, 5 * time.Second}, []float64{1.0 / 60, 0.1}},
		{"clock going back", []time.Duration{0, -10 * ms}, []float64{1.0 / 60, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &timedGame{stubGame: stubGame{endAt: 1000}}
			m := NewGameModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, nil)
			m.Init()
			for _, at := range tt.ticks {
				m = tick(m, start.Add(at))
			}

			if len(g.dts) != len(tt.want) {
				t.Fatalf("stepped %d times, expected %d", len(g.dts), len(tt.want))
			}
			for i, want := range tt.want {
				if math.Abs(g.dts[i]-want) > 1e-9 {
					t.Errorf("frame %d dt = %v, expected %v", i, g.dts[i], want)
				}
			}
		})
	}
}

func TestGameModelScrollsByWallClock(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "racer.yaml")
	if err := os.WriteFile(cfgPath, []byte("physics:\n  road_speed: 400\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	racer.SetConfigPath(cfgPath)
	t.Cleanup(func() { racer.SetConfigPath("") })

	g := racer.New(racer.Tracks[0])
	m := NewGameModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, nil)
	m.Init()

	start := time.Unix(2000, 0)
	for i := 0; i <= 10; i++ {
		next, _ := m.Update(TickMsg(start.Add(time.Duration(i) * 100 * time.Millisecond)))
		m = next.(GameModel)
	}

	st := g.Stats()
	wantElapsed := 1.0/60 + 1.0
	if math.Abs(st.Elapsed-wantElapsed) > 1e-9 {
		t.Errorf("elapsed = %.4fs, expected %.4fs", st.Elapsed, wantElapsed)
	}
	if want := 400 * wantElapsed; math.Abs(st.Distance-want) > 1e-6 {
		t.Errorf("distance = %.1f, expected %.1f", st.Distance, want)
	}
}

func TestGameModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{endAt: 3}
	m := newTestModel(t, g, store)

	now := time.Unix(2000, 0)
	for i := 0; i < 10; i++ {
		m = tick(m, now)
	}

	runs, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly one saved run, got %d", len(runs))
	}
	if runs[0].Score != 30 || runs[0].Distance != 3000 || runs[0].Hits != 5 || runs[0].Seed != 7 {
		t.Errorf("saved run = %+v", runs[0])
	}
}

func TestGameModelRestartAndBack(t *testing.T) {
	g := &stubGame{endAt: 1}
	m := newTestModel(t, g, nil)
	now := time.Unix(2000, 0)

	m = tick(m, now)
	if !m.State().GameOver {
		t.Fatal("setup: run should be over")
	}

	next, _ := m.handleKey(keyMsg("r"), now)
	m = tick(next.(GameModel), now)
	if g.resets != 2 {
		t.Errorf("R after game over should reset, resets = %d", g.resets)
	}

	m = tick(m, now)
	next, _ = m.handleKey(keyMsg("b"), now)
	if !next.(GameModel).BackToMenu() {
		t.Error("B after game over should go back to the menu")
	}
}

func TestGameModelEscPausesWhileRacing(t *testing.T) {
	g := &stubGame{endAt: 1000}
	m := newTestModel(t, g, nil)
	now := time.Unix(2000, 0)

	next, _ := m.handleKey(keyMsg("esc"), now)
	m = tick(next.(GameModel), now)

	if m.BackToMenu() {
		t.Error("Esc during a run should not leave the game")
	}
	if !g.lastIn.Has(core.ActionPause) {
		t.Error("Esc during a run should pause")
	}
}
