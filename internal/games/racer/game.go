// Package racer hosts the endless-runner simulation on the terminal
// platform. It detects collisions, plays the requested sounds, keeps the
// HUD texts and draws the road.
package racer

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/sim"
)

// SoundSink plays the cues requested by the simulation.
type SoundSink interface {
	PlaySfx(s sim.Sfx, volume float64)
	PlayMusic(volume float64)
	StopMusic()
}

type silentSink struct{}

func (silentSink) PlaySfx(sim.Sfx, float64) {}
func (silentSink) PlayMusic(float64)        {}
func (silentSink) StopMusic()               {}

// Package-level host settings, set via CLI before games are created.
var (
	configPath string
	soundSink  SoundSink = silentSink{}
	logger               = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSoundSink sets where sound cues go. Nil silences the game.
func SetSoundSink(s SoundSink) {
	if s == nil {
		s = silentSink{}
	}
	soundSink = s
}

// StopSound stops the music on the current sound sink, for hosts leaving
// a race without ending the process.
func StopSound() {
	soundSink.StopMusic()
}

// SetLogger sets the logger used by new games. Nil discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game runs one track.
type Game struct {
	track    Track
	cfg      config.RacerConfig
	runtime  core.RuntimeConfig
	sim      *sim.Simulator
	queue    sim.EventQueue
	contacts *ContactTracker
	texts    map[sim.Label]sim.TextUpdate
	sound    SoundSink
	log      *log.Logger
	paused   bool
}

// New creates a game for the given track. Call Reset before stepping.
func New(tr Track) *Game {
	return &Game{track: tr}
}

// ID returns the track identifier.
func (g *Game) ID() string {
	return g.track.Info.ID
}

// Title returns the track's display name.
func (g *Game) Title() string {
	return g.track.Info.Title
}

// Reset builds a fresh run. The previous simulation is discarded entirely.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.sound = soundSink
	g.log = logger.With("track", g.track.Info.ID)

	cfg, err := config.LoadRacer(configPath)
	if err != nil {
		g.log.Warn("falling back to default config", "error", err)
		cfg = config.DefaultRacerConfig()
	}
	if g.track.Tune != nil {
		g.track.Tune(&cfg)
	}
	g.cfg = cfg

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.sim = sim.New(ParamsFromConfig(cfg), rng)
	g.queue.Drain()
	g.contacts = NewContactTracker(
		core.Vec2{X: cfg.Player.Width, Y: cfg.Player.Height},
		core.Vec2{X: cfg.Obstacles.Width, Y: cfg.Obstacles.Height},
	)
	g.texts = map[sim.Label]sim.TextUpdate{
		sim.HealthLabel: {Label: sim.HealthLabel, Value: g.sim.Health().Text()},
	}
	g.paused = false

	g.sound.StopMusic()
	g.sound.PlayMusic(cfg.Audio.MusicVolume)
	g.log.Debug("run started", "seed", runtime.Seed, "health", g.sim.Health().Value())
}

// Step advances the run by one frame of 1/TickRate seconds.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.StepDelta(in, g.runtime.FrameDelta())
}

// StepDelta advances the run by dt seconds of wall-clock time.
func (g *Game) StepDelta(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) && g.sim.Status() == sim.Running {
		g.paused = !g.paused
	}

	steer := sim.Input{Up: in.Has(core.ActionUp), Down: in.Has(core.ActionDown)}
	if g.paused {
		dt = 0
		steer = sim.Input{}
	}

	g.contacts.Detect(g.sim.Registry(), &g.queue)
	fx := g.sim.Step(dt, steer, &g.queue)
	g.apply(fx)

	return core.StepResult{State: g.State()}
}

// apply realizes the side effects of one frame.
func (g *Game) apply(fx sim.Effects) {
	for _, txt := range fx.Texts {
		g.texts[txt.Label] = txt
	}
	if fx.StopMusic {
		g.sound.StopMusic()
	}
	for _, cue := range fx.Sounds {
		g.sound.PlaySfx(cue.Sfx, cue.Volume)
	}
	for _, by := range fx.HitBy {
		g.log.Debug("hit", "by", by, "health", g.sim.Health().Value())
	}
	if fx.Lost {
		st := g.sim.Stats()
		g.log.Info("run lost", "score", g.score(), "hits", st.Hits, "seconds", st.Elapsed)
	}
}

// Text returns the current value of a HUD label.
func (g *Game) Text(l sim.Label) (sim.TextUpdate, bool) {
	t, ok := g.texts[l]
	return t, ok
}

// Stats returns the statistics of the current run.
func (g *Game) Stats() sim.Stats {
	return g.sim.Stats()
}

// score is the distance travelled in hundreds of world units.
func (g *Game) score() int {
	return int(g.sim.Stats().Distance / 100)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		Health:   g.sim.Health().Value(),
		GameOver: g.sim.Status() == sim.Lost,
		Paused:   g.paused,
	}
}
