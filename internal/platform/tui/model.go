package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/sim"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

// runStatser is implemented by games that report run statistics.
type runStatser interface {
	Stats() sim.Stats
}

// deltaStepper is implemented by games that advance by measured frame time.
type deltaStepper interface {
	StepDelta(in core.InputFrame, dt float64) core.StepResult
}

// maxFrameDelta caps the time one frame may cover after a stall.
const maxFrameDelta = 0.1

// GameModel is the Bubble Tea model for playing one track.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	steer      *SteerState
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	log        *log.Logger
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewGameModel creates a new game model. A nil logger discards output.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		steer:      NewSteerState(DefaultInitialHold, DefaultRepeatHold),
		inputFrame: core.NewInputFrame(),
		log:        logger,
	}
}

// Init starts the run and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		// World coordinates don't depend on the terminal size, so the run survives.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp, core.ActionDown:
		m.steer.Press(action, now)
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		} else {
			m.inputFrame.Set(core.ActionPause)
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs one simulation frame.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.steer.Release()
		m.inputFrame.Clear()
		m.lastTick = time.Time{}
		return m, tickCmd(m.config.TickRate)
	}

	m.steer.Apply(&m.inputFrame, now)
	var result core.StepResult
	if ds, ok := m.game.(deltaStepper); ok {
		result = ds.StepDelta(m.inputFrame, m.frameDelta(now))
	} else {
		result = m.game.Step(m.inputFrame)
	}
	m.lastTick = now
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// frameDelta is the wall-clock time since the previous tick, in seconds.
// The first tick of a run uses the nominal 1/fps step.
func (m GameModel) frameDelta(now time.Time) float64 {
	if m.lastTick.IsZero() {
		return m.config.FrameDelta()
	}
	dt := now.Sub(m.lastTick).Seconds()
	return min(max(dt, 0), maxFrameDelta)
}

// saveRun records the finished run. Failures are logged and ignored.
func (m GameModel) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	rec := storage.RunRecord{
		TrackID: m.game.ID(),
		Score:   m.gameState.Score,
		Seed:    m.config.Seed,
	}
	if s, ok := m.game.(runStatser); ok {
		st := s.Stats()
		rec.Distance = st.Distance
		rec.Hits = st.Hits
		rec.Frames = st.Frames
		rec.Seconds = st.Elapsed
	}

	if _, err := m.store.SaveRun(rec); err != nil {
		m.log.Warn("could not save run", "track", rec.TrackID, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".racer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last frame.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one track until the player quits or goes back.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, logger)

	p := tea.NewProgram(
		backOnQuit{model},
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if b, ok := final.(backOnQuit); ok {
		return b.BackToMenu(), nil
	}
	return false, nil
}

// backOnQuit ends the program when a standalone game goes back to the menu.
type backOnQuit struct {
	GameModel
}

func (b backOnQuit) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := b.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		b.GameModel = gm
	}
	if b.BackToMenu() {
		return b, tea.Quit
	}
	return b, cmd
}
