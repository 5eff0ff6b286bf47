package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Hold windows for steering keys. A fresh press stays held past the
// terminal's key repeat delay. Once repeats arrive they refresh the key
// often, so the shorter window applies.
const (
	DefaultInitialHold = 500 * time.Millisecond
	DefaultRepeatHold  = 150 * time.Millisecond
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// SteerState emulates held steering keys on top of key press events.
// Terminals only report presses (and repeats), so a direction stays held
// until no press has arrived for its hold window.
type SteerState struct {
	initial time.Duration
	repeat  time.Duration
	up      keyHold
	down    keyHold
}

// keyHold tracks one steering direction.
type keyHold struct {
	last      time.Time
	repeating bool
}

// NewSteerState creates a steer state. Non-positive windows use the defaults.
func NewSteerState(initial, repeat time.Duration) *SteerState {
	if initial <= 0 {
		initial = DefaultInitialHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	return &SteerState{initial: initial, repeat: repeat}
}

// Press records a steering key press at time t. A press that arrives while
// the direction is still held counts as a key repeat. Pressing one direction
// releases the other.
func (s *SteerState) Press(a core.Action, t time.Time) {
	switch a {
	case core.ActionUp:
		s.press(&s.up, t)
		s.down = keyHold{}
	case core.ActionDown:
		s.press(&s.down, t)
		s.up = keyHold{}
	}
}

func (s *SteerState) press(k *keyHold, t time.Time) {
	k.repeating = s.held(*k, t)
	k.last = t
}

// Release forgets both directions.
func (s *SteerState) Release() {
	s.up = keyHold{}
	s.down = keyHold{}
}

// Apply sets the held directions on the frame as of time t.
func (s *SteerState) Apply(frame *core.InputFrame, t time.Time) {
	if s.held(s.up, t) {
		frame.Set(core.ActionUp)
	}
	if s.held(s.down, t) {
		frame.Set(core.ActionDown)
	}
}

func (s *SteerState) held(k keyHold, t time.Time) bool {
	if k.last.IsZero() {
		return false
	}
	window := s.initial
	if k.repeating {
		window = s.repeat
	}
	return t.Sub(k.last) <= window
}
