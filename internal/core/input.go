package core

// Action is a semantic input, decoupled from the keys that produce it.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions active during one tick.
// Steering (Up, Down) is held by the platform across ticks; every other
// action lasts a single frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as active.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a is active.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Clear empties the frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Actions lists the active actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionUp; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
