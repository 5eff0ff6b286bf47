package sim

// RunStatus is the state of a run.
type RunStatus int

const (
	Running RunStatus = iota
	Lost
)

// String returns a human-readable name for the status.
func (s RunStatus) String() string {
	switch s {
	case Running:
		return "running"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// RunState is the one-way Running -> Lost machine.
type RunState struct {
	status RunStatus
}

// Status returns the current status.
func (r RunState) Status() RunStatus {
	return r.status
}

// Over reports whether the run has ended.
func (r RunState) Over() bool {
	return r.status == Lost
}

// Check moves to Lost when health is exhausted and emits the terminal
// effects. It returns true only on the frame the transition happens.
func (r *RunState) Check(h Health, p *Params, fx *Effects) bool {
	if r.status == Lost || !h.Empty() {
		return false
	}
	r.status = Lost
	fx.setText(GameOverLabel, "Game Over", p.GameOverFontSize)
	fx.StopMusic = true
	fx.playSfx(SfxJingle, p.JingleVolume)
	fx.Lost = true
	return true
}
