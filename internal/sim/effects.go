package sim

// Sfx identifies a sound effect the host should play.
type Sfx int

const (
	SfxImpact Sfx = iota // Player hit an obstacle
	SfxJingle            // Run lost
)

// String returns a human-readable name for the effect.
func (s Sfx) String() string {
	switch s {
	case SfxImpact:
		return "impact"
	case SfxJingle:
		return "jingle"
	default:
		return "unknown"
	}
}

// SoundCue asks the host to play Sfx at Volume (0..1).
type SoundCue struct {
	Sfx    Sfx
	Volume float64
}

// TextUpdate asks the host to create or update the text label Label.
// A zero FontSize keeps the host's default size.
type TextUpdate struct {
	Label    Label
	Value    string
	FontSize float64
}

// Effects collects the side-effect requests of one frame, in emission order.
type Effects struct {
	Sounds    []SoundCue
	Texts     []TextUpdate
	HitBy     []Label // Obstacles that cost the player health, in event order
	StopMusic bool
	Lost      bool // The run entered the Lost state during this frame
}

// Empty reports whether no side effect was requested.
func (e Effects) Empty() bool {
	return len(e.Sounds) == 0 && len(e.Texts) == 0 && len(e.HitBy) == 0 && !e.StopMusic && !e.Lost
}

func (e *Effects) playSfx(s Sfx, volume float64) {
	e.Sounds = append(e.Sounds, SoundCue{Sfx: s, Volume: volume})
}

func (e *Effects) setText(l Label, value string, size float64) {
	e.Texts = append(e.Texts, TextUpdate{Label: l, Value: value, FontSize: size})
}
