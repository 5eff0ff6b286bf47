package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// impactGenerator is a thud: decaying low sine plus filtered noise.
type impactGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed uint32
	last float64
}

func newImpactGenerator(sr beep.SampleRate) *impactGenerator {
	return &impactGenerator{sr: sr, seed: 0x9e3779b9}
}

func (g *impactGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 18)

		// xorshift noise through a one-pole low-pass
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1
		g.last += 0.2 * (noise - g.last)

		body := math.Sin(2 * math.Pi * 70 * t)
		sample := envelope * (0.6*body + 0.4*g.last)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *impactGenerator) Err() error {
	return nil
}

// jingleNotes is a short falling arpeggio (Hz).
var jingleNotes = []float64{784, 659, 523, 392}

const jingleNoteLen = 180 * time.Millisecond

// jingleGenerator plays jingleNotes once and then ends.
type jingleGenerator struct {
	sr      beep.SampleRate
	pos     int
	perNote int
}

func newJingleGenerator(sr beep.SampleRate) *jingleGenerator {
	return &jingleGenerator{sr: sr, perNote: sr.N(jingleNoteLen)}
}

func (g *jingleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := g.perNote * len(jingleNotes)
	if g.pos >= total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= total {
			return i, true
		}
		note := g.pos / g.perNote
		within := float64(g.pos%g.perNote) / float64(g.perNote)
		t := float64(g.pos) / float64(g.sr)

		// Square-ish tone with a per-note decay
		tone := math.Sin(2*math.Pi*jingleNotes[note]*t) + 0.3*math.Sin(2*math.Pi*jingleNotes[note]*3*t)
		sample := 0.5 * (1 - within) * tone / 1.3

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *jingleGenerator) Err() error {
	return nil
}

// musicGenerator is an endless two-bar bass groove.
type musicGenerator struct {
	sr      beep.SampleRate
	pos     int
	perBeat int
}

var musicBass = []float64{110, 110, 147, 131, 110, 110, 165, 147}

func newMusicGenerator(sr beep.SampleRate) *musicGenerator {
	return &musicGenerator{sr: sr, perBeat: sr.N(250 * time.Millisecond)}
}

func (g *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beat := (g.pos / g.perBeat) % len(musicBass)
		within := float64(g.pos%g.perBeat) / float64(g.perBeat)
		t := float64(g.pos) / float64(g.sr)

		bass := math.Sin(2 * math.Pi * musicBass[beat] * t)
		pluck := math.Exp(-within * 6)
		sample := 0.6 * pluck * bass

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *musicGenerator) Err() error {
	return nil
}
