// Package audio realizes the racer's sound cues with synthesized streams.
// Nothing is loaded from disk; every cue is generated on the fly.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-racer/internal/sim"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager mixes cues and background music onto the speaker.
// Until Initialize succeeds every call is a silent no-op, so hosts without
// an audio device keep working.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a new sound manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// PlaySfx plays a one-shot cue at volume (0..1).
func (sm *SoundManager) PlaySfx(s sim.Sfx, volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(cueStreamer(s, volume))
	speaker.Unlock()
}

// PlayMusic starts the background loop unless it is already playing.
func (sm *SoundManager) PlayMusic(volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.music != nil && !sm.music.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: withVolume(newMusicGenerator(sampleRate), volume)}
	speaker.Lock()
	sm.music = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopMusic pauses the background loop.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	sm.music = nil
	speaker.Unlock()
}

// Cleanup silences everything. The speaker itself stays open for reuse.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
		sm.music = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()
}

// cueStreamer builds the finite stream for a cue.
func cueStreamer(s sim.Sfx, volume float64) beep.Streamer {
	switch s {
	case sim.SfxJingle:
		return withVolume(newJingleGenerator(sampleRate), volume)
	default:
		return withVolume(beep.Take(sampleRate.N(250*time.Millisecond), newImpactGenerator(sampleRate)), volume)
	}
}

// withVolume scales a stream. Gain is relative, so volume 1 is unity.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: volume - 1}
}
