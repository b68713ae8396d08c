package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/starfield/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// Tone plays a synthesized shot sound through the system speaker
// Safe to use uninitialized: notifications are dropped until Initialize succeeds
type Tone struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewTone creates a tone notifier with the default shot volume
func NewTone() *Tone {
	return &Tone{
		mixer:  &beep.Mixer{},
		volume: constants.ShotSoundVolume,
	}
}

// Initialize sets up the speaker and starts the mixer
func (t *Tone) Initialize() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferLength))
	if err != nil {
		return err
	}

	speaker.Play(t.mixer)
	t.initialized = true
	return nil
}

// Cleanup silences pending sounds
// beep has no speaker close, clearing the mixer avoids artifacts
func (t *Tone) Cleanup() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}

	speaker.Lock()
	t.mixer.Clear()
	speaker.Unlock()
	t.initialized = false
}

// NotifyFire mixes one shot sound into the output
func (t *Tone) NotifyFire() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}

	speaker.Lock()
	t.mixer.Add(CreateShotSound(sampleRate, t.volume))
	speaker.Unlock()
}
