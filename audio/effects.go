package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/starfield/constants"
)

// sweep is a square wave whose pitch glides linearly from start to end
type sweep struct {
	start, end float64
	phase      float64
	length     int
	pos        int
	rate       beep.SampleRate
}

// NewSweep creates a square-wave streamer gliding from start to end Hz over duration
func NewSweep(start, end float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		start:  start,
		end:    end,
		length: rate.N(duration),
		rate:   rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for n = range samples {
		if s.pos >= s.length {
			return n, n > 0
		}

		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		samples[n] = [2]float64{val, val}

		freq := s.start + (s.end-s.start)*float64(s.pos)/float64(s.length)
		_, s.phase = math.Modf(s.phase + freq/float64(s.rate))
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// shape scales a stream by a linear fade-in over attack and fade-out over the last release samples
type shape struct {
	streamer beep.Streamer
	attack   int
	release  int
	length   int
	pos      int
}

// NewEnvelope limits s to duration and applies attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &shape{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		length:   rate.N(duration),
	}
}

// gain returns the envelope level at sample i
func (e *shape) gain(i int) float64 {
	g := 1.0
	if e.attack > 0 && i < e.attack {
		g = float64(i) / float64(e.attack)
	}
	if left := e.length - i; e.release > 0 && left <= e.release {
		g = min(g, float64(left)/float64(e.release))
	}
	return g
}

func (e *shape) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.length {
		return 0, false
	}
	samples = samples[:min(len(samples), e.length-e.pos)]

	n, ok = e.streamer.Stream(samples)
	for i := range samples[:n] {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *shape) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume; 0 is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateShotSound generates the short descending "pew" played when a projectile is fired
func CreateShotSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSweep(constants.ShotSoundStartFreq, constants.ShotSoundEndFreq, constants.ShotSoundDuration, rate)
	shaped := NewEnvelope(osc, constants.ShotSoundDuration, constants.ShotSoundAttack, constants.ShotSoundRelease, rate)
	return newVolume(shaped, volume)
}
