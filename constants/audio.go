package constants

import "time"

// Audio Configuration
const (
	AudioSampleRate   = 48000
	AudioBufferLength = 100 * time.Millisecond
)

// Shot sound: a short descending square sweep
const (
	ShotSoundDuration  = 120 * time.Millisecond
	ShotSoundAttack    = 5 * time.Millisecond
	ShotSoundRelease   = 80 * time.Millisecond
	ShotSoundStartFreq = 1400.0
	ShotSoundEndFreq   = 220.0
	ShotSoundVolume    = 0.35
)
