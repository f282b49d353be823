package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Sound effect durations
const (
	BounceSoundDuration  = 120 * time.Millisecond
	ImpulseSoundDuration = 90 * time.Millisecond
	WrapSoundDuration    = 40 * time.Millisecond
)

// Sound effect tuning
const (
	BounceBaseFreq  = 70.0
	ImpulseBaseFreq = 330.0
	WrapFreq        = 880.0

	// BounceSpeedFull is the impact speed that plays the thump at full volume
	BounceSpeedFull = 40
)
