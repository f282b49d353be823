// Package audio plays short synthesized effects through the beep speaker.
// Every method is safe to call before Initialize or after Cleanup; the demos
// run silently when no audio device is available.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/motion-sandbox/constant"
)

const (
	sampleRate = beep.SampleRate(constant.AudioSampleRate)
)

// SoundManager manages all demo audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a new sound manager at the given volume (0.0-1.0)
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayBounce plays a thump whose loudness follows the impact speed
func (sm *SoundManager) PlayBounce(speed int) {
	gain := float64(speed) / constant.BounceSpeedFull
	if gain <= 0 {
		return
	}
	sm.play(constant.BounceSoundDuration, func(vol float64) beep.Streamer {
		return NewThumpGenerator(sampleRate, constant.BounceBaseFreq, vol*min(gain, 1))
	})
}

// PlayImpulse plays the upward kick chirp
func (sm *SoundManager) PlayImpulse() {
	sm.play(constant.ImpulseSoundDuration, func(vol float64) beep.Streamer {
		return NewChirpGenerator(sampleRate, constant.ImpulseBaseFreq, vol)
	})
}

// PlayWrap plays the short blip for an edge teleport
func (sm *SoundManager) PlayWrap() {
	sm.play(constant.WrapSoundDuration, func(vol float64) beep.Streamer {
		return NewBlipGenerator(sampleRate, constant.WrapFreq, vol)
	})
}

func (sm *SoundManager) play(d time.Duration, build func(vol float64) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume == 0 {
		return
	}

	streamer := beep.Take(sampleRate.N(d), build(sm.volume))

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

func clampVolume(vol float64) float64 {
	if vol < 0 {
		return 0
	}
	if vol > 1 {
		return 1
	}
	return vol
}
