package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ThumpGenerator is a low sine with a falling pitch and exponential decay
type ThumpGenerator struct {
	sr   beep.SampleRate
	freq float64
	amp  float64
	pos  int
}

// NewThumpGenerator creates a bounce thump generator
func NewThumpGenerator(sr beep.SampleRate, freq, amp float64) *ThumpGenerator {
	return &ThumpGenerator{sr: sr, freq: freq, amp: amp}
}

func (g *ThumpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 30)
		freq := g.freq * (1 + envelope)
		sample := g.amp * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThumpGenerator) Err() error {
	return nil
}

// ChirpGenerator sweeps upward an octave with a short fade-in
type ChirpGenerator struct {
	sr    beep.SampleRate
	freq  float64
	amp   float64
	pos   int
	phase float64
}

// NewChirpGenerator creates an impulse chirp generator
func NewChirpGenerator(sr beep.SampleRate, freq, amp float64) *ChirpGenerator {
	return &ChirpGenerator{sr: sr, freq: freq, amp: amp}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// One octave per 100ms
		freq := g.freq * math.Pow(2, t*10)
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		envelope := math.Min(t/0.005, 1.0)
		sample := g.amp * 0.5 * envelope * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// BlipGenerator is a short square-ish tone
type BlipGenerator struct {
	sr   beep.SampleRate
	freq float64
	amp  float64
	pos  int
}

// NewBlipGenerator creates a wrap blip generator
func NewBlipGenerator(sr beep.SampleRate, freq, amp float64) *BlipGenerator {
	return &BlipGenerator{sr: sr, freq: freq, amp: amp}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Odd harmonics soften the edge of a square wave
		sample := 0.0
		sample += 0.6 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.2 * math.Sin(2*math.Pi*g.freq*3*t)
		sample *= g.amp * 0.3

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}
