package sound

import (
	"math"

	"github.com/gopxl/beep"
)

// ToneGenerator produces a square-ish blip at a fixed pitch with a linear
// fade out over its duration.
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	length int
	pos    int
}

func NewToneGenerator(sr beep.SampleRate, freq float64, length int) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, length: length}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.length {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		sample := 0.4 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*3*t)
		sample *= 1 - float64(g.pos)/float64(g.length)
		sample *= 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SweepGenerator glides from one pitch to another over its duration.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

func NewSweepGenerator(sr beep.SampleRate, from, to float64, length int) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, length: length}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.length {
			return i, true
		}
		progress := float64(g.pos) / float64(g.length)
		freq := g.from + (g.to-g.from)*progress

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.35 * math.Sin(g.phase) * (1 - progress)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
