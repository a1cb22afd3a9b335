// Package sound plays synthesized effects for gameplay events.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/pong/pong"
)

const sampleRate = beep.SampleRate(48000)

// Manager mixes one short effect per gameplay event. Every method is safe
// to call before Initialize or after it failed; nothing is played then.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	// speaker is false in tests that exercise the mixer without a device.
	speaker bool
}

func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device and starts the mixer.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	m.speaker = true
	return nil
}

// Cleanup silences everything and stops playback.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.withSpeaker(m.mixer.Clear)
	if m.speaker {
		speaker.Close()
	}
	m.initialized = false
	m.speaker = false
}

// Handle plays the effect for ev, if it has one.
func (m *Manager) Handle(ev pong.Event) {
	streamer := effectFor(ev)
	if streamer == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.withSpeaker(func() { m.mixer.Add(streamer) })
}

// Playing returns the number of effects still sounding.
func (m *Manager) Playing() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int
	m.withSpeaker(func() { n = m.mixer.Len() })
	return n
}

func (m *Manager) withSpeaker(fn func()) {
	if m.speaker {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// effectFor builds the streamer for an event. Paddle hits rise in pitch with
// the ball speed.
func effectFor(ev pong.Event) beep.Streamer {
	switch ev.Kind {
	case pong.EventPaddleHit:
		freq := 440 + 40*float64(min(ev.Speed, 20))
		return NewToneGenerator(sampleRate, freq, sampleRate.N(60*time.Millisecond))
	case pong.EventWallBounce:
		return NewToneGenerator(sampleRate, 220, sampleRate.N(40*time.Millisecond))
	case pong.EventPoint:
		return NewSweepGenerator(sampleRate, 660, 110, sampleRate.N(300*time.Millisecond))
	case pong.EventMatchWon:
		return beep.Seq(
			NewToneGenerator(sampleRate, 523, sampleRate.N(120*time.Millisecond)),
			NewToneGenerator(sampleRate, 659, sampleRate.N(120*time.Millisecond)),
			NewToneGenerator(sampleRate, 784, sampleRate.N(240*time.Millisecond)),
		)
	case pong.EventMatchStarted:
		return NewSweepGenerator(sampleRate, 220, 880, sampleRate.N(150*time.Millisecond))
	}
	return nil
}
