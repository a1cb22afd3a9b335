package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/pong/pong"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10_000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestGenerators(t *testing.T) {
	length := sampleRate.N(50 * time.Millisecond)

	for name, s := range map[string]beep.Streamer{
		"tone":  NewToneGenerator(sampleRate, 440, length),
		"sweep": NewSweepGenerator(sampleRate, 880, 110, length),
	} {
		t.Run(name, func(t *testing.T) {
			samples := drain(t, s)
			require.Len(t, samples, length)

			var peak float64
			for _, sample := range samples {
				assert.Equal(t, sample[0], sample[1])
				assert.LessOrEqual(t, sample[0], 1.0)
				assert.GreaterOrEqual(t, sample[0], -1.0)
				peak = max(peak, sample[0])
			}
			assert.Greater(t, peak, 0.0)
			assert.NoError(t, s.Err())
		})
	}
}

func TestEffects(t *testing.T) {
	assert.NotNil(t, effectFor(pong.Event{Kind: pong.EventPaddleHit, Speed: 3}))
	assert.NotNil(t, effectFor(pong.Event{Kind: pong.EventWallBounce}))
	assert.NotNil(t, effectFor(pong.Event{Kind: pong.EventPoint}))
	assert.NotNil(t, effectFor(pong.Event{Kind: pong.EventMatchWon}))
	assert.Nil(t, effectFor(pong.Event{Kind: pong.EventReset}))
}

// Operations must be safe without an audio device.
func TestManagerGracefulDegradation(t *testing.T) {
	m := NewManager()

	assert.NotPanics(t, func() {
		m.Handle(pong.Event{Kind: pong.EventPaddleHit})
		m.Cleanup()
	})
	assert.Equal(t, 0, m.Playing())
}

func TestManagerMixesEvents(t *testing.T) {
	m := NewManager()
	m.initialized = true

	m.Handle(pong.Event{Kind: pong.EventPaddleHit, Speed: 2})
	m.Handle(pong.Event{Kind: pong.EventWallBounce})
	m.Handle(pong.Event{Kind: pong.EventReset})
	assert.Equal(t, 2, m.Playing())

	m.Cleanup()
	assert.Equal(t, 0, m.Playing())
}

// Speaker initialization may fail without an audio device; that is not a failure.
func TestManagerInitialization(t *testing.T) {
	m := NewManager()
	if err := m.Initialize(); err != nil {
		t.Logf("sound initialization failed: %v", err)
		return
	}
	assert.NoError(t, m.Initialize())
	m.Cleanup()
}
