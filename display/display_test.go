package display

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/pong/config"
	"github.com/plus3/pong/pong"
)

func TestLoadFont(t *testing.T) {
	t.Run("default asset", func(t *testing.T) {
		font, err := LoadFont(filepath.Join("..", config.DefaultFontPath), config.DefaultFontSize)
		require.NoError(t, err)
		assert.Equal(t, float64(config.DefaultFontSize), font.Face.Size)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFont(filepath.Join(t.TempDir(), "missing.ttf"), 24)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAssetLoad)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("not a font", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "garbage.ttf")
		require.NoError(t, os.WriteFile(path, []byte("definitely not a font"), 0o644))

		_, err := LoadFont(path, 24)
		assert.ErrorIs(t, err, ErrAssetLoad)
	})
}

func TestReadInput(t *testing.T) {
	held := map[ebiten.Key]bool{
		ebiten.KeyEnter:     true,
		ebiten.KeyS:         true,
		ebiten.KeyArrowUp:   true,
		ebiten.KeySpace:     true,
		ebiten.KeyArrowLeft: true,
	}
	in := ReadInput(func(k ebiten.Key) bool { return held[k] })

	assert.Equal(t, pong.Input{Confirm: true, LeftDown: true, RightUp: true}, in)
}

func TestWindowUpdate(t *testing.T) {
	world := pong.New()
	held := map[ebiten.Key]bool{ebiten.KeyEnter: true}

	w := NewWindow(world, nil, Options{CPU: []pong.Side{pong.SideLeft}})
	w.pressed = func(k ebiten.Key) bool { return held[k] }

	require.NoError(t, w.Update())
	assert.Equal(t, pong.StatePlaying, world.State())

	held = map[ebiten.Key]bool{ebiten.KeyArrowDown: true}
	require.NoError(t, w.Update())
	assert.Equal(t, 205, world.Paddle(pong.SideRight).Y)
	assert.Equal(t, 1, world.Timer())

	width, height := w.Layout(1280, 960)
	assert.Equal(t, pong.ScreenWidth, width)
	assert.Equal(t, pong.ScreenHeight, height)
}

func TestWindowEscapeTerminates(t *testing.T) {
	w := NewWindow(pong.New(), nil, Options{})
	w.pressed = func(k ebiten.Key) bool { return k == ebiten.KeyEscape }

	assert.ErrorIs(t, w.Update(), ebiten.Termination)
}

func TestWindowDoneTerminates(t *testing.T) {
	done := make(chan struct{})
	w := NewWindow(pong.New(), nil, Options{Done: done})
	w.pressed = func(ebiten.Key) bool { return false }

	require.NoError(t, w.Update())
	close(done)
	assert.ErrorIs(t, w.Update(), ebiten.Termination)
}
