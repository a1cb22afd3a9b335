package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/pong/pong"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func cellAt(screen tcell.SimulationScreen, x, y int) rune {
	cells, width, _ := screen.GetContents()
	cell := cells[y*width+x]
	if len(cell.Runes) == 0 {
		return ' '
	}
	return cell.Runes[0]
}

func rowText(screen tcell.SimulationScreen, y int) string {
	_, width, _ := screen.GetContents()
	out := make([]rune, width)
	for x := 0; x < width; x++ {
		out[x] = cellAt(screen, x, y)
	}
	return string(out)
}

func TestKeys(t *testing.T) {
	keys := NewKeys(3)

	assert.True(t, keys.Handle(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
	assert.True(t, keys.Handle(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)))
	assert.False(t, keys.Handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))

	for i := 0; i < 3; i++ {
		assert.Equal(t, pong.Input{LeftUp: true, RightDown: true}, keys.Input())
		keys.Tick()
	}
	assert.Equal(t, pong.Input{}, keys.Input())

	keys.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	keys.Handle(tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone))
	keys.Handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.Equal(t, pong.Input{Confirm: true, LeftDown: true, RightUp: true}, keys.Input())
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, IsQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.False(t, IsQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}

func TestSpan(t *testing.T) {
	start, end := span(40, 20, 640, 64)
	assert.Equal(t, 4, start)
	assert.Equal(t, 6, end)

	start, end = span(312, 15, 640, 64)
	assert.Equal(t, 31, start)
	assert.Equal(t, 33, end)

	start, end = span(635, 5, 640, 64)
	assert.Equal(t, 63, start)
	assert.Equal(t, 64, end)

	start, end = span(630, 20, 640, 64)
	assert.Equal(t, 63, start)
	assert.Equal(t, 64, end)
}

func TestCanvas(t *testing.T) {
	screen := newScreen(t, 64, 24)
	canvas := NewCanvas(screen)

	canvas.Clear()
	canvas.FillRect(pong.Rect{X: 40, Y: 200, W: 20, H: 80})
	canvas.DrawText("HELLO", 620, 0)
	screen.Show()

	assert.Equal(t, block, cellAt(screen, 4, 10))
	assert.Equal(t, block, cellAt(screen, 5, 13))
	assert.Equal(t, ' ', cellAt(screen, 6, 10))
	assert.Equal(t, ' ', cellAt(screen, 4, 14))

	assert.Equal(t, "HE", rowText(screen, 0)[62:])
}

func TestTerminalFrames(t *testing.T) {
	screen := newScreen(t, 64, 24)
	world := pong.New()
	term := New(screen, world, Options{Hold: 2})

	term.Draw()
	assert.Contains(t, rowText(screen, 9), "ANDRI'S PONG")
	assert.Contains(t, rowText(screen, 12), "Press Enter to start")

	term.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	term.Frame()
	assert.Equal(t, pong.StatePlaying, world.State())

	term.handle(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	term.Frame()
	term.Frame()
	term.Frame()
	assert.Equal(t, 190, world.Paddle(pong.SideLeft).Y)

	assert.Equal(t, "0 - 0", rowText(screen, 2)[29:34])
}

func TestTerminalRunQuits(t *testing.T) {
	screen := newScreen(t, 64, 24)
	term := New(screen, pong.New(), Options{})

	errc := make(chan error, 1)
	go func() {
		errc <- term.Run(context.Background())
	}()

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after escape")
	}
}

func TestTerminalRunContext(t *testing.T) {
	screen := newScreen(t, 64, 24)
	term := New(screen, pong.New(), Options{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.NoError(t, term.Run(ctx))
}
