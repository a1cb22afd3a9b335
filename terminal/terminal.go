// Package terminal runs the game in a text terminal through tcell.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/pong/pong"
)

type Options struct {
	// CPU lists the sides steered by the autopilot.
	CPU []pong.Side
	// Hold is how many frames a key counts as held after a press.
	Hold int
}

// Terminal drives a World from a tcell screen.
type Terminal struct {
	screen tcell.Screen
	world  *pong.World
	keys   *Keys
	opts   Options
}

// Open initializes the controlling terminal for drawing.
func Open() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.SetStyle(style)
	s.HideCursor()
	s.Clear()
	return s, nil
}

// New wraps an initialized screen. The caller keeps ownership of the screen
// and calls Fini on it.
func New(screen tcell.Screen, world *pong.World, opts Options) *Terminal {
	return &Terminal{
		screen: screen,
		world:  world,
		keys:   NewKeys(opts.Hold),
		opts:   opts,
	}
}

// Run plays at TicksPerSecond until the player quits or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / pong.TicksPerSecond)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !t.handle(ev) {
				return nil
			}

		case <-ticker.C:
			t.Frame()
		}
	}
}

// handle returns false once the player quits.
func (t *Terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			return false
		}
		t.keys.Handle(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// Frame advances the world one step and redraws.
func (t *Terminal) Frame() {
	in := pong.AutopilotInput(t.keys.Input(), t.world, t.opts.CPU...)
	t.world.Step(in)
	t.keys.Tick()
	t.Draw()
}

func (t *Terminal) Draw() {
	t.world.Render(NewCanvas(t.screen))
	t.screen.Show()
}
