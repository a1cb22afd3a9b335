package display

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/pong/ecs/debugui"
	debugui_ebiten "github.com/plus3/pong/ecs/debugui/ebiten"
	"github.com/plus3/pong/pong"
)

const Title = "Pong"

type Options struct {
	// CPU lists the sides steered by the autopilot.
	CPU []pong.Side
	// Debug enables the Dear ImGui overlay.
	Debug bool
	// Done, when closed, ends the game as if the window was closed.
	Done <-chan struct{}
}

// Window runs a World as an ebiten.Game.
type Window struct {
	world   *pong.World
	font    *Font
	opts    Options
	overlay *debugui_ebiten.Overlay
	pressed func(ebiten.Key) bool
}

func NewWindow(world *pong.World, font *Font, opts Options) *Window {
	w := &Window{
		world:   world,
		font:    font,
		opts:    opts,
		pressed: ebiten.IsKeyPressed,
	}

	if opts.Debug {
		w.overlay = debugui_ebiten.NewOverlay(Title, pong.ScreenWidth, pong.ScreenHeight)
		ui := w.overlay.Storage()
		ui.Spawn(debugui.ImguiItem{Render: (&matchInspector{world: world}).Render})
		debugui.SpawnDebugUI(ui, world.Storage(), world.Stats)
	}

	return w
}

func (w *Window) Update() error {
	if w.pressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	select {
	case <-w.opts.Done:
		return ebiten.Termination
	default:
	}

	in := ReadInput(w.pressed)
	if w.overlay != nil && w.overlay.WantsKeyboard() {
		in = pong.Input{}
	}
	in = pong.AutopilotInput(in, w.world, w.opts.CPU...)

	w.world.Step(in)

	if w.overlay != nil {
		w.overlay.Update(1.0 / pong.TicksPerSecond)
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.world.Render(NewCanvas(screen, w.font))
	if w.overlay != nil {
		w.overlay.Draw(screen)
	}
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w.overlay != nil {
		w.overlay.Layout(pong.ScreenWidth, pong.ScreenHeight)
	}
	return pong.ScreenWidth, pong.ScreenHeight
}

// Run opens the window and blocks until it is closed or Escape is pressed.
// Neither is an error.
func Run(w *Window) error {
	ebiten.SetWindowSize(pong.ScreenWidth, pong.ScreenHeight)
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(pong.TicksPerSecond)
	return ebiten.RunGame(w)
}
