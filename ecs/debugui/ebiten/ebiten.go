// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/ecs"
	"github.com/plus3/pong/ecs/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Use this to integrate Dear ImGui rendering into Ebiten game loops.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Overlay owns a small ECS storage of ImguiItems and draws them on top of an
// Ebiten game. Call Update from Game.Update, Draw last in Game.Draw and Layout
// from Game.Layout.
type Overlay struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	backend   *ecs.Singleton[ImguiBackend]
	input     *ecs.Singleton[debugui.ImguiInputState]
}

// NewOverlay creates the ImGui backend for a window of the given size.
func NewOverlay(title string, width, height int) *Overlay {
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	registry := ecs.NewComponentRegistry()
	debugui.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&debugui.ImguiSystem{})

	return &Overlay{
		storage:   storage,
		scheduler: scheduler,
		backend:   ecs.NewSingleton(storage, ImguiBackend{EbitenBackend: imguiBackend}),
		input:     ecs.NewSingleton[debugui.ImguiInputState](storage),
	}
}

// Storage is where ImguiItem entities are spawned.
func (o *Overlay) Storage() *ecs.Storage {
	return o.storage
}

// Update builds one ImGui frame from every ImguiItem.
func (o *Overlay) Update(dt float64) {
	backend := o.backend.Get()
	backend.BeginFrame()
	o.scheduler.Once(dt)
	backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Get().Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Get().Layout(outsideWidth, outsideHeight)
}

// WantsKeyboard reports whether ImGui consumed keyboard input last frame.
func (o *Overlay) WantsKeyboard() bool {
	return o.input.Get().WantCaptureKeyboard
}
