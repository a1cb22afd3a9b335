package display

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/pong/pong"
)

// ReadInput builds the frame input from the keys reported held by pressed.
func ReadInput(pressed func(ebiten.Key) bool) pong.Input {
	return pong.Input{
		Confirm:   pressed(ebiten.KeyEnter),
		LeftUp:    pressed(ebiten.KeyW),
		LeftDown:  pressed(ebiten.KeyS),
		RightUp:   pressed(ebiten.KeyArrowUp),
		RightDown: pressed(ebiten.KeyArrowDown),
	}
}
