package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/pong/pong"
)

var (
	background = color.Black
	foreground = color.White
)

// Canvas draws onto an Ebiten image in logical screen coordinates.
type Canvas struct {
	dst  *ebiten.Image
	font *Font
}

func NewCanvas(dst *ebiten.Image, font *Font) *Canvas {
	return &Canvas{dst: dst, font: font}
}

func (c *Canvas) Clear() {
	c.dst.Fill(background)
}

func (c *Canvas) FillRect(r pong.Rect) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), foreground, false)
}

func (c *Canvas) DrawText(s string, x, y int) {
	if c.font == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(foreground)
	text.Draw(c.dst, s, c.font.Face, op)
}
