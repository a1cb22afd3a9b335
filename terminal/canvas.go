package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/pong/pong"
)

const block = '█'

var style = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// Canvas scales the 640x480 logical screen onto the terminal grid.
type Canvas struct {
	screen     tcell.Screen
	cols, rows int
}

func NewCanvas(screen tcell.Screen) *Canvas {
	cols, rows := screen.Size()
	return &Canvas{screen: screen, cols: cols, rows: rows}
}

func (c *Canvas) Clear() {
	c.screen.Clear()
}

// FillRect paints every cell the rectangle covers. Anything visible on the
// logical screen covers at least one cell.
func (c *Canvas) FillRect(r pong.Rect) {
	x0, x1 := span(r.X, r.W, pong.ScreenWidth, c.cols)
	y0, y1 := span(r.Y, r.H, pong.ScreenHeight, c.rows)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.screen.SetContent(x, y, block, nil, style)
		}
	}
}

// DrawText writes s one rune per cell starting at the cell holding (x, y).
// Text running past the right edge is clipped.
func (c *Canvas) DrawText(s string, x, y int) {
	col := scale(x, pong.ScreenWidth, c.cols)
	row := scale(y, pong.ScreenHeight, c.rows)
	if row < 0 || row >= c.rows {
		return
	}
	for _, r := range s {
		if col >= c.cols {
			return
		}
		if col >= 0 {
			c.screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}

func scale(v, from, to int) int {
	return v * to / from
}

// span maps [pos, pos+size) from a logical axis onto a cell range clipped to
// [0, cells).
func span(pos, size, logical, cells int) (int, int) {
	start := scale(pos, logical, cells)
	edge := (pos + size) * cells
	end := edge / logical
	if edge%logical != 0 {
		end++
	}
	if end <= start {
		end = start + 1
	}
	return max(start, 0), min(end, cells)
}
