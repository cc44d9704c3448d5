// Package term hosts the snake engine directly on a tcell screen, without
// the Bubble Tea runtime.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/KetsiaD/Snake-game-JKC/internal/core"
)

// cellSetter is the part of tcell.Screen the canvas writes through.
type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Canvas draws engine cells onto a tcell screen at a fixed offset.
type Canvas struct {
	dst  cellSetter
	offX int
	offY int
}

var _ core.Canvas = (*Canvas)(nil)

// NewCanvas returns a canvas writing to dst.
func NewCanvas(dst cellSetter) *Canvas {
	return &Canvas{dst: dst}
}

// SetOffset moves the board origin on screen.
func (c *Canvas) SetOffset(x, y int) {
	c.offX, c.offY = x, y
}

// DrawCell implements core.Canvas.
func (c *Canvas) DrawCell(symbol rune, x, y int, fg, bg core.Color) {
	c.dst.SetContent(c.offX+x, c.offY+y, symbol, nil, styleFor(fg, bg))
}

func styleFor(fg, bg core.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(fg.ANSI())).
		Background(tcell.PaletteColor(bg.ANSI()))
}
