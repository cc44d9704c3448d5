// Package snake implements the runner grid engine: a runner steered one cell
// at a time across a walled board, growing a trail as it eats food.
//
// The package holds pure simulation logic. Hosts deliver ticks and key events
// and supply a core.Canvas to draw on; nothing here touches a terminal.
package snake

import "github.com/KetsiaD/Snake-game-JKC/internal/core"

// Position is a board cell.
type Position struct {
	X, Y int
}

// Step returns the neighbouring cell one unit along h.
func (p Position) Step(h Heading) Position {
	dx, dy := h.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Board is the fixed-size coordinate space. The outermost ring of cells is
// wall; the runner and food live in the playable interior.
type Board struct {
	Width  int
	Height int
}

// NewBoard creates a board of the given dimensions.
func NewBoard(width, height int) Board {
	return Board{Width: width, Height: height}
}

// Bounds returns the full board rectangle.
func (b Board) Bounds() core.Rect {
	return core.NewRect(0, 0, b.Width, b.Height)
}

// Contains tests 0 <= x < width and 0 <= y < height.
func (b Board) Contains(p Position) bool {
	return b.Bounds().Contains(p.X, p.Y)
}

// Playable returns the interior inside the wall ring.
func (b Board) Playable() core.Rect {
	return b.Bounds().Inset(1)
}

// InPlay reports whether p lies in the playable interior.
func (b Board) InPlay(p Position) bool {
	return b.Playable().Contains(p.X, p.Y)
}

// Area returns the number of cells on the board.
func (b Board) Area() int {
	return b.Bounds().Area()
}

// IsWall reports whether p is on the outer ring.
func (b Board) IsWall(p Position) bool {
	return b.Contains(p) && !b.InPlay(p)
}

// Walls enumerates the ring cells, top row first then clockwise.
func (b Board) Walls() []Position {
	if b.Width <= 0 || b.Height <= 0 {
		return nil
	}
	walls := make([]Position, 0, 2*(b.Width+b.Height))
	for x := 0; x < b.Width; x++ {
		walls = append(walls, Position{X: x, Y: 0})
	}
	for y := 1; y < b.Height; y++ {
		walls = append(walls, Position{X: b.Width - 1, Y: y})
	}
	if b.Height > 1 {
		for x := b.Width - 2; x >= 0; x-- {
			walls = append(walls, Position{X: x, Y: b.Height - 1})
		}
	}
	if b.Width > 1 {
		for y := b.Height - 2; y >= 1; y-- {
			walls = append(walls, Position{X: 0, Y: y})
		}
	}
	return walls
}
