package snake

import (
	"errors"
	"fmt"
)

// ErrFieldSaturated is returned when no free cell could be found for food.
var ErrFieldSaturated = errors.New("food field saturated")

// spawnAttemptsPerCell bounds the redraw loop in SpawnOne relative to the
// board area.
const spawnAttemptsPerCell = 4

// FoodField tracks which cells hold food and keeps the field topped up.
type FoodField struct {
	board        Board
	occupied     []bool // Row-major, one entry per board cell
	live         int
	totalSpawned int
	target       int
}

// NewFoodField creates an empty field that TopUp fills to target items.
func NewFoodField(board Board, target int) *FoodField {
	return &FoodField{
		board:    board,
		occupied: make([]bool, board.Area()),
		target:   max(0, target),
	}
}

func (f *FoodField) index(p Position) int {
	return p.Y*f.board.Width + p.X
}

// Occupied reports whether p holds food. Cells off the board never do.
func (f *FoodField) Occupied(p Position) bool {
	if !f.board.Contains(p) {
		return false
	}
	return f.occupied[f.index(p)]
}

// Live returns the number of food items currently on the board.
func (f *FoodField) Live() int {
	return f.live
}

// TotalSpawned returns how many items have ever been placed.
func (f *FoodField) TotalSpawned() int {
	return f.totalSpawned
}

// Target returns the desired number of simultaneous items.
func (f *FoodField) Target() int {
	return f.target
}

// place marks p as holding food. Returns false if p is off the board or
// already occupied, so a cell is never counted twice.
func (f *FoodField) place(p Position) bool {
	if !f.board.Contains(p) || f.occupied[f.index(p)] {
		return false
	}
	f.occupied[f.index(p)] = true
	f.live++
	f.totalSpawned++
	return true
}

// SpawnOne places one item on a uniformly drawn interior cell, redrawing
// while the cell already holds food or avoid reports it blocked. The redraw
// loop gives up after a fixed number of attempts and returns
// ErrFieldSaturated.
func (f *FoodField) SpawnOne(rng Random, avoid func(Position) bool) (Position, error) {
	area := f.board.Playable()
	if area.Empty() {
		return Position{}, fmt.Errorf("snake: spawn food on %dx%d board: %w", f.board.Width, f.board.Height, ErrFieldSaturated)
	}

	limit := f.board.Area() * spawnAttemptsPerCell
	for attempt := 0; attempt < limit; attempt++ {
		p := Position{
			X: area.X + rng.Intn(area.W),
			Y: area.Y + rng.Intn(area.H),
		}
		if f.Occupied(p) || (avoid != nil && avoid(p)) {
			continue
		}
		f.place(p)
		return p, nil
	}

	return Position{}, fmt.Errorf("snake: spawn food: no free cell after %d attempts: %w", limit, ErrFieldSaturated)
}

// Consume clears the food at p. Returns true if there was food to eat.
// The caller replenishes the field afterwards.
func (f *FoodField) Consume(p Position) bool {
	if !f.Occupied(p) {
		return false
	}
	f.occupied[f.index(p)] = false
	f.live--
	return true
}

// TopUp spawns items until the field holds Target of them. It stops at the
// first saturation and returns that error; the field is left as is.
func (f *FoodField) TopUp(rng Random, avoid func(Position) bool) error {
	for f.live < f.target {
		if _, err := f.SpawnOne(rng, avoid); err != nil {
			return err
		}
	}
	return nil
}

// Cells returns a copy of the food positions in row-major order.
func (f *FoodField) Cells() []Position {
	cells := make([]Position, 0, f.live)
	for i, ok := range f.occupied {
		if ok {
			cells = append(cells, Position{X: i % f.board.Width, Y: i / f.board.Width})
		}
	}
	return cells
}
