package snake

import "fmt"

// Trail is a bounded, most-recent-first record of head positions.
//
// It is a ring: PushFront moves the logical start back one slot, so every
// entry shifts up by one index without copying. Only the first Len entries
// are live body segments; older slots keep the positions that fell off the
// tail, which is exactly what a freshly grown segment should occupy.
type Trail struct {
	cells []Position
	start int // slot holding trail[0]
	alive int
}

// NewTrail creates a trail with room for capacity entries and a single live
// segment at head.
func NewTrail(capacity int, head Position) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	t := &Trail{
		cells: make([]Position, capacity),
		alive: 1,
	}
	t.cells[0] = head
	return t
}

// Cap returns the maximum number of live segments.
func (t *Trail) Cap() int {
	return len(t.cells)
}

// Len returns the number of live segments.
func (t *Trail) Len() int {
	return t.alive
}

// At returns trail[i]. Indices wrap modulo the capacity.
func (t *Trail) At(i int) Position {
	n := len(t.cells)
	return t.cells[((t.start+i)%n+n)%n]
}

// Head returns trail[0].
func (t *Trail) Head() Position {
	return t.cells[t.start]
}

// PushFront shifts every entry up one index and stores p as trail[0].
func (t *Trail) PushFront(p Position) {
	n := len(t.cells)
	t.start = (t.start - 1 + n) % n
	t.cells[t.start] = p
}

// Grow makes one more entry live. Growing past the capacity means the trail
// was provisioned smaller than the board allows, which is a programming
// fault.
func (t *Trail) Grow() {
	if t.alive >= len(t.cells) {
		panic(fmt.Sprintf("snake: trail capacity %d exceeded", len(t.cells)))
	}
	t.alive++
}

// Contains reports whether p is one of the live entries.
func (t *Trail) Contains(p Position) bool {
	for i := 0; i < t.alive; i++ {
		if t.At(i) == p {
			return true
		}
	}
	return false
}

// Overlaps reports whether trail[0] repeats among the other live entries.
func (t *Trail) Overlaps() bool {
	head := t.Head()
	for i := 1; i < t.alive; i++ {
		if t.At(i) == head {
			return true
		}
	}
	return false
}

// Live returns a copy of the live entries, head first.
func (t *Trail) Live() []Position {
	out := make([]Position, t.alive)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}
