package snake

// Runner is the player-controlled head and the body trailing behind it.
type Runner struct {
	board     Board
	position  Position
	heading   Heading // Pending heading, applied on the next move
	committed Heading // Heading of the last committed move
	trail     *Trail
	hasMoved  bool
	atEdge    bool
}

// NewRunner places a runner at start with no heading. The trail is sized to
// hold every board cell plus one, so Eat can never outgrow it in a real run.
func NewRunner(board Board, start Position) *Runner {
	return &Runner{
		board:    board,
		position: start,
		trail:    NewTrail(board.Area()+1, start),
	}
}

// SpawnRunner places a runner near the center of the playable area. A seeded
// offset of up to a quarter of the area in each axis varies the start, and
// the cell is kept off the interior edge so the first move in any direction
// stays on the board.
func SpawnRunner(board Board, rng Random) *Runner {
	area := board.Playable()
	cx, cy := area.Center()
	dx, dy := area.W/4, area.H/4
	start := Position{
		X: cx - dx + rng.Intn(2*dx+1),
		Y: cy - dy + rng.Intn(2*dy+1),
	}

	if inner := area.Inset(1); !inner.Empty() {
		start.X = min(max(start.X, inner.X), inner.Right()-1)
		start.Y = min(max(start.Y, inner.Y), inner.Bottom()-1)
	}
	return NewRunner(board, start)
}

// Position returns the head cell.
func (r *Runner) Position() Position {
	return r.position
}

// Heading returns the pending heading.
func (r *Runner) Heading() Heading {
	return r.heading
}

// Segments returns the number of live body segments, head included.
func (r *Runner) Segments() int {
	return r.trail.Len()
}

// HasMoved reports whether at least one move has been committed.
func (r *Runner) HasMoved() bool {
	return r.hasMoved
}

// AtEdge reports whether a move was attempted into the wall.
func (r *Runner) AtEdge() bool {
	return r.atEdge
}

// SetHeading requests a new heading. Exact reversals of either the pending
// heading or the last committed move are refused, so several key presses
// inside one throttle window cannot fold the runner back onto itself.
// Returns true if the heading changed.
func (r *Runner) SetHeading(h Heading) bool {
	if r.committed != HeadingNone && h == r.committed.Opposite() {
		return false
	}
	next := r.heading.Turn(h)
	if next == r.heading {
		return false
	}
	r.heading = next
	return true
}

// Advance moves the head one cell along the pending heading and shifts the
// trail behind it. It returns true if a move was committed. A move into the
// wall latches AtEdge and is never retried, once the runner has moved.
func (r *Runner) Advance() bool {
	if r.heading == HeadingNone || r.atEdge {
		return false
	}

	candidate := r.position.Step(r.heading)
	if !r.board.InPlay(candidate) {
		// Before the first move the runner has nothing to crash; it stays
		// put and can still be steered away from the wall.
		if r.hasMoved {
			r.atEdge = true
		}
		return false
	}

	r.trail.PushFront(candidate)
	r.position = candidate
	r.committed = r.heading
	r.hasMoved = true
	return true
}

// SelfCollision reports whether the head overlaps a live body segment.
// A runner that never moved cannot collide with itself.
func (r *Runner) SelfCollision() bool {
	if !r.hasMoved {
		return false
	}
	return r.trail.Overlaps()
}

// Eat grows the body by one segment. Panics if the trail capacity is
// exceeded.
func (r *Runner) Eat() {
	r.trail.Grow()
}

// Occupies reports whether p is covered by the head or a live segment.
func (r *Runner) Occupies(p Position) bool {
	return p == r.position || r.trail.Contains(p)
}

// Body returns a copy of the live segments, head first.
func (r *Runner) Body() []Position {
	return r.trail.Live()
}
