package snake

import "testing"

func TestRunnerNoMoveWithoutHeading(t *testing.T) {
	r := NewRunner(NewBoard(80, 25), Position{40, 12})

	for i := 0; i < 5; i++ {
		if r.Advance() {
			t.Fatal("Advance() should not move with heading None")
		}
	}
	if r.Position() != (Position{40, 12}) {
		t.Errorf("Position() = %v, expected (40,12)", r.Position())
	}
	if r.HasMoved() {
		t.Error("HasMoved() should be false")
	}
}

func TestRunnerAdvanceMovesOneCell(t *testing.T) {
	board := NewBoard(80, 25)
	r := NewRunner(board, Position{40, 12})

	// Non-reversing sequence of turns.
	turns := []Heading{HeadingRight, HeadingUp, HeadingLeft, HeadingDown, HeadingRight, HeadingDown}
	for _, h := range turns {
		if !r.SetHeading(h) {
			t.Fatalf("SetHeading(%v) refused from %v", h, r.Heading())
		}
		before := r.Position()
		if !r.Advance() {
			t.Fatalf("Advance() along %v did not move", h)
		}
		if want := before.Step(h); r.Position() != want {
			t.Errorf("after %v: Position() = %v, expected %v", h, r.Position(), want)
		}
		if r.trail.Head() != r.Position() {
			t.Errorf("trail[0] = %v, expected head %v", r.trail.Head(), r.Position())
		}
	}
}

func TestRunnerReversalRefused(t *testing.T) {
	r := NewRunner(NewBoard(80, 25), Position{40, 12})
	r.SetHeading(HeadingRight)

	if r.SetHeading(HeadingLeft) {
		t.Error("SetHeading(Left) while heading Right should be refused")
	}
	if r.Heading() != HeadingRight {
		t.Errorf("Heading() = %v, expected right", r.Heading())
	}
}

func TestRunnerReversalAgainstCommittedMove(t *testing.T) {
	r := NewRunner(NewBoard(80, 25), Position{40, 12})
	r.SetHeading(HeadingRight)
	r.Advance()

	// Two quick turns inside one throttle window must not fold back.
	if !r.SetHeading(HeadingUp) {
		t.Fatal("SetHeading(Up) should be accepted")
	}
	if r.SetHeading(HeadingLeft) {
		t.Error("SetHeading(Left) reverses the committed move and should be refused")
	}
	if r.Heading() != HeadingUp {
		t.Errorf("Heading() = %v, expected up", r.Heading())
	}
}

func TestRunnerEdgeCollision(t *testing.T) {
	board := NewBoard(80, 25)
	r := NewRunner(board, Position{2, 10})
	r.SetHeading(HeadingLeft)

	if !r.Advance() {
		t.Fatal("first Advance() should move to (1,10)")
	}
	if r.AtEdge() {
		t.Fatal("AtEdge() should be false inside the interior")
	}

	if r.Advance() {
		t.Error("Advance() into the wall should not move")
	}
	if !r.AtEdge() {
		t.Error("AtEdge() should latch after a move into the wall")
	}
	if r.Position() != (Position{1, 10}) {
		t.Errorf("Position() = %v, expected (1,10)", r.Position())
	}

	// Latched: no retry even if the heading changes.
	r.SetHeading(HeadingUp)
	if r.Advance() {
		t.Error("Advance() after AtEdge should be a no-op")
	}
}

func TestRunnerEdgeFromUnmovedRunner(t *testing.T) {
	r := NewRunner(NewBoard(80, 25), Position{1, 7})
	r.SetHeading(HeadingLeft)

	if r.Advance() {
		t.Fatal("Advance() into the wall should not commit")
	}
	if r.AtEdge() {
		t.Error("AtEdge() should stay false before the first move")
	}
	if r.HasMoved() {
		t.Error("HasMoved() should stay false")
	}
	if r.SelfCollision() {
		t.Error("an unmoved runner cannot self-collide")
	}

	// Still steerable: turning away from the wall commits a move.
	r.SetHeading(HeadingUp)
	if !r.Advance() {
		t.Fatal("Advance() after turning away from the wall should commit")
	}
	if want := (Position{1, 6}); r.Position() != want {
		t.Errorf("Position() = %v, expected %v", r.Position(), want)
	}
}

func TestRunnerSelfCollision(t *testing.T) {
	r := NewRunner(NewBoard(80, 25), Position{10, 10})

	// Grow to five segments while walking right.
	r.SetHeading(HeadingRight)
	for i := 0; i < 4; i++ {
		r.Advance()
		r.Eat()
	}
	if r.Segments() != 5 {
		t.Fatalf("Segments() = %d, expected 5", r.Segments())
	}

	// Box back onto the body: down, left, up.
	for _, h := range []Heading{HeadingDown, HeadingLeft, HeadingUp} {
		r.SetHeading(h)
		r.Advance()
		if h != HeadingUp && r.SelfCollision() {
			t.Fatalf("unexpected collision after %v", h)
		}
	}
	if !r.SelfCollision() {
		t.Errorf("SelfCollision() should be true, head %v body %v", r.Position(), r.Body())
	}
}

func TestRunnerSingleSegmentNeverSelfCollides(t *testing.T) {
	r := NewRunner(NewBoard(20, 20), Position{10, 10})
	for _, h := range []Heading{HeadingRight, HeadingDown, HeadingLeft, HeadingUp, HeadingRight} {
		r.SetHeading(h)
		r.Advance()
		if r.SelfCollision() {
			t.Fatalf("single segment collided at %v", r.Position())
		}
	}
}

func TestRunnerFollowsTail(t *testing.T) {
	r := NewRunner(NewBoard(20, 20), Position{5, 5})
	r.SetHeading(HeadingRight)
	r.Advance()
	r.Eat()
	r.Advance()
	r.Eat()

	// Three segments; walking a tight square keeps chasing the tail.
	for _, h := range []Heading{HeadingDown, HeadingLeft, HeadingUp, HeadingRight} {
		r.SetHeading(h)
		r.Advance()
		if r.SelfCollision() {
			t.Fatalf("moving into the vacated tail cell should be safe, body %v", r.Body())
		}
	}
}

func TestRunnerTrailCapacity(t *testing.T) {
	board := NewBoard(5, 5)
	r := NewRunner(board, Position{2, 2})
	if r.trail.Cap() <= board.Area() {
		t.Errorf("trail capacity %d should exceed board area %d", r.trail.Cap(), board.Area())
	}
}

func TestSpawnRunnerCentral(t *testing.T) {
	board := NewBoard(80, 25)
	area := board.Playable()
	cx, cy := area.Center()
	for seed := int64(0); seed < 50; seed++ {
		r := SpawnRunner(board, NewRandom(seed))
		p := r.Position()
		if p.X < cx-area.W/4 || p.X > cx+area.W/4 {
			t.Errorf("seed %d: spawn x %d outside central band around %d", seed, p.X, cx)
		}
		if p.Y < cy-area.H/4 || p.Y > cy+area.H/4 {
			t.Errorf("seed %d: spawn y %d outside central band around %d", seed, p.Y, cy)
		}
		if r.Heading() != HeadingNone || r.Segments() != 1 {
			t.Errorf("seed %d: fresh runner should have no heading and one segment", seed)
		}
	}
}

func TestSpawnRunnerSmallBoards(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"5x5", 5, 5},
		{"6x5", 6, 5},
		{"5x7", 5, 7},
		{"7x6", 7, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			board := NewBoard(tc.width, tc.height)
			for seed := int64(0); seed < 20; seed++ {
				p := SpawnRunner(board, NewRandom(seed)).Position()
				for _, h := range []Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight} {
					if next := p.Step(h); board.IsWall(next) {
						t.Errorf("seed %d: spawn %v is next to the wall (%v)", seed, p, h)
					}
				}
			}
		})
	}
}

func TestSpawnRunnerFirstMoveCommits(t *testing.T) {
	board := NewBoard(MinBoardSize, MinBoardSize)
	for _, h := range []Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight} {
		r := SpawnRunner(board, NewRandom(DefaultSeed))
		r.SetHeading(h)
		if !r.Advance() {
			t.Errorf("first move %v from %v should commit", h, r.Position())
		}
		if r.AtEdge() {
			t.Errorf("first move %v should not reach the wall", h)
		}
	}
}
