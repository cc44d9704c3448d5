package snake

// State is the engine's run state.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// Event drives State transitions.
type Event int

const (
	EventCollision Event = iota // Runner hit a wall or its own body
	EventReset                  // Explicit restart request
)

// Next is the single run-state transition function. Collisions end a
// running game; only a reset revives a finished one. Every other pairing
// leaves the state unchanged.
func (s State) Next(ev Event) State {
	switch {
	case s == StateRunning && ev == EventCollision:
		return StateGameOver
	case s == StateGameOver && ev == EventReset:
		return StateRunning
	default:
		return s
	}
}

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause records why a run ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseEdge
	CauseSelf
)

// String returns the cause name.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseEdge:
		return "edge"
	case CauseSelf:
		return "self"
	default:
		return "unknown"
	}
}
