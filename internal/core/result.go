package core

// GameState is the summary a host needs after each tick.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
}

// StepResult is returned by Engine.Step after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // Whether the runner advanced this tick
	Ate   bool // Whether food was consumed this tick
}
