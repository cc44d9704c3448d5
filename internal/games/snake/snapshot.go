package snake

// Snapshot captures the observable engine state for determinism testing and
// for headless runs.
type Snapshot struct {
	Tick        int64      `yaml:"tick"`
	Score       int        `yaml:"score"`
	State       State      `yaml:"-"`
	StateName   string     `yaml:"state"`
	Cause       string     `yaml:"cause"`
	Head        Position   `yaml:"head"`
	Heading     string     `yaml:"heading"`
	Segments    int        `yaml:"segments"`
	Body        []Position `yaml:"body,flow"`
	Food        []Position `yaml:"food,flow"`
	FoodSpawned int        `yaml:"food_spawned"`
	AtEdge      bool       `yaml:"at_edge"`
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:        e.tick,
		Score:       e.score,
		State:       e.state,
		StateName:   e.state.String(),
		Cause:       e.cause.String(),
		Head:        e.runner.Position(),
		Heading:     e.runner.Heading().String(),
		Segments:    e.runner.Segments(),
		Body:        e.runner.Body(),
		Food:        e.food.Cells(),
		FoodSpawned: e.food.TotalSpawned(),
		AtEdge:      e.runner.AtEdge(),
	}
}
