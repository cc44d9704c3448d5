package snake

import (
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/KetsiaD/Snake-game-JKC/internal/core"
)

// MinBoardSize is the smallest width or height the engine accepts. Anything
// smaller leaves no interior to move in once the wall ring is drawn.
const MinBoardSize = 5

// Config holds the construction-time constants of a run.
type Config struct {
	Width      int   // Board width including walls
	Height     int   // Board height including walls
	MoveEvery  int   // Ticks per runner move
	TargetFood int   // Simultaneous food items
	Seed       int64 // Seed used by every reset
}

// DefaultConfig returns the classic 80x25 text-mode setup.
func DefaultConfig() Config {
	return Config{
		Width:      80,
		Height:     25,
		MoveEvery:  3,
		TargetFood: 1,
		Seed:       DefaultSeed,
	}
}

// normalize fills zero values with defaults and clamps the board size.
func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.Width == 0 {
		c.Width = def.Width
	}
	if c.Height == 0 {
		c.Height = def.Height
	}
	c.Width = max(c.Width, MinBoardSize)
	c.Height = max(c.Height, MinBoardSize)
	if c.MoveEvery <= 0 {
		c.MoveEvery = def.MoveEvery
	}
	if c.TargetFood <= 0 {
		c.TargetFood = def.TargetFood
	}
	return c
}

// Option configures an Engine.
type Option func(*Engine)

// WithCanvas sets the drawing target for Step.
func WithCanvas(c core.Canvas) Option {
	return func(e *Engine) {
		e.canvas = c
	}
}

// WithLogger sets the logger for run events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// discardCanvas swallows draw calls when the host supplies no canvas.
type discardCanvas struct{}

func (discardCanvas) DrawCell(rune, int, int, core.Color, core.Color) {}

// Engine drives one run: it owns the runner, the food field and the random
// source, and advances them one tick at a time. Step and Key must not be
// called concurrently; hosts serialize delivery.
type Engine struct {
	cfg    Config
	board  Board
	rng    Random
	runner *Runner
	food   *FoodField
	router inputRouter

	canvas core.Canvas
	logger *log.Logger

	tick       int64
	moveTicker int
	score      int
	state      State
	cause      Cause
	saturated  bool // Food spawning failed on the last attempt
}

// New creates an engine and starts its first run.
func New(cfg Config, opts ...Option) *Engine {
	cfg = cfg.normalize()
	e := &Engine{
		cfg:    cfg,
		board:  NewBoard(cfg.Width, cfg.Height),
		canvas: discardCanvas{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset()
	return e
}

// Reset starts a fresh run from the fixed seed. Runner and food field are
// rebuilt; tick count and score go back to zero.
func (e *Engine) Reset() {
	e.rng = NewRandom(e.cfg.Seed)
	e.runner = SpawnRunner(e.board, e.rng)
	e.food = NewFoodField(e.board, e.cfg.TargetFood)
	e.tick = 0
	e.moveTicker = 0
	e.score = 0
	e.state = StateRunning
	e.cause = CauseNone
	e.saturated = false

	e.logger.Debug("run reset", "seed", e.cfg.Seed, "spawn", e.runner.Position())
}

// Step advances the simulation by one tick and redraws the board.
func (e *Engine) Step() core.StepResult {
	if e.state == StateGameOver {
		e.draw()
		e.drawRestartPrompt()
		return core.StepResult{State: e.GameState()}
	}

	e.topUp()

	var result core.StepResult
	e.moveTicker++
	if e.moveTicker >= e.cfg.MoveEvery {
		e.moveTicker = 0
		result.Moved = e.runner.Advance()
	}

	if e.food.Consume(e.runner.Position()) {
		e.runner.Eat()
		e.score++
		result.Ate = true
		e.topUp()
	}

	if cause := e.collision(); cause != CauseNone {
		e.state = e.state.Next(EventCollision)
		e.cause = cause
		e.logger.Info("game over", "cause", cause, "score", e.score, "tick", e.tick)
	}

	e.draw()
	e.tick++

	result.State = e.GameState()
	return result
}

// Key applies a decoded key event.
func (e *Engine) Key(ev KeyEvent) {
	switch e.router.route(e.state, ev) {
	case intentTurn:
		e.runner.SetHeading(ev.Heading)
	case intentReset:
		e.state = e.state.Next(EventReset)
		e.Reset()
	}
}

// topUp replenishes food. Saturation skips the spawn and is logged once,
// when it begins; a full top-up clears it.
func (e *Engine) topUp() {
	err := e.food.TopUp(e.rng, e.runner.Occupies)
	if err == nil {
		e.saturated = false
		return
	}
	if !e.saturated {
		e.saturated = true
		e.logger.Warn("food spawn skipped", "error", err, "live", e.food.Live(), "target", e.food.Target())
	}
}

// collision evaluates the termination conditions after a move.
func (e *Engine) collision() Cause {
	if !e.runner.HasMoved() {
		return CauseNone
	}
	if e.runner.AtEdge() {
		return CauseEdge
	}
	if e.runner.SelfCollision() {
		return CauseSelf
	}
	return CauseNone
}

// State returns the run state.
func (e *Engine) State() State {
	return e.state
}

// Score returns the number of food items eaten this run.
func (e *Engine) Score() int {
	return e.score
}

// Tick returns the number of running ticks simulated this run.
func (e *Engine) Tick() int64 {
	return e.tick
}

// Board returns the board geometry.
func (e *Engine) Board() Board {
	return e.board
}

// Config returns the normalized configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// GameState returns the host-facing summary.
func (e *Engine) GameState() core.GameState {
	return core.GameState{
		Score:    e.score,
		GameOver: e.state == StateGameOver,
	}
}

// --- Rendering ---

const (
	symbolWall = '#'
	symbolFood = '*'
	symbolHead = 'O'
	symbolBody = 'o'
)

// draw emits the whole frame: walls, food, body and status readouts.
func (e *Engine) draw() {
	for _, w := range e.board.Walls() {
		e.canvas.DrawCell(symbolWall, w.X, w.Y, core.ColorLightGreen, core.ColorBlack)
	}

	for _, f := range e.food.Cells() {
		e.canvas.DrawCell(symbolFood, f.X, f.Y, core.ColorLightRed, core.ColorBlack)
	}

	// Tail first so the head wins if segments overlap.
	body := e.runner.Body()
	for i := len(body) - 1; i >= 0; i-- {
		symbol := symbolBody
		if i == 0 {
			symbol = symbolHead
		}
		e.canvas.DrawCell(symbol, body[i].X, body[i].Y, core.ColorGreen, core.ColorBlack)
	}

	e.drawText(e.board.Width/2, 0, strconv.FormatInt(e.tick, 10), core.ColorLightGray, core.ColorBlack)
	scoreX := max(1, e.board.Width-20)
	e.drawText(scoreX, 0, "Score:", core.ColorLightRed, core.ColorBlack)
	e.drawText(scoreX+6, 0, strconv.Itoa(e.score), core.ColorLightRed, core.ColorBlack)
}

// drawRestartPrompt overlays the game-over notice.
func (e *Engine) drawRestartPrompt() {
	midY := e.board.Height / 2
	e.drawCentered(midY-1, " GAME OVER ", core.ColorWhite, core.ColorRed)
	e.drawCentered(midY+1, " Press R to restart ", core.ColorWhite, core.ColorRed)
}

func (e *Engine) drawCentered(y int, text string, fg, bg core.Color) {
	x := (e.board.Width - len(text)) / 2
	e.drawText(x, y, text, fg, bg)
}

// drawText plots text one cell per rune, clipped to the board.
func (e *Engine) drawText(x, y int, text string, fg, bg core.Color) {
	i := 0
	for _, r := range text {
		p := Position{X: x + i, Y: y}
		if e.board.Contains(p) {
			e.canvas.DrawCell(r, p.X, p.Y, fg, bg)
		}
		i++
	}
}
