// Package config provides YAML-based configuration loading for the snake
// engine and its hosts.
package config

import (
	"fmt"

	"github.com/KetsiaD/Snake-game-JKC/internal/games/snake"
)

// Config contains all configuration for a snake run.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Food   FoodConfig   `yaml:"food"`
	Seed   int64        `yaml:"seed"`
}

// BoardConfig defines the board geometry, wall ring included.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines tick delivery and the move throttle.
type TimingConfig struct {
	TickRate  int `yaml:"tick_rate"`  // Ticks per second delivered by the host
	MoveEvery int `yaml:"move_every"` // Ticks per runner move
}

// FoodConfig defines how much food is kept on the board.
type FoodConfig struct {
	Target int `yaml:"target"`
}

// Validate checks that the configuration describes a playable board.
func (c Config) Validate() error {
	if c.Board.Width < snake.MinBoardSize || c.Board.Height < snake.MinBoardSize {
		return fmt.Errorf("config: board %dx%d is smaller than %dx%d",
			c.Board.Width, c.Board.Height, snake.MinBoardSize, snake.MinBoardSize)
	}
	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Timing.TickRate)
	}
	if c.Timing.MoveEvery <= 0 {
		return fmt.Errorf("config: move_every must be positive, got %d", c.Timing.MoveEvery)
	}
	if c.Food.Target <= 0 {
		return fmt.Errorf("config: food target must be positive, got %d", c.Food.Target)
	}
	return nil
}

// EngineConfig converts the file configuration into engine construction
// constants.
func (c Config) EngineConfig() snake.Config {
	return snake.Config{
		Width:      c.Board.Width,
		Height:     c.Board.Height,
		MoveEvery:  c.Timing.MoveEvery,
		TargetFood: c.Food.Target,
		Seed:       c.Seed,
	}
}
