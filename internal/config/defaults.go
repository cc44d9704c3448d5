package config

import (
	_ "embed"

	"github.com/KetsiaD/Snake-game-JKC/internal/games/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded configuration: the 80x25 text-mode board at
// 30 ticks per second, moving every third tick.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  80,
			Height: 25,
		},
		Timing: TimingConfig{
			TickRate:  30,
			MoveEvery: 3,
		},
		Food: FoodConfig{
			Target: 1,
		},
		Seed: snake.DefaultSeed,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
