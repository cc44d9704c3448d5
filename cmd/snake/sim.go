package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KetsiaD/Snake-game-JKC/internal/core"
	"github.com/KetsiaD/Snake-game-JKC/internal/games/snake"
)

var (
	flagSteps   int
	flagScript  string
	flagNoFrame bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game and print the final state",
	Long: `Run the engine without a terminal, feeding it a scripted key sequence,
then print the last frame and a YAML snapshot of the final state.

The same seed and script always produce the same output.

Script format: comma-separated step:key pairs. Keys are up, down, left,
right or a single character such as r.

Examples:
  snake sim --steps 300 --script "0:right,45:down,90:left"
  snake sim --seed 7 --steps 1000 --script "0:up" --no-frame`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSteps, "steps", 300, "Number of engine steps to run")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Key script, e.g. \"0:right,30:down\"")
	simCmd.Flags().BoolVar(&flagNoFrame, "no-frame", false, "Print only the snapshot")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	keys, err := parseScript(flagScript)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "snake-sim")
	if err != nil {
		return err
	}

	screen := core.NewScreen(cfg.Board.Width, cfg.Board.Height)
	engine := snake.New(cfg.EngineConfig(),
		snake.WithCanvas(screen),
		snake.WithLogger(logger),
	)

	snap := simulate(engine, screen, keys, flagSteps)

	if !flagNoFrame {
		fmt.Println(screen.String())
		fmt.Println()
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return enc.Close()
}

// simulate runs steps engine steps, delivering scripted keys before each.
func simulate(engine *snake.Engine, screen *core.Screen, keys script, steps int) snake.Snapshot {
	for i := 0; i < steps; i++ {
		for _, ev := range keys[i] {
			engine.Key(ev)
		}
		screen.Clear()
		engine.Step()
	}
	return engine.Snapshot()
}
