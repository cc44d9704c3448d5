// snake is a terminal runner game: steer the snake, eat the food, avoid the
// walls and your own tail.
//
// Usage:
//
//	snake play              - Play in this terminal
//	snake serve             - Start SSH server for remote play
//	snake sim               - Run a headless scripted game and print the result
//
// Global flags:
//
//	--config <path>    - Config file (default: search ~/.snake, ./configs, built-in)
//	--seed <value>     - Override the RNG seed
//	--fps <rate>       - Override the tick rate
//	--log-level <lvl>  - debug, info, warn or error
//
// SNAKE_CONFIG and SNAKE_SEED, from the environment or a .env file, stand in
// for --config and --seed when the flags are not given.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KetsiaD/Snake-game-JKC/internal/config"
)

const (
	envConfig = "SNAKE_CONFIG"
	envSeed   = "SNAKE_SEED"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagLogLevel string
)

func main() {
	// A missing .env file is normal.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a runner game for your terminal",
	Long: `Snake runs a classic grid runner in your terminal.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  sim      - Headless deterministic run

Examples:
  snake play
  snake play --backend tcell
  snake serve --ssh :2222
  snake sim --steps 600 --script "0:right,90:down"`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (env "+envConfig+")")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed override (env "+envSeed+")")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig resolves the configuration file and applies flag and
// environment overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	path := flagConfig
	if !flags.Changed("config") {
		path = os.Getenv(envConfig)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	switch {
	case flags.Changed("seed"):
		cfg.Seed = flagSeed
	case os.Getenv(envSeed) != "":
		seed, err := strconv.ParseInt(os.Getenv(envSeed), 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", envSeed, err)
		}
		cfg.Seed = seed
	}

	if flags.Changed("fps") {
		cfg.Timing.TickRate = flagFPS
	}

	return cfg, cfg.Validate()
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
