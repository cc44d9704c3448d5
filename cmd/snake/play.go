package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/KetsiaD/Snake-game-JKC/internal/config"
	termhost "github.com/KetsiaD/Snake-game-JKC/internal/platform/term"
	"github.com/KetsiaD/Snake-game-JKC/internal/platform/tui"
)

const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

var (
	flagBackend string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Steer
  R            - Restart (after game over)
  Q/Esc/Ctrl+C - Quit

Backends:
  tea    - Bubble Tea UI with key help (default)
  tcell  - Raw tcell screen

The terminal belongs to the game while it runs, so logs go to --log-file.

Examples:
  snake play
  snake play --backend tcell
  snake play --seed 42 --fps 20
  snake play --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTea, "Terminal backend: tea or tcell")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out, "snake")
	if err != nil {
		return err
	}

	warnIfTooSmall(cfg)

	switch flagBackend {
	case backendTea:
		return tui.Run(cfg, logger)
	case backendTcell:
		return termhost.Run(cmd.Context(), cfg, logger)
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", flagBackend, backendTea, backendTcell)
	}
}

// warnIfTooSmall reports a terminal that cannot show the whole board.
func warnIfTooSmall(cfg config.Config) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	if width < cfg.Board.Width || height < cfg.Board.Height {
		log.Warn("terminal is smaller than the board",
			"terminal", fmt.Sprintf("%dx%d", width, height),
			"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height))
	}
}
