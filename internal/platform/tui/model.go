package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/KetsiaD/Snake-game-JKC/internal/config"
	"github.com/KetsiaD/Snake-game-JKC/internal/core"
	"github.com/KetsiaD/Snake-game-JKC/internal/games/snake"
)

// Model is the Bubble Tea model for one snake run.
type Model struct {
	engine   *snake.Engine
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	tickRate int
	width    int
	height   int
	quitting bool
}

// NewModel creates a model with its own engine built from cfg.
func NewModel(cfg config.Config, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screen := core.NewScreen(cfg.Board.Width, cfg.Board.Height)
	engine := snake.New(cfg.EngineConfig(),
		snake.WithCanvas(screen),
		snake.WithLogger(logger),
	)

	return Model{
		engine:   engine,
		screen:   screen,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		tickRate: cfg.Timing.TickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	ev, ok, quit := m.keys.Translate(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if ok {
		m.engine.Key(ev)
	}
	return m, nil
}

// handleTick redraws the frame from scratch through one engine step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.screen.Clear()
	m.engine.Step()
	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current frame as plain text under ~/.snake/screenshots.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current frame and the key help below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Run starts a local Bubble Tea program for one session.
func Run(cfg config.Config, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
