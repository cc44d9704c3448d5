package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/KetsiaD/Snake-game-JKC/internal/config"
	"github.com/KetsiaD/Snake-game-JKC/internal/games/snake"
)

// eventSource is the part of tcell.Screen the event pump reads from.
type eventSource interface {
	PollEvent() tcell.Event
}

// Host runs one engine on a tcell screen. Events are polled on their own
// goroutine and handed to the loop over a channel, so Step and Key never
// run concurrently.
type Host struct {
	screen   tcell.Screen
	canvas   *Canvas
	engine   *snake.Engine
	logger   *log.Logger
	tickRate int
}

// NewHost builds an engine from cfg drawing onto screen. The screen must
// already be initialized.
func NewHost(screen tcell.Screen, cfg config.Config, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	canvas := NewCanvas(screen)
	h := &Host{
		screen:   screen,
		canvas:   canvas,
		logger:   logger,
		tickRate: max(1, cfg.Timing.TickRate),
	}
	h.engine = snake.New(cfg.EngineConfig(),
		snake.WithCanvas(canvas),
		snake.WithLogger(logger),
	)
	h.center()
	return h
}

// Run opens the terminal, plays until the user quits or ctx ends, and
// restores the terminal.
func Run(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()

	return NewHost(screen, cfg, logger).Loop(ctx)
}

// Loop delivers ticks and keys until a quit key or ctx cancellation.
func (h *Host) Loop(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticker := time.NewTicker(time.Second / time.Duration(h.tickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go pollEvents(ctx, h.screen, events)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.handleEvent(ev) {
				h.logger.Debug("quit requested", "tick", h.engine.Tick(), "score", h.engine.Score())
				return nil
			}

		case <-ticker.C:
			h.frame()
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized or ctx
// ends. events is closed when the screen stops delivering.
func pollEvents(ctx context.Context, src eventSource, events chan<- tcell.Event) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handleEvent applies one terminal event. It returns false on quit.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		h.center()
		h.screen.Sync()
	}
	return true
}

func (h *Host) handleKey(key tcell.Key, r rune) bool {
	ev, ok, quit := translateKey(key, r)
	if quit {
		return false
	}
	if ok {
		h.engine.Key(ev)
	}
	return true
}

// frame clears the screen, lets the engine redraw it and flushes.
func (h *Host) frame() {
	h.screen.Clear()
	h.engine.Step()
	h.screen.Show()
}

// center places the board in the middle of the terminal.
func (h *Host) center() {
	w, hgt := h.screen.Size()
	board := h.engine.Board()
	h.canvas.SetOffset(max(0, (w-board.Width)/2), max(0, (hgt-board.Height)/2))
}
