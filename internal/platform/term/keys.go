package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/KetsiaD/Snake-game-JKC/internal/games/snake"
)

// translateKey decodes a tcell key into an engine event. ok is false when
// the key means nothing to the engine; quit reports a quit request.
func translateKey(key tcell.Key, r rune) (ev snake.KeyEvent, ok, quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return snake.KeyEvent{}, false, true
	case tcell.KeyUp:
		return snake.DirectionKey(snake.HeadingUp), true, false
	case tcell.KeyDown:
		return snake.DirectionKey(snake.HeadingDown), true, false
	case tcell.KeyLeft:
		return snake.DirectionKey(snake.HeadingLeft), true, false
	case tcell.KeyRight:
		return snake.DirectionKey(snake.HeadingRight), true, false
	case tcell.KeyRune:
	default:
		return snake.KeyEvent{}, false, false
	}

	switch r {
	case 'q', 'Q':
		return snake.KeyEvent{}, false, true
	case 'w', 'k':
		return snake.DirectionKey(snake.HeadingUp), true, false
	case 's', 'j':
		return snake.DirectionKey(snake.HeadingDown), true, false
	case 'a', 'h':
		return snake.DirectionKey(snake.HeadingLeft), true, false
	case 'd', 'l':
		return snake.DirectionKey(snake.HeadingRight), true, false
	}
	return snake.CharKey(r), true, false
}
