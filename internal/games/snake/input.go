package snake

// KeyKind distinguishes the two classes of decoded key events.
type KeyKind int

const (
	KeyDirection KeyKind = iota // Arrow-style directional key
	KeyChar                     // Printable character
)

// KeyEvent is a decoded key press delivered by the host.
type KeyEvent struct {
	Kind    KeyKind
	Heading Heading // Set for KeyDirection
	Char    rune    // Set for KeyChar
}

// DirectionKey builds a directional key event.
func DirectionKey(h Heading) KeyEvent {
	return KeyEvent{Kind: KeyDirection, Heading: h}
}

// CharKey builds a character key event.
func CharKey(r rune) KeyEvent {
	return KeyEvent{Kind: KeyChar, Char: r}
}

// intent is what a key event asks the engine to do.
type intent int

const (
	intentIgnore intent = iota
	intentTurn
	intentReset
)

// inputRouter maps key events to engine mutations for the current state.
// Directions only steer a running game; 'r' only restarts a finished one.
type inputRouter struct{}

func (inputRouter) route(state State, ev KeyEvent) intent {
	switch ev.Kind {
	case KeyDirection:
		if state == StateRunning && ev.Heading != HeadingNone {
			return intentTurn
		}
	case KeyChar:
		if state == StateGameOver && (ev.Char == 'r' || ev.Char == 'R') {
			return intentReset
		}
	}
	return intentIgnore
}
