package snake

// Heading is the runner's direction of travel.
type Heading int

const (
	HeadingNone Heading = iota // Before the first directional input
	HeadingUp
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Delta returns the one-cell offset for the heading.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the exact reverse of h. None has no reverse.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	case HeadingRight:
		return HeadingLeft
	default:
		return HeadingNone
	}
}

// Turn is the heading transition function: it returns the heading that
// results from requesting next while travelling along h. Requests for None
// and exact reversals leave h unchanged.
func (h Heading) Turn(next Heading) Heading {
	if next == HeadingNone || (h != HeadingNone && next == h.Opposite()) {
		return h
	}
	return next
}

// String returns a human-readable name for the heading.
func (h Heading) String() string {
	switch h {
	case HeadingNone:
		return "none"
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}
