package snake

import "testing"

func TestHeadingTurn(t *testing.T) {
	tests := []struct {
		name     string
		from     Heading
		next     Heading
		expected Heading
	}{
		{"first input accepted", HeadingNone, HeadingLeft, HeadingLeft},
		{"none request ignored", HeadingRight, HeadingNone, HeadingRight},
		{"right to left refused", HeadingRight, HeadingLeft, HeadingRight},
		{"left to right refused", HeadingLeft, HeadingRight, HeadingLeft},
		{"up to down refused", HeadingUp, HeadingDown, HeadingUp},
		{"down to up refused", HeadingDown, HeadingUp, HeadingDown},
		{"right to up accepted", HeadingRight, HeadingUp, HeadingUp},
		{"up to left accepted", HeadingUp, HeadingLeft, HeadingLeft},
		{"same heading kept", HeadingDown, HeadingDown, HeadingDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.Turn(tc.next); got != tc.expected {
				t.Errorf("%v.Turn(%v) = %v, expected %v", tc.from, tc.next, got, tc.expected)
			}
		})
	}
}

func TestHeadingOppositeIsSymmetric(t *testing.T) {
	for _, h := range []Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight} {
		if h.Opposite().Opposite() != h {
			t.Errorf("%v.Opposite().Opposite() = %v", h, h.Opposite().Opposite())
		}
		dx, dy := h.Delta()
		ox, oy := h.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v and its opposite do not cancel: (%d,%d) + (%d,%d)", h, dx, dy, ox, oy)
		}
		if abs(dx)+abs(dy) != 1 {
			t.Errorf("%v.Delta() = (%d,%d), expected a unit step", h, dx, dy)
		}
	}
	if HeadingNone.Opposite() != HeadingNone {
		t.Error("None should have no opposite")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
