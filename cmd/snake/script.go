package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KetsiaD/Snake-game-JKC/internal/games/snake"
)

// script maps a step index to the keys delivered before that step.
type script map[int][]snake.KeyEvent

// parseScript reads a comma-separated list of step:key pairs, for example
// "0:right,30:down,200:r". Keys are up, down, left, right or a single
// character.
func parseScript(s string) (script, error) {
	out := script{}
	s = strings.TrimSpace(s)
	if s == "" {
		return out, nil
	}

	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		stepText, keyText, found := strings.Cut(item, ":")
		if !found {
			return nil, fmt.Errorf("script entry %q: expected step:key", item)
		}
		step, err := strconv.Atoi(strings.TrimSpace(stepText))
		if err != nil || step < 0 {
			return nil, fmt.Errorf("script entry %q: bad step", item)
		}
		ev, err := parseKey(strings.TrimSpace(keyText))
		if err != nil {
			return nil, fmt.Errorf("script entry %q: %w", item, err)
		}
		out[step] = append(out[step], ev)
	}
	return out, nil
}

func parseKey(s string) (snake.KeyEvent, error) {
	switch strings.ToLower(s) {
	case "up":
		return snake.DirectionKey(snake.HeadingUp), nil
	case "down":
		return snake.DirectionKey(snake.HeadingDown), nil
	case "left":
		return snake.DirectionKey(snake.HeadingLeft), nil
	case "right":
		return snake.DirectionKey(snake.HeadingRight), nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return snake.CharKey(r), nil
	}
	return snake.KeyEvent{}, fmt.Errorf("unknown key %q", s)
}
