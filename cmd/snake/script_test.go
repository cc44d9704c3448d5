package main

import (
	"reflect"
	"testing"

	"github.com/KetsiaD/Snake-game-JKC/internal/core"
	"github.com/KetsiaD/Snake-game-JKC/internal/games/snake"
)

func TestParseScript(t *testing.T) {
	got, err := parseScript(" 0:right, 30:Down,30:r ,99:x")
	if err != nil {
		t.Fatalf("parseScript() error = %v", err)
	}
	want := script{
		0:  {snake.DirectionKey(snake.HeadingRight)},
		30: {snake.DirectionKey(snake.HeadingDown), snake.CharKey('r')},
		99: {snake.CharKey('x')},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseScript() = %v, expected %v", got, want)
	}
}

func TestParseScriptEmpty(t *testing.T) {
	got, err := parseScript("")
	if err != nil || len(got) != 0 {
		t.Errorf("parseScript(\"\") = %v, %v, expected empty", got, err)
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, in := range []string{"right", "x:up", "-1:up", "5:sideways", "5:"} {
		if _, err := parseScript(in); err == nil {
			t.Errorf("parseScript(%q) expected an error", in)
		}
	}
}

func TestSimulateIsReproducible(t *testing.T) {
	keys, err := parseScript("0:right,40:down,80:left,120:up")
	if err != nil {
		t.Fatal(err)
	}

	run := func() (snake.Snapshot, string) {
		screen := core.NewScreen(40, 20)
		engine := snake.New(snake.Config{Width: 40, Height: 20, Seed: 9}, snake.WithCanvas(screen))
		return simulate(engine, screen, keys, 200), screen.String()
	}

	snap1, frame1 := run()
	snap2, frame2 := run()
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
	if frame1 != frame2 {
		t.Error("final frames differ")
	}
}
