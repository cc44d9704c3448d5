package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KetsiaD/Snake-game-JKC/internal/games/snake"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home, work
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(DefaultYAML()) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "snake.yaml"), "board:\n  width: 40\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Board.Width != 40 {
		t.Errorf("local config: Board.Width = %d, expected 40", cfg.Board.Width)
	}

	writeFile(t, filepath.Join(home, ".snake", "config.yaml"), "board:\n  width: 50\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Board.Width != 50 {
		t.Errorf("user config: Board.Width = %d, expected 50", cfg.Board.Width)
	}

	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "board:\n  width: 60\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load(custom) error = %v", err)
	}
	if cfg.Board.Width != 60 {
		t.Errorf("custom config: Board.Width = %d, expected 60", cfg.Board.Width)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "partial.yaml")
	writeFile(t, path, "seed: 99\ntiming:\n  move_every: 2\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seed != 99 || cfg.Timing.MoveEvery != 2 {
		t.Errorf("Load() = %+v, expected seed 99 and move_every 2", cfg)
	}
	if cfg.Board != Default().Board || cfg.Timing.TickRate != 30 {
		t.Errorf("unset fields changed: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, work := isolate(t)

	if _, err := Load(filepath.Join(work, "missing.yaml")); err == nil {
		t.Error("Load(missing) expected an error")
	}

	bad := filepath.Join(work, "bad.yaml")
	writeFile(t, bad, "board: [not, a, map\n")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("Load(bad) error = %v, expected a parse error", err)
	}

	small := filepath.Join(work, "small.yaml")
	writeFile(t, small, "board:\n  width: 4\n  height: 4\n")
	if _, err := Load(small); err == nil {
		t.Error("Load(small) expected a validation error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"minimum board", func(c *Config) { c.Board = BoardConfig{5, 5} }, true},
		{"narrow board", func(c *Config) { c.Board.Width = 4 }, false},
		{"short board", func(c *Config) { c.Board.Height = 2 }, false},
		{"zero tick rate", func(c *Config) { c.Timing.TickRate = 0 }, false},
		{"negative move interval", func(c *Config) { c.Timing.MoveEvery = -1 }, false},
		{"no food", func(c *Config) { c.Food.Target = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() = %v, expected valid=%v", err, tc.valid)
			}
		})
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := Default()
	cfg.Seed = 7
	got := cfg.EngineConfig()
	want := snake.Config{Width: 80, Height: 25, MoveEvery: 3, TargetFood: 1, Seed: 7}
	if got != want {
		t.Errorf("EngineConfig() = %+v, expected %+v", got, want)
	}
}
