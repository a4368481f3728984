package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults differ from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "board:\n  blocks: 8\nscoring:\n  line_points: 25\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Blocks != 8 {
		t.Errorf("Board.Blocks = %d, expected 8", cfg.Board.Blocks)
	}
	if cfg.Scoring.LinePoints != 25 {
		t.Errorf("Scoring.LinePoints = %d, expected 25", cfg.Scoring.LinePoints)
	}
	// Unset fields keep defaults
	if cfg.Drag.AnchorOffset != 2 {
		t.Errorf("Drag.AnchorOffset = %d, expected default 2", cfg.Drag.AnchorOffset)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board:\n  blocks: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "board.blocks") {
		t.Errorf("Load() with tiny board should report board.blocks, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlockPuzzleConfig)
		ok     bool
	}{
		{"defaults", func(*BlockPuzzleConfig) {}, true},
		{"zero field width", func(c *BlockPuzzleConfig) { c.Drag.FieldWidth = 0 }, false},
		{"negative penalty", func(c *BlockPuzzleConfig) { c.Rotation.Penalty = -1 }, false},
		{"negative points", func(c *BlockPuzzleConfig) { c.Scoring.LinePoints = -10 }, false},
		{"unknown progression", func(c *BlockPuzzleConfig) { c.Difficulty.Progression.Type = "time" }, false},
		{"moves progression", func(c *BlockPuzzleConfig) { c.Difficulty.Progression.Type = "moves" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyPreset(&cfg, "")
	if cfg != before {
		t.Error("empty preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("BLOCKPUZZLE_DB", "/tmp/x.db")
	t.Setenv("BLOCKPUZZLE_SEED", "42")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if e.DBPath != "/tmp/x.db" || e.Seed != 42 {
		t.Errorf("LoadEnv() = %+v", e)
	}
	if e.LogLevel != "info" {
		t.Errorf("LogLevel default = %q, expected info", e.LogLevel)
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path")
	if err != nil || got != "/abs/path" {
		t.Errorf("ExpandHome(/abs/path) = %q, %v", got, err)
	}

	t.Setenv("HOME", "/home/tester")
	got, err = ExpandHome("~/.blockpuzzle/db")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join("/home/tester", ".blockpuzzle", "db") {
		t.Errorf("ExpandHome(~/...) = %q", got)
	}
}
