// Package config provides YAML-based puzzle configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// BlockPuzzleConfig contains all tunable parameters of the puzzle.
type BlockPuzzleConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Drag       DragConfig       `yaml:"drag"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Rotation   RotationConfig   `yaml:"rotation"`
	NewGame    NewGameConfig    `yaml:"new_game"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Blocks int `yaml:"blocks"` // Side length of the square board in cells
}

// DragConfig defines how drop gestures map to board cells.
type DragConfig struct {
	FieldWidth           float64 `yaml:"field_width"`            // Playing field width in density-independent units
	AnchorOffset         int     `yaml:"anchor_offset"`          // Rows between pointer and piece shadow on touch screens
	TerminalAnchorOffset int     `yaml:"terminal_anchor_offset"` // Same, for mouse drags in the terminal
}

// ScoringConfig defines the scoring policy.
type ScoringConfig struct {
	CellPoints int `yaml:"cell_points"` // Points per placed cell
	LinePoints int `yaml:"line_points"` // Multiplied by k*k for k simultaneously cleared lines
}

// RotationConfig defines rotating mode costs.
type RotationConfig struct {
	Penalty int `yaml:"penalty"` // Points subtracted per rotation
}

// NewGameConfig defines when starting over needs confirmation.
type NewGameConfig struct {
	ConfirmThreshold int `yaml:"confirm_threshold"` // Running games with at least this score ask first
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	HeavyPieceBoost float64 `yaml:"heavy_piece_boost"` // Extra draw weight for 5+ cell pieces at max difficulty
}

// Validate reports configuration values the puzzle cannot run with.
func (c BlockPuzzleConfig) Validate() error {
	var errs []error
	if c.Board.Blocks < 4 {
		errs = append(errs, fmt.Errorf("board.blocks must be at least 4, got %d", c.Board.Blocks))
	}
	if c.Drag.FieldWidth <= 0 {
		errs = append(errs, fmt.Errorf("drag.field_width must be positive, got %g", c.Drag.FieldWidth))
	}
	if c.Scoring.CellPoints < 0 || c.Scoring.LinePoints < 0 {
		errs = append(errs, errors.New("scoring points must not be negative"))
	}
	if c.Rotation.Penalty < 0 {
		errs = append(errs, fmt.Errorf("rotation.penalty must not be negative, got %d", c.Rotation.Penalty))
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "moves", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, moves, none", c.Difficulty.Progression.Type))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *BlockPuzzleConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
