package config

import (
	_ "embed"
)

//go:embed defaults/blockpuzzle.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors the embedded
// defaults/blockpuzzle.yaml and is used when that file cannot be parsed.
func DefaultConfig() BlockPuzzleConfig {
	return BlockPuzzleConfig{
		Board: BoardConfig{
			Blocks: 10,
		},
		Drag: DragConfig{
			FieldWidth:           300,
			AnchorOffset:         2,
			TerminalAnchorOffset: 0,
		},
		Scoring: ScoringConfig{
			CellPoints: 1,
			LinePoints: 10,
		},
		Rotation: RotationConfig{
			Penalty: 0,
		},
		NewGame: NewGameConfig{
			ConfirmThreshold: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				HeavyPieceBoost: 2.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, for users who want a
// starting point for their own config file.
func DefaultYAML() []byte {
	return defaultYAML
}
