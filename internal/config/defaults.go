package config

import (
	_ "embed"
)

//go:embed defaults/columns.yaml
var defaultColumnsYAML []byte

// DefaultColumnsConfig returns the default Columns configuration.
// It mirrors defaults/columns.yaml and is used when the embed cannot be parsed.
func DefaultColumnsConfig() ColumnsConfig {
	return ColumnsConfig{
		Board: ColumnsBoard{
			Width:  6,
			Height: 13,
		},
		Pieces: ColumnsPieces{
			BreakerOdds: 4,
		},
		Timing: ColumnsTiming{
			DropEvery:      45,
			MinDropEvery:   6,
			SoftDropPoints: 1,
		},
		Scoring: ColumnsScoring{
			BlockPoints: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "columns", "columns_endless":
		return defaultColumnsYAML
	default:
		return nil
	}
}
