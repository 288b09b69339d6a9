// Package config provides YAML-based game configuration loading and
// difficulty management for Columns.
package config

import (
	"errors"
	"fmt"
)

// ColumnsConfig contains all configuration for the Columns game.
type ColumnsConfig struct {
	Board      ColumnsBoard     `yaml:"board"`
	Pieces     ColumnsPieces    `yaml:"pieces"`
	Timing     ColumnsTiming    `yaml:"timing"`
	Scoring    ColumnsScoring   `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ColumnsBoard defines the playfield size in cells.
type ColumnsBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ColumnsPieces defines how new pieces are drawn.
type ColumnsPieces struct {
	BreakerOdds int `yaml:"breaker_odds"` // One block in N is a breaker; 0 disables breakers
}

// ColumnsTiming defines gravity timing in ticks.
type ColumnsTiming struct {
	DropEvery      int `yaml:"drop_every"`       // Ticks between gravity steps at the start
	MinDropEvery   int `yaml:"min_drop_every"`   // Fastest gravity the difficulty can reach
	SoftDropPoints int `yaml:"soft_drop_points"` // Points per row moved with soft drop
}

// ColumnsScoring defines points awarded for clears.
type ColumnsScoring struct {
	BlockPoints int `yaml:"block_points"` // Points per cleared block, multiplied by chain step
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// ErrInvalidConfig is returned by Validate for unusable values.
var ErrInvalidConfig = errors.New("config: invalid columns config")

// Validate checks that the config describes a playable game.
func (c ColumnsConfig) Validate() error {
	switch {
	case c.Board.Width < 3:
		return fmt.Errorf("%w: board width %d, need at least 3", ErrInvalidConfig, c.Board.Width)
	case c.Board.Height < 4:
		return fmt.Errorf("%w: board height %d, need at least 4", ErrInvalidConfig, c.Board.Height)
	case c.Pieces.BreakerOdds < 0:
		return fmt.Errorf("%w: breaker_odds %d is negative", ErrInvalidConfig, c.Pieces.BreakerOdds)
	case c.Timing.DropEvery < 1:
		return fmt.Errorf("%w: drop_every %d, need at least 1", ErrInvalidConfig, c.Timing.DropEvery)
	case c.Timing.MinDropEvery < 1 || c.Timing.MinDropEvery > c.Timing.DropEvery:
		return fmt.Errorf("%w: min_drop_every %d outside [1, %d]", ErrInvalidConfig, c.Timing.MinDropEvery, c.Timing.DropEvery)
	case c.Scoring.BlockPoints < 0:
		return fmt.Errorf("%w: block_points %d is negative", ErrInvalidConfig, c.Scoring.BlockPoints)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset converts a CLI/menu string into a preset.
// Empty or unknown input yields false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
