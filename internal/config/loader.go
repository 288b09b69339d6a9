package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadColumns loads Columns configuration.
// Search order: customPath -> ~/.columns/configs/columns.yaml -> ./configs/columns.yaml -> embedded default
//
// Files are decoded over DefaultColumnsConfig, so a partial file only
// overrides the keys it names. A custom path that is missing, malformed or
// invalid is an error; the other locations are skipped silently.
func LoadColumns(customPath string) (ColumnsConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ColumnsConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseColumns(data)
		if err != nil {
			return ColumnsConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("columns.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseColumns(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "columns.yaml")); err == nil {
		if cfg, err := parseColumns(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseColumns(defaultColumnsYAML)
	if err != nil {
		return DefaultColumnsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseColumns decodes YAML over the hardcoded defaults and validates the result.
func parseColumns(data []byte) (ColumnsConfig, error) {
	cfg := DefaultColumnsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ColumnsConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ColumnsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".columns", "configs", filename)
}

// ApplyColumnsPreset modifies the config based on a difficulty preset.
func ApplyColumnsPreset(cfg *ColumnsConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Pieces.BreakerOdds = 3
		cfg.Timing.DropEvery = cfg.Timing.DropEvery * 4 / 3
	case DifficultyHard:
		cfg.Pieces.BreakerOdds = 6
		cfg.Timing.DropEvery = max(cfg.Timing.MinDropEvery, cfg.Timing.DropEvery*2/3)
	}
}
