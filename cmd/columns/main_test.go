package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-columns/internal/games/columns"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"", columns.IDCampaign},
		{"campaign", columns.IDCampaign},
		{"columns", columns.IDCampaign},
		{"endless", columns.IDEndless},
		{"columns_endless", columns.IDEndless},
	}

	for _, tt := range tests {
		got, err := resolveMode(tt.arg)
		require.NoError(t, err, tt.arg)
		assert.Equal(t, tt.want, got, tt.arg)
	}

	_, err := resolveMode("tetris")
	assert.Error(t, err)
}

func TestApplyGameFlags(t *testing.T) {
	t.Cleanup(func() {
		flagDifficulty, flagLevel, flagConfig = "", 0, ""
		columns.SetDifficultyPreset("")
		columns.SetConfigPath("")
	})

	flagDifficulty = "brutal"
	assert.Error(t, applyGameFlags())

	flagDifficulty, flagLevel = "hard", 11
	assert.Error(t, applyGameFlags())

	flagLevel, flagConfig = 3, "/nonexistent/columns.yaml"
	assert.Error(t, applyGameFlags())

	flagConfig = ""
	assert.NoError(t, applyGameFlags())
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"list", "play", "menu", "serve", "scores", "defaults"} {
		assert.True(t, names[want], want)
	}
}
