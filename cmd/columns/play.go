package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-columns/internal/config"
	"github.com/vovakirdan/tui-columns/internal/games/columns"
	"github.com/vovakirdan/tui-columns/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play [campaign|endless]",
	Short: "Play a game mode",
	Long: `Start playing Columns. Without a mode a picker is shown.

Controls:
  Left/Right, A/D  - Move
  Up/W/X           - Rotate clockwise
  Z                - Rotate anti-clockwise
  Down/S           - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot

Difficulty options:
  easy   - Slower gravity, more breakers
  normal - Config defaults
  hard   - Faster gravity, fewer breakers
  fixed  - Endless speed never increases

Examples:
  columns play
  columns play campaign --level 4
  columns play endless --difficulty hard
  columns play endless --config ./my-columns.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign start level (1-10)")
}

// applyGameFlags hands the play flags to the game package before creation.
func applyGameFlags() error {
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
	}
	if flagLevel < 0 || flagLevel > columns.LevelCount() {
		return fmt.Errorf("level must be between 1 and %d", columns.LevelCount())
	}
	if flagConfig != "" {
		// Fail before the alt screen opens rather than silently using defaults.
		if _, err := config.LoadColumns(flagConfig); err != nil {
			return err
		}
	}
	columns.SetConfigPath(flagConfig)
	columns.SetDifficultyPreset(flagDifficulty)
	return nil
}

func runPlay(_ *cobra.Command, args []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}
	cfg := runtimeConfig()

	var sel *tui.ColumnsSelection
	if len(args) == 0 && flagLevel == 0 {
		picked, quit, err := tui.RunColumnsModeSelector(cfg)
		if err != nil {
			return err
		}
		if quit || picked == nil {
			return nil
		}
		sel = picked
	} else {
		mode := ""
		if len(args) > 0 {
			mode = args[0]
		}
		gameID, err := resolveMode(mode)
		if err != nil {
			return err
		}
		sel = &tui.ColumnsSelection{GameID: gameID, Level: flagLevel}
	}

	game, err := sel.Start()
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	_, err = tui.Run(game, store, cfg)
	return err
}
