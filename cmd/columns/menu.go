package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-columns/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Columns with the title menu",
	Long: `Start Columns in interactive menu mode.

Pick Play to choose campaign, endless or a start level. Back out of a
finished or paused game with B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  columns menu
  columns menu --fps 30
  columns menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch result.Choice {
		case tui.MenuChoiceScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		case tui.MenuChoicePlay:
		default:
			return nil
		}

		sel, quit, err := tui.RunColumnsModeSelector(cfg)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if sel == nil {
			continue
		}

		game, err := sel.Start()
		if err != nil {
			log.Error("cannot create game", "game", sel.GameID, "error", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		backToMenu, err := tui.Run(game, store, cfg)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
