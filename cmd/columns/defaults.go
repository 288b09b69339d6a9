package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-columns/internal/config"
	"github.com/vovakirdan/tui-columns/internal/games/columns"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default config YAML",
	Long: `Print the built-in config. Save it to ~/.columns/configs/columns.yaml
or pass it with --config to customise the board, timing and scoring.

Example:
  columns defaults > ~/.columns/configs/columns.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML(columns.IDCampaign))
		return err
	},
}
