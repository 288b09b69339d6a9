// columns is the Columns falling-pair puzzle for the terminal.
//
// Usage:
//
//	columns list              - List game modes
//	columns play [mode]       - Play campaign or endless
//	columns menu              - Title menu, scoreboard and mode picker
//	columns serve             - Start SSH server for remote play
//	columns scores [mode]     - Show high scores
//	columns defaults          - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.columns/scores.db)
//	--verbose       - Debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Registers columns and columns_endless.
	_ "github.com/vovakirdan/tui-columns/internal/games/columns"
)

const defaultDBPath = "~/.columns/scores.db"

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "columns",
	Short: "Columns - drop colored pairs, break matching stacks",
	Long: `Columns is a falling-pair puzzle played in the terminal.

Pairs of colored blocks fall into a well. Steer and rotate them into
place. Breaker blocks (◆) clear every connected block of their color
they touch, and anything left hanging falls into new chains.

Available commands:
  list      - Show game modes
  play      - Play a mode directly
  menu      - Interactive menu
  serve     - Start SSH server for remote play
  scores    - View high scores
  defaults  - Print the default config

Examples:
  columns play
  columns play endless --difficulty hard
  columns menu
  columns serve --ssh :2222
  columns scores endless`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(defaultsCmd)
}
