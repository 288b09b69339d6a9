package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-columns/internal/registry"
	"github.com/vovakirdan/tui-columns/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [campaign|endless]",
	Short: "Show high scores",
	Long: `Display the top scores for a game mode (campaign by default).

Examples:
  columns scores
  columns scores endless --limit 25`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) error {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
	}
	gameID, err := resolveMode(mode)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer closeStore(store)

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'columns play %s' to set the first high score!\n", gameID)
		return nil
	}

	printScores(scores)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Avg: %.0f  Blocks cleared: %d  Best chain: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalCleared, stats.BestChain)
	return nil
}

func printScores(scores []storage.ScoreEntry) {
	fmt.Printf("  %-4s  %-8s  %-5s  %-7s  %-5s  %s\n", "Rank", "Score", "Level", "Cleared", "Chain", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-7s  %-5s  %s\n", "----", "-----", "-----", "-------", "-----", "----")
	for i, e := range scores {
		level := "-"
		if e.Level > 0 {
			level = fmt.Sprint(e.Level)
		}
		fmt.Printf("  %-4d  %-8d  %-5s  %-7d  %-5d  %s\n",
			i+1, e.Score, level, e.Cleared, e.MaxChain, e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
