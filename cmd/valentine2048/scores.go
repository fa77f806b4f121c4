package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vplotn/valentine2048/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished games",
	Long: `Display the top 10 finished games, ordered by highest tile reached.

Examples:
  valentine2048 scores
  valentine2048 scores --db ./games.db`,
	Run: runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening games database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	games, err := store.TopGames(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Games - 2048 Valentine Edition")
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'valentine2048 play' to set the first record!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-4s  %s\n", "Rank", "Best Tile", "Moves", "Won", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-4s  %s\n", "----", "---------", "-----", "---", "----")

	for i, g := range games {
		won := ""
		if g.Won {
			won = "❤"
		}
		dateStr := g.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-4s  %s\n", i+1, g.BestTile, g.Moves, won, dateStr)
	}

	fmt.Println()
	if best, err := store.BestTile(); err == nil {
		fmt.Printf("Best tile ever: %d\n", best)
	}
	if wins, err := store.WinCount(); err == nil && wins > 0 {
		fmt.Printf("Valentines won: %d\n", wins)
	}
}
