// valentine2048 is a terminal 2048 with a valentine twist: reach the target
// tile and get a beating-heart proposal screen.
//
// Usage:
//
//	valentine2048 play          - Play in the current terminal
//	valentine2048 scores        - Show the best finished games
//	valentine2048 serve         - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.valentine2048/games.db)
//	--config <path>  - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "valentine2048",
	Short: "2048, Valentine Edition - slide tiles, win a heart",
	Long: `valentine2048 is the classic 4x4 sliding-tile puzzle played in your
terminal. Merge equal tiles until you reach the target tile (512 by
default) and a little valentine surprise appears.

Available commands:
  play     - Play in the current terminal
  scores   - Show the best finished games
  serve    - Start SSH server for remote play

Examples:
  valentine2048 play
  valentine2048 play --seed 42
  valentine2048 scores
  valentine2048 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.valentine2048/games.db", "Path to games database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
