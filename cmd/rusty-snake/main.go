// rusty-snake is a classic snake game for the terminal.
//
// Usage:
//
//	rusty-snake play               - Play the game
//	rusty-snake scores             - Show high scores
//	rusty-snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Render/input frame rate (default: 60)
//	--seed <value>  - RNG seed for reproducible food spawns
//	--db <path>     - Scores database path (default: ~/.rusty-snake/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rusty-snake",
	Short: "A classic snake game for the terminal",
	Long: `Rusty Snake is a classic grid snake game: steer the snake, eat food to
grow, and avoid the walls and your own tail.

Available commands:
  play     - Play the game in the current terminal
  scores   - View high scores
  serve    - Start an SSH server for remote play

Examples:
  rusty-snake play
  rusty-snake play --refresh-rate 100
  rusty-snake scores --interactive
  rusty-snake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render/input frame rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rusty-snake/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
