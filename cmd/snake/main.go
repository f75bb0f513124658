// snake is a terminal snake game.
//
// Usage:
//
//	snake                 - Play in the current terminal
//	snake play            - Same as above
//	snake scores          - Show the high score table
//	snake serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.snake/scores.db)
//	--config <path> - Path to a custom config YAML
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
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal game: steer the snake to the targets, grow
longer, and do not run into the walls or yourself.

Available commands:
  play     - Play in the current terminal (also the default)
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  snake
  snake play --difficulty hard
  snake scores --interactive
  snake serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// The root command plays directly, so play's flags live on root too.
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: incremental, easy, medium, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
