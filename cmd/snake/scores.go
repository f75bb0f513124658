package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresDifficulty string
	flagInteractive      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

Examples:
  snake scores
  snake scores --difficulty hard
  snake scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show scores for this difficulty")
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresDifficulty != "" {
		scores, err = store.TopScoresByDifficulty(flagScoresDifficulty, 10)
	} else {
		scores, err = store.TopScores(10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %-10s  %s\n", "Rank", "Score", "Difficulty", "Outcome", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-10s  %s\n", "----", "-----", "----------", "-------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-12s  %-10s  %s\n", i+1, entry.Score, entry.Difficulty, entry.Outcome, dateStr)
	}

	fmt.Println()
	if best, err := store.BestScore(); err == nil && best > 0 {
		fmt.Printf("Best: %d\n", best)
	}
}
