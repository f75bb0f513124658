package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  WASD / hjkl / arrows  - Steer the snake
  Left/Right            - Change difficulty (in dialogs)
  Enter/Y               - Confirm dialog
  Q / Ctrl+C            - Quit

Difficulty options:
  incremental - Speeds up as the snake grows (default)
  easy        - Fixed slow pace
  medium      - Fixed middle pace
  hard        - Fixed fast pace

Examples:
  snake play
  snake play --difficulty hard
  snake play --config ./my-snake.yaml
  snake play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: incremental, easy, medium, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfgFile, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The flag overrides the config file's preselected difficulty.
	diffName := cfgFile.Difficulty
	if flagDifficulty != "" {
		diffName = flagDifficulty
	}
	if diffName == "" {
		diffName = game.Incremental.String()
	}
	difficulty, err := game.ParseDifficulty(diffName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	delays := game.Delays{
		Min:    cfgFile.Delays.Min(),
		Medium: cfgFile.Delays.Medium(),
		Max:    cfgFile.Delays.Max(),
	}

	// Get terminal size; fall back to a standard geometry.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(store, cfg, delays, difficulty)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
