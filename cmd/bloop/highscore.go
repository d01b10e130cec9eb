package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bloop/internal/storage"
)

var flagHighScoreReset bool

var highScoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "Show or reset the saved high score",
	Long: `Print the high score kept in the high score file, or delete it with --reset.

Examples:
  bloop highscore
  bloop highscore --reset
  bloop highscore --highscore ./other.dat`,
	Args: cobra.NoArgs,
	Run:  runHighScore,
}

func init() {
	highScoreCmd.Flags().BoolVar(&flagHighScoreReset, "reset", false, "Delete the saved high score")
}

func runHighScore(cmd *cobra.Command, args []string) {
	store := storage.NewFileStore(flagHighScore)

	if flagHighScoreReset {
		if err := store.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("High score reset (%s)\n", store.Path())
		return
	}

	score, err := store.Load()
	switch {
	case errors.Is(err, storage.ErrNoHighScore):
		fmt.Println("No high score saved yet.")
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	default:
		fmt.Printf("High score: %d\n", score)
	}
}
