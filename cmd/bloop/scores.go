package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bloop/internal/games/bloop"
	"github.com/vovakirdan/bloop/internal/platform/tui"
	"github.com/vovakirdan/bloop/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresRecent bool
	flagScoresLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs, or the latest ones with --recent.

Examples:
  bloop scores
  bloop scores --recent --limit 20
  bloop scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, bloop.GameID, "Bloop", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.RunEntry
	heading := "Best Runs"
	if flagScoresRecent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(bloop.GameID, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(bloop.GameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	// Display runs
	fmt.Printf("%s - Bloop\n", heading)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bloop play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-9s  %-5s  %-6s  %s\n", "Rank", "Score", "Hits", "Acc", "Time", "When")
	fmt.Printf("  %-4s  %-8s  %-9s  %-5s  %-6s  %s\n", "----", "-----", "----", "---", "----", "----")

	// Print runs
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8s  %-9s  %-5s  %-6s  %s\n",
			i+1,
			humanize.Comma(int64(r.Score)),
			fmt.Sprintf("%d/%d", r.Hits, r.Shots),
			fmt.Sprintf("%.0f%%", r.Accuracy()*100),
			r.Duration.Round(time.Second),
			humanize.Time(r.CreatedAt),
		)
	}

	// Show totals
	fmt.Println()
	stats, err := store.GetGameStats(bloop.GameID)
	if err == nil {
		fmt.Printf("Best: %s over %s runs, %s played\n",
			humanize.Comma(int64(stats.HighScore)),
			humanize.Comma(int64(stats.RunsCount)),
			stats.PlayTime.Round(time.Second))
	}
}
