// bloop is a vertical shooter played in the terminal.
//
// Usage:
//
//	bloop                    - Play (same as 'bloop play')
//	bloop play               - Play
//	bloop list               - List available games
//	bloop scores             - Show recorded runs
//	bloop highscore          - Show or reset the saved high score
//	bloop config             - Print the effective tuning
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set run history path (default: ~/.bloop/runs.db)
//	--highscore <path>   - Set high score file (default: ./highscore.dat)
//	--assets <dir>       - Set sprite directory (default: ./assets)
//	--config <path>      - Use a custom tuning file (YAML or TOML)
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/bloop/internal/games/bloop"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagHighScore string
	flagAssets    string
	flagConfig    string
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bloop",
	Short: "Bloop - shoot falling squares in your terminal",
	Long: `Bloop is a vertical shooter for the terminal. Steer the ship with the
arrow keys, fire with space and destroy the green squares before they
reach you.

Available commands:
  play       - Start the game (default)
  list       - Show all available games
  scores     - View recorded runs
  highscore  - Show or reset the saved high score
  config     - Print the effective tuning

Examples:
  bloop
  bloop --seed 42
  bloop scores --tui
  bloop highscore --reset`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bloop/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "highscore.dat", "Path to high score file")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "assets", "Directory holding ship.png and laser-bolts.png")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(highScoreCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger described by the log flags. The terminal
// belongs to the game, so without --log-file logs are discarded.
// The returned closer must be called once logging is done.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	if flagLogFile == "" {
		logger := log.New(io.Discard)
		logger.SetLevel(level)
		return logger, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "bloop",
		Level:           level,
	})
	return logger, f, nil
}
