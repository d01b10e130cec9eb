package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bloop/internal/assets"
	"github.com/vovakirdan/bloop/internal/config"
	"github.com/vovakirdan/bloop/internal/core"
	"github.com/vovakirdan/bloop/internal/games/bloop"
	"github.com/vovakirdan/bloop/internal/platform/tui"
	"github.com/vovakirdan/bloop/internal/registry"
	"github.com/vovakirdan/bloop/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Bloop",
	Long: `Start the game.

Controls:
  Arrows     - Move the ship
  Space      - Fire / start / resume / back to menu
  Esc        - Pause (in game) or quit (in menu)
  Ctrl+S     - Save a text screenshot
  Ctrl+C     - Quit immediately

Examples:
  bloop play
  bloop play --seed 7
  bloop play --config ./my-bloop.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	tuning, err := config.LoadBloop(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Sprites are required; the game cannot start without them
	textures, err := assets.LoadLibrary(flagAssets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		os.Exit(1)
	}

	bloop.SetConfig(tuning)
	bloop.SetHighScorePath(flagHighScore)
	bloop.SetLogger(logger)

	// Get terminal size
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.Cols = w
		cfg.Rows = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game, err := registry.Create(bloop.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := []tui.Option{
		tui.WithLogger(logger),
		tui.WithTextures(textures),
		tui.WithHoldWindow(time.Duration(tuning.Input.HoldWindowMS) * time.Millisecond),
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without history - game still works
		logger.Warn("could not open run history", "error", err)
		store = nil
	}
	if store != nil {
		opts = append(opts, tui.WithRunRecorder(store))
	}

	logger.Info("starting", "game", game.ID(), "cols", cfg.Cols, "rows", cfg.Rows, "fps", cfg.TickRate)

	// Run the game
	runErr := tui.Run(game, cfg, opts...)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
