package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vplotn/valentine2048/internal/config"
	"github.com/vplotn/valentine2048/internal/storage"
	"github.com/vplotn/valentine2048/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  R                 - Restart
  Q/Esc/Ctrl+C      - Quit

Examples:
  valentine2048 play
  valentine2048 play --seed 42
  valentine2048 play --config ./my-config.yaml`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.New(os.Stderr)

	// Load game config
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open game storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open games database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, store, flagSeed, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
