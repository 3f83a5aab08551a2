package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W/K/Click - Flap (also starts and restarts)
  P/Esc              - Pause
  R                  - Back to the menu
  ?                  - Toggle help
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Wide gaps that close slowly
  normal - The default tuning
  hard   - Narrow gaps that close quickly
  fixed  - Gaps never close, stays at the config's initial gap

Examples:
  flappy play
  flappy play --difficulty fixed
  flappy play --config ./my-flappy.yaml --log-file flappy.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// loadConfig loads the tuning config and applies the --difficulty preset.
func loadConfig(logger *log.Logger) (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	if preset != "" {
		logger.Debug("applied difficulty preset", "preset", preset, "fixed", config.IsFixedPreset(preset))
	}
	return cfg, nil
}

// runtimeConfig builds the platform settings from the flags and the size of
// the terminal behind fd, keeping the default size when fd is not a terminal.
func runtimeConfig(fd int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(fd); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed
	return rc
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	rc := runtimeConfig(int(os.Stdout.Fd()))
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	game := flappy.New(cfg, rand.New(rand.NewSource(rc.Seed)), storage.NewBestScore(store, flappy.GameID, logger))

	runErr := tui.Run(game, store, logger, rc)

	// Close store before returning
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
