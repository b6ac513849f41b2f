package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aditya-arolkar-swe/rusty-snake/internal/config"
	"github.com/aditya-arolkar-swe/rusty-snake/internal/core"
	"github.com/aditya-arolkar-swe/rusty-snake/internal/game"
	"github.com/aditya-arolkar-swe/rusty-snake/internal/platform/tui"
	"github.com/aditya-arolkar-swe/rusty-snake/internal/storage"
)

var (
	flagConfig      string
	flagRefreshRate int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD  - Steer the snake
  R            - Restart (after game over or win)
  Q/Ctrl+C     - Quit

Examples:
  rusty-snake play
  rusty-snake play --refresh-rate 100
  rusty-snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagRefreshRate, "refresh-rate", 150, "Milliseconds between simulation steps (lower = faster)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The flag wins over the config file only when explicitly set.
	refreshMS := cfg.Timing.RefreshRateMS
	if cmd.Flags().Changed("refresh-rate") {
		refreshMS = flagRefreshRate
	}

	g, err := game.New(game.Config{
		GridWidth:       cfg.Grid.Width,
		GridHeight:      cfg.Grid.Height,
		RefreshInterval: time.Duration(refreshMS) * time.Millisecond,
		Reward:          cfg.Rules.FoodReward,
		Seed:            flagSeed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtimeCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, runtimeCfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
