package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the specified board (classic if omitted).

Controls:
  Arrows/WASD/hjkl - Steer
  P/Space/Esc      - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.snake/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 300ms per step, speeds up as you score
  normal - 200ms per step, speeds up as you score
  hard   - 120ms per step, speeds up as you score
  fixed  - Constant speed from the config's tick.interval_ms

Examples:
  snake play
  snake play tiny
  snake play large --difficulty hard
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "classic"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available boards.")
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg := runtimeConfig(gameCfg)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	logger.Info("starting game", "variant", gameID, "interval", cfg.TickInterval, "difficulty", gameCfg.Difficulty.Preset)
	runErr := tui.Run(game, store, cfg, gameOptions(gameCfg)...)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
