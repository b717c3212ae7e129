package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a board picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a board, then pick a
difficulty (skipped when --difficulty is given). After a game ends, you
return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  snake menu
  snake menu --difficulty hard
  snake menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	cfg := runtimeConfig(gameCfg)
	lastVariant := ""

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, lastVariant, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Ask for a difficulty unless one was given on the command line
		runCfg := gameCfg
		if flagDifficulty == "" {
			choice, diffErr := tui.RunDifficultySelector(game.Title(), gameCfg.Difficulty.Preset, cfg)
			if diffErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", diffErr)
				continue
			}
			if choice.Quit {
				break
			}
			if choice.Back {
				continue
			}
			config.ApplySnakePreset(&runCfg, choice.Preset)
		}

		gameRuntime := cfg
		runCfg.ApplyTo(&gameRuntime)
		gameRuntime.Seed = nextSeed()

		logger.Info("starting game", "variant", gameID, "difficulty", runCfg.Difficulty.Preset)
		if err := tui.Run(game, store, gameRuntime, gameOptions(runCfg)...); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		lastVariant = gameID

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
