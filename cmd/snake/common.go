package main

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// loadGameConfig reads the YAML config and applies --difficulty.
func loadGameConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	if preset == "" {
		preset = cfg.Difficulty.Preset
	}
	config.ApplySnakePreset(&cfg, preset)

	return cfg, cfg.Validate()
}

// runtimeConfig builds the runtime config from the terminal size, flags and
// the game config.
func runtimeConfig(gameCfg config.SnakeConfig) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	gameCfg.ApplyTo(&cfg)
	return cfg
}

// gameOptions wires logging and difficulty into a game model.
func gameOptions(gameCfg config.SnakeConfig) []tui.Option {
	return []tui.Option{
		tui.WithLogger(logger),
		tui.WithDifficulty(config.NewDifficultyManager(gameCfg.Difficulty)),
	}
}

// openStore opens the scores database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// nextSeed returns the seed for the next game in a session.
func nextSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
