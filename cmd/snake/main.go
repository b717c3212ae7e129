// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake list              - List available boards
//	snake play [board]      - Play a board (default: classic)
//	snake menu              - Start menu to pick boards interactively
//	snake serve             - Start SSH server for remote play
//	snake scores [board]    - Show high scores
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.snake/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
//
// SNAKE_DB, SNAKE_CONFIG and SNAKE_LOG_LEVEL (also read from .env) provide
// defaults for the matching flags.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import the game package to register the board variants
	_ "github.com/vovakirdan/tui-snake/internal/game"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logger is set up by the root command before any subcommand runs.
var (
	logger    = log.New(io.Discard)
	logCloser io.Closer
)

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic arcade game played in the terminal.

Steer the snake with the arrow keys or WASD, eat apples to grow, and
avoid the walls and your own tail.

Available commands:
  list     - Show all available boards
  play     - Play a board directly
  menu     - Interactive board picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  snake play
  snake play large --difficulty hard
  snake menu
  snake serve --ssh :2222
  snake scores classic`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (serve logs to stderr by default)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup applies environment defaults and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	envDefault(cmd, "db", "SNAKE_DB", &flagDBPath)
	envDefault(cmd, "config", "SNAKE_CONFIG", &flagConfig)
	envDefault(cmd, "log-level", "SNAKE_LOG_LEVEL", &flagLogLevel)

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	// The game owns the terminal, so only the server logs to stderr by default.
	var w io.Writer = io.Discard
	if cmd.Name() == serveCmd.Name() {
		w = os.Stderr
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		w, logCloser = f, f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}

// envDefault sets a flag from the environment unless it was given explicitly.
func envDefault(cmd *cobra.Command, flag, env string, dst *string) {
	if cmd.Flags().Changed(flag) {
		return
	}
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}
