package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores",
	Long: `Display the top high scores for the specified board. Without a
board, show a summary of every board played plus the most recent games.

Examples:
  snake scores
  snake scores classic
  snake scores tiny --limit 20
  snake scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the board")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if err := printSummary(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available boards.")
		os.Exit(1)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores cleared", "variant", gameID)
		fmt.Printf("Cleared all scores for %s.\n", gameID)
		return
	}

	if err := printTopScores(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printTopScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-15s  %s\n", "Rank", "Score", "Length", "Ended by", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-15s  %s\n", "----", "-----", "------", "--------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %-15s  %s\n", i+1, entry.Score, entry.Length, entry.EndReason, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.1f  Longest snake: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.MaxLength)
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Boards")
	fmt.Println()
	fmt.Printf("  %-10s  %-5s  %-5s  %-7s  %s\n", "Board", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %-5s  %-5s  %-7s  %s\n", "-----", "-----", "----", "-------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-10s  %-5d  %-5d  %-7.1f  %s\n", id, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}

	recent, err := store.RecentScores(flagScoresLimit)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Recent games")
	fmt.Println()
	for _, e := range recent {
		fmt.Printf("  %s  %-10s  score %-4d  length %-4d  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Variant, e.Score, e.Length, e.EndReason)
	}
	return nil
}
