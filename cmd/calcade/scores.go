package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkozlov/calcade/internal/registry"
)

var flagScoreLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "View high scores",
	Long: `Show the top scores and recent sessions for a game.

Examples:
  calcade scores keepup
  calcade scores snake --limit 5`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}

	store := openStore()
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.TopScores(gameID, flagScoreLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Printf("No scores recorded for %s yet.\n", gameID)
		return
	}

	fmt.Printf("High scores for %s:\n", gameID)
	fmt.Printf("%-6s %-10s %s\n", "RANK", "SCORE", "DATE")
	for i, e := range entries {
		fmt.Printf("#%-5d %-10d %s\n", i+1, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	sessions, err := store.RecentSessions(5)
	if err != nil || len(sessions) == 0 {
		return
	}
	fmt.Printf("\nRecent sessions:\n")
	for _, s := range sessions {
		if s.GameID != gameID {
			continue
		}
		fmt.Printf("score %-6d credits %-4d %4ds  %s\n",
			s.Score, s.Credits, s.Duration, s.EndReason)
	}
}
