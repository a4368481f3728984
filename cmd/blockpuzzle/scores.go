package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blockpuzzle/internal/platform/tui"
	"github.com/vovakirdan/tui-blockpuzzle/internal/storage"
)

var (
	flagScoresTUI     bool
	flagScoresProfile string
	flagScoresLimit   int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and per-player statistics.

Examples:
  blockpuzzle scores
  blockpuzzle scores --profile alice
  blockpuzzle scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().StringVar(&flagScoresProfile, "profile", "", "Only show scores of this player")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, flagScoresProfile, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresProfile != "" {
		scores, err = store.ProfileScores(flagScoresProfile, flagScoresLimit)
	} else {
		scores, err = store.TopScores(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	if flagScoresProfile != "" {
		fmt.Printf("High Scores - %s\n", flagScoresProfile)
	} else {
		fmt.Println("High Scores")
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockpuzzle play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %s\n", "Rank", "Player", "Score", "Moves", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-8d  %-6d  %s\n", i+1, entry.Profile, entry.Score, entry.Moves, dateStr)
	}

	fmt.Println()
	if flagScoresProfile != "" {
		stats, err := store.ProfileStats(flagScoresProfile)
		if err == nil {
			printStats([]storage.Stats{*stats})
		}
		return
	}

	all, err := store.AllStats()
	if err == nil {
		printStats(all)
	}
}

func printStats(stats []storage.Stats) {
	fmt.Println("Players")
	fmt.Println()
	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %s\n", "Player", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %s\n", "------", "-----", "----", "-------", "-----------")
	for _, s := range stats {
		last := "-"
		if !s.LastPlayed.IsZero() {
			last = s.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-16s  %-6d  %-8d  %-8.1f  %s\n", s.Profile, s.GamesCount, s.HighScore, s.AvgScore, last)
	}
}
