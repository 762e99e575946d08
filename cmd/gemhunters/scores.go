package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gem-hunters/internal/platform/tui"
	"github.com/vovakirdan/gem-hunters/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:     "scores",
	Aliases: []string{"history"},
	Short:   "Show match history",
	Long: `Display the most recent matches and overall results.

Examples:
  gemhunters scores
  gemhunters scores --limit 25
  gemhunters history -i`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of matches to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse history in a scrollable table")
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, width, height)
	}

	matches, err := store.RecentMatches(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Match History - Gem Hunters")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'gemhunters play' to record the first match!")
		return nil
	}

	fmt.Printf("  %-5s  %-9s  %-5s  %-7s  %s\n", "Match", "Winner", "Gems", "Retries", "Date")
	fmt.Printf("  %-5s  %-9s  %-5s  %-7s  %s\n", "-----", "------", "----", "-------", "----")

	for _, rec := range matches {
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		gems := fmt.Sprintf("%d-%d", rec.Player1Gems, rec.Player2Gems)
		fmt.Printf("  %-5d  %-9s  %-5s  %-7d  %s\n", rec.ID, rec.Winner(), gems, rec.Rejected, dateStr)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Played: %d  Player 1: %d  Player 2: %d  Ties: %d\n",
		stats.Total, stats.Player1, stats.Player2, stats.Ties)
	fmt.Printf("Best: %d gems\n", stats.BestGems)
	return nil
}
