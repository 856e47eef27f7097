package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [mode]",
	Short: "Show play statistics",
	Long: `Display games played, wins, win rate, best score, highest tile
and total play time. Without a mode, shows every mode and the total.

Examples:
  t2048 stats
  t2048 stats time`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	if len(args) == 1 {
		mode, ok := t2048.ParseMode(args[0], 0, 0)
		if !ok {
			store.Close()
			fatal("unknown mode %q (run 't2048 list' to see available modes)", args[0])
		}
		stats, err := store.GetGameStats(mode.ID())
		if err != nil {
			store.Close()
			fatal("retrieving stats: %v", err)
		}
		printStats(mode.Title(), stats)
		return
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		store.Close()
		fatal("retrieving stats: %v", err)
	}
	for _, g := range registry.List() {
		if stats, ok := all[g.ID]; ok {
			printStats(g.Title, stats)
			fmt.Println()
		}
	}

	overall, err := store.GetOverallStats()
	if err != nil {
		store.Close()
		fatal("retrieving stats: %v", err)
	}
	printStats("All modes", overall)
}

func printStats(title string, s *storage.GameStats) {
	fmt.Println(title)
	if s.GamesCount == 0 {
		fmt.Println("  No games finished yet.")
		return
	}

	fmt.Printf("  %-14s %d\n", "Games:", s.GamesCount)
	fmt.Printf("  %-14s %d (%.1f%%)\n", "Wins:", s.Wins, s.WinRate())
	fmt.Printf("  %-14s %d\n", "Best score:", s.HighScore)
	fmt.Printf("  %-14s %.0f\n", "Average:", s.AvgScore)
	fmt.Printf("  %-14s %d\n", "Highest tile:", s.HighestTile)
	fmt.Printf("  %-14s %s\n", "Play time:", s.TotalTime.Round(time.Second))
	if !s.LastPlayed.IsZero() {
		fmt.Printf("  %-14s %s\n", "Last played:", s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
