package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagAllScores  bool
	flagClearScore bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show the leaderboard for a mode",
	Long: `Display the top 10 scores for the given mode.

Examples:
  t2048 scores classic
  t2048 scores time --all
  t2048 scores 2048_target --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "Show every recorded score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClearScore, "clear", false, "Delete all scores and game records for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	mode, ok := t2048.ParseMode(args[0], 0, 0)
	if !ok {
		fatal("unknown mode %q (run 't2048 list' to see available modes)", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClearScore {
		err = clearScores(os.Stdout, store, mode)
	} else {
		err = printScores(os.Stdout, store, mode, flagAllScores)
	}
	if err != nil {
		store.Close()
		fatal("%v", err)
	}
}

func clearScores(w io.Writer, store *storage.Store, mode t2048.Mode) error {
	if err := store.ClearScores(mode.ID()); err != nil {
		return fmt.Errorf("clearing scores: %w", err)
	}
	fmt.Fprintf(w, "Cleared all scores for %s.\n", mode.Title())
	return nil
}

func printScores(w io.Writer, store *storage.Store, mode t2048.Mode, all bool) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(mode.ID())
	} else {
		scores, err = store.TopScores(mode.ID(), storage.LeaderboardSize)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n", mode.Title())
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 't2048 play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", scores[0].Score)
	return nil
}
