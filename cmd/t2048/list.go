package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all modes",
	Long:  `Shows every registered 2048 mode with its rules.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	rules, err := loadRules()
	if err != nil {
		fatal("%v", err)
	}
	printModes(os.Stdout, registry.List(), rules.Modes)
}

// printModes writes the mode table, describing each mode with the configured limits.
func printModes(w io.Writer, games []registry.GameInfo, modes config.ModesConfig) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No modes available.")
		return
	}

	fmt.Fprintln(w, "Available modes:")
	fmt.Fprintln(w)

	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Rules")
	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	for _, g := range games {
		desc := ""
		if mode, ok := t2048.ParseMode(g.ID, modes.TimeLimit(), modes.TargetScore); ok {
			desc = mode.Describe()
		}
		fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, desc)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 't2048 play <mode>' to play, e.g. 't2048 play time'.")
}
