package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kazarin/soulbox/internal/platform/tui"
	"github.com/kazarin/soulbox/internal/storage"
)

var flagHistoryOpponent string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show battle history",
	Long: `Browse past battle results in an interactive table, or print
aggregated statistics for one opponent.

Examples:
  soulbox history
  soulbox history --opponent froggit`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryOpponent, "opponent", "", "Print stats for a single opponent instead of the table")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening battle database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryOpponent != "" {
		printOpponentStats(store, flagHistoryOpponent)
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
		os.Exit(1)
	}
}

func printOpponentStats(store *storage.Store, opponentID string) {
	stats, err := store.Stats(opponentID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stats: %v\n", err)
		os.Exit(1)
	}

	if stats.Battles == 0 {
		fmt.Printf("No battles recorded against %q.\n", opponentID)
		return
	}

	fmt.Printf("Stats for %s:\n", opponentID)
	fmt.Printf("  Battles:       %d\n", stats.Battles)
	fmt.Printf("  Victories:     %d\n", stats.Victories)
	if stats.Victories > 0 {
		fmt.Printf("  Best time:     %.1fs\n", float64(stats.BestTimeMs)/1000)
		fmt.Printf("  Least damage:  %d\n", stats.LeastDamage)
	}
	fmt.Printf("  Total damage:  %d\n", stats.TotalDamage)
	fmt.Printf("  Avg duration:  %.1fs\n", stats.AvgDurationMs/1000)
	if !stats.LastFoughtAt.IsZero() {
		fmt.Printf("  Last fought:   %s\n", stats.LastFoughtAt.Format("Jan 02 2006 15:04"))
	}
}
