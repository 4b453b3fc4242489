// soulbox is a terminal bullet-dodging battle engine in the spirit of
// classic mercy-or-fight RPG encounters.
//
// Usage:
//
//	soulbox list               - List available encounters
//	soulbox play <encounter>   - Fight an encounter
//	soulbox history            - Show battle history
//	soulbox serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible battles
//	--db <path>     - Set database path (default: ~/.soulbox/battles.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "soulbox",
	Short: "Soulbox - Dodge bullet patterns in your terminal",
	Long: `Soulbox is a terminal battle engine: steer your soul through scripted
hazard waves inside the battle box, then fight, act, or show mercy.

Available commands:
  list     - Show all available encounters
  play     - Fight a specific encounter
  history  - View past battle results
  serve    - Start SSH server for remote play

Examples:
  soulbox list
  soulbox play froggit
  soulbox play bonehead --difficulty hard
  soulbox serve --ssh :2222
  soulbox history`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.soulbox/battles.db", "Path to battle history database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
