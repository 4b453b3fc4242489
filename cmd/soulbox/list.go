package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kazarin/soulbox/internal/encounter"
)

var flagListDir string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available encounters",
	Long: `Shows the built-in encounters plus any found in a custom directory.

Examples:
  soulbox list
  soulbox list --encounters ./my-encounters/`,
	Run: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListDir, "encounters", "", "Directory of custom encounter YAML files")
}

func runList(cmd *cobra.Command, args []string) {
	encounters := encounter.Builtin()

	if flagListDir != "" {
		custom, err := encounter.NewLoader(flagListDir).LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read %s: %v\n", flagListDir, err)
		}
		encounters = append(encounters, custom...)
	}

	if len(encounters) == 0 {
		fmt.Println("No encounters available.")
		return
	}

	fmt.Println("Available encounters:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, e := range encounters {
		if len(e.ID) > maxIDLen {
			maxIDLen = len(e.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, "ID", "HP", "Name")
	fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, "--", "--", "----")

	for _, e := range encounters {
		fmt.Printf("  %-*s  %-4d  %s\n", maxIDLen, e.ID, e.HP, e.Name)
	}

	fmt.Println()
	fmt.Println("Run 'soulbox play <id>' to fight an encounter.")
}
