package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-breaker/internal/games/blockbreaker"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stages",
	Long:  `Shows every built-in stage with its size and block count.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	stages := blockbreaker.Stages()

	if len(stages) == 0 {
		fmt.Println("No stages available.")
		return
	}

	fmt.Println("Available stages:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range stages {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %-10s  %-6s  %s\n", maxIDLen, "ID", "Title", "Blocks", "HP")
	fmt.Printf("  %-*s  %-10s  %-6s  %s\n", maxIDLen, "--", "-----", "------", "--")

	for _, s := range stages {
		blocks := s.Blocks()
		hp := 0
		for _, b := range blocks {
			hp += b.HP
		}
		fmt.Printf("  %-*s  %-10s  %-6d  %d\n", maxIDLen, s.ID, s.Title, len(blocks), hp)
	}

	fmt.Println()
	fmt.Println("Run 'blockbreaker play <id>' to play a stage.")
}
