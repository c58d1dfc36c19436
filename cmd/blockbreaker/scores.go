package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-breaker/internal/registry"
	"github.com/vovakirdan/block-breaker/internal/storage"
)

var (
	flagCSV   bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [stage]",
	Short: "Show high scores",
	Long: `Display the best runs for a stage, or a summary of every stage.
With --csv, every stored run (optionally filtered by stage) is written to
stdout as CSV.

Examples:
  blockbreaker scores
  blockbreaker scores classic --limit 20
  blockbreaker scores --csv > runs.csv`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagCSV, "csv", false, "Export runs as CSV")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	stageID := ""
	if len(args) == 1 {
		stageID = args[0]
		if !registry.Exists(stageID) {
			fmt.Fprintf(os.Stderr, "Error: unknown stage %q\n", stageID)
			fmt.Fprintln(os.Stderr, "Run 'blockbreaker list' to see available stages.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagCSV:
		err = store.ExportCSV(os.Stdout, stageID)
	case stageID == "":
		err = printSummary(store)
	default:
		err = printStage(store, stageID)
	}
	if err != nil {
		store.Close()
		fatal("%v", err)
	}
}

// printSummary prints one line per stage.
func printSummary(store *storage.Store) error {
	fmt.Println("High Scores")
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-7s  %-6s  %s\n", "Stage", "Runs", "Cleared", "Best", "Last played")
	fmt.Printf("  %-10s  %-6s  %-7s  %-6s  %s\n", "-----", "----", "-------", "----", "-----------")

	for _, g := range registry.List() {
		stats, err := store.GetStageStats(g.ID)
		if err != nil {
			return err
		}
		last := "-"
		if !stats.LastPlayed.IsZero() {
			last = stats.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-10s  %-6d  %-7d  %-6d  %s\n", g.ID, stats.Runs, stats.Clears, stats.HighScore, last)
	}
	return nil
}

// printStage prints the best runs of one stage.
func printStage(store *storage.Store, stageID string) error {
	runs, err := store.TopRuns(stageID, flagLimit)
	if err != nil {
		return err
	}

	game, err := registry.Create(stageID)
	if err != nil {
		return err
	}
	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blockbreaker play %s' to set the first high score!\n", stageID)
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %-8s  %s\n", "Rank", "Score", "Blocks", "Items", "Result", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-5s  %-8s  %s\n", "----", "-----", "------", "-----", "------", "----")

	for i, r := range runs {
		result := "lost"
		if r.Cleared {
			result = "cleared"
		}
		fmt.Printf("  %-4d  %-7d  %-6d  %-5d  %-8s  %s\n",
			i+1, r.Score, r.BlocksDestroyed, r.Items, result, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", runs[0].Score)
	return nil
}
