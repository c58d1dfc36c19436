// blockbreaker is a terminal block breaker: bounce the ball, break every
// block, catch falling upgrades and shoot lasers.
//
// Usage:
//
//	blockbreaker list                - List available stages
//	blockbreaker play [stage]        - Play a stage
//	blockbreaker menu                - Pick stages interactively
//	blockbreaker serve               - Start SSH server for remote play
//	blockbreaker scores [stage]      - Show high scores
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/blockbreaker.db)
//	--log-file <path>    - Write debug logs to a file
//	--config <path>      - Custom tuning YAML
//	--difficulty <name>  - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-breaker/internal/config"
	"github.com/vovakirdan/block-breaker/internal/games/blockbreaker"
	"github.com/vovakirdan/block-breaker/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogFile    string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal("%v", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockbreaker",
	Short: "Block Breaker - break blocks in your terminal",
	Long: `Block Breaker is a terminal brick breaker with falling upgrades,
lasers and several stages.

Available commands:
  list     - Show all stages
  play     - Play a stage directly
  menu     - Interactive stage picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  blockbreaker list
  blockbreaker play classic
  blockbreaker play --stage fortress --difficulty hard
  blockbreaker menu --mute
  blockbreaker scores --csv > runs.csv`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
		}
		// Games reload the file on every reset, so a bad path must stop here
		if flagConfig != "" {
			if _, err := config.LoadBlockBreaker(flagConfig); err != nil {
				return err
			}
		}
		blockbreaker.SetConfigPath(flagConfig)
		blockbreaker.SetDifficultyPreset(flagDifficulty)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/blockbreaker.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the CLI logger. Full-screen commands pass a nil
// fallback so nothing reaches the terminal unless --log-file is set.
// The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closer := func() {}
	level := log.InfoLevel

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
		level = log.DebugLevel
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockbreaker",
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the scores database. Failure is not fatal: the game
// still works without high scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
