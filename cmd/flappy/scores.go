package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagRecent      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show top runs and the best score",
	Long: `Display the best runs recorded in the scores database.

Examples:
  flappy scores
  flappy scores --recent --limit 5
  flappy scores -i`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in an interactive table")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
}

func runScores(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagInteractive)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		rc := runtimeConfig(int(os.Stdout.Fd()))
		return tui.RunScoreboard(store, flappy.GameID, flappy.GameTitle, rc.ScreenW, rc.ScreenH)
	}

	var runs []storage.Run
	if flagRecent {
		runs, err = store.RecentRuns(flappy.GameID, flagLimit)
	} else {
		runs, err = store.TopRuns(flappy.GameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	best, err := store.BestScore(flappy.GameID)
	if err != nil {
		// A corrupt best score reads as none
		logger.Warn("could not read best score", "error", err)
		best = 0
	}

	out := cmd.OutOrStdout()
	if flagRecent {
		fmt.Fprintf(out, "Recent Runs - %s\n", flappy.GameTitle)
	} else {
		fmt.Fprintf(out, "High Scores - %s\n", flappy.GameTitle)
	}
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Flaps", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "-----", "----", "----")

	for i, r := range runs {
		d := (time.Duration(r.DurationMs) * time.Millisecond).Round(100 * time.Millisecond)
		fmt.Fprintf(out, "  %-4d  %-6d  %-6d  %-8s  %s\n", i+1, r.Score, r.Flaps, d, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", best)

	if stats, err := store.Stats(flappy.GameID); err == nil {
		fmt.Fprintf(out, "Runs: %d  Average: %.1f  Flaps: %d\n", stats.Runs, stats.AvgScore, stats.TotalFlaps)
	}
	return nil
}
