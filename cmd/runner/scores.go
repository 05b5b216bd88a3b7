package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagScoresRecent bool
	flagScoresLimit  int
	flagScoresClear  bool
	flagScoresReset  bool
	flagScoresPlain  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and run history",
	Long: `Display the high score and the best or most recent runs.

In a terminal the history opens as an interactive table; use --plain or
pipe the output for a text listing.

Examples:
  runner scores
  runner scores --recent --limit 20
  runner scores --plain
  runner scores --clear
  runner scores --reset-high`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the most recent runs instead of the best")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history (the high score is kept)")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset-high", false, "Set the high score back to zero (the history is kept)")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print text even in a terminal")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagScoresClear || flagScoresReset {
		return resetScores(out, store, flagScoresClear, flagScoresReset)
	}

	if isTerminal() && !flagScoresPlain {
		screen := screenConfig()
		_, err := tui.RunScoreboard(store, screen.ScreenW, screen.ScreenH)
		return err
	}
	return printScores(out, store)
}

func resetScores(out io.Writer, store *storage.Store, runs, high bool) error {
	if runs {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Run history cleared.")
	}
	if high {
		if err := store.ResetHighScore(); err != nil {
			return err
		}
		fmt.Fprintln(out, "High score reset.")
	}
	return nil
}

func printScores(out io.Writer, store *storage.Store) error {
	highScore, err := store.HighScore()
	if err != nil {
		return err
	}

	var runs []storage.RunEntry
	title := "Top runs"
	if flagScoresRecent {
		title = "Recent runs"
		runs, err = store.RecentRuns(flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High score: %d\n\n", highScore)
	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'runner play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-9s  %-9s  %-6s  %s\n", "Rank", "Score", "Mode", "End", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-9s  %-9s  %-6s  %s\n", "----", "-----", "----", "---", "----", "----")
	for i, row := range tui.RunRows(runs) {
		fmt.Fprintf(out, "  %-4d  %-8s  %-9s  %-9s  %-6s  %s\n", i+1, row[1], row[2], row[3], row[4], runs[i].CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
