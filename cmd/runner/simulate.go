package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagSimDuration time.Duration
	flagSimStep     time.Duration
	flagSimReport   time.Duration
	flagSimRestarts []time.Duration
	flagSimPersist  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless for a fixed duration",
	Long: `Drive the game with a fixed frame step and no terminal UI, then print
the final state. Useful for checking configs and seeds.

Scores are kept in memory unless --persist is given.

Examples:
  runner simulate --duration 30s
  runner simulate --mode manual --seed 42
  runner simulate --duration 1m --restart 20s --restart 40s
  runner simulate --report 5s`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagMode, "mode", "", "Mode: showcase or manual (default from config)")
	simulateCmd.Flags().StringVar(&flagPace, "pace", "", "Pace preset: easy, normal, hard, fixed")
	simulateCmd.Flags().DurationVar(&flagSimDuration, "duration", 30*time.Second, "Simulated time")
	simulateCmd.Flags().DurationVar(&flagSimStep, "step", 16*time.Millisecond, "Frame step")
	simulateCmd.Flags().DurationVar(&flagSimReport, "report", 0, "Print the state at this interval (0 = only at the end)")
	simulateCmd.Flags().DurationSliceVar(&flagSimRestarts, "restart", nil, "Restart at the given times (repeatable)")
	simulateCmd.Flags().BoolVar(&flagSimPersist, "persist", false, "Write the high score and runs to the database")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger, closeLog := newLogger(false)
	defer closeLog()

	cfg, err := loadRunnerConfig(flagMode, flagPace)
	if err != nil {
		return err
	}
	if flagSimStep <= 0 {
		return fmt.Errorf("--step must be positive")
	}

	var store core.ScoreStore = storage.NewMemory()
	if flagSimPersist {
		db, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		store = db
	}

	game, err := registry.Create(string(cfg.Mode), registry.Options{
		Config: cfg,
		Seed:   flagSeed,
		Store:  store,
		Cue:    audio.Silent{},
		Logger: logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	restarts := append([]time.Duration(nil), flagSimRestarts...)
	nextReport := flagSimReport

	for now := time.Duration(0); now <= flagSimDuration; now += flagSimStep {
		for len(restarts) > 0 && restarts[0] <= now {
			game.Restart()
			restarts = restarts[1:]
		}
		game.Frame(now)

		if flagSimReport > 0 && now >= nextReport {
			printState(out, now, game.State())
			nextReport += flagSimReport
		}
	}

	game.Finish()
	final := game.State()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Mode:       %s\n", game.ID())
	fmt.Fprintf(out, "Simulated:  %s\n", flagSimDuration)
	fmt.Fprintf(out, "Phase:      %s\n", final.Phase)
	fmt.Fprintf(out, "Score:      %d\n", final.Score)
	fmt.Fprintf(out, "High score: %d\n", final.HighScore)
	fmt.Fprintf(out, "Obstacles:  %d\n", final.Obstacles)
	fmt.Fprintf(out, "Speed:      %.2f\n", final.SpeedScale)
	return nil
}

func printState(out io.Writer, now time.Duration, s core.GameState) {
	fmt.Fprintf(out, "%8s  %-11s score=%-6d hi=%-6d obstacles=%d\n",
		now.Truncate(time.Millisecond), s.Phase, s.Score, s.HighScore, s.Obstacles)
}
