package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a run.
Quitting a run returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start the selected mode
  Tab          - Run history
  Q            - Quit

Examples:
  runner menu
  runner menu --fps 30
  runner menu --db ./runner.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPace, "pace", "", "Pace preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagControl, "control", "", "Address for the control API (e.g. :8080)")
	menuCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable the milestone sound")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := newLogger(true)
	defer closeLog()

	base, err := loadRunnerConfig("", flagPace)
	if err != nil {
		return err
	}

	store, db := openStore(logger)
	if db != nil {
		defer db.Close()
	}

	screen := terminalScreen()
	for {
		highScore, _ := store.HighScore()
		result, err := tui.RunMenu(highScore, screen)
		if err != nil {
			return err
		}
		screen = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(historyOf(db), screen.ScreenW, screen.ScreenH)
			if err != nil {
				logger.Error("scoreboard", "err", err)
			}
			if !goBack {
				return nil
			}

		default:
			mode, err := config.ParseMode(result.ModeID)
			if err != nil {
				return err
			}
			cfg := base
			cfg.Mode = mode
			if err := playMode(cfg, store, screen, logger); err != nil {
				logger.Error("run failed", "mode", mode, "err", err)
			}
		}
	}
}

// historyOf returns the run history for the scoreboard, or nil when scores
// are only kept in memory.
func historyOf(db *storage.Store) tui.RunHistory {
	if db == nil {
		return nil
	}
	return db
}
