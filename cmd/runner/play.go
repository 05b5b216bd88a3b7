package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var (
	flagMode    string
	flagPace    string
	flagControl string
	flagNoAudio bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the game",
	Long: `Run the game in the terminal.

Controls:
  Space/Up   - Jump (manual mode)
  R          - Restart
  P/Esc      - Pause
  Ctrl+S     - Save a text screenshot
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Pace options:
  easy   - Slow start with a gentle speed ramp
  normal - Faster start with a steady ramp
  hard   - Fast start with a steep ramp
  fixed  - No ramp, stays at the configured speed

With --control, an HTTP API accepts POST /restart and POST /jump and
reports the score on GET /score.

Examples:
  runner play
  runner play --mode manual
  runner play --pace hard
  runner play --control :8080
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Mode: showcase or manual (default from config)")
	playCmd.Flags().StringVar(&flagPace, "pace", "", "Pace preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagControl, "control", "", "Address for the control API (e.g. :8080)")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable the milestone sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog := newLogger(true)
	defer closeLog()

	cfg, err := loadRunnerConfig(flagMode, flagPace)
	if err != nil {
		return err
	}

	store, db := openStore(logger)
	if db != nil {
		defer db.Close()
	}

	return playMode(cfg, store, terminalScreen(), logger)
}

// playMode creates a game for cfg.Mode and runs it until the player quits.
func playMode(cfg config.RunnerConfig, store core.ScoreStore, screen core.RuntimeConfig, logger *log.Logger) error {
	if flagNoAudio {
		cfg.Audio.Enabled = false
	}

	game, err := registry.Create(string(cfg.Mode), registry.Options{
		Config: cfg,
		Seed:   flagSeed,
		Store:  store,
		Cue:    audio.New(cfg.Audio, logger),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting", "mode", cfg.Mode, "speed", cfg.Speed.Initial, "control", flagControl)
	return tui.Run(game, tui.RunConfig{
		Screen:        screen,
		ControlAddr:   flagControl,
		ControlSecret: cfg.Control.Secret,
		Logger:        logger,
		AltScreen:     true,
	})
}

func terminalScreen() core.RuntimeConfig {
	if !isTerminal() {
		fmt.Fprintln(os.Stderr, "Warning: stdout is not a terminal, using 80x24")
	}
	return screenConfig()
}
