package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

func loadDotEnv() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// loadRunnerConfig loads the YAML config and applies environment overrides,
// then the mode and pace flags when given.
func loadRunnerConfig(mode, pace string) (config.RunnerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if mode != "" {
		m, err := config.ParseMode(mode)
		if err != nil {
			return cfg, err
		}
		cfg.Mode = m
	}
	config.ApplyPace(&cfg, config.PacePreset(pace))
	return cfg, cfg.Validate()
}

// newLogger builds the charm logger for a command. Interactive commands log
// to the log file so the terminal UI stays clean; the returned close func
// must be called on exit.
func newLogger(interactive bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	if interactive {
		w = io.Discard
		if path := expandHome(flagLogFile); path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
				if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
					w = f
					closeFn = func() { f.Close() }
				}
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	logger.SetLevel(logLevel())
	log.SetDefault(logger)
	return logger, closeFn
}

func logLevel() log.Level {
	level := flagLogLevel
	if level == "" {
		level = os.Getenv(config.EnvLogLevel)
	}
	if level == "" {
		return log.InfoLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// openStore opens the runs database. When it cannot be opened the game keeps
// scores in memory; the returned *storage.Store is nil in that case.
func openStore(logger *log.Logger) (core.ScoreStore, *storage.Store) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database, keeping scores in memory", "path", flagDBPath, "err", err)
		return storage.NewMemory(), nil
	}
	return store, store
}

// screenConfig returns the terminal size, falling back to 80x24.
func screenConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, path[2:])
}
