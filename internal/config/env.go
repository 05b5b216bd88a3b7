package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override file configuration.
const (
	EnvMode          = "RUNNER_MODE"
	EnvSpeedScale    = "RUNNER_SPEED_SCALE"
	EnvAudioEnabled  = "RUNNER_AUDIO_ENABLED"
	EnvControlSecret = "RUNNER_CONTROL_SECRET"
	EnvLogLevel      = "RUNNER_LOG_LEVEL"
)

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ".env")
// into the process environment. Missing files are ignored; variables that are
// already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ApplyEnv overrides cfg with the RUNNER_* environment variables.
// Malformed values are ignored, except an unknown RUNNER_MODE, which
// returns ErrUnknownMode.
func ApplyEnv(cfg *RunnerConfig) error {
	if v := os.Getenv(EnvMode); v != "" {
		mode, err := ParseMode(v)
		if err != nil {
			return err
		}
		cfg.Mode = mode
	}
	if v := os.Getenv(EnvSpeedScale); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.Speed.Initial = f
		}
	}
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = b
		}
	}
	if v := os.Getenv(EnvControlSecret); v != "" {
		cfg.Control.Secret = v
	}
	return nil
}
