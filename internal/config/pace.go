package config

import "math"

// PacePreset represents a named speed progression.
type PacePreset string

const (
	PaceEasy   PacePreset = "easy"
	PaceNormal PacePreset = "normal"
	PaceHard   PacePreset = "hard"
	PaceFixed  PacePreset = "fixed"
)

// ApplyPace modifies the speed settings for a preset.
// Unknown or empty presets leave the config untouched.
func ApplyPace(cfg *RunnerConfig, preset PacePreset) {
	switch preset {
	case PaceEasy:
		cfg.Speed.Initial = 1.0
		cfg.Speed.RampPerMs = 0.00001
		cfg.Speed.Max = 2.0
	case PaceNormal:
		cfg.Speed.Initial = 1.5
		cfg.Speed.RampPerMs = 0.00002
		cfg.Speed.Max = 3.0
	case PaceHard:
		cfg.Speed.Initial = 2.0
		cfg.Speed.RampPerMs = 0.00004
		cfg.Speed.Max = 4.0
	case PaceFixed:
		cfg.Speed.RampPerMs = 0
	}
}

// SpeedRamp computes the world speed scale for the elapsed run time.
type SpeedRamp struct {
	cfg SpeedConfig
}

// NewSpeedRamp creates a speed ramp.
func NewSpeedRamp(cfg SpeedConfig) *SpeedRamp {
	return &SpeedRamp{cfg: cfg}
}

// IsEnabled returns whether the scale changes over time.
func (r *SpeedRamp) IsEnabled() bool {
	return r.cfg.RampPerMs > 0
}

// Scale returns the speed scale after elapsedMs of running.
func (r *SpeedRamp) Scale(elapsedMs float64) float64 {
	if !r.IsEnabled() {
		return r.cfg.Initial
	}
	scale := r.cfg.Initial + math.Max(elapsedMs, 0)*r.cfg.RampPerMs
	if r.cfg.Max > 0 && scale > r.cfg.Max {
		scale = r.cfg.Max
	}
	return scale
}
