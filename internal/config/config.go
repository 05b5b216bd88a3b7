// Package config provides YAML-based runner configuration loading, env
// overrides and pace presets.
package config

import (
	"errors"
	"fmt"
)

// Mode selects the collision policy of a run.
type Mode string

const (
	// ModeShowcase is the auto-playing mode: the character is immortal and
	// jumps on its own.
	ModeShowcase Mode = "showcase"
	// ModeManual hands the jump to the player and ends the run on collision.
	ModeManual Mode = "manual"
)

// ErrUnknownMode is returned for a mode other than showcase or manual.
var ErrUnknownMode = errors.New("config: unknown mode")

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeShowcase, ModeManual:
		return Mode(s), nil
	case "":
		return ModeShowcase, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownMode, s)
	}
}

// RunnerConfig contains all configuration for the runner.
type RunnerConfig struct {
	Mode      Mode            `yaml:"mode"`
	World     WorldConfig     `yaml:"world"`
	Timing    TimingConfig    `yaml:"timing"`
	Speed     SpeedConfig     `yaml:"speed"`
	Clouds    CloudConfig     `yaml:"clouds"`
	Ground    GroundConfig    `yaml:"ground"`
	Character CharacterConfig `yaml:"character"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	AutoJump  AutoJumpConfig  `yaml:"auto_jump"`
	Score     ScoreConfig     `yaml:"score"`
	Curtain   CurtainConfig   `yaml:"curtain"`
	Audio     AudioConfig     `yaml:"audio"`
	Control   ControlConfig   `yaml:"control"`
}

// WorldConfig defines the fixed logical world size.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TimingConfig defines the lifecycle timers.
type TimingConfig struct {
	StartDelayMs float64 `yaml:"start_delay_ms"` // Delay before the first run starts
}

// SpeedConfig defines the world speed scale and its optional ramp.
type SpeedConfig struct {
	Initial   float64 `yaml:"initial"`     // Speed scale at run start
	RampPerMs float64 `yaml:"ramp_per_ms"` // Added to the scale every ms; 0 = constant
	Max       float64 `yaml:"max"`         // Upper bound for the ramp; 0 = unbounded
}

// CloudConfig defines the parallax cloud layer.
type CloudConfig struct {
	Count         int     `yaml:"count"`
	Speed         float64 `yaml:"speed"`
	Width         float64 `yaml:"width"`
	SpacingX      float64 `yaml:"spacing_x"`
	JitterX       int     `yaml:"jitter_x"`
	MinTop        int     `yaml:"min_top"`
	MaxTop        int     `yaml:"max_top"`
	RecycleAt     float64 `yaml:"recycle_at"`
	RespawnX      float64 `yaml:"respawn_x"`
	RespawnJitter int     `yaml:"respawn_jitter"`
}

// GroundConfig defines the two-segment scrolling ground.
type GroundConfig struct {
	Speed        float64 `yaml:"speed"`
	SegmentWidth float64 `yaml:"segment_width"`
}

// CharacterConfig defines the runner's body and jump physics.
type CharacterConfig struct {
	Left         float64 `yaml:"left"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	JumpVelocity float64 `yaml:"jump_velocity"` // Units per ms
	Gravity      float64 `yaml:"gravity"`       // Units per ms²
	FrameCount   int     `yaml:"frame_count"`
	FrameTimeMs  float64 `yaml:"frame_time_ms"`
}

// ObstacleKind is one obstacle subtype.
type ObstacleKind struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines obstacle movement and spawning.
type ObstacleConfig struct {
	Speed         float64        `yaml:"speed"`
	SpawnX        float64        `yaml:"spawn_x"`
	MinIntervalMs int            `yaml:"min_interval_ms"`
	MaxIntervalMs int            `yaml:"max_interval_ms"`
	MinGap        float64        `yaml:"min_gap"` // Free space required left of the spawn edge
	Kinds         []ObstacleKind `yaml:"kinds"`
}

// AutoJumpConfig defines the proximity jump heuristic.
type AutoJumpConfig struct {
	TriggerDistance float64 `yaml:"trigger_distance"` // In reference pixels
	PixelsPerUnit   float64 `yaml:"pixels_per_unit"`  // Reference scale for the trigger distance
}

// ScoreConfig defines score accrual and milestones.
type ScoreConfig struct {
	PerMs     float64 `yaml:"per_ms"`
	Milestone int     `yaml:"milestone"`
}

// CurtainConfig defines the restart transition.
type CurtainConfig struct {
	ShowDelayMs    float64 `yaml:"show_delay_ms"`    // Overlay shown, then animated after this delay
	ResumeDelayMs  float64 `yaml:"resume_delay_ms"`  // Loop resumes this long after the animation starts
	OpenDurationMs float64 `yaml:"open_duration_ms"` // Length of the opening animation
}

// AudioConfig defines the milestone cue.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
	File    string  `yaml:"file"`   // Optional WAV file; empty uses the built-in chime
}

// ControlConfig defines the HTTP control surface.
type ControlConfig struct {
	Secret string `yaml:"secret"` // HS256 secret; empty disables auth
}

// Validate checks the invariants the simulation relies on.
func (c RunnerConfig) Validate() error {
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.Speed.Initial < 0 {
		return fmt.Errorf("config: speed.initial must not be negative")
	}
	if c.Clouds.MinTop > c.Clouds.MaxTop {
		return fmt.Errorf("config: clouds.min_top %d > max_top %d", c.Clouds.MinTop, c.Clouds.MaxTop)
	}
	if c.Clouds.RespawnX <= c.Clouds.RecycleAt {
		return fmt.Errorf("config: clouds.respawn_x %v must be right of recycle_at %v", c.Clouds.RespawnX, c.Clouds.RecycleAt)
	}
	if c.Clouds.RespawnJitter < 0 {
		return fmt.Errorf("config: clouds.respawn_jitter must not be negative")
	}
	if c.Ground.SegmentWidth <= 0 {
		return fmt.Errorf("config: ground.segment_width must be positive")
	}
	if c.Obstacles.MinIntervalMs > c.Obstacles.MaxIntervalMs {
		return fmt.Errorf("config: obstacles.min_interval_ms %d > max_interval_ms %d",
			c.Obstacles.MinIntervalMs, c.Obstacles.MaxIntervalMs)
	}
	if len(c.Obstacles.Kinds) == 0 {
		return fmt.Errorf("config: at least one obstacle kind is required")
	}
	if c.Character.FrameCount <= 0 {
		return fmt.Errorf("config: character.frame_count must be positive")
	}
	if c.Character.FrameTimeMs <= 0 {
		return fmt.Errorf("config: character.frame_time_ms must be positive")
	}
	if c.Score.Milestone <= 0 {
		return fmt.Errorf("config: score.milestone must be positive")
	}
	return nil
}
