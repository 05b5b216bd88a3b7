package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hard-coded runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Mode: ModeShowcase,
		World: WorldConfig{
			Width:  100,
			Height: 30,
		},
		Timing: TimingConfig{
			StartDelayMs: 3000,
		},
		Speed: SpeedConfig{
			Initial: 1.5,
		},
		Clouds: CloudConfig{
			Count:         3,
			Speed:         0.02, // Slower than the ground for parallax
			Width:         12,
			SpacingX:      40,
			JitterX:       30,
			MinTop:        5,
			MaxTop:        25,
			RecycleAt:     -20,
			RespawnX:      200,
			RespawnJitter: 50,
		},
		Ground: GroundConfig{
			Speed:        0.05,
			SegmentWidth: 300,
		},
		Character: CharacterConfig{
			Left:         1,
			Width:        8,
			Height:       9,
			JumpVelocity: 0.135,
			Gravity:      0.00045,
			FrameCount:   2,
			FrameTimeMs:  100,
		},
		Obstacles: ObstacleConfig{
			Speed:         0.05,
			SpawnX:        100,
			MinIntervalMs: 500,
			MaxIntervalMs: 2000,
			MinGap:        12,
			Kinds: []ObstacleKind{
				{Name: "small", Width: 4, Height: 7},
				{Name: "large", Width: 5, Height: 10},
				{Name: "cluster", Width: 9, Height: 7},
			},
		},
		AutoJump: AutoJumpConfig{
			TriggerDistance: 150,
			PixelsPerUnit:   8, // 800x600 reference window
		},
		Score: ScoreConfig{
			PerMs:     0.01,
			Milestone: 100,
		},
		Curtain: CurtainConfig{
			ShowDelayMs:    50,
			ResumeDelayMs:  600,
			OpenDurationMs: 1000,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
