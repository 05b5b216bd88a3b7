package dino

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func newTestCharacter() *Character {
	cfg := config.DefaultRunnerConfig()
	return NewCharacter(cfg.Character, cfg.World.Height)
}

func TestCharacterBoundingRect(t *testing.T) {
	c := newTestCharacter()

	r := c.BoundingRect()
	if r.Left != 1 || r.Right != 9 || r.Bottom != 30 || r.Top != 21 {
		t.Errorf("grounded rect = %+v, want {1 21 9 30}", r)
	}

	c.Sprite().Set(PropBottom, 5)
	r = c.BoundingRect()
	if r.Bottom != 25 || r.Top != 16 {
		t.Errorf("raised rect = %+v, want top 16 bottom 25", r)
	}
}

func TestCharacterJumpArc(t *testing.T) {
	c := newTestCharacter()

	if !c.TriggerJump() {
		t.Fatal("grounded character should jump")
	}
	if c.TriggerJump() {
		t.Error("double jump must be ignored")
	}

	apex := 0.0
	landed := -1
	for ms := 1; ms <= 1000; ms++ {
		c.Update(1, 1.5)
		if h := c.Height(); h > apex {
			apex = h
		}
		if c.Height() < 0 {
			t.Fatalf("ms %d: character below ground: %v", ms, c.Height())
		}
		if !c.Jumping() && landed < 0 {
			landed = ms
		}
	}

	if apex < 19.5 || apex > 21 {
		t.Errorf("apex = %v, want about 20.25", apex)
	}
	if landed < 550 || landed > 650 {
		t.Errorf("landed after %d ms, want about 600", landed)
	}
	if c.Height() != 0 {
		t.Errorf("height after landing = %v, want 0", c.Height())
	}
	if !c.TriggerJump() {
		t.Error("character should jump again after landing")
	}
}

func TestCharacterRunAnimation(t *testing.T) {
	c := newTestCharacter()

	frames := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		c.Update(100, 1)
		frames = append(frames, c.Frame())
	}

	want := []int{0, 1, 0, 1, 0}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frames = %v, want %v", frames, want)
		}
	}

	c.TriggerJump()
	c.Update(16, 1)
	if c.Frame() != FrameJump {
		t.Errorf("airborne frame = %d, want jump frame", c.Frame())
	}
}

func TestCharacterSetLose(t *testing.T) {
	c := newTestCharacter()
	c.SetLose()

	if c.TriggerJump() {
		t.Error("lost character must not jump")
	}
	c.Update(500, 1)
	if c.Frame() != FrameLose {
		t.Errorf("frame = %d, want lose frame", c.Frame())
	}

	c.Reset()
	if c.Lost() || c.Frame() != 0 || c.Height() != 0 {
		t.Error("Reset should clear the lose state")
	}
}
