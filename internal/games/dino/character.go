package dino

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Animation frames beyond the run cycle.
const (
	FrameJump = -1
	FrameLose = -2
)

// Character is the runner: a vertical jump arc under constant gravity and a
// run-cycle animation while grounded.
type Character struct {
	cfg       config.CharacterConfig
	worldH    float64
	sprite    *Sprite
	velocity  float64 // Units per ms, positive is up
	jumping   bool
	lost      bool
	frameTime float64 // Scaled ms accumulated for the current run frame
}

// NewCharacter creates a grounded character.
func NewCharacter(cfg config.CharacterConfig, worldH float64) *Character {
	c := &Character{
		cfg:    cfg,
		worldH: worldH,
		sprite: NewSprite(RoleCharacter, cfg.Width, cfg.Height),
	}
	c.Reset()
	return c
}

// Reset puts the character back on the ground in the first run frame.
func (c *Character) Reset() {
	c.jumping = false
	c.lost = false
	c.velocity = 0
	c.frameTime = 0
	c.sprite.Set(PropLeft, c.cfg.Left)
	c.sprite.Set(PropBottom, 0)
	c.sprite.Set(PropFrame, 0)
}

// TriggerJump starts a jump. Ignored while airborne or after a loss.
func (c *Character) TriggerJump() bool {
	if c.jumping || c.lost {
		return false
	}
	c.velocity = c.cfg.JumpVelocity
	c.jumping = true
	return true
}

// Update advances the animation and the jump arc.
func (c *Character) Update(delta, speedScale float64) {
	if c.lost {
		return
	}
	c.handleRun(delta, speedScale)
	c.handleJump(delta)
}

func (c *Character) handleRun(delta, speedScale float64) {
	if c.jumping {
		c.sprite.Set(PropFrame, FrameJump)
		return
	}
	if c.Frame() < 0 {
		c.sprite.Set(PropFrame, 0)
	}

	if c.frameTime >= c.cfg.FrameTimeMs {
		c.sprite.Set(PropFrame, float64((c.Frame()+1)%c.cfg.FrameCount))
		c.frameTime -= c.cfg.FrameTimeMs
	}
	c.frameTime += delta * speedScale
}

func (c *Character) handleJump(delta float64) {
	if !c.jumping {
		return
	}

	c.sprite.Increment(PropBottom, c.velocity*delta)
	if c.sprite.Get(PropBottom) <= 0 {
		c.sprite.Set(PropBottom, 0)
		c.velocity = 0
		c.jumping = false
		return
	}
	c.velocity -= c.cfg.Gravity * delta
}

// SetLose freezes the character on the lose frame.
func (c *Character) SetLose() {
	c.lost = true
	c.sprite.Set(PropFrame, FrameLose)
}

// BoundingRect returns the character rectangle in world units.
func (c *Character) BoundingRect() core.Bounds {
	bottom := c.worldH - c.sprite.Get(PropBottom)
	left := c.sprite.Left()
	return core.Bounds{
		Left:   left,
		Top:    bottom - c.cfg.Height,
		Right:  left + c.cfg.Width,
		Bottom: bottom,
	}
}

// Jumping reports whether the character is airborne.
func (c *Character) Jumping() bool {
	return c.jumping
}

// Lost reports whether SetLose was called since the last Reset.
func (c *Character) Lost() bool {
	return c.lost
}

// Frame returns the current animation frame.
func (c *Character) Frame() int {
	return c.sprite.Frame()
}

// Height returns how far above the ground the character is.
func (c *Character) Height() float64 {
	return c.sprite.Get(PropBottom)
}

// Sprite returns the underlying sprite.
func (c *Character) Sprite() *Sprite {
	return c.sprite
}
