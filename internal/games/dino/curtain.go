package dino

// CurtainState is the visible state of the restart transition overlay.
type CurtainState int

const (
	CurtainHidden  CurtainState = iota
	CurtainShown                // Overlay covers the scene
	CurtainOpening              // Overlay is sliding away
)

// Curtain is the overlay shown while a run restarts.
type Curtain struct {
	durationMs float64
	state      CurtainState
	openedAt   float64
	progress   float64
}

// NewCurtain creates a hidden curtain whose opening animation lasts durationMs.
func NewCurtain(durationMs float64) *Curtain {
	return &Curtain{durationMs: durationMs}
}

// Show covers the scene.
func (c *Curtain) Show() {
	c.state = CurtainShown
	c.progress = 0
}

// Open starts the opening animation at nowMs.
func (c *Curtain) Open(nowMs float64) {
	if c.state == CurtainHidden {
		return
	}
	c.state = CurtainOpening
	c.openedAt = nowMs
	c.progress = 0
}

// Advance updates the animation and removes the overlay once it completes.
func (c *Curtain) Advance(nowMs float64) {
	if c.state != CurtainOpening {
		return
	}
	if c.durationMs <= 0 || nowMs-c.openedAt >= c.durationMs {
		c.state = CurtainHidden
		c.progress = 1
		return
	}
	c.progress = (nowMs - c.openedAt) / c.durationMs
	if c.progress < 0 {
		c.progress = 0
	}
}

// Hide removes the overlay immediately.
func (c *Curtain) Hide() {
	c.state = CurtainHidden
	c.progress = 0
}

// State returns the overlay state.
func (c *Curtain) State() CurtainState {
	return c.state
}

// Progress returns how far the opening animation is, from 0 to 1.
func (c *Curtain) Progress() float64 {
	return c.progress
}

// Visible reports whether any part of the overlay is on screen.
func (c *Curtain) Visible() bool {
	return c.state != CurtainHidden
}
