package dino

import "github.com/vovakirdan/tui-runner/internal/config"

// Ground is two segments tiled edge to edge. A segment that scrolls fully
// off the left edge jumps two widths to the right, behind its sibling, so the
// pair always stays exactly one width apart.
type Ground struct {
	cfg      config.GroundConfig
	segments [2]*Sprite
}

// NewGround creates the two ground segments.
func NewGround(cfg config.GroundConfig) *Ground {
	g := &Ground{cfg: cfg}
	for i := range g.segments {
		g.segments[i] = NewSprite(RoleGround, cfg.SegmentWidth, 0)
	}
	g.Setup()
	return g
}

// Setup places the segments at 0 and one width.
func (g *Ground) Setup() {
	for i, s := range g.segments {
		s.Set(PropLeft, float64(i)*g.cfg.SegmentWidth)
	}
}

// Update scrolls the segments and recycles those off screen.
func (g *Ground) Update(delta, speedScale float64) {
	w := g.cfg.SegmentWidth
	for _, s := range g.segments {
		s.Increment(PropLeft, -delta*speedScale*g.cfg.Speed)
		// A very long frame may carry a segment more than one width past the edge.
		for s.Left() <= -w {
			s.Increment(PropLeft, 2*w)
		}
	}
}

// Sprites returns both segments.
func (g *Ground) Sprites() []*Sprite {
	return g.segments[:]
}
