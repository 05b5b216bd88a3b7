package dino

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// CloudLayer scrolls the background clouds slower than the ground,
// giving the scene parallax depth. Clouds are recycled, never removed.
type CloudLayer struct {
	cfg    config.CloudConfig
	rng    core.RandomSource
	clouds []*Sprite
}

// NewCloudLayer creates a cloud layer with cfg.Count slots.
func NewCloudLayer(cfg config.CloudConfig, rng core.RandomSource) *CloudLayer {
	l := &CloudLayer{cfg: cfg, rng: rng}
	l.clouds = make([]*Sprite, cfg.Count)
	for i := range l.clouds {
		l.clouds[i] = NewSprite(RoleCloud, cfg.Width, 0)
	}
	l.Setup()
	return l
}

// Setup spreads the clouds across the sky at their initial positions.
func (l *CloudLayer) Setup() {
	for i, c := range l.clouds {
		c.Set(PropLeft, float64(i)*l.cfg.SpacingX+float64(randInt(l.rng, 0, l.cfg.JitterX)))
		c.Set(PropTop, float64(randInt(l.rng, l.cfg.MinTop, l.cfg.MaxTop)))
	}
}

// Update moves every cloud left and recycles those past the threshold.
func (l *CloudLayer) Update(delta, speedScale float64) {
	for _, c := range l.clouds {
		c.Increment(PropLeft, -delta*speedScale*l.cfg.Speed)
		if c.Left() <= l.cfg.RecycleAt {
			c.Set(PropLeft, l.cfg.RespawnX+float64(randInt(l.rng, 0, l.cfg.RespawnJitter)))
			c.Set(PropTop, float64(randInt(l.rng, l.cfg.MinTop, l.cfg.MaxTop)))
		}
	}
}

// Sprites returns the cloud sprites.
func (l *CloudLayer) Sprites() []*Sprite {
	return l.clouds
}
