package dino

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestCloudSetup(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Clouds
	l := NewCloudLayer(cfg, constRand(0))

	if len(l.Sprites()) != cfg.Count {
		t.Fatalf("got %d clouds, want %d", len(l.Sprites()), cfg.Count)
	}
	for i, c := range l.Sprites() {
		if c.Left() != float64(i)*40 {
			t.Errorf("cloud %d left = %v, want %v", i, c.Left(), float64(i)*40)
		}
		if c.Get(PropTop) != 5 {
			t.Errorf("cloud %d top = %v, want 5", i, c.Get(PropTop))
		}
	}
}

func TestCloudUpdateMovesLeft(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Clouds
	l := NewCloudLayer(cfg, constRand(0.5))
	c := l.Sprites()[1]
	before := c.Left()

	l.Update(100, 1.5)

	want := before - 100*1.5*0.02
	if math.Abs(c.Left()-want) > 1e-9 {
		t.Errorf("left = %v, want %v", c.Left(), want)
	}
}

func TestCloudRecycle(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Clouds

	for _, r := range []float64{0, 0.25, 0.5, 0.9999} {
		l := NewCloudLayer(cfg, constRand(r))
		c := l.Sprites()[0]
		c.Set(PropLeft, -19.9)

		l.Update(1000, 1.5)

		if c.Left() < 200 || c.Left() > 250 {
			t.Errorf("r=%v: recycled left = %v, want within [200, 250]", r, c.Left())
		}
		if top := c.Get(PropTop); top < 5 || top > 25 {
			t.Errorf("r=%v: recycled top = %v, want within [5, 25]", r, top)
		}
	}
}

func TestCloudNeverLeftPastThreshold(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Clouds
	l := NewCloudLayer(cfg, &seqRand{vals: []float64{0.1, 0.7, 0.4, 0.95}})

	for i := 0; i < 5000; i++ {
		l.Update(16, 3)
		for _, c := range l.Sprites() {
			if c.Left() <= cfg.RecycleAt {
				t.Fatalf("step %d: cloud left %v at or past threshold", i, c.Left())
			}
		}
	}
}

func TestGroundSetup(t *testing.T) {
	g := NewGround(config.DefaultRunnerConfig().Ground)
	s := g.Sprites()
	if s[0].Left() != 0 || s[1].Left() != 300 {
		t.Errorf("segments at %v and %v, want 0 and 300", s[0].Left(), s[1].Left())
	}
}

func TestGroundSeamless(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Ground
	w := cfg.SegmentWidth

	tests := []struct {
		name  string
		delta float64
		scale float64
	}{
		{"typical frame", 16, 1.5},
		{"stopped", 16, 0},
		{"fast", 33, 4},
		{"huge frame", 25000, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGround(cfg)
			for i := 0; i < 2000; i++ {
				g.Update(tt.delta, tt.scale)

				a, b := g.Sprites()[0].Left(), g.Sprites()[1].Left()
				if math.Abs(math.Abs(a-b)-w) > 1e-6 {
					t.Fatalf("step %d: segments %v and %v are not one width apart", i, a, b)
				}
				first := math.Min(a, b)
				if first > 0 || first <= -w {
					t.Fatalf("step %d: leading segment at %v leaves a gap", i, first)
				}
			}
		})
	}
}

func TestParallaxOrdering(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	if !(cfg.Clouds.Speed < cfg.Ground.Speed && cfg.Clouds.Speed < cfg.Obstacles.Speed) {
		t.Fatalf("cloud speed %v must be below ground %v and obstacle %v",
			cfg.Clouds.Speed, cfg.Ground.Speed, cfg.Obstacles.Speed)
	}

	clouds := NewCloudLayer(cfg.Clouds, constRand(0.5))
	ground := NewGround(cfg.Ground)
	cloud, seg := clouds.Sprites()[2], ground.Sprites()[1]
	c0, g0 := cloud.Left(), seg.Left()

	for _, delta := range []float64{0, 1, 16, 100} {
		clouds.Update(delta, 1.5)
		ground.Update(delta, 1.5)
	}

	cloudMoved := c0 - cloud.Left()
	groundMoved := g0 - seg.Left()
	if cloudMoved < 0 || groundMoved < 0 {
		t.Fatalf("positions must not increase: cloud %v ground %v", cloudMoved, groundMoved)
	}
	if cloudMoved >= groundMoved {
		t.Errorf("cloud moved %v, ground %v; clouds must be slower", cloudMoved, groundMoved)
	}
}
