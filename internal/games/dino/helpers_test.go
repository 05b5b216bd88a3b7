package dino

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// seqRand returns a fixed sequence of values, repeating it forever.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func constRand(v float64) *seqRand {
	return &seqRand{vals: []float64{v}}
}

type fakeStore struct {
	high     int
	saves    []int
	runs     []core.RunResult
	loadErr  error
	saveErr  error
	writeErr error
}

func (s *fakeStore) HighScore() (int, error) {
	return s.high, s.loadErr
}

func (s *fakeStore) SaveHighScore(score int) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves = append(s.saves, score)
	if score > s.high {
		s.high = score
	}
	return nil
}

func (s *fakeStore) RecordRun(run core.RunResult) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.runs = append(s.runs, run)
	return nil
}

type countingCue struct {
	plays int
	err   error
}

func (c *countingCue) Play() error {
	c.plays++
	return c.err
}

var errBoom = errors.New("boom")

func newTestGame(mode config.Mode, store core.ScoreStore, cue core.Cue) *Game {
	cfg := config.DefaultRunnerConfig()
	cfg.Mode = mode
	return New(registry.Options{
		Config: cfg,
		Rand:   constRand(0.5),
		Store:  store,
		Cue:    cue,
	})
}

// runFrames advances the game from start in fixed steps until end (inclusive).
func runFrames(g *Game, start, end, step time.Duration) {
	for now := start; now <= end; now += step {
		g.Frame(now)
	}
}

// addObstacle places an obstacle of the first configured kind at left.
func addObstacle(g *Game, left float64) {
	kind := g.cfg.Obstacles.Kinds[0]
	s := NewSprite(RoleObstacle, kind.Width, kind.Height)
	s.Kind = kind.Name
	s.Set(PropLeft, left)
	g.obstacles.obstacles = append(g.obstacles.obstacles, Obstacle{Sprite: s, worldH: g.cfg.World.Height})
}
