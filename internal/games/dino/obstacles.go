package dino

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Obstacle is a ground obstacle the character must clear.
type Obstacle struct {
	*Sprite
	worldH float64
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Bounds {
	left := o.Left()
	return core.Bounds{
		Left:   left,
		Top:    o.worldH - o.Height,
		Right:  left + o.Width,
		Bottom: o.worldH,
	}
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
// Obstacles are kept in spawn order, which is also left-to-right order.
type ObstacleManager struct {
	cfg       config.ObstacleConfig
	worldH    float64
	rng       core.RandomSource
	obstacles []Obstacle
	nextSpawn float64 // Ms until the next spawn
	armed     bool    // Setup has scheduled spawning
}

// NewObstacleManager creates an empty, unarmed obstacle manager.
func NewObstacleManager(cfg config.ObstacleConfig, worldH float64, rng core.RandomSource) *ObstacleManager {
	return &ObstacleManager{
		cfg:       cfg,
		worldH:    worldH,
		rng:       rng,
		obstacles: make([]Obstacle, 0, 8),
	}
}

// Setup clears all obstacles and schedules the first spawn after a random delay.
func (om *ObstacleManager) Setup() {
	om.Clear()
	om.nextSpawn = float64(om.randomInterval())
	om.armed = true
}

// Clear removes every obstacle and stops spawning until the next Setup.
func (om *ObstacleManager) Clear() {
	om.obstacles = om.obstacles[:0]
	om.armed = false
	om.nextSpawn = 0
}

// Update moves obstacles left, drops the ones off screen and spawns new ones.
func (om *ObstacleManager) Update(delta, speedScale float64) {
	// Move obstacles left
	for _, o := range om.obstacles {
		o.Increment(PropLeft, -delta*speedScale*om.cfg.Speed)
	}

	// Remove obstacles that have moved off the left side
	valid := om.obstacles[:0]
	for _, o := range om.obstacles {
		if o.Right() >= 0 {
			valid = append(valid, o)
		}
	}
	for i := len(valid); i < len(om.obstacles); i++ {
		om.obstacles[i] = Obstacle{}
	}
	om.obstacles = valid

	if !om.armed {
		return
	}

	om.nextSpawn -= delta
	if om.nextSpawn <= 0 && om.spawnClear() {
		om.spawn()
		interval := float64(om.randomInterval())
		if speedScale > 0 {
			interval /= speedScale
		}
		om.nextSpawn = interval
	}
}

// spawnClear reports whether the newest obstacle has left enough room at the
// spawn edge.
func (om *ObstacleManager) spawnClear() bool {
	if len(om.obstacles) == 0 {
		return true
	}
	last := om.obstacles[len(om.obstacles)-1]
	return last.Right() <= om.cfg.SpawnX-om.cfg.MinGap
}

// spawn appends an obstacle of a random kind at the spawn edge.
func (om *ObstacleManager) spawn() {
	kind := om.cfg.Kinds[randInt(om.rng, 0, len(om.cfg.Kinds)-1)]

	s := NewSprite(RoleObstacle, kind.Width, kind.Height)
	s.Kind = kind.Name
	s.Set(PropLeft, om.cfg.SpawnX)
	s.Set(PropTop, om.worldH-kind.Height)

	om.obstacles = append(om.obstacles, Obstacle{Sprite: s, worldH: om.worldH})
}

func (om *ObstacleManager) randomInterval() int {
	return randInt(om.rng, om.cfg.MinIntervalMs, om.cfg.MaxIntervalMs)
}

// Obstacles returns the live obstacles in spawn order.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// BoundingRects returns the collision rectangles of all live obstacles.
func (om *ObstacleManager) BoundingRects() []core.Bounds {
	rects := make([]core.Bounds, len(om.obstacles))
	for i, o := range om.obstacles {
		rects[i] = o.Rect()
	}
	return rects
}

// Len returns the number of live obstacles.
func (om *ObstacleManager) Len() int {
	return len(om.obstacles)
}

// NextSpawn returns the ms remaining until the next spawn attempt.
func (om *ObstacleManager) NextSpawn() float64 {
	return om.nextSpawn
}

// CheckCollision tests if the given rectangle overlaps any obstacle.
func (om *ObstacleManager) CheckCollision(r core.Bounds) bool {
	for _, o := range om.obstacles {
		if r.Overlaps(o.Rect()) {
			return true
		}
	}
	return false
}
