package dino

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Role tags a sprite with the part of the scene it belongs to.
type Role int

const (
	RoleCloud Role = iota
	RoleGround
	RoleCharacter
	RoleObstacle
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleCloud:
		return "cloud"
	case RoleGround:
		return "ground"
	case RoleCharacter:
		return "character"
	case RoleObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Prop names a numeric positional property of a sprite.
type Prop string

const (
	PropLeft   Prop = "left"   // World units from the left edge
	PropTop    Prop = "top"    // World units from the top edge
	PropBottom Prop = "bottom" // World units above the ground
	PropFrame  Prop = "frame"  // Animation frame index
)

// Sprite is a positioned visual entity. Movers read and write its
// properties directly; there is no buffering between frames.
type Sprite struct {
	Role   Role
	Kind   string  // Subtype, e.g. the obstacle kind
	Width  float64 // World units
	Height float64 // World units
	props  map[Prop]float64
}

// NewSprite creates a sprite with all properties at zero.
func NewSprite(role Role, width, height float64) *Sprite {
	return &Sprite{
		Role:   role,
		Width:  width,
		Height: height,
		props:  make(map[Prop]float64, 4),
	}
}

// Get returns the value of a property. Missing properties read as 0.
func (s *Sprite) Get(p Prop) float64 {
	return s.props[p]
}

// Set assigns a property.
func (s *Sprite) Set(p Prop, v float64) {
	if s.props == nil {
		s.props = make(map[Prop]float64, 4)
	}
	s.props[p] = v
}

// Increment adds delta to a property.
func (s *Sprite) Increment(p Prop, delta float64) {
	s.Set(p, s.Get(p)+delta)
}

// Left is shorthand for Get(PropLeft).
func (s *Sprite) Left() float64 {
	return s.Get(PropLeft)
}

// Right returns the right edge.
func (s *Sprite) Right() float64 {
	return s.Get(PropLeft) + s.Width
}

// Frame returns the animation frame as an index.
func (s *Sprite) Frame() int {
	return int(s.Get(PropFrame))
}

// randInt returns an integer in [min, max] inclusive.
func randInt(r core.RandomSource, min, max int) int {
	return int(math.Floor(r.Float64()*float64(max-min+1) + float64(min)))
}
