package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Viewport maps the fixed logical world onto a pixel surface with
// aspect-correct letterboxing.
type Viewport struct {
	WorldW, WorldH float64 // Logical world size
	Scale          float64 // Pixels per world unit
	OffsetX        float64 // Horizontal letterbox margin in pixels
	OffsetY        float64 // Vertical letterbox margin in pixels
}

// NewViewport computes scale = min(pxW/worldW, pxH/worldH) and centers the
// world inside the pixel surface.
func NewViewport(worldW, worldH, pxW, pxH float64) Viewport {
	v := Viewport{WorldW: worldW, WorldH: worldH}
	if worldW <= 0 || worldH <= 0 || pxW <= 0 || pxH <= 0 {
		return v
	}
	scaleX := pxW / worldW
	scaleY := pxH / worldH
	v.Scale = scaleX
	if scaleY < scaleX {
		v.Scale = scaleY
	}
	v.OffsetX = (pxW - worldW*v.Scale) / 2
	v.OffsetY = (pxH - worldH*v.Scale) / 2
	return v
}

// ToPixels converts a world position to pixel coordinates.
func (v Viewport) ToPixels(x, y float64) (float64, float64) {
	return v.OffsetX + x*v.Scale, v.OffsetY + y*v.Scale
}

// PixelW returns the width of the letterboxed world in pixels.
func (v Viewport) PixelW() float64 {
	return v.WorldW * v.Scale
}

// PixelH returns the height of the letterboxed world in pixels.
func (v Viewport) PixelH() float64 {
	return v.WorldH * v.Scale
}
