package dino

import "testing"

func TestSpriteAccessor(t *testing.T) {
	s := NewSprite(RoleCloud, 12, 0)

	if got := s.Get(PropLeft); got != 0 {
		t.Errorf("missing property = %v, want 0", got)
	}

	s.Set(PropLeft, 40)
	s.Increment(PropLeft, -2.5)
	if got := s.Get(PropLeft); got != 37.5 {
		t.Errorf("Get(left) = %v, want 37.5", got)
	}
	if got := s.Right(); got != 49.5 {
		t.Errorf("Right() = %v, want 49.5", got)
	}

	s.Set(PropFrame, 1)
	if s.Frame() != 1 {
		t.Errorf("Frame() = %d, want 1", s.Frame())
	}
}

func TestSpriteZeroValue(t *testing.T) {
	var s Sprite
	s.Increment(PropTop, 3)
	if s.Get(PropTop) != 3 {
		t.Errorf("zero-value sprite should accept writes, got %v", s.Get(PropTop))
	}
}

func TestRandInt(t *testing.T) {
	tests := []struct {
		r        float64
		min, max int
		want     int
	}{
		{0, 5, 25, 5},
		{0.9999, 5, 25, 25},
		{0.5, 0, 50, 25},
		{0.5, 500, 2000, 1250},
		{0.3, 0, 0, 0},
	}

	for _, tt := range tests {
		if got := randInt(constRand(tt.r), tt.min, tt.max); got != tt.want {
			t.Errorf("randInt(%v, %d, %d) = %d, want %d", tt.r, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestRoleString(t *testing.T) {
	if RoleObstacle.String() != "obstacle" || Role(9).String() != "unknown" {
		t.Error("unexpected role names")
	}
}
