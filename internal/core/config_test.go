package core

import "testing"

func TestNewViewportScale(t *testing.T) {
	tests := []struct {
		name      string
		pxW, pxH  float64
		wantScale float64
		wantOffX  float64
		wantOffY  float64
	}{
		{"wide surface limited by height", 800, 150, 5, 150, 0},
		{"tall surface limited by width", 800, 600, 8, 0, 180},
		{"exact aspect", 1000, 300, 10, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := NewViewport(100, 30, tc.pxW, tc.pxH)
			if v.Scale != tc.wantScale {
				t.Errorf("Scale = %v, expected %v", v.Scale, tc.wantScale)
			}
			if v.OffsetX != tc.wantOffX || v.OffsetY != tc.wantOffY {
				t.Errorf("Offset = (%v, %v), expected (%v, %v)", v.OffsetX, v.OffsetY, tc.wantOffX, tc.wantOffY)
			}
		})
	}
}

func TestViewportDegenerate(t *testing.T) {
	v := NewViewport(100, 30, 0, 24)
	if v.Scale != 0 {
		t.Errorf("zero-width surface should give zero scale, got %v", v.Scale)
	}
}

func TestViewportToPixels(t *testing.T) {
	v := NewViewport(100, 30, 800, 600)
	x, y := v.ToPixels(50, 15)
	if x != 400 || y != 300 {
		t.Errorf("ToPixels(50, 15) = (%v, %v), expected (400, 300)", x, y)
	}
	if v.PixelW() != 800 || v.PixelH() != 240 {
		t.Errorf("PixelW/H = %v/%v, expected 800/240", v.PixelW(), v.PixelH())
	}
}
