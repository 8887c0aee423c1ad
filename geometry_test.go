package statsview

import (
	"math"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		w, h, stroke float64
		cx, cy, r    float64
		wantDrawable bool
	}{
		{"square", 400, 400, 5, 200, 200, 195, true},
		{"landscape", 400, 300, 5, 200, 150, 145, true},
		{"portrait", 100, 300, 10, 50, 150, 40, true},
		{"zero size", 0, 0, 5, 0, 0, -5, false},
		{"stroke eats radius", 10, 10, 5, 5, 5, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Resolve(tt.w, tt.h, tt.stroke)
			if g.Center.X != tt.cx || g.Center.Y != tt.cy {
				t.Errorf("Center = %+v, want (%v, %v)", g.Center, tt.cx, tt.cy)
			}
			if math.Abs(g.Radius-tt.r) > 1e-9 {
				t.Errorf("Radius = %v, want %v", g.Radius, tt.r)
			}
			if g.Drawable() != tt.wantDrawable {
				t.Errorf("Drawable = %v, want %v", g.Drawable(), tt.wantDrawable)
			}
		})
	}
}

func TestResolveBoundsSquare(t *testing.T) {
	g := Resolve(400, 300, 5)
	want := Rect{X: 55, Y: 5, Width: 290, Height: 290}
	if g.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", g.Bounds, want)
	}
	if c := g.Bounds.Center(); c != g.Center {
		t.Errorf("Bounds center %+v != Center %+v", c, g.Center)
	}
	if top := g.Top(); top.X != 200 || top.Y != 5 {
		t.Errorf("Top = %+v", top)
	}
}
