package statsview

import "math"

// Geometry is the resolved placement of the ring inside a drawing surface.
type Geometry struct {
	Center Vec2
	Radius float64
	Bounds Rect // square enclosing the ring's centerline
}

// Resolve computes the ring geometry for a surface of the given size. The
// stroke is inset by its full width so it never clips at the surface edge.
// A zero or negative radius is passed through; see Drawable.
func Resolve(width, height, strokeWidth float64) Geometry {
	r := math.Min(width, height)/2 - strokeWidth
	c := Vec2{X: width / 2, Y: height / 2}
	return Geometry{
		Center: c,
		Radius: r,
		Bounds: Rect{X: c.X - r, Y: c.Y - r, Width: 2 * r, Height: 2 * r},
	}
}

// Drawable reports whether the geometry has a positive radius.
func (g Geometry) Drawable() bool {
	return g.Radius > 0
}

// Top returns the point at 12 o'clock on the ring's centerline.
func (g Geometry) Top() Vec2 {
	return Vec2{X: g.Center.X, Y: g.Center.Y - g.Radius}
}
