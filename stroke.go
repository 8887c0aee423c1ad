package statsview

import "math"

// arcStepDeg is the maximum angle covered by one straight piece when an arc
// is flattened into a polyline.
const arcStepDeg = 3.0

// pointOnCircle returns the point at deg degrees (clockwise from 3 o'clock,
// Y down) on the circle of radius r around c.
func pointOnCircle(c Vec2, r, deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{X: c.X + r*math.Cos(rad), Y: c.Y + r*math.Sin(rad)}
}

// arcSteps returns how many straight pieces approximate a sweep.
func arcSteps(sweep float64) int {
	n := int(math.Ceil(math.Abs(sweep) / arcStepDeg))
	if n < 1 {
		n = 1
	}
	return n
}

// arcCenterRadius recovers the circle an arc's enclosing rectangle describes.
func arcCenterRadius(bounds Rect) (Vec2, float64) {
	return bounds.Center(), math.Min(bounds.Width, bounds.Height) / 2
}

// ringStrip returns matching outer and inner edge points of an arc stroked
// with the given width. For N pieces both slices hold N+1 points.
func ringStrip(c Vec2, r, start, sweep, width float64) (outer, inner []Vec2) {
	n := arcSteps(sweep)
	half := width / 2
	outer = make([]Vec2, n+1)
	inner = make([]Vec2, n+1)
	for i := 0; i <= n; i++ {
		deg := start + sweep*float64(i)/float64(n)
		outer[i] = pointOnCircle(c, r+half, deg)
		inner[i] = pointOnCircle(c, math.Max(r-half, 0), deg)
	}
	return outer, inner
}

// discPoints returns a convex polygon approximating a disc of radius r.
func discPoints(c Vec2, r float64) []Vec2 {
	n := int(math.Ceil(2 * math.Pi * r / 2))
	n = max(12, min(n, 64))
	pts := make([]Vec2, n)
	for i := range pts {
		pts[i] = pointOnCircle(c, r, 360*float64(i)/float64(n))
	}
	return pts
}

// arcOutline returns a closed outline of the stroked arc, walking the outer
// edge forward and the inner edge back. Round caps are drawn separately.
func arcOutline(c Vec2, r, start, sweep, width float64) []Vec2 {
	outer, inner := ringStrip(c, r, start, sweep, width)
	pts := make([]Vec2, 0, len(outer)+len(inner))
	pts = append(pts, outer...)
	for i := len(inner) - 1; i >= 0; i-- {
		pts = append(pts, inner[i])
	}
	return pts
}

// arcCaps returns the centers of the two end caps of an arc.
func arcCaps(c Vec2, r, start, sweep float64) (Vec2, Vec2) {
	return pointOnCircle(c, r, start), pointOnCircle(c, r, start+sweep)
}

// squarePoints returns the square of side w centered at p, used for points
// drawn with butt caps.
func squarePoints(p Vec2, w float64) []Vec2 {
	h := w / 2
	return []Vec2{
		{X: p.X - h, Y: p.Y - h},
		{X: p.X + h, Y: p.Y - h},
		{X: p.X + h, Y: p.Y + h},
		{X: p.X - h, Y: p.Y + h},
	}
}

// reversed returns pts in reverse order.
func reversed(pts []Vec2) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
