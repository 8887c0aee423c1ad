package statsview

import (
	"fmt"
	"math"
)

// startAngle is 12 o'clock in canvas degrees.
const startAngle = -90.0

// ChartSpec is the data shown by the chart. It is replaced as a whole when
// new data arrives.
type ChartSpec struct {
	Total  float64
	Values []float64
}

// Fraction returns v's share of the total. A non-positive total, or a
// result that is not finite, yields 0.
func (s ChartSpec) Fraction(v float64) float64 {
	if !(s.Total > 0) {
		return 0
	}
	f := v / s.Total
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Percent returns the target fill as a percentage: the sum of all values
// over the total, independent of animation progress.
func (s ChartSpec) Percent() float64 {
	var sum float64
	for _, v := range s.Values {
		sum += v
	}
	return s.Fraction(sum) * 100
}

// Label formats Percent with two decimals and a trailing '%'.
func (s ChartSpec) Label() string {
	return fmt.Sprintf("%.2f%%", s.Percent())
}

// Render builds the draw operations for one frame. progress is the current
// animation position in [0, 1]. An empty value list yields an empty plan.
//
// Op order: background ring, label, one arc per drawn segment, then the
// start marker when the policy calls for it.
func Render(spec ChartSpec, geom Geometry, policy AnimationType, progress float64, style *Style) *RenderPlan {
	plan := &RenderPlan{}
	if len(spec.Values) == 0 {
		return plan
	}
	plan.Label = spec.Label()
	plan.Ops = make([]DrawOp, 0, len(spec.Values)+3)

	plan.Ops = append(plan.Ops,
		DrawOp{
			Kind:   OpCircle,
			Center: geom.Center,
			Radius: geom.Radius,
			Stroke: style.Ring,
		},
		DrawOp{
			Kind:      OpText,
			Center:    Vec2{X: geom.Center.X, Y: geom.Center.Y + style.Label.Size/4},
			Text:      plan.Label,
			TextStyle: style.Label,
		},
	)

	start := startAngle
	remaining := progress
	for i, v := range spec.Values {
		if policy == AnimationSequential && remaining < 0 {
			break
		}
		frac := spec.Fraction(v)
		sweep := 360 * frac

		var from, drawn float64
		switch policy {
		case AnimationSequential:
			var local float64
			local, remaining = sequentialFill(remaining, frac)
			from, drawn = start, sweep*local
		case AnimationBidirectional:
			drawn = sweep * progress
			from = start + (sweep-drawn)/2
		default:
			from, drawn = start+progress*360, sweep*progress
		}

		stroke := style.Segment
		stroke.Color = style.Palette.At(i)
		plan.Ops = append(plan.Ops, DrawOp{
			Kind:       OpArc,
			Bounds:     geom.Bounds,
			StartAngle: from,
			SweepAngle: drawn,
			Segment:    i,
			Stroke:     stroke,
		})
		start += sweep
	}

	if policy == AnimationSequential || progress == 1 {
		plan.Ops = append(plan.Ops, DrawOp{
			Kind:   OpPoint,
			Center: geom.Top(),
			Stroke: style.Marker,
		})
	}
	return plan
}

// sequentialFill consumes one segment's fraction from the remaining budget.
// It returns how much of the segment is filled (0..1) and the budget left
// for the segments after it, which goes negative once the fill runs out.
func sequentialFill(remaining, frac float64) (local, next float64) {
	local = 1
	if remaining < frac {
		local = remaining / frac
	}
	return local, remaining - frac
}
