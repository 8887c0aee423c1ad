package statsview

// OpKind identifies the kind of draw operation.
type OpKind uint8

const (
	OpCircle OpKind = iota // full stroked circle (background ring)
	OpArc                  // stroked arc segment
	OpPoint                // single stroked point (start marker)
	OpText                 // label
)

var opNames = [...]string{"circle", "arc", "point", "text"}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "unknown"
}

// DrawOp is a single draw instruction in a RenderPlan. Which fields are
// meaningful depends on Kind.
type DrawOp struct {
	Kind OpKind

	// OpCircle, OpPoint
	Center Vec2
	Radius float64

	// OpArc. Angles are in degrees, clockwise from 3 o'clock.
	Bounds     Rect
	StartAngle float64
	SweepAngle float64
	Segment    int // index into ChartSpec.Values

	// OpCircle, OpArc, OpPoint
	Stroke Stroke

	// OpText
	Text      string
	TextStyle TextStyle
}

// RenderPlan is the ordered list of draw operations for one frame.
type RenderPlan struct {
	Ops   []DrawOp
	Label string
}

// Empty reports whether the plan draws nothing.
func (p *RenderPlan) Empty() bool {
	return p == nil || len(p.Ops) == 0
}

// Arcs returns the arc operations in draw order.
func (p *RenderPlan) Arcs() []DrawOp {
	if p == nil {
		return nil
	}
	var arcs []DrawOp
	for _, op := range p.Ops {
		if op.Kind == OpArc {
			arcs = append(arcs, op)
		}
	}
	return arcs
}

// HasMarker reports whether the plan contains the start marker.
func (p *RenderPlan) HasMarker() bool {
	if p == nil {
		return false
	}
	for _, op := range p.Ops {
		if op.Kind == OpPoint {
			return true
		}
	}
	return false
}

// Canvas is a 2D drawing surface able to replay a RenderPlan.
type Canvas interface {
	DrawCircle(center Vec2, radius float64, stroke Stroke)
	DrawArc(bounds Rect, startAngle, sweepAngle float64, stroke Stroke)
	DrawPoint(p Vec2, stroke Stroke)
	DrawText(s string, p Vec2, style TextStyle)
}

// Draw replays the plan's operations on c in order.
func (p *RenderPlan) Draw(c Canvas) {
	if p == nil {
		return
	}
	for i := range p.Ops {
		op := &p.Ops[i]
		switch op.Kind {
		case OpCircle:
			c.DrawCircle(op.Center, op.Radius, op.Stroke)
		case OpArc:
			c.DrawArc(op.Bounds, op.StartAngle, op.SweepAngle, op.Stroke)
		case OpPoint:
			c.DrawPoint(op.Center, op.Stroke)
		case OpText:
			c.DrawText(op.Text, op.Center, op.TextStyle)
		}
	}
}
