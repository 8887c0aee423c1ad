package statsview

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// SVGCanvas writes plans as SVG elements. Arcs become path arc commands so
// the output stays resolution independent.
type SVGCanvas struct {
	canvas *svg.SVG
}

var _ Canvas = (*SVGCanvas)(nil)

// NewSVGCanvas starts a width x height document on w. A nil bg leaves the
// background transparent. Call End when done.
func NewSVGCanvas(w io.Writer, width, height int, bg *Color) *SVGCanvas {
	c := svg.New(w)
	c.Start(width, height)
	if bg != nil {
		c.Rect(0, 0, width, height, "fill:"+bg.css())
	}
	return &SVGCanvas{canvas: c}
}

// End closes the document.
func (c *SVGCanvas) End() {
	c.canvas.End()
}

// DrawCircle strokes a full circle.
func (c *SVGCanvas) DrawCircle(center Vec2, radius float64, stroke Stroke) {
	c.canvas.Path(circlePath(center, radius), strokeStyle(stroke))
}

// DrawArc strokes an arc inside bounds. A zero sweep draws nothing.
func (c *SVGCanvas) DrawArc(bounds Rect, startAngle, sweepAngle float64, stroke Stroke) {
	if sweepAngle == 0 {
		return
	}
	center, r := arcCenterRadius(bounds)
	if math.Abs(sweepAngle) >= 360 {
		c.canvas.Path(circlePath(center, r), strokeStyle(stroke))
		return
	}
	from := pointOnCircle(center, r, startAngle)
	to := pointOnCircle(center, r, startAngle+sweepAngle)
	large, sweep := "0", "0"
	if math.Abs(sweepAngle) > 180 {
		large = "1"
	}
	if sweepAngle > 0 {
		sweep = "1"
	}
	d := strings.Join([]string{
		"M", f64s(from.X), f64s(from.Y),
		"A", f64s(r), f64s(r), "0", large, sweep, f64s(to.X), f64s(to.Y),
	}, " ")
	c.canvas.Path(d, strokeStyle(stroke))
}

// DrawPoint draws a dot one stroke width across.
func (c *SVGCanvas) DrawPoint(p Vec2, stroke Stroke) {
	if stroke.Cap == CapRound {
		c.canvas.Path(circlePath(p, stroke.Width/2), "fill:"+stroke.Color.css())
		return
	}
	h := stroke.Width / 2
	d := fmt.Sprintf("M %s %s h %s v %s h -%s Z",
		f64s(p.X-h), f64s(p.Y-h), f64s(stroke.Width), f64s(stroke.Width), f64s(stroke.Width))
	c.canvas.Path(d, "fill:"+stroke.Color.css())
}

// DrawText draws s with its baseline at p.Y.
func (c *SVGCanvas) DrawText(s string, p Vec2, style TextStyle) {
	anchor := "start"
	switch style.Align {
	case TextAlignCenter:
		anchor = "middle"
	case TextAlignRight:
		anchor = "end"
	}
	c.canvas.Text(int(math.Round(p.X)), int(math.Round(p.Y)), s,
		"font-family:sans-serif;font-size:"+f64s(style.Size)+"px;text-anchor:"+anchor+";fill:"+style.Color.css())
}

func f64s(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// circlePath returns a closed path of two half arcs.
func circlePath(c Vec2, r float64) string {
	return strings.Join([]string{
		"M", f64s(c.X - r), f64s(c.Y),
		"A", f64s(r), f64s(r), "0", "1", "1", f64s(c.X + r), f64s(c.Y),
		"A", f64s(r), f64s(r), "0", "1", "1", f64s(c.X - r), f64s(c.Y),
		"Z",
	}, " ")
}

func strokeStyle(s Stroke) string {
	lc := "butt"
	if s.Cap == CapRound {
		lc = "round"
	}
	return "fill:none;stroke:" + s.Color.css() + ";stroke-width:" + f64s(s.Width) + ";stroke-linecap:" + lc
}

// css formats c for a style attribute; translucent colors use rgba().
func (c Color) css() string {
	n := c.RGBA8()
	if n.A == 0xff {
		return c.Hex()
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", n.R, n.G, n.B, strconv.FormatFloat(c.A, 'f', 3, 64))
}
