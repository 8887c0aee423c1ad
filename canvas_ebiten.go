package statsview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// EbitenCanvas draws plans onto an ebiten image. Strokes are turned into
// triangle meshes over a white pixel and submitted with DrawTriangles; text
// goes through text/v2.
type EbitenCanvas struct {
	Target *ebiten.Image

	// Font is used for labels, resized to each label's size. When nil, Go
	// Regular is loaded on first use. Set it before the first draw.
	Font *Font

	AntiAlias bool

	m     mesh
	fonts map[float64]*Font
}

var _ Canvas = (*EbitenCanvas)(nil)

// NewEbitenCanvas creates a canvas drawing onto target.
func NewEbitenCanvas(target *ebiten.Image, font *Font) *EbitenCanvas {
	return &EbitenCanvas{Target: target, Font: font, AntiAlias: true}
}

// DrawCircle strokes a full circle.
func (c *EbitenCanvas) DrawCircle(center Vec2, radius float64, stroke Stroke) {
	c.m.reset()
	outer, inner := ringStrip(center, radius, 0, 360, stroke.Width)
	c.m.appendStrip(outer, inner, stroke.Color)
	c.flush()
}

// DrawArc strokes an arc inside bounds. A zero sweep draws nothing.
func (c *EbitenCanvas) DrawArc(bounds Rect, startAngle, sweepAngle float64, stroke Stroke) {
	if sweepAngle == 0 {
		return
	}
	center, r := arcCenterRadius(bounds)
	c.m.reset()
	outer, inner := ringStrip(center, r, startAngle, sweepAngle, stroke.Width)
	c.m.appendStrip(outer, inner, stroke.Color)
	if stroke.Cap == CapRound {
		a, b := arcCaps(center, r, startAngle, sweepAngle)
		c.m.appendFan(discPoints(a, stroke.Width/2), stroke.Color)
		c.m.appendFan(discPoints(b, stroke.Width/2), stroke.Color)
	}
	c.flush()
}

// DrawPoint draws a dot one stroke width across, round or square per cap.
func (c *EbitenCanvas) DrawPoint(p Vec2, stroke Stroke) {
	c.m.reset()
	if stroke.Cap == CapRound {
		c.m.appendFan(discPoints(p, stroke.Width/2), stroke.Color)
	} else {
		c.m.appendFan(squarePoints(p, stroke.Width), stroke.Color)
	}
	c.flush()
}

// DrawText draws s with its baseline at p.Y.
func (c *EbitenCanvas) DrawText(s string, p Vec2, style TextStyle) {
	f := c.font(style.Size)
	if f == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(p.X, p.Y-f.Ascent())
	op.ColorScale.ScaleWithColor(style.Color.RGBA8())
	op.LineSpacing = f.LineHeight()
	switch style.Align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	text.Draw(c.Target, s, f.Face(), op)
}

func (c *EbitenCanvas) flush() {
	if len(c.m.inds) == 0 || c.Target == nil {
		return
	}
	c.Target.DrawTriangles(c.m.verts, c.m.inds, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{
		AntiAlias: c.AntiAlias,
	})
}

// font returns the label font at size. Faces are cached per size; a nil
// Font loads Go Regular.
func (c *EbitenCanvas) font(size float64) *Font {
	if f, ok := c.fonts[size]; ok {
		return f
	}
	var f *Font
	if c.Font != nil {
		f = c.Font.WithSize(size)
	} else {
		var err error
		f, err = DefaultFont(size)
		if err != nil {
			_, _ = fmt.Fprintf(logOutput, "[statsview] font: %v\n", err)
			return nil
		}
	}
	if c.fonts == nil {
		c.fonts = make(map[float64]*Font)
	}
	c.fonts[size] = f
	return f
}
