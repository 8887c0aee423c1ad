package statsview

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// RasterCanvas draws plans onto an in-memory RGBA image without a GPU. It
// backs headless frame export and visual tests.
type RasterCanvas struct {
	// FontData is the TrueType/OpenType data used for labels. When nil, Go
	// Regular is used. Set it before the first draw.
	FontData []byte

	img   *image.RGBA
	z     *vector.Rasterizer
	ttf   *opentype.Font
	faces map[float64]font.Face
}

var _ Canvas = (*RasterCanvas)(nil)

// NewRasterCanvas creates a width x height canvas filled with bg.
func NewRasterCanvas(width, height int, bg Color) *RasterCanvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg.premultiplied()), image.Point{}, draw.Src)
	return &RasterCanvas{
		img: img,
		z:   vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole canvas with bg.
func (c *RasterCanvas) Clear(bg Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(bg.premultiplied()), image.Point{}, draw.Src)
}

// EncodePNG writes the canvas as PNG.
func (c *RasterCanvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("statsview: encode png: %w", err)
	}
	return nil
}

// DrawCircle strokes a full circle as an outer contour with an inner hole.
func (c *RasterCanvas) DrawCircle(center Vec2, radius float64, stroke Stroke) {
	outer, inner := ringStrip(center, radius, 0, 360, stroke.Width)
	c.fill(stroke.Color, outer, reversed(inner))
}

// DrawArc strokes an arc inside bounds. A zero sweep draws nothing.
func (c *RasterCanvas) DrawArc(bounds Rect, startAngle, sweepAngle float64, stroke Stroke) {
	if sweepAngle == 0 {
		return
	}
	center, r := arcCenterRadius(bounds)
	c.fill(stroke.Color, arcOutline(center, r, startAngle, sweepAngle, stroke.Width))
	if stroke.Cap == CapRound {
		a, b := arcCaps(center, r, startAngle, sweepAngle)
		c.fill(stroke.Color, discPoints(a, stroke.Width/2))
		c.fill(stroke.Color, discPoints(b, stroke.Width/2))
	}
}

// DrawPoint draws a dot one stroke width across, round or square per cap.
func (c *RasterCanvas) DrawPoint(p Vec2, stroke Stroke) {
	if stroke.Cap == CapRound {
		c.fill(stroke.Color, discPoints(p, stroke.Width/2))
		return
	}
	c.fill(stroke.Color, squarePoints(p, stroke.Width))
}

// DrawText draws s with its baseline at p.Y. A font that fails to load is
// reported on stderr and the label is skipped.
func (c *RasterCanvas) DrawText(s string, p Vec2, style TextStyle) {
	face, err := c.face(style.Size)
	if err != nil {
		_, _ = fmt.Fprintf(logOutput, "[statsview] font: %v\n", err)
		return
	}
	width := font.MeasureString(face, s)
	x := fixed.Int26_6(p.X * 64)
	switch style.Align {
	case TextAlignCenter:
		x -= width / 2
	case TextAlignRight:
		x -= width
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(style.Color.RGBA8()),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: fixed.Int26_6(p.Y * 64)},
	}
	d.DrawString(s)
}

// fill rasterizes the closed contours as one shape and composites it over
// the image. Contours wound opposite to the first one cut holes.
func (c *RasterCanvas) fill(col Color, contours ...[]Vec2) {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	drawn := false
	for _, pts := range contours {
		if len(pts) < 3 {
			continue
		}
		c.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, p := range pts[1:] {
			c.z.LineTo(float32(p.X), float32(p.Y))
		}
		c.z.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}
	c.z.Draw(c.img, b, image.NewUniform(col.RGBA8()), image.Point{})
}

// face returns the label face at size, parsing the font once.
func (c *RasterCanvas) face(size float64) (font.Face, error) {
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	if c.ttf == nil {
		data := c.FontData
		if data == nil {
			data = goregular.TTF
		}
		ttf, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("statsview: parse font: %w", err)
		}
		c.ttf = ttf
	}
	f, err := opentype.NewFace(c.ttf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("statsview: font face: %w", err)
	}
	if c.faces == nil {
		c.faces = make(map[float64]font.Face)
	}
	c.faces[size] = f
	return f, nil
}
