package statsview

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// mesh accumulates untextured triangles for a single DrawTriangles call.
// Buffers grow to a high-water mark and are reused across frames.
type mesh struct {
	verts []ebiten.Vertex
	inds  []uint16
}

func (m *mesh) reset() {
	m.verts = m.verts[:0]
	m.inds = m.inds[:0]
}

// vertex returns a vertex at p sampling the white pixel, tinted with the
// premultiplied color.
func vertex(p Vec2, c Color) ebiten.Vertex {
	a := float32(c.A)
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R) * a,
		ColorG: float32(c.G) * a,
		ColorB: float32(c.B) * a,
		ColorA: a,
	}
}

// appendStrip adds a quad strip between two matching edges: two triangles
// per piece. For N edge points: 2N vertices, 6(N-1) indices.
func (m *mesh) appendStrip(outer, inner []Vec2, c Color) {
	n := min(len(outer), len(inner))
	if n < 2 {
		return
	}
	base := uint16(len(m.verts))
	for i := 0; i < n; i++ {
		m.verts = append(m.verts, vertex(outer[i], c), vertex(inner[i], c))
	}
	for i := 0; i < n-1; i++ {
		v := base + uint16(i*2)
		m.inds = append(m.inds, v, v+1, v+2, v+1, v+3, v+2)
	}
}

// appendFan adds a fan-triangulated convex polygon. N vertices,
// 3(N-2) indices.
func (m *mesh) appendFan(points []Vec2, c Color) {
	n := len(points)
	if n < 3 {
		return
	}
	base := uint16(len(m.verts))
	for _, p := range points {
		m.verts = append(m.verts, vertex(p, c))
	}
	for i := 0; i < n-2; i++ {
		m.inds = append(m.inds, base, base+uint16(i+1), base+uint16(i+2))
	}
}

// --- White pixel singleton (no sync.Once; ebiten games are single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source of every untextured triangle.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
