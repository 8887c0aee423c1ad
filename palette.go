package statsview

import (
	"errors"
	"math/rand/v2"
)

// ErrNoColors is returned when a palette is built from an empty color table.
var ErrNoColors = errors.New("statsview: color table is empty")

// Palette assigns colors to segments by index. Indices past the configured
// table get a generated opaque color derived from the seed and the index
// alone, so a fallback never changes between frames and lookups never
// modify the palette.
type Palette struct {
	colors []Color
	seed   uint64
}

// NewPalette copies colors into a new palette. The seed feeds the fallback
// generator; equal seeds produce equal fallback colors.
func NewPalette(colors []Color, seed uint64) (*Palette, error) {
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	return &Palette{
		colors: append([]Color(nil), colors...),
		seed:   seed,
	}, nil
}

// Len returns the number of configured colors.
func (p *Palette) Len() int {
	return len(p.colors)
}

// At returns the color for segment i. Negative indices are treated as past
// the table.
func (p *Palette) At(i int) Color {
	if i >= 0 && i < len(p.colors) {
		return p.colors[i]
	}
	return fallbackColor(p.seed, i)
}

// fallbackColor draws three channels from a PCG stream keyed by seed and i.
func fallbackColor(seed uint64, i int) Color {
	src := rand.NewPCG(seed, uint64(i)^0x9e3779b97f4a7c15)
	unit := func() float64 {
		return float64(src.Uint64()>>11) / (1 << 53)
	}
	return Color{R: unit(), G: unit(), B: unit(), A: 1}
}
