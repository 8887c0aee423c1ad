package statsview

import (
	"errors"
	"fmt"
)

// Defaults for Options fields left at their zero value. Lengths are in
// density-independent units.
const (
	DefaultStrokeWidth = 5
	DefaultFontSize    = 40
	DefaultDensity     = 1
)

// ErrInvalidOption is returned by NewStyle for out-of-range lengths.
var ErrInvalidOption = errors.New("statsview: invalid option")

// Options is the user-facing configuration of a chart. Zero-valued fields
// take the package defaults, except Colors which is required.
type Options struct {
	StrokeWidth    float64 // ring thickness, DIP
	FontSize       float64 // label size, DIP
	Colors         []Color
	NotFilledColor *Color // nil means ColorGray
	LabelColor     *Color // nil means ColorBlack
	AnimationType  AnimationType
	Density        float64 // pixels per DIP
	FallbackSeed   uint64
}

// Style holds the paint descriptors derived from Options. It is built once
// and passed into every render; nothing in it changes between frames,
// including the palette's generated fallback colors.
type Style struct {
	Ring      Stroke // background ring
	Segment   Stroke // per-segment arcs; Color is replaced per segment
	Marker    Stroke // start marker dot
	Label     TextStyle
	Palette   *Palette
	Animation AnimationType
}

// NewStyle validates opts and converts lengths to pixels.
func NewStyle(opts Options) (*Style, error) {
	density := opts.Density
	if density == 0 {
		density = DefaultDensity
	}
	strokeWidth := opts.StrokeWidth
	if strokeWidth == 0 {
		strokeWidth = DefaultStrokeWidth
	}
	fontSize := opts.FontSize
	if fontSize == 0 {
		fontSize = DefaultFontSize
	}
	switch {
	case density < 0:
		return nil, fmt.Errorf("%w: density %v", ErrInvalidOption, density)
	case strokeWidth < 0:
		return nil, fmt.Errorf("%w: stroke width %v", ErrInvalidOption, strokeWidth)
	case fontSize < 0:
		return nil, fmt.Errorf("%w: font size %v", ErrInvalidOption, fontSize)
	}
	if !opts.AnimationType.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrAnimationType, opts.AnimationType)
	}

	pal, err := NewPalette(opts.Colors, opts.FallbackSeed)
	if err != nil {
		return nil, err
	}

	notFilled := ColorGray
	if opts.NotFilledColor != nil {
		notFilled = *opts.NotFilledColor
	}
	label := ColorBlack
	if opts.LabelColor != nil {
		label = *opts.LabelColor
	}

	w := Dp(strokeWidth, density)
	return &Style{
		Ring:      Stroke{Color: notFilled, Width: w, Cap: CapButt},
		Segment:   Stroke{Width: w, Cap: CapRound},
		Marker:    Stroke{Color: pal.At(0), Width: w, Cap: CapRound},
		Label:     TextStyle{Color: label, Size: Dp(fontSize, density), Align: TextAlignCenter},
		Palette:   pal,
		Animation: opts.AnimationType,
	}, nil
}

// Dp converts a density-independent length to pixels.
func Dp(v, density float64) float64 {
	return v * density
}

// StrokeWidth returns the ring thickness in pixels.
func (s *Style) StrokeWidth() float64 {
	return s.Segment.Width
}
