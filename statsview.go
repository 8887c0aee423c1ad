package statsview

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a canvas submits geometry.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorBlack is the default label color.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorGray is the default color of the unfilled ring.
	ColorGray = Color{0x88 / 255.0, 0x88 / 255.0, 0x88 / 255.0, 1}
)

// Opaque reports whether the color's alpha channel is fully opaque.
func (c Color) Opaque() bool {
	return c.A >= 1
}

// RGBA8 converts the color to a non-premultiplied 8-bit color.
func (c Color) RGBA8() color.NRGBA {
	return color.NRGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}
}

// premultiplied returns the color as a premultiplied color.RGBA.
func (c Color) premultiplied() color.RGBA {
	return color.RGBA{
		R: channel8(c.R * c.A),
		G: channel8(c.G * c.A),
		B: channel8(c.B * c.A),
		A: channel8(c.A),
	}
}

// Hex formats the color as "#rrggbb", or "#aarrggbb" when not opaque.
func (c Color) Hex() string {
	n := c.RGBA8()
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.A, n.R, n.G, n.B)
}

func channel8(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(math.Round(v * 255))
}

// ErrColorFormat is returned by ParseHexColor for malformed input.
var ErrColorFormat = errors.New("statsview: malformed color")

// ParseHexColor parses "#rgb", "#rrggbb" or "#aarrggbb". The leading '#'
// is optional. The 8-digit form puts alpha first.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrColorFormat, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrColorFormat, s)
	}
	a := uint64(0xff)
	if len(h) == 8 {
		a = v >> 24
	}
	return Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: float64(a) / 255,
	}, nil
}

// Vec2 is a 2D point or offset.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// AnimationType selects how the segments reveal themselves as progress
// advances from 0 to 1.
type AnimationType uint8

const (
	AnimationRotation      AnimationType = iota // all segments sweep around together
	AnimationSequential                         // segments fill one after another
	AnimationBidirectional                      // each segment grows out from its middle
)

// ErrAnimationType is returned for animation types outside the known set.
var ErrAnimationType = errors.New("statsview: unknown animation type")

var animationNames = [...]string{"rotation", "sequential", "bidirectional"}

// String returns the lower-case name of the animation type.
func (a AnimationType) String() string {
	if int(a) < len(animationNames) {
		return animationNames[a]
	}
	return "AnimationType(" + strconv.Itoa(int(a)) + ")"
}

// Valid reports whether a is one of the known animation types.
func (a AnimationType) Valid() bool {
	return int(a) < len(animationNames)
}

// ParseAnimationType accepts either the numeric form ("0".."2") or the name.
func ParseAnimationType(s string) (AnimationType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range animationNames {
		if s == name || s == strconv.Itoa(i) {
			return AnimationType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrAnimationType, s)
}

// LineCap controls how the ends of an open stroke are drawn.
type LineCap uint8

const (
	CapButt  LineCap = iota // ends flush with the path
	CapRound                // half-disc of the stroke width at each end
)

// Stroke describes how an outline is painted.
type Stroke struct {
	Color Color
	Width float64
	Cap   LineCap
}

// TextAlign controls horizontal text alignment relative to the anchor point.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // anchor is the left edge
	TextAlignCenter                  // anchor is the horizontal center
	TextAlignRight                   // anchor is the right edge
)

// TextStyle describes how a label is painted. The anchor's Y is the baseline.
type TextStyle struct {
	Color Color
	Size  float64
	Align TextAlign
}
