package statsview

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps Ebitengine's text/v2 for TrueType label rendering.
type Font struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("statsview: failed to parse TTF data: %w", err)
	}
	return newFont(source, size), nil
}

func newFont(source *text.GoTextFaceSource, size float64) *Font {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &Font{
		face:   face,
		source: source,
		size:   size,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}
}

// Size returns the font size in pixels.
func (f *Font) Size() float64 {
	return f.size
}

// WithSize returns a font sharing f's source at a different size.
func (f *Font) WithSize(size float64) *Font {
	if size == f.size {
		return f
	}
	return newFont(f.source, size)
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Ascent returns the distance from the top of a line to its baseline.
func (f *Font) Ascent() float64 {
	return f.face.Metrics().HAscent
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *Font) Face() *text.GoTextFace {
	return f.face
}

var defaultFontSource *text.GoTextFaceSource

// DefaultFont returns Go Regular at the given size.
func DefaultFont(size float64) (*Font, error) {
	if defaultFontSource == nil {
		f, err := LoadFont(goregular.TTF, size)
		if err != nil {
			return nil, err
		}
		defaultFontSource = f.source
		return f, nil
	}
	return newFont(defaultFontSource, size), nil
}
