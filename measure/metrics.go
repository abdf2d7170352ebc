// Package measure implements the content collaborators of the grid
// layout : text measured with font metrics or terminal cells, and
// boxes with fixed dimensions.
package measure

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/width"

	"github.com/benoitkugler/gridlayout/utils"
)

type Fl = utils.Fl

// Metrics provides the horizontal advance of runes and
// the height of a line of text.
type Metrics interface {
	Advance(r rune) Fl
	LineHeight() Fl
}

func fixedToFl(v fixed.Int26_6) Fl { return Fl(v) / 64 }

// FaceMetrics measures text with a font face, scaled to
// a font size.
type FaceMetrics struct {
	face  font.Face
	scale Fl
}

// NewFaceMetrics uses [face], scaled so that a line has the height [size].
// A zero or negative size keeps the natural size of the face.
func NewFaceMetrics(face font.Face, size Fl) FaceMetrics {
	out := FaceMetrics{face: face, scale: 1}
	if natural := fixedToFl(face.Metrics().Height); size > 0 && natural > 0 {
		out.scale = size / natural
	}
	return out
}

// DefaultMetrics returns the metrics of the fixed 7x13 face,
// which is always available.
func DefaultMetrics(size Fl) FaceMetrics {
	return NewFaceMetrics(basicfont.Face7x13, size)
}

// Advance returns the advance width of [r]. Runes missing from the
// face are measured as the replacement glyph '?'.
func (fm FaceMetrics) Advance(r rune) Fl {
	adv, ok := fm.face.GlyphAdvance(r)
	if !ok {
		adv, _ = fm.face.GlyphAdvance('?')
	}
	return fixedToFl(adv) * fm.scale
}

func (fm FaceMetrics) LineHeight() Fl {
	return fixedToFl(fm.face.Metrics().Height) * fm.scale
}

// CellMetrics measures text in terminal cells : wide and fullwidth
// East Asian runes take two cells, the others one; a line is one cell high.
type CellMetrics struct{}

func (CellMetrics) Advance(r rune) Fl {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

func (CellMetrics) LineHeight() Fl { return 1 }
