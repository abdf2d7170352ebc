package grid

import (
	"fmt"
	"strconv"
)

// SizingKind is the tag of a track sizing function.
type SizingKind uint8

const (
	Fixed SizingKind = iota
	Percentage
	AutoSize
	MinContentSize
	MaxContentSize
	Flexible
)

// Sizing is a track sizing function.
// Value is the length for Fixed, the percentage for Percentage
// and the flex factor for Flexible. It is ignored otherwise.
type Sizing struct {
	Kind  SizingKind
	Value Fl
}

// Length returns a fixed sizing function.
func Length(v Fl) Sizing { return Sizing{Kind: Fixed, Value: v} }

// Percent returns a sizing function resolved against the available space.
func Percent(pct Fl) Sizing { return Sizing{Kind: Percentage, Value: pct} }

// Fr returns a flexible sizing function.
func Fr(fraction Fl) Sizing { return Sizing{Kind: Flexible, Value: fraction} }

func Auto() Sizing { return Sizing{Kind: AutoSize} }

func MinContent() Sizing { return Sizing{Kind: MinContentSize} }

func MaxContent() Sizing { return Sizing{Kind: MaxContentSize} }

// isDefinite returns true for lengths and percentages.
func (s Sizing) isDefinite() bool { return s.Kind == Fixed || s.Kind == Percentage }

func (s Sizing) isFlexible() bool { return s.Kind == Flexible }

func formatFl(v Fl) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }

// String returns the CSS syntax of the sizing function.
func (s Sizing) String() string {
	switch s.Kind {
	case Fixed:
		return formatFl(s.Value) + "px"
	case Percentage:
		return formatFl(s.Value) + "%"
	case AutoSize:
		return "auto"
	case MinContentSize:
		return "min-content"
	case MaxContentSize:
		return "max-content"
	case Flexible:
		return formatFl(s.Value) + "fr"
	default:
		return fmt.Sprintf("<invalid sizing %d>", s.Kind)
	}
}
