package measure

import (
	"strings"

	"github.com/benoitkugler/gridlayout/utils"
)

type word struct {
	runes    []rune
	advances []Fl
	width    Fl
}

// Text is a paragraph content, wrapped on white spaces.
// Explicit line feeds start a new line.
// It implements grid.Content.
type Text struct {
	metrics Metrics
	lines   [][]word // words of each forced line
	space   Fl
}

// NewText splits [s] into words, measured with [metrics].
func NewText(s string, metrics Metrics) *Text {
	t := &Text{metrics: metrics, space: metrics.Advance(' ')}
	if strings.TrimSpace(s) == "" {
		return t
	}
	for _, line := range strings.Split(s, "\n") {
		var words []word
		for _, field := range strings.Fields(line) {
			w := word{runes: []rune(field)}
			w.advances = make([]Fl, len(w.runes))
			for i, r := range w.runes {
				w.advances[i] = metrics.Advance(r)
				w.width += w.advances[i]
			}
			words = append(words, w)
		}
		t.lines = append(t.lines, words)
	}
	return t
}

// MinMaxWidth returns the width of the longest word and the width
// of the longest line when no wrapping occurs.
func (t *Text) MinMaxWidth() (minWidth, maxWidth Fl) {
	for _, line := range t.lines {
		var lineWidth Fl
		for i, w := range line {
			minWidth = utils.MaxF(minWidth, w.width)
			if i != 0 {
				lineWidth += t.space
			}
			lineWidth += w.width
		}
		maxWidth = utils.MaxF(maxWidth, lineWidth)
	}
	return minWidth, maxWidth
}

// LineCount returns the number of lines used when
// the text is wrapped in [width].
// Words larger than [width] are broken between two runes. If a single rune
// is larger than [width], [ok] is false.
func (t *Text) LineCount(width Fl) (count int, ok bool) {
	ok = true
	for _, line := range t.lines {
		count++
		var x Fl
		for i, w := range line {
			if i != 0 && x+t.space+w.width <= width+utils.Epsilon {
				x += t.space + w.width
				continue
			}
			if i != 0 {
				count++
			}
			if w.width <= width+utils.Epsilon {
				x = w.width
				continue
			}
			// break the word
			x = 0
			for j, adv := range w.advances {
				if adv > width+utils.Epsilon {
					ok = false
				}
				if j != 0 && x+adv > width+utils.Epsilon {
					count++
					x = 0
				}
				x += adv
			}
		}
	}
	return count, ok
}

// Height returns the height of the text wrapped in [width].
func (t *Text) Height(width Fl) (Fl, bool) {
	count, ok := t.LineCount(width)
	return Fl(count) * t.metrics.LineHeight(), ok
}

// Lines returns the text wrapped in [width], one string per line.
func (t *Text) Lines(width Fl) []string {
	var out []string
	var current strings.Builder
	var x Fl
	flush := func() {
		out = append(out, current.String())
		current.Reset()
		x = 0
	}
	for _, line := range t.lines {
		for i, w := range line {
			if i != 0 && x+t.space+w.width <= width+utils.Epsilon {
				current.WriteRune(' ')
				current.WriteString(string(w.runes))
				x += t.space + w.width
				continue
			}
			if i != 0 {
				flush()
			}
			if w.width <= width+utils.Epsilon {
				current.WriteString(string(w.runes))
				x = w.width
				continue
			}
			for j, adv := range w.advances {
				if j != 0 && x+adv > width+utils.Epsilon {
					flush()
				}
				current.WriteRune(w.runes[j])
				x += adv
			}
		}
		flush()
	}
	return out
}
