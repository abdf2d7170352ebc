package css

import (
	"strings"

	"github.com/benoitkugler/gridlayout/grid"
	"github.com/benoitkugler/gridlayout/logger"
	"github.com/benoitkugler/gridlayout/utils"
)

// Style stores the declarations of an inline style attribute,
// with lower cased property names. Later declarations override
// earlier ones.
type Style map[string]string

// ParseStyle splits a declaration list like `display: grid; gap: 4px`.
// Malformed declarations are ignored.
func ParseStyle(style string) Style {
	out := Style{}
	for _, decl := range strings.Split(style, ";") {
		if strings.TrimSpace(decl) == "" {
			continue
		}
		name, value, ok := strings.Cut(decl, ":")
		name = strings.ToLower(strings.TrimSpace(name))
		if !ok || name == "" {
			logger.WarningLogger.Printf("Ignored `%s`, expected a declaration.\n", strings.TrimSpace(decl))
			continue
		}
		value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important"))
		out[name] = value
	}
	return out
}

func ignored(name, value string, err error) {
	logger.WarningLogger.Printf("Ignored `%s:%s` , %s. \n", name, value, err)
}

// IsGrid returns true if the style defines a grid container.
func (s Style) IsGrid() bool {
	switch strings.ToLower(s["display"]) {
	case "grid", "inline-grid":
		return true
	}
	return false
}

// Length returns the value of the length property [name],
// or false if it is not set, `auto` or invalid.
func (s Style) Length(name string) (utils.Fl, bool) {
	value, ok := s[name]
	if !ok || strings.ToLower(value) == "auto" {
		return 0, false
	}
	length, err := ParseLength(value)
	if err != nil {
		ignored(name, value, err)
		return 0, false
	}
	return length, true
}

// Options returns the container properties, with unknown width and height.
// Invalid values are logged and ignored.
func (s Style) Options() grid.Options {
	opts := grid.Options{Width: -1, Height: -1}
	tracks := func(name string, parse func(string) ([]grid.Sizing, error)) []grid.Sizing {
		value, ok := s[name]
		if !ok {
			return nil
		}
		out, err := parse(value)
		if err != nil {
			ignored(name, value, err)
		}
		return out
	}
	opts.TemplateColumns = tracks("grid-template-columns", ParseTrackList)
	opts.TemplateRows = tracks("grid-template-rows", ParseTrackList)
	opts.AutoColumns = tracks("grid-auto-columns", ParseAutoTracks)
	opts.AutoRows = tracks("grid-auto-rows", ParseAutoTracks)

	if value, ok := s["grid-auto-flow"]; ok {
		flow, err := ParseAutoFlow(value)
		if err != nil {
			ignored("grid-auto-flow", value, err)
		}
		opts.Flow = flow
	}

	if value, ok := s["gap"]; ok {
		rowGap, columnGap, err := ParseGap(value)
		if err != nil {
			ignored("gap", value, err)
		} else {
			opts.RowGap, opts.ColumnGap = rowGap, columnGap
		}
	}
	for _, name := range [...]string{"row-gap", "grid-row-gap"} {
		if gap, ok := s.gapLength(name); ok {
			opts.RowGap = gap
		}
	}
	for _, name := range [...]string{"column-gap", "grid-column-gap"} {
		if gap, ok := s.gapLength(name); ok {
			opts.ColumnGap = gap
		}
	}

	if width, ok := s.Length("width"); ok {
		opts.Width = width
	}
	if height, ok := s.Length("height"); ok {
		opts.Height = height
	}
	return opts
}

func (s Style) gapLength(name string) (utils.Fl, bool) {
	if strings.ToLower(s[name]) == "normal" {
		return 0, true
	}
	return s.Length(name)
}

// Placement returns the position of a grid item, resolved from
// the `grid-area`, `grid-row`, `grid-column` shorthands and
// the longhand properties, which take precedence.
// Invalid values are logged and ignored.
func (s Style) Placement() grid.Placement {
	var lines [4]LineValue // row-start, column-start, row-end, column-end

	shorthand := func(name string, count int, indices ...int) {
		value, ok := s[name]
		if !ok {
			return
		}
		parts, err := ParseShorthand(value, count)
		if err != nil {
			ignored(name, value, err)
			return
		}
		for i, index := range indices {
			lines[index] = parts[i]
		}
	}
	shorthand("grid-area", 4, 0, 1, 2, 3)
	shorthand("grid-row", 2, 0, 2)
	shorthand("grid-column", 2, 1, 3)

	for index, name := range [...]string{"grid-row-start", "grid-column-start", "grid-row-end", "grid-column-end"} {
		value, ok := s[name]
		if !ok {
			continue
		}
		line, err := ParseLine(value)
		if err != nil {
			ignored(name, value, err)
			continue
		}
		lines[index] = line
	}

	return grid.Placement{
		Row:    Line(lines[0], lines[2]),
		Column: Line(lines[1], lines[3]),
	}
}
