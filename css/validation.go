package css

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/gridlayout/grid"
	"github.com/benoitkugler/gridlayout/logger"
	"github.com/benoitkugler/gridlayout/utils"
)

// ErrInvalidValue is returned for invalid or unsupported values.
var ErrInvalidValue = errors.New("invalid or unsupported values for a known CSS property")

// maxRepeat bounds the track count produced by repeat().
const maxRepeat = grid.MaxLine

// LengthsToPixels converts absolute length units to pixels.
var LengthsToPixels = map[string]utils.Fl{
	"px": 1,
	"pt": 1. / 0.75,
	"pc": 16.,        // LengthsToPixels["pt"] * 12
	"in": 96.,        // LengthsToPixels["pt"] * 72
	"cm": 96. / 2.54, // LengthsToPixels["in"] / 2.54
	"mm": 96. / 25.4, // LengthsToPixels["in"] / 25.4
	"q":  96. / 25.4 / 4.,
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))
}

// getLength returns the value in pixels of a non negative length.
func getLength(token Token) (utils.Fl, bool) {
	switch token := token.(type) {
	case Dimension:
		factor, ok := LengthsToPixels[token.Unit]
		if ok && token.Value >= 0 {
			return token.Value * factor, true
		}
	case Number:
		if token.Value == 0 {
			return 0, true
		}
	}
	return 0, false
}

// parseInflexibleBreadth parses a length, percentage or
// sizing keyword.
func parseInflexibleBreadth(token Token) (grid.Sizing, bool) {
	switch getKeyword(token) {
	case "auto":
		return grid.Auto(), true
	case "min-content":
		return grid.MinContent(), true
	case "max-content":
		return grid.MaxContent(), true
	}
	if perc, ok := token.(Percentage); ok && perc >= 0 {
		return grid.Percent(utils.Fl(perc)), true
	}
	if length, ok := getLength(token); ok {
		return grid.Length(length), true
	}
	return grid.Sizing{}, false
}

func parseTrackBreadth(token Token) (grid.Sizing, bool) {
	if dim, ok := token.(Dimension); ok && dim.Value >= 0 && dim.Unit == "fr" {
		return grid.Fr(dim.Value), true
	}
	return parseInflexibleBreadth(token)
}

// parseTrackSize also accepts minmax() and fit-content(), which are
// approximated by a single sizing function.
func parseTrackSize(token Token) (grid.Sizing, bool) {
	if sizing, ok := parseTrackBreadth(token); ok {
		return sizing, true
	}
	fn, ok := token.(Function)
	if !ok {
		return grid.Sizing{}, false
	}
	args := splitOn(fn.Arguments, ",")
	switch fn.Name {
	case "minmax":
		if len(args) != 2 || len(args[0]) != 1 || len(args[1]) != 1 {
			return grid.Sizing{}, false
		}
		lower, ok1 := parseInflexibleBreadth(args[0][0])
		upper, ok2 := parseTrackBreadth(args[1][0])
		if !ok1 || !ok2 {
			return grid.Sizing{}, false
		}
		logger.WarningLogger.Printf("minmax(%s, %s) is not supported, using %s", lower, upper, upper)
		return upper, true
	case "fit-content":
		if len(args) != 1 || len(args[0]) != 1 {
			return grid.Sizing{}, false
		}
		if _, isPerc := args[0][0].(Percentage); !isPerc {
			if _, ok := getLength(args[0][0]); !ok {
				return grid.Sizing{}, false
			}
		}
		logger.WarningLogger.Println("fit-content() is not supported, using auto")
		return grid.Auto(), true
	}
	return grid.Sizing{}, false
}

func parseRepeat(token Token) (int, bool) {
	if nb, ok := token.(Number); ok && nb.IsInteger && nb.Value >= 1 {
		return int(nb.Value), true
	}
	switch getKeyword(token) {
	case "auto-fill", "auto-fit":
		logger.WarningLogger.Printf("repeat(%s, ...) is not supported, the tracks are repeated once", getKeyword(token))
		return 1, true
	}
	return 0, false
}

// ParseTrackList parses the value of `grid-template-columns`
// or `grid-template-rows`. `none` returns an empty list.
// Line names are accepted and ignored.
func ParseTrackList(value string) ([]grid.Sizing, error) {
	tokens := removeWhitespace(Tokenize(value))
	if len(tokens) == 0 {
		return nil, invalid("empty track list")
	}
	if len(tokens) == 1 && getKeyword(tokens[0]) == "none" {
		return nil, nil
	}
	var (
		out            []grid.Sizing
		lastIsLineName bool
	)
	for _, token := range tokens {
		if _, ok := token.(SquareBlock); ok {
			if lastIsLineName {
				return nil, invalid("consecutive line names")
			}
			lastIsLineName = true
			continue
		}
		lastIsLineName = false
		if sizing, ok := parseTrackSize(token); ok {
			out = append(out, sizing)
			continue
		}
		fn, ok := token.(Function)
		if !ok || fn.Name != "repeat" {
			return nil, invalid("unexpected track %v", token)
		}
		tracks, err := parseRepeatFunction(fn)
		if err != nil {
			return nil, err
		}
		out = append(out, tracks...)
		if len(out) > maxRepeat {
			return nil, invalid("too many tracks")
		}
	}
	return out, nil
}

func parseRepeatFunction(fn Function) ([]grid.Sizing, error) {
	args := removeWhitespace(fn.Arguments)
	if len(args) < 3 {
		return nil, invalid("repeat() expects a count and a track list")
	}
	count, ok := parseRepeat(args[0])
	if !ok {
		return nil, invalid("invalid repeat count %v", args[0])
	}
	if lit, ok := args[1].(Literal); !ok || lit != "," {
		return nil, invalid("missing comma in repeat()")
	}
	var pattern []grid.Sizing
	for _, arg := range args[2:] {
		if _, ok := arg.(SquareBlock); ok {
			continue
		}
		sizing, ok := parseTrackSize(arg)
		if !ok {
			return nil, invalid("unexpected track %v in repeat()", arg)
		}
		pattern = append(pattern, sizing)
	}
	if len(pattern) == 0 || count*len(pattern) > maxRepeat {
		return nil, invalid("invalid repeat()")
	}
	out := make([]grid.Sizing, 0, count*len(pattern))
	for i := 0; i < count; i++ {
		out = append(out, pattern...)
	}
	return out, nil
}

// ParseAutoTracks parses the value of `grid-auto-columns`
// or `grid-auto-rows`.
func ParseAutoTracks(value string) ([]grid.Sizing, error) {
	tokens := removeWhitespace(Tokenize(value))
	if len(tokens) == 0 {
		return nil, invalid("empty track list")
	}
	out := make([]grid.Sizing, len(tokens))
	for i, token := range tokens {
		sizing, ok := parseTrackSize(token)
		if !ok {
			return nil, invalid("unexpected track %v", token)
		}
		out[i] = sizing
	}
	return out, nil
}

// ParseAutoFlow parses the value of `grid-auto-flow`.
func ParseAutoFlow(value string) (grid.Flow, error) {
	tokens := removeWhitespace(Tokenize(value))
	var column, dense, row bool
	for _, token := range tokens {
		switch getKeyword(token) {
		case "row":
			if row || column {
				return 0, invalid("duplicated direction")
			}
			row = true
		case "column":
			if row || column {
				return 0, invalid("duplicated direction")
			}
			column = true
		case "dense":
			if dense {
				return 0, invalid("duplicated dense keyword")
			}
			dense = true
		default:
			return 0, invalid("unexpected flow %v", token)
		}
	}
	switch {
	case len(tokens) == 0:
		return 0, invalid("empty flow")
	case column && dense:
		return grid.FlowColumnDense, nil
	case column:
		return grid.FlowColumn, nil
	case dense:
		return grid.FlowRowDense, nil
	default:
		return grid.FlowRow, nil
	}
}

// LineValue is the value of one of the `grid-row-start`,
// `grid-row-end`, `grid-column-start` or `grid-column-end` properties.
// The zero value is `auto`.
type LineValue struct {
	Number int // 1-based, 0 for auto
	Span   int // 0 if not a span
}

// ParseLine parses a grid line. Named lines are not supported and
// are treated as `auto`.
func ParseLine(value string) (LineValue, error) {
	return parseLineTokens(removeWhitespace(Tokenize(value)))
}

func parseLineTokens(tokens []Token) (LineValue, error) {
	var (
		out            LineValue
		isSpan, hasInt bool
		ident          string
	)
	if len(tokens) == 1 && getKeyword(tokens[0]) == "auto" {
		return out, nil
	}
	for _, token := range tokens {
		switch token := token.(type) {
		case Ident:
			if token == "span" && !isSpan {
				isSpan = true
				continue
			} else if token != "span" && token != "auto" && ident == "" {
				ident = string(token)
				continue
			}
		case Number:
			if token.IsInteger && token.Value != 0 && !hasInt {
				hasInt = true
				out.Number = clampLine(token.Value)
				continue
			}
		}
		return LineValue{}, invalid("unexpected line %v", token)
	}
	if ident != "" {
		logger.WarningLogger.Printf("named grid lines are not supported (%s), using auto", ident)
		return LineValue{}, nil
	}
	if isSpan {
		if out.Number < 0 || !hasInt {
			return LineValue{}, invalid("invalid span")
		}
		return LineValue{Span: out.Number}, nil
	}
	if !hasInt {
		return LineValue{}, invalid("empty line")
	}
	return out, nil
}

// clampLine bounds a line number or span to the size of the grid.
func clampLine(v utils.Fl) int {
	if -grid.MaxLine <= v && v <= grid.MaxLine {
		return int(v)
	}
	logger.WarningLogger.Printf("grid line %g out of range, clamped to %d", v, grid.MaxLine)
	if v < 0 {
		return -grid.MaxLine
	}
	return grid.MaxLine
}

// Line combines the start and end values into a line
// usable by the layout.
func Line(start, end LineValue) grid.Line {
	var out grid.Line
	switch {
	case start.Number != 0:
		out.Start = start.Number
		out.End, out.Span = end.Number, end.Span
	case start.Span != 0:
		out.Span, out.End = start.Span, end.Number
	default:
		out.End, out.Span = end.Number, end.Span
		if out.End != 0 {
			out.Span = 0
		}
	}
	return out
}

// ParseShorthand parses the value of `grid-row` or `grid-column`
// (with [count] = 2) or `grid-area` (with [count] = 4),
// returning the parts in the order of the shorthand.
// Missing parts are auto.
func ParseShorthand(value string, count int) ([]LineValue, error) {
	parts := splitOn(Tokenize(value), "/")
	if len(parts) > count {
		return nil, invalid("too many lines in %q", value)
	}
	out := make([]LineValue, count)
	for i, part := range parts {
		line, err := parseLineTokens(part)
		if err != nil {
			return nil, err
		}
		out[i] = line
	}
	return out, nil
}

// ParseLength parses a non negative absolute length.
func ParseLength(value string) (utils.Fl, error) {
	tokens := removeWhitespace(Tokenize(value))
	if len(tokens) != 1 {
		return 0, invalid("expected one length in %q", value)
	}
	length, ok := getLength(tokens[0])
	if !ok {
		return 0, invalid("invalid length %q", value)
	}
	return length, nil
}

// ParseGap parses the `gap` shorthand (row gap, then column gap).
// `normal` is 0.
func ParseGap(value string) (rowGap, columnGap utils.Fl, err error) {
	tokens := removeWhitespace(Tokenize(value))
	if len(tokens) == 0 || len(tokens) > 2 {
		return 0, 0, invalid("expected one or two lengths in %q", value)
	}
	var gaps [2]utils.Fl
	for i, token := range tokens {
		if getKeyword(token) == "normal" {
			continue
		}
		length, ok := getLength(token)
		if !ok {
			return 0, 0, invalid("invalid gap %v", token)
		}
		gaps[i] = length
	}
	if len(tokens) == 1 {
		gaps[1] = gaps[0]
	}
	return gaps[0], gaps[1], nil
}
