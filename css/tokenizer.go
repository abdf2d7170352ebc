// Package css parses the CSS properties controlling a grid layout,
// as found in inline style attributes.
package css

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/benoitkugler/gridlayout/utils"
)

var numberRe = regexp.MustCompile(`^[-+]?([0-9]*\.)?[0-9]+([eE][+-]?[0-9]+)?`)

// Token is one component value of a property.
type Token interface {
	isToken()
}

type (
	Whitespace struct{}
	// Literal is a single delimiter, like ',' or '/'.
	Literal string
	// Ident is stored lower cased.
	Ident  string
	Number struct {
		Value     utils.Fl
		IsInteger bool
	}
	Percentage utils.Fl
	Dimension  struct {
		Value utils.Fl
		Unit  string // lower cased
	}
	Function struct {
		Name      string // lower cased
		Arguments []Token
	}
	// SquareBlock is a [...] block, used for line names.
	SquareBlock []Token
)

func (Whitespace) isToken()  {}
func (Literal) isToken()     {}
func (Ident) isToken()       {}
func (Number) isToken()      {}
func (Percentage) isToken()  {}
func (Dimension) isToken()   {}
func (Function) isToken()    {}
func (SquareBlock) isToken() {}

func isNameStart(c rune) bool {
	return c > 0x7F || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isNameChar(c rune) bool {
	return isNameStart(c) || c == '-' || '0' <= c && c <= '9'
}

func isIdentStart(css string) bool {
	c, w := utf8.DecodeRuneInString(css)
	if isNameStart(c) {
		return true
	}
	if c == '-' {
		next, _ := utf8.DecodeRuneInString(css[w:])
		return isNameStart(next) || next == '-'
	}
	return false
}

func consumeIdent(css string) (string, int) {
	pos := 0
	for pos < len(css) {
		c, w := utf8.DecodeRuneInString(css[pos:])
		if !isNameChar(c) {
			break
		}
		pos += w
	}
	return css[:pos], pos
}

// Tokenize splits a property value into tokens. Comments are skipped,
// functions and square brackets are parsed as nested blocks.
// Unmatched closing delimiters are returned as literals.
func Tokenize(css string) []Token {
	out, _ := tokenize(css, 0)
	return out
}

// tokenize stops after [endChar], returning the number of bytes consumed
func tokenize(css string, endChar byte) ([]Token, int) {
	var out []Token
	pos := 0
	for pos < len(css) {
		c := css[pos]
		switch {
		case c == ' ' || c == '\n' || c == '\t' || c == '\r' || c == '\f':
			for pos < len(css) && strings.IndexByte(" \n\t\r\f", css[pos]) != -1 {
				pos++
			}
			out = append(out, Whitespace{})
			continue
		case endChar != 0 && c == endChar:
			return out, pos + 1
		case strings.HasPrefix(css[pos:], "/*"):
			index := strings.Index(css[pos+2:], "*/")
			if index == -1 {
				return out, len(css)
			}
			pos += 2 + index + 2
			continue
		case isIdentStart(css[pos:]):
			value, w := consumeIdent(css[pos:])
			pos += w
			value = strings.ToLower(value)
			if pos < len(css) && css[pos] == '(' {
				args, n := tokenize(css[pos+1:], ')')
				pos += 1 + n
				out = append(out, Function{Name: value, Arguments: args})
			} else {
				out = append(out, Ident(value))
			}
			continue
		case c == '[':
			content, n := tokenize(css[pos+1:], ']')
			pos += 1 + n
			out = append(out, SquareBlock(content))
			continue
		}

		if match := numberRe.FindString(css[pos:]); match != "" {
			pos += len(match)
			value, _ := strconv.ParseFloat(match, 32)
			if value == 0 {
				value = 0 // -0
			}
			_, err := strconv.ParseInt(match, 10, 0)
			n := Number{Value: utils.Fl(value), IsInteger: err == nil}
			if pos < len(css) && isIdentStart(css[pos:]) {
				unit, w := consumeIdent(css[pos:])
				pos += w
				out = append(out, Dimension{Value: n.Value, Unit: strings.ToLower(unit)})
			} else if pos < len(css) && css[pos] == '%' {
				pos++
				out = append(out, Percentage(n.Value))
			} else {
				out = append(out, n)
			}
			continue
		}

		r, w := utf8.DecodeRuneInString(css[pos:])
		pos += w
		out = append(out, Literal(string(r)))
	}
	return out, pos
}

// removeWhitespace returns the tokens without whitespace.
func removeWhitespace(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := token.(Whitespace); !ok {
			out = append(out, token)
		}
	}
	return out
}

// splitOn splits [tokens] on the [sep] literal, removing whitespaces.
func splitOn(tokens []Token, sep Literal) [][]Token {
	out := [][]Token{nil}
	for _, token := range removeWhitespace(tokens) {
		if lit, ok := token.(Literal); ok && lit == sep {
			out = append(out, nil)
			continue
		}
		out[len(out)-1] = append(out[len(out)-1], token)
	}
	return out
}

func getKeyword(token Token) string {
	if ident, ok := token.(Ident); ok {
		return string(ident)
	}
	return ""
}
