package images

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/benoitkugler/gridlayout/css"
	"github.com/benoitkugler/gridlayout/utils"
)

// findSVG returns the first <svg> element, which is not
// always the root node.
func findSVG(node *html.Node) *html.Node {
	if node.Type == html.ElementNode && node.DataAtom == atom.Svg {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findSVG(child); found != nil {
			return found
		}
	}
	return nil
}

// parseValue returns false for empty values and percentages,
// which depend on the container.
func parseValue(s string) (utils.Fl, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasSuffix(s, "%") {
		return 0, false, nil
	}
	if v, err := strconv.ParseFloat(s, 32); err == nil {
		return utils.Fl(v), true, nil
	}
	v, err := css.ParseLength(s)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

func parseViewbox(attr string) (width, height utils.Fl, err error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) != 4 {
		return 0, 0, fmt.Errorf("expected 4 numbers for viewbox, got %s", attr)
	}
	var values [4]float64
	for i, field := range fields {
		values[i], err = strconv.ParseFloat(field, 32)
		if err != nil {
			return 0, 0, err
		}
	}
	return utils.Fl(values[2]), utils.Fl(values[3]), nil
}

// svgSize reads the width and height of the root element. A missing
// dimension is deduced from the other one and the view box ratio,
// or taken from the view box.
func svgSize(content io.Reader) (Size, error) {
	root, err := html.Parse(content)
	if err != nil {
		return Size{}, err
	}
	svg := findSVG(root)
	if svg == nil {
		return Size{}, errors.New("missing <svg> element")
	}

	var attrs = map[string]string{}
	for _, attr := range svg.Attr {
		attrs[attr.Key] = attr.Val
	}
	width, hasWidth, err := parseValue(attrs["width"])
	if err != nil {
		return Size{}, err
	}
	height, hasHeight, err := parseValue(attrs["height"])
	if err != nil {
		return Size{}, err
	}
	if hasWidth && hasHeight {
		return Size{Width: width, Height: height}, nil
	}

	viewBox := attrs["viewBox"]
	if viewBox == "" {
		return Size{}, errors.New("missing dimensions and view box")
	}
	vbWidth, vbHeight, err := parseViewbox(viewBox)
	if err != nil {
		return Size{}, err
	}
	switch {
	case hasWidth && vbWidth != 0:
		height = width * vbHeight / vbWidth
	case hasHeight && vbHeight != 0:
		width = height * vbWidth / vbHeight
	default:
		width, height = vbWidth, vbHeight
	}
	return Size{Width: width, Height: height}, nil
}
