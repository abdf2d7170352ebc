// Package html loads a grid container and its items from
// an HTML document, styled with inline style attributes.
package html

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/benoitkugler/gridlayout/css"
	"github.com/benoitkugler/gridlayout/grid"
	"github.com/benoitkugler/gridlayout/images"
	"github.com/benoitkugler/gridlayout/logger"
	"github.com/benoitkugler/gridlayout/measure"
	"github.com/benoitkugler/gridlayout/utils"
)

// ErrNoGrid is returned when the document has no grid container.
var ErrNoGrid = errors.New("no grid container (display: grid) found")

// Grid is a grid container found in a document.
type Grid struct {
	Options grid.Options
	Items   []grid.Item
	// Labels describe each item, for diagnostics.
	Labels []string
}

// Layout places and sizes the items.
func (g *Grid) Layout() (*grid.Result, error) { return grid.Layout(g.Items, g.Options) }

type loader struct {
	metrics measure.Metrics
	images  *images.Cache
}

// Load parses the document and returns its first grid container.
// [width] is used when the container does not specify its width.
// Text is measured with [metrics], and image sources are relative
// to the working directory.
func Load(r io.Reader, metrics measure.Metrics, width utils.Fl) (*Grid, error) {
	return loader{metrics: metrics, images: images.NewCache("")}.load(r, width)
}

// LoadFile is the same as [Load], with image sources relative
// to the directory of the document.
func LoadFile(path string, metrics measure.Metrics, width utils.Fl) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()
	return loader{metrics: metrics, images: images.NewCache(filepath.Dir(path))}.load(f, width)
}

func (l loader) load(r io.Reader, width utils.Fl) (*Grid, error) {
	logger.ProgressLogger.Println("Parsing HTML")
	root, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, fmt.Errorf("invalid html input : %w", err)
	}

	container, style := findGrid(root)
	if container == nil {
		return nil, ErrNoGrid
	}

	out := &Grid{Options: style.Options()}
	if out.Options.Width < 0 {
		out.Options.Width = width
	}
	for child := container.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.ElementNode:
			itemStyle := css.ParseStyle(getAttr(child, "style"))
			if strings.EqualFold(itemStyle["display"], "none") {
				continue
			}
			out.Items = append(out.Items, grid.Item{
				Content:   l.newContent(child, itemStyle),
				Placement: itemStyle.Placement(),
			})
			out.Labels = append(out.Labels, label(child))
		case html.TextNode:
			// text directly contained in the grid is wrapped in an anonymous item
			if strings.TrimSpace(child.Data) == "" {
				continue
			}
			out.Items = append(out.Items, grid.Item{Content: measure.NewText(collapseNewlines(child.Data), l.metrics)})
			out.Labels = append(out.Labels, "text")
		}
	}
	logger.ProgressLogger.Printf("Grid container <%s> with %d items", container.Data, len(out.Items))
	return out, nil
}

// LoadString is a convenience wrapper around [Load].
func LoadString(document string, metrics measure.Metrics, width utils.Fl) (*Grid, error) {
	return Load(strings.NewReader(document), metrics, width)
}

func getAttr(node *html.Node, name string) string {
	for _, attr := range node.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

// findGrid performs a depth first search.
func findGrid(node *html.Node) (*html.Node, css.Style) {
	if node.Type == html.ElementNode {
		if style := css.ParseStyle(getAttr(node, "style")); style.IsGrid() {
			return node, style
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found, style := findGrid(child); found != nil {
			return found, style
		}
	}
	return nil, nil
}

func label(node *html.Node) string {
	out := node.Data
	if id := getAttr(node, "id"); id != "" {
		out += "#" + id
	}
	return out
}

// newContent returns a box for elements with a fixed size
// and for images, a text otherwise.
func (l loader) newContent(node *html.Node, style css.Style) grid.Content {
	width, hasWidth := style.Length("width")
	height, hasHeight := style.Length("height")
	if node.DataAtom == atom.Img {
		if !hasWidth {
			width, hasWidth = attrLength(node, "width")
		}
		if !hasHeight {
			height, hasHeight = attrLength(node, "height")
		}
		if !hasWidth || !hasHeight {
			width, height = l.imageSize(node, width, hasWidth, height, hasHeight)
		}
		return measure.NewBox(width, height)
	}
	if hasWidth && hasHeight {
		return measure.NewBox(width, height)
	}
	return measure.NewText(textContent(node), l.metrics)
}

// imageSize completes the dimensions with the intrinsic size of the
// image, keeping its ratio when one dimension is given.
func (l loader) imageSize(node *html.Node, width utils.Fl, hasWidth bool, height utils.Fl, hasHeight bool) (utils.Fl, utils.Fl) {
	src := getAttr(node, "src")
	if src == "" {
		logger.WarningLogger.Printf("image %s without dimensions", label(node))
		return width, height
	}
	size, err := l.images.Get(src)
	if err != nil {
		logger.WarningLogger.Printf("image %s without dimensions: %s", label(node), err)
		return width, height
	}
	ratio := size.Ratio()
	switch {
	case hasWidth && ratio != 0:
		return width, width / ratio
	case hasHeight:
		return height * ratio, height
	case hasWidth: // empty image
		return width, 0
	default:
		return size.Width, size.Height
	}
}

func attrLength(node *html.Node, name string) (utils.Fl, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(getAttr(node, name)), 32)
	if err != nil || value < 0 {
		return 0, false
	}
	return utils.Fl(value), true
}

var newlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// collapseNewlines replaces source line breaks by spaces,
// since only <br> and blocks break lines.
func collapseNewlines(s string) string { return newlines.Replace(s) }

// textContent concatenates the text of [node] and its descendants,
// starting a new line for <br> and block elements.
func textContent(node *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(collapseNewlines(n.Data))
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Br:
				sb.WriteByte('\n')
				return
			case atom.Script, atom.Style:
				return
			case atom.P, atom.Div, atom.Li:
				if sb.Len() != 0 {
					sb.WriteByte('\n')
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return sb.String()
}
