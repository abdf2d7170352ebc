package grid

import (
	"fmt"

	"github.com/benoitkugler/gridlayout/logger"
	"github.com/benoitkugler/gridlayout/utils"
)

type Fl = utils.Fl

// Content is implemented by the items laid out on a grid.
// The layout only queries their size contributions.
type Content interface {
	// MinMaxWidth returns the min-content and max-content widths.
	MinMaxWidth() (min, max Fl)
	// Height returns the height occupied by the content when laid out
	// with the given width, and an unbounded height.
	// [ok] is false if the content can't be laid out in this width.
	Height(width Fl) (height Fl, ok bool)
}

// Rect is a layout area. Y grows downward, from the top of the grid.
type Rect struct {
	X, Y, Width, Height Fl
}

// Bottom returns Y + Height.
func (r Rect) Bottom() Fl { return r.Y + r.Height }

// Right returns X + Width.
func (r Rect) Right() Fl { return r.X + r.Width }

// MaxLine bounds the line numbers and spans of a Line.
const MaxLine = 10000

// Line is a placement along one axis, using CSS grid lines:
// line numbers start at 1, and 0 means auto.
type Line struct {
	Start, End int
	Span       int // 0 is the same as 1
}

// Placement stores the (optional) position of an item.
type Placement struct {
	Row, Column Line
}

// Item is one element to place on a grid.
type Item struct {
	Content   Content
	Placement Placement
}

// clamp bounds the line numbers and span to [MaxLine].
func (l Line) clamp() Line {
	if l.Start > MaxLine || l.End > MaxLine || l.Span > MaxLine {
		logger.WarningLogger.Printf("grid line out of range (%d / %d / span %d), clamped to %d", l.Start, l.End, l.Span, MaxLine)
		l.Start, l.End, l.Span = min(l.Start, MaxLine), min(l.End, MaxLine), min(l.Span, MaxLine)
	}
	return l
}

// resolve returns the 0-based start (-1 for auto) and the span.
func (l Line) resolve() (start, span int) {
	l = l.clamp()
	span = l.Span
	if span <= 0 {
		span = 1
	}
	if l.Start < 0 || l.End < 0 {
		logger.WarningLogger.Printf("negative grid lines are not supported (%d / %d), using auto placement", l.Start, l.End)
		return -1, span
	}
	switch {
	case l.Start != 0 && l.End != 0:
		switch {
		case l.Start < l.End:
			return l.Start - 1, l.End - l.Start
		case l.Start == l.End:
			return l.Start - 1, 1
		default:
			return l.End - 1, l.Start - l.End
		}
	case l.Start != 0:
		return l.Start - 1, span
	case l.End != 0:
		start := l.End - span
		if start < 1 {
			start = 1
		}
		if start == l.End {
			return start - 1, 1
		}
		return start - 1, l.End - start
	default:
		return -1, span
	}
}

// Cell is an item placed on a Matrix. A cell spanning several tracks
// is referenced by each slot it occupies.
type Cell struct {
	Content Content

	// End-exclusive grid coordinates, -1 for a start not resolved yet.
	// End is -1 as long as the corresponding start is.
	RowStart, RowEnd       int
	ColumnStart, ColumnEnd int

	// Area is the layout area, set once the tracks are sized.
	Area Rect

	// FitsArea is false if the content could not be laid out
	// in its area.
	FitsArea bool

	gridWidth, gridHeight int
}

// NewCell resolves the placement of [item].
func NewCell(item Item) *Cell {
	rowStart, height := item.Placement.Row.resolve()
	columnStart, width := item.Placement.Column.resolve()
	cell := &Cell{
		Content:     item.Content,
		RowStart:    rowStart,
		RowEnd:      -1,
		ColumnStart: columnStart,
		ColumnEnd:   -1,
		FitsArea:    true,
		gridWidth:   width,
		gridHeight:  height,
	}
	if rowStart != -1 {
		cell.RowEnd = rowStart + height
	}
	if columnStart != -1 {
		cell.ColumnEnd = columnStart + width
	}
	return cell
}

// GridWidth returns the number of columns spanned.
func (c *Cell) GridWidth() int { return c.gridWidth }

// GridHeight returns the number of rows spanned.
func (c *Cell) GridHeight() int { return c.gridHeight }

// setPos commits the position of the top-left slot.
func (c *Cell) setPos(row, column int) {
	c.RowStart, c.RowEnd = row, row+c.gridHeight
	c.ColumnStart, c.ColumnEnd = column, column+c.gridWidth
}

func (c *Cell) start(order Order) int {
	if order == ColumnOrder {
		return c.ColumnStart
	}
	return c.RowStart
}

func (c *Cell) end(order Order) int {
	if order == ColumnOrder {
		return c.ColumnEnd
	}
	return c.RowEnd
}

// span returns the number of tracks spanned along [order].
func (c *Cell) span(order Order) int {
	if order == ColumnOrder {
		return c.gridWidth
	}
	return c.gridHeight
}

func (c *Cell) String() string {
	return fmt.Sprintf("cell[rows %d-%d, columns %d-%d]", c.RowStart, c.RowEnd, c.ColumnStart, c.ColumnEnd)
}
