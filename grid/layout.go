package grid

import (
	"fmt"

	"github.com/benoitkugler/gridlayout/logger"
	"github.com/benoitkugler/gridlayout/utils"
)

// Options are the properties of a grid container.
type Options struct {
	// Sizing functions of the explicit grid.
	TemplateColumns, TemplateRows []Sizing
	// Sizing functions of the implicit tracks, repeated as needed.
	// An empty list is the same as [auto].
	AutoColumns, AutoRows []Sizing

	Flow Flow

	ColumnGap, RowGap Fl

	// Width and Height of the grid content box.
	// A negative value means the size is not known (depends on the content).
	Width, Height Fl
}

// Result is a grid whose tracks are sized.
type Result struct {
	Matrix *Matrix

	// Sizes of the tracks.
	Columns, Rows []Fl
	// Cells, in the order of the input items.
	Cells []*Cell

	ColumnGap, RowGap Fl
}

// Width returns the width occupied by the columns, gaps included.
func (r *Result) Width() Fl { return tracksExtent(r.Columns, r.ColumnGap) }

// Height returns the height of the grid, which is at least
// the height of the container when known.
func (r *Result) Height() Fl { return r.Matrix.Height() }

// ColumnPositions returns the X coordinate of each column.
func (r *Result) ColumnPositions() []Fl { return trackPositions(r.Columns, r.ColumnGap) }

// RowPositions returns the Y coordinate of each row.
func (r *Result) RowPositions() []Fl { return trackPositions(r.Rows, r.RowGap) }

func trackPositions(sizes []Fl, gap Fl) []Fl {
	out := make([]Fl, len(sizes))
	var pos Fl
	for i, size := range sizes {
		out[i] = pos
		pos += size + gap
	}
	return out
}

func tracksExtent(sizes []Fl, gap Fl) Fl {
	if len(sizes) == 0 {
		return 0
	}
	return utils.Sum(sizes) + Fl(len(sizes)-1)*gap
}

// sizingFunctions returns one sizing function per track,
// using [auto] for the implicit ones.
func sizingFunctions(template, auto []Sizing, count int) []Sizing {
	out := make([]Sizing, max(count, len(template)))
	for i := range out {
		switch {
		case i < len(template):
			out[i] = template[i]
		case len(auto) != 0:
			out[i] = auto[(i-len(template))%len(auto)]
		default:
			out[i] = Auto()
		}
	}
	return out
}

// Layout places [items] on a grid and resolves the size of
// its columns, then of its rows. The layout area of each cell is set.
func Layout(items []Item, opts Options) (*Result, error) {
	builder := ForItems(items)
	cells := append([]*Cell(nil), builder.Cells()...) // input order, before sorting
	matrix, err := builder.
		Columns(len(opts.TemplateColumns)).
		Rows(len(opts.TemplateRows)).
		Flow(opts.Flow).
		Build()
	if err != nil {
		return nil, fmt.Errorf("placing grid items: %w", err)
	}

	columnValues := sizingFunctions(opts.TemplateColumns, opts.AutoColumns, matrix.Columns())
	columns := NewTrackSizer(matrix, columnValues, opts.ColumnGap, opts.Width, ColumnOrder).SizeTracks()
	columnPositions := trackPositions(columns, opts.ColumnGap)
	for _, cell := range matrix.UniqueCells(RowOrder) {
		cell.Area.X = columnPositions[cell.ColumnStart]
		cell.Area.Width = tracksExtent(columns[cell.ColumnStart:cell.ColumnEnd], opts.ColumnGap)
	}

	rowValues := sizingFunctions(opts.TemplateRows, opts.AutoRows, matrix.Rows())
	rows := NewTrackSizer(matrix, rowValues, opts.RowGap, opts.Height, RowOrder).SizeTracks()
	rowPositions := trackPositions(rows, opts.RowGap)
	for _, cell := range matrix.UniqueCells(RowOrder) {
		cell.Area.Y = rowPositions[cell.RowStart]
		cell.Area.Height = tracksExtent(rows[cell.RowStart:cell.RowEnd], opts.RowGap)
	}

	if opts.Height > 0 {
		matrix.SetMinHeight(opts.Height)
	}

	logger.ProgressLogger.Printf("grid of %d items laid out on %d rows and %d columns", len(items), len(rows), len(columns))

	return &Result{
		Matrix:    matrix,
		Columns:   columns,
		Rows:      rows,
		Cells:     cells,
		ColumnGap: opts.ColumnGap,
		RowGap:    opts.RowGap,
	}, nil
}
