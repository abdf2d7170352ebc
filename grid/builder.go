package grid

import (
	"errors"
	"fmt"
	"sort"
)

// ErrGridTooLarge is returned when the explicit placements
// require more than [maxSlots] slots.
var ErrGridTooLarge = errors.New("grid too large")

const maxSlots = 1 << 22

// Builder computes the initial size of a Matrix and
// the order used to place its cells.
type Builder struct {
	cells             []*Cell
	rowCount, columns int
	flow              Flow
}

// ForItems returns a builder for the given items.
func ForItems(items []Item) *Builder {
	b := &Builder{cells: make([]*Cell, len(items)), rowCount: 1, columns: 1}
	for i, item := range items {
		b.cells[i] = NewCell(item)
	}
	return b
}

// Cells returns the cells, in placement order once Flow has been called.
func (b *Builder) Cells() []*Cell { return b.cells }

// Columns sets the minimum number of columns. The actual number is increased
// if some cells need more.
func (b *Builder) Columns(minColumnCount int) *Builder {
	b.columns = max(minColumnCount, initialCount(b.cells, ColumnOrder))
	return b
}

// Rows sets the minimum number of rows. The actual number is increased
// if some cells need more.
func (b *Builder) Rows(minRowCount int) *Builder {
	b.rowCount = max(minRowCount, initialCount(b.cells, RowOrder))
	return b
}

// Flow sets the auto-placement algorithm, and sorts the cells accordingly :
// cells with both a fixed row and column go first, then cells
// fixed on the major axis of the flow, then the others.
func (b *Builder) Flow(flow Flow) *Builder {
	b.flow = flow
	sort.SliceStable(b.cells, func(i, j int) bool {
		return placementPriority(b.cells[i], flow) > placementPriority(b.cells[j], flow)
	})
	return b
}

// Build places all the cells.
func (b *Builder) Build() (*Matrix, error) {
	if b.rowCount*b.columns > maxSlots {
		return nil, fmt.Errorf("%w: %d rows and %d columns", ErrGridTooLarge, b.rowCount, b.columns)
	}
	m := NewMatrix(b.rowCount, b.columns, b.flow)
	for _, cell := range b.cells {
		if err := m.AddCell(cell); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func initialCount(cells []*Cell, order Order) int {
	count := 1
	for _, cell := range cells {
		count = max(count, cell.span(order), cell.end(order))
	}
	return count
}

func placementPriority(cell *Cell, flow Flow) int {
	if cell.RowStart != -1 && cell.ColumnStart != -1 {
		return 2
	}
	if flow.isColumn() {
		if cell.ColumnStart != -1 {
			return 1
		}
	} else if cell.RowStart != -1 {
		return 1
	}
	return 0
}
