package grid

// Order selects an axis of the grid.
type Order uint8

const (
	RowOrder Order = iota
	ColumnOrder
)

func (o Order) String() string {
	if o == ColumnOrder {
		return "columns"
	}
	return "rows"
}

// Flow is the auto-placement algorithm.
type Flow uint8

const (
	FlowRow Flow = iota
	FlowRowDense
	FlowColumn
	FlowColumnDense
)

func (f Flow) isColumn() bool { return f == FlowColumn || f == FlowColumnDense }

func (f Flow) isDense() bool { return f == FlowRowDense || f == FlowColumnDense }

func (f Flow) String() string {
	switch f {
	case FlowRowDense:
		return "row dense"
	case FlowColumn:
		return "column"
	case FlowColumnDense:
		return "column dense"
	default:
		return "row"
	}
}

// Matrix is a grid of cells. A cell spanning several tracks
// is stored in each slot it occupies: a cell with width = 2 and height = 3
// is referenced 6 times.
// A Matrix only grows.
type Matrix struct {
	rows      [][]*Cell
	placement *placementHelper
	minHeight Fl
}

// NewMatrix returns an empty grid with (at least) one slot.
func NewMatrix(rows, columns int, flow Flow) *Matrix {
	m := &Matrix{rows: [][]*Cell{make([]*Cell, 1)}}
	m.placement = newPlacementHelper(m, flow)
	m.EnsureSize(rows, columns)
	return m
}

// Rows returns the current number of rows.
func (m *Matrix) Rows() int { return len(m.rows) }

// Columns returns the current number of columns.
func (m *Matrix) Columns() int { return len(m.rows[0]) }

// At returns the cell at the given slot, or nil.
func (m *Matrix) At(row, column int) *Cell { return m.rows[row][column] }

// SetMinHeight sets the value returned by Height for an empty grid.
func (m *Matrix) SetMinHeight(minHeight Fl) { m.minHeight = minHeight }

// Height returns the bottom of the last non empty row,
// or the minimum height if it is bigger.
func (m *Matrix) Height() Fl {
	for i := len(m.rows) - 1; i >= 0; i-- {
		for _, cell := range m.rows[i] {
			if cell != nil {
				if b := cell.Area.Bottom(); b > m.minHeight {
					return b
				}
				return m.minHeight
			}
		}
	}
	return m.minHeight
}

// EnsureSize grows the grid, if needed, so that it has at least
// [rows] rows and [columns] columns. Existing slots are preserved.
func (m *Matrix) EnsureSize(rows, columns int) {
	currentRows, currentColumns := m.Rows(), m.Columns()
	if rows <= currentRows && columns <= currentColumns {
		return
	}
	width := currentColumns
	if columns > width {
		width = columns
	}
	if width > currentColumns {
		for i, row := range m.rows {
			resized := make([]*Cell, width)
			copy(resized, row)
			m.rows[i] = resized
		}
	}
	for i := currentRows; i < rows; i++ {
		m.rows = append(m.rows, make([]*Cell, width))
	}
}

// Place stores [cell] in every slot of its area, which must be
// inside the grid.
func (m *Matrix) Place(cell *Cell) {
	for i := cell.RowStart; i < cell.RowEnd; i++ {
		for j := cell.ColumnStart; j < cell.ColumnEnd; j++ {
			m.rows[i][j] = cell
		}
	}
}

// AddCell finds a free area for [cell], growing the grid if needed,
// and places it.
func (m *Matrix) AddCell(cell *Cell) error {
	if err := m.placement.fit(cell); err != nil {
		return err
	}
	m.Place(cell)
	return nil
}

// UniqueCellsInTrack returns the cells in the row (or column) [index],
// each cell being reported once.
func (m *Matrix) UniqueCellsInTrack(order Order, index int) []*Cell {
	var out uniqueCells
	if order == ColumnOrder {
		for _, row := range m.rows {
			out.add(row[index])
		}
	} else {
		for _, cell := range m.rows[index] {
			out.add(cell)
		}
	}
	return out.list
}

// UniqueCells returns all the cells of the grid, each cell being reported once.
// With RowOrder, cells are listed from left to right, top to bottom;
// with ColumnOrder, from top to bottom, left to right.
func (m *Matrix) UniqueCells(order Order) []*Cell {
	var out uniqueCells
	if order == ColumnOrder {
		for j := 0; j < m.Columns(); j++ {
			for i := range m.rows {
				out.add(m.rows[i][j])
			}
		}
	} else {
		for _, row := range m.rows {
			for _, cell := range row {
				out.add(cell)
			}
		}
	}
	return out.list
}

// uniqueCells is an insertion ordered set
type uniqueCells struct {
	list []*Cell
	seen map[*Cell]bool
}

func (u *uniqueCells) add(cell *Cell) {
	if cell == nil || u.seen[cell] {
		return
	}
	if u.seen == nil {
		u.seen = make(map[*Cell]bool)
	}
	u.seen[cell] = true
	u.list = append(u.list, cell)
}
