package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidPlacement is returned when a cell with both
// its row and column fixed overlaps an other cell.
var ErrInvalidPlacement = errors.New("invalid cell indexes")

// view is a cursor scanning the matrix for a free area
// of a given size.
type view struct {
	matrix *Matrix
	flow   Flow

	x, y           int // cursor : column and row
	w, h           int // size of the searched area
	startX, startY int
	fixedX, fixedY bool
	exhausted      bool

	// position of the last auto-placed cell, used by sparse flows
	autoX, autoY int
}

// reset prepares the view for a new cell.
// [rowStart] and [columnStart] are -1 when not fixed.
func (v *view) reset(rowStart, columnStart, w, h int) {
	v.w, v.h = w, h
	v.fixedX, v.fixedY = columnStart != -1, rowStart != -1
	v.startX, v.startY = 0, 0
	if v.fixedX {
		v.startX = columnStart
	}
	if v.fixedY {
		v.startY = rowStart
	}
	if !v.fixedX && !v.fixedY && !v.flow.isDense() {
		v.startX, v.startY = v.autoX, v.autoY
	}
	v.rewind()
}

// rewind moves the cursor back to the start position
func (v *view) rewind() {
	v.x, v.y = v.startX, v.startY
	v.exhausted = false
	v.wrap()
}

// wrap moves a free cursor to the next line when the current one is too short
func (v *view) wrap() {
	if v.fixedX || v.fixedY {
		return
	}
	if v.flow.isColumn() {
		if v.y+v.h > v.matrix.Rows() {
			v.y = 0
			v.x++
		}
	} else if v.x+v.w > v.matrix.Columns() {
		v.x = 0
		v.y++
	}
}

// isFixed returns true if the cell has no freedom of placement.
func (v *view) isFixed() bool { return v.fixedX && v.fixedY }

// hasNext returns true if the cursor is on a valid position.
func (v *view) hasNext() bool {
	return !v.exhausted && v.x+v.w <= v.matrix.Columns() && v.y+v.h <= v.matrix.Rows()
}

// next moves the cursor along the free axis.
func (v *view) next() {
	switch {
	case v.isFixed():
		v.exhausted = true
	case v.fixedY:
		v.x++
	case v.fixedX:
		v.y++
	case v.flow.isColumn():
		v.y++
	default:
		v.x++
	}
	v.wrap()
}

// fit returns true if the area at the cursor is empty.
// Slots outside of the matrix are considered empty.
func (v *view) fit(w, h int) bool {
	rows, columns := v.matrix.Rows(), v.matrix.Columns()
	for i := v.y; i < v.y+h && i < rows; i++ {
		for j := v.x; j < v.x+w && j < columns; j++ {
			if v.matrix.rows[i][j] != nil {
				return false
			}
		}
	}
	return true
}

// increaseDefaultAxis grows the matrix along the axis which is not fixed,
// and restarts the scan.
func (v *view) increaseDefaultAxis() {
	rows, columns := v.matrix.Rows(), v.matrix.Columns()
	switch {
	case v.fixedY:
		v.matrix.EnsureSize(rows, columns+1)
	case v.fixedX:
		v.matrix.EnsureSize(rows+1, columns)
	case v.flow.isColumn():
		v.matrix.EnsureSize(rows, columns+1)
	default:
		v.matrix.EnsureSize(rows+1, columns)
	}
	v.rewind()
}

// placementHelper places cells on a matrix, growing it if needed.
type placementHelper struct {
	view   view
	matrix *Matrix
}

func newPlacementHelper(matrix *Matrix, flow Flow) *placementHelper {
	return &placementHelper{view: view{matrix: matrix, flow: flow}, matrix: matrix}
}

// fit resolves the position of [cell]. The matrix is not modified
// except for its size.
func (p *placementHelper) fit(cell *Cell) error {
	p.matrix.EnsureSize(max(cell.RowEnd, cell.gridHeight), max(cell.ColumnEnd, cell.gridWidth))

	v := &p.view
	v.reset(cell.RowStart, cell.ColumnStart, cell.gridWidth, cell.gridHeight)
	// The number of iterations is bounded to be on the safe side:
	// growing max(width, height) times always gives enough room.
	attempts := max(cell.gridWidth, cell.gridHeight) + 1
	for i := 0; i < attempts; i++ {
		for v.hasNext() {
			if v.fit(cell.gridWidth, cell.gridHeight) {
				cell.setPos(v.y, v.x)
				if !v.fixedX && !v.fixedY {
					v.autoX, v.autoY = v.x, v.y
				}
				return nil
			}
			v.next()
		}
		if v.isFixed() {
			return fmt.Errorf("%w: %s overlaps an other cell", ErrInvalidPlacement, cell)
		}
		v.increaseDefaultAxis()
	}
	return fmt.Errorf("%w: no room found for a %dx%d cell", ErrInvalidPlacement, cell.gridWidth, cell.gridHeight)
}
