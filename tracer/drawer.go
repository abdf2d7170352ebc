package tracer

import (
	"fmt"
	"io"
	"strings"

	"github.com/benoitkugler/gridlayout/grid"
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Drawer prints the occupancy of a matrix, one letter per cell :
//
//	a a .
//	b b c
type Drawer struct {
	out   io.Writer
	names map[*grid.Cell]byte
}

// NewDrawer names the cells in order. Cells after the 52nd are
// drawn with '*'.
func NewDrawer(out io.Writer, cells []*grid.Cell) *Drawer {
	dr := &Drawer{out: out, names: make(map[*grid.Cell]byte, len(cells))}
	for i, cell := range cells {
		if i < len(letters) {
			dr.names[cell] = letters[i]
		} else {
			dr.names[cell] = '*'
		}
	}
	return dr
}

func (dr *Drawer) name(cell *grid.Cell) byte {
	if cell == nil {
		return '.'
	}
	if name, ok := dr.names[cell]; ok {
		return name
	}
	return '?'
}

// Draw writes one line per row.
func (dr *Drawer) Draw(m *grid.Matrix) {
	for i := 0; i < m.Rows(); i++ {
		chunks := make([]string, m.Columns())
		for j := range chunks {
			chunks[j] = string(dr.name(m.At(i, j)))
		}
		fmt.Fprintln(dr.out, strings.Join(chunks, " "))
	}
}
