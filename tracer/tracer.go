// Package tracer provides functions to dump a resolved grid,
// which may be used in debug mode.
package tracer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/benoitkugler/gridlayout/grid"
	"github.com/benoitkugler/gridlayout/utils"
)

type Tracer struct {
	out io.Writer
}

func NewTracerWriter(out io.Writer) Tracer { return Tracer{out: out} }

func FormatFl(v utils.Fl) string {
	return strconv.FormatFloat(float64(utils.RoundPrec(v, 2)), 'g', -1, 32)
}

func formatFls(vs []utils.Fl) string {
	chunks := make([]string, len(vs))
	for i, v := range vs {
		chunks[i] = FormatFl(v)
	}
	return strings.Join(chunks, " ")
}

// DumpGrid prints the tracks, the cells (in input order) and the
// occupancy of the matrix. [labels] is optional.
func (t Tracer) DumpGrid(res *grid.Result, labels []string, context string) {
	fmt.Fprintln(t.out, context)
	fmt.Fprintf(t.out, "columns: %s\n", formatFls(res.Columns))
	fmt.Fprintf(t.out, "rows: %s\n", formatFls(res.Rows))
	for i, cell := range res.Cells {
		label := fmt.Sprintf("#%d", i)
		if i < len(labels) {
			label += " " + labels[i]
		}
		fits := ""
		if !cell.FitsArea {
			fits = " (overflow)"
		}
		fmt.Fprintf(t.out, " %s: %s %s %s %s %s%s\n", label, cell,
			FormatFl(cell.Area.X), FormatFl(cell.Area.Y),
			FormatFl(cell.Area.Width), FormatFl(cell.Area.Height), fits)
	}
	NewDrawer(t.out, res.Cells).Draw(res.Matrix)
	fmt.Fprintln(t.out)
}
