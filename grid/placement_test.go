package grid

import (
	"errors"
	"testing"

	tu "github.com/benoitkugler/gridlayout/utils/testutils"
)

func TestLineResolve(t *testing.T) {
	for _, test := range []struct {
		line        Line
		start, span int
	}{
		{Line{}, -1, 1},
		{Line{Span: 3}, -1, 3},
		{Line{Start: 2}, 1, 1},
		{Line{Start: 2, Span: 2}, 1, 2},
		{Line{Start: 2, End: 5}, 1, 3},
		{Line{Start: 3, End: 3}, 2, 1},
		{Line{Start: 5, End: 2}, 1, 3},
		{Line{End: 4}, 2, 1},
		{Line{End: 4, Span: 2}, 1, 2},
		{Line{End: 2, Span: 4}, 0, 1},
	} {
		start, span := test.line.resolve()
		if start != test.start || span != test.span {
			t.Fatalf("%v: expected (%d, %d), got (%d, %d)", test.line, test.start, test.span, start, span)
		}
	}
}

func TestLineNegative(t *testing.T) {
	logs := tu.CaptureLogs()
	start, span := Line{Start: -1}.resolve()
	tu.AssertEqual(t, [2]int{start, span}, [2]int{-1, 1})
	logs.CheckLogs(t, "negative grid lines")
}

func TestLineOutOfRange(t *testing.T) {
	logs := tu.CaptureLogs()
	for _, test := range []struct {
		line        Line
		start, span int
	}{
		{Line{Start: 1e8}, MaxLine - 1, 1},
		{Line{Start: 1, End: 1e8}, 0, MaxLine - 1},
		{Line{Span: 1e8}, -1, MaxLine},
		{Line{End: 1e8, Span: 2}, MaxLine - 3, 2},
	} {
		start, span := test.line.resolve()
		if start != test.start || span != test.span {
			t.Fatalf("%v: expected (%d, %d), got (%d, %d)", test.line, test.start, test.span, start, span)
		}
	}
	logs.CheckLogs(t, "grid line out of range", "grid line out of range", "grid line out of range", "grid line out of range")

	logs = tu.CaptureLogs()
	m := NewMatrix(1, 1, FlowRow)
	cell := NewCell(Item{Placement: Placement{Row: Line{Start: 1e8}, Column: Line{Start: 1}}})
	if err := m.AddCell(cell); err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, m.Rows(), MaxLine)
	tu.AssertEqual(t, m.Columns(), 1)
	tu.AssertEqual(t, position(cell), [4]int{MaxLine - 1, MaxLine, 0, 1})
	logs.CheckLogs(t, "clamped to 10000")
}

func TestAutoPlacementGrows(t *testing.T) {
	items := make([]Item, 5)
	m, cells := buildMatrix(t, 1, 1, FlowRow, items...)
	if m.Rows()*m.Columns() < 5 {
		t.Fatalf("matrix too small: %dx%d", m.Rows(), m.Columns())
	}
	tu.AssertEqual(t, len(m.UniqueCells(RowOrder)), 5)
	for i, cell := range cells {
		tu.AssertEqual(t, position(cell), [4]int{i, i + 1, 0, 1})
	}
}

func TestFixedCellGrowsMatrix(t *testing.T) {
	m := NewMatrix(1, 1, FlowRow)
	cell := NewCell(Item{Placement: Placement{Row: Line{Start: 3, End: 4}, Column: Line{Start: 3, End: 4}}})
	if err := m.AddCell(cell); err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, m.Rows(), 3)
	tu.AssertEqual(t, m.Columns(), 3)
	tu.AssertEqual(t, position(cell), [4]int{2, 3, 2, 3})
	tu.AssertEqual(t, m.At(2, 2), cell)
}

func TestInvalidPlacement(t *testing.T) {
	m := NewMatrix(2, 2, FlowRow)
	if err := m.AddCell(NewCell(Item{Placement: at(0, 0)})); err != nil {
		t.Fatal(err)
	}
	err := m.AddCell(NewCell(Item{Placement: Placement{Row: Line{Start: 1}, Column: Line{Start: 1, Span: 2}}}))
	if !errors.Is(err, ErrInvalidPlacement) {
		t.Fatalf("expected an invalid placement, got %v", err)
	}

	_, err = ForItems([]Item{{Placement: at(1, 1)}, {Placement: at(1, 1)}}).Rows(1).Columns(1).Flow(FlowRow).Build()
	if !errors.Is(err, ErrInvalidPlacement) {
		t.Fatalf("expected an invalid placement, got %v", err)
	}
}

func TestRowFlow(t *testing.T) {
	m, cells := buildMatrix(t, 1, 3, FlowRow, Item{}, Item{}, Item{}, Item{})
	tu.AssertEqual(t, m.Columns(), 3)
	tu.AssertEqual(t, m.Rows(), 2)
	tu.AssertEqual(t, position(cells[2]), [4]int{0, 1, 2, 3})
	tu.AssertEqual(t, position(cells[3]), [4]int{1, 2, 0, 1})
}

func TestColumnFlow(t *testing.T) {
	m, cells := buildMatrix(t, 2, 1, FlowColumn, Item{}, Item{}, Item{})
	tu.AssertEqual(t, m.Rows(), 2)
	tu.AssertEqual(t, m.Columns(), 2)
	tu.AssertEqual(t, position(cells[0]), [4]int{0, 1, 0, 1})
	tu.AssertEqual(t, position(cells[1]), [4]int{1, 2, 0, 1})
	tu.AssertEqual(t, position(cells[2]), [4]int{0, 1, 1, 2})
}

func TestSparseAndDense(t *testing.T) {
	items := []Item{
		{Placement: spanning(1, 2)},
		{Placement: spanning(1, 2)},
		{},
	}
	// a a .
	// b b c
	_, cells := buildMatrix(t, 1, 3, FlowRow, items...)
	tu.AssertEqual(t, position(cells[1]), [4]int{1, 2, 0, 2})
	tu.AssertEqual(t, position(cells[2]), [4]int{1, 2, 2, 3})

	// a a c
	// b b .
	_, cells = buildMatrix(t, 1, 3, FlowRowDense, items...)
	tu.AssertEqual(t, position(cells[1]), [4]int{1, 2, 0, 2})
	tu.AssertEqual(t, position(cells[2]), [4]int{0, 1, 2, 3})
}

func TestFixedRowGrowsColumns(t *testing.T) {
	m, cells := buildMatrix(t, 1, 2, FlowRow,
		Item{Placement: Placement{Row: Line{Start: 1}}},
		Item{Placement: Placement{Row: Line{Start: 1}}},
		Item{Placement: Placement{Row: Line{Start: 1}, Column: Line{Span: 2}}},
	)
	tu.AssertEqual(t, m.Rows(), 1)
	tu.AssertEqual(t, m.Columns(), 4)
	tu.AssertEqual(t, position(cells[2]), [4]int{0, 1, 2, 4})
}

func TestPlacementPriority(t *testing.T) {
	free := Item{}
	rowFixed := Item{Placement: Placement{Row: Line{Start: 1}}}
	columnFixed := Item{Placement: Placement{Column: Line{Start: 1}}}
	fixed := Item{Placement: at(0, 0)}

	builder := ForItems([]Item{free, rowFixed, columnFixed, fixed}).Flow(FlowRow)
	var got []int
	for _, cell := range builder.Cells() {
		got = append(got, placementPriority(cell, FlowRow))
	}
	tu.AssertEqual(t, got, []int{2, 1, 0, 0})
	// stable for equal priorities
	tu.AssertEqual(t, builder.Cells()[2].ColumnStart, -1)
	tu.AssertEqual(t, builder.Cells()[3].ColumnStart, 0)

	builder = ForItems([]Item{free, rowFixed, columnFixed, fixed}).Flow(FlowColumnDense)
	tu.AssertEqual(t, builder.Cells()[1].ColumnStart, 0)
	tu.AssertEqual(t, builder.Cells()[1].RowStart, -1)
}
