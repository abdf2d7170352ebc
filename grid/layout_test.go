package grid

import (
	"errors"
	"testing"

	tu "github.com/benoitkugler/gridlayout/utils/testutils"
)

func TestLayout(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	a := box{min: 10, max: 20, height: 5}
	b := box{min: 20, max: 40, height: 30}
	c := box{height: 12}
	res, err := Layout([]Item{{Content: a}, {Content: b}, {Content: c}}, Options{
		TemplateColumns: []Sizing{Length(50), Auto(), Fr(1)},
		ColumnGap:       10,
		Width:           200,
		Height:          -1,
	})
	if err != nil {
		t.Fatal(err)
	}
	tu.AssertApprox(t, res.Columns, []Fl{50, 40, 90})
	tu.AssertApprox(t, res.ColumnPositions(), []Fl{0, 60, 110})
	tu.AssertApprox(t, res.Width(), Fl(200))
	tu.AssertApprox(t, res.Rows, []Fl{30})
	tu.AssertApprox(t, res.Cells[2].Area, Rect{X: 110, Y: 0, Width: 90, Height: 30})
	tu.AssertApprox(t, res.Height(), Fl(30))
}

func TestLayoutImplicitRows(t *testing.T) {
	res, err := Layout(make([]Item, 4), Options{
		TemplateRows: []Sizing{Length(10)},
		AutoRows:     []Sizing{Length(20), Length(30)},
		RowGap:       5,
		Width:        -1,
		Height:       -1,
	})
	if err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, len(res.Columns), 1)
	tu.AssertApprox(t, res.Rows, []Fl{10, 20, 30, 20})
	tu.AssertApprox(t, res.RowPositions(), []Fl{0, 15, 40, 75})
	tu.AssertApprox(t, res.Height(), Fl(95))
	tu.AssertApprox(t, res.Cells[3].Area.Y, Fl(75))
}

func TestLayoutSpanningArea(t *testing.T) {
	res, err := Layout([]Item{{Placement: Placement{Column: Line{Span: 2}}}}, Options{
		TemplateColumns: []Sizing{Length(30), Length(40)},
		ColumnGap:       10,
		Width:           -1,
		Height:          -1,
	})
	if err != nil {
		t.Fatal(err)
	}
	tu.AssertApprox(t, res.Cells[0].Area.Width, Fl(80))
	tu.AssertApprox(t, res.Width(), Fl(80))
}

func TestLayoutMinHeight(t *testing.T) {
	res, err := Layout([]Item{{Content: box{height: 20}}}, Options{Width: 100, Height: 500})
	if err != nil {
		t.Fatal(err)
	}
	tu.AssertApprox(t, res.Rows, []Fl{20})
	tu.AssertApprox(t, res.Height(), Fl(500))
}

func TestLayoutInputOrder(t *testing.T) {
	free := Item{Content: box{height: 1}}
	fixed := Item{Content: box{height: 2}, Placement: at(0, 0)}
	res, err := Layout([]Item{free, fixed}, Options{
		TemplateColumns: []Sizing{Length(10), Length(10)},
		Width:           -1,
		Height:          -1,
	})
	if err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, position(res.Cells[0]), [4]int{0, 1, 1, 2})
	tu.AssertEqual(t, position(res.Cells[1]), [4]int{0, 1, 0, 1})
}

func TestLayoutInvalidPlacement(t *testing.T) {
	_, err := Layout([]Item{{Placement: at(0, 0)}, {Placement: at(0, 0)}}, Options{Width: -1, Height: -1})
	if !errors.Is(err, ErrInvalidPlacement) {
		t.Fatalf("expected an invalid placement, got %v", err)
	}
}

func TestLayoutTooLarge(t *testing.T) {
	logs := tu.CaptureLogs()
	items := []Item{
		{Placement: Placement{Row: Line{Start: 1e8}, Column: Line{Start: 1}}},
		{Placement: Placement{Row: Line{Start: 1}, Column: Line{Start: 1e8}}},
	}
	_, err := Layout(items, Options{Width: -1, Height: -1})
	if !errors.Is(err, ErrGridTooLarge) {
		t.Fatalf("expected a too large grid, got %v", err)
	}
	logs.CheckLogs(t, "clamped to 10000", "clamped to 10000")

	// a single long axis is fine
	res, err := Layout(items[:1], Options{Width: -1, Height: -1})
	if err != nil {
		t.Fatal(err)
	}
	tu.AssertEqual(t, len(res.Rows), MaxLine)
}
