package grid

import (
	"testing"

	tu "github.com/benoitkugler/gridlayout/utils/testutils"
)

func sizeColumns(t *testing.T, values []Sizing, availableSpace Fl, items ...Item) []Fl {
	t.Helper()
	m, _ := buildMatrix(t, 1, len(values), FlowRow, items...)
	return NewTrackSizer(m, values, 0, availableSpace, ColumnOrder).SizeTracks()
}

func inColumn(column int, content Content) Item {
	return Item{Content: content, Placement: Placement{Column: Line{Start: column + 1}}}
}

func TestFixedTracksConservation(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)
	values := []Sizing{Length(10), Length(25.5), Length(40)}
	sizes := sizeColumns(t, values, 200, inColumn(1, box{min: 100, max: 300}))
	tu.AssertEqual(t, sizes, []Fl{10, 25.5, 40})

	sizes = sizeColumns(t, values, 75.5)
	tu.AssertEqual(t, sizes, []Fl{10, 25.5, 40})
}

func TestFlexProportionality(t *testing.T) {
	sizes := sizeColumns(t, []Sizing{Fr(1), Fr(2)}, 300)
	tu.AssertApprox(t, sizes, []Fl{100, 200})
}

func TestFlexWithGap(t *testing.T) {
	m, _ := buildMatrix(t, 1, 2, FlowRow)
	sizes := NewTrackSizer(m, []Sizing{Fr(1), Fr(1)}, 10, 110, ColumnOrder).SizeTracks()
	tu.AssertApprox(t, sizes, []Fl{50, 50})
}

func TestFixedAutoFlex(t *testing.T) {
	sizes := sizeColumns(t, []Sizing{Length(50), Auto(), Fr(1)}, 200, inColumn(1, box{min: 20, max: 40}))
	tu.AssertApprox(t, sizes, []Fl{50, 40, 110})
}

func TestPercentTracks(t *testing.T) {
	// auto tracks are not stretched
	sizes := sizeColumns(t, []Sizing{Percent(25), Auto()}, 200, inColumn(0, box{min: 10, max: 70}))
	tu.AssertApprox(t, sizes, []Fl{50, 0})

	// indefinite space : the percentage is treated as auto
	logs := tu.CaptureLogs()
	sizes = sizeColumns(t, []Sizing{Percent(25), Auto()}, -1, inColumn(0, box{min: 10, max: 70}))
	tu.AssertApprox(t, sizes, []Fl{70, 0})
	logs.CheckLogs(t, "percentage track 25% in an indefinite space")
}

func TestIntrinsicMinimums(t *testing.T) {
	values := []Sizing{MinContent(), MaxContent(), Auto()}
	items := []Item{
		inColumn(0, box{min: 10, max: 30}),
		inColumn(0, box{min: 15, max: 20}),
		inColumn(1, box{min: 10, max: 30}),
		inColumn(2, box{min: 10, max: 30}),
	}
	m, _ := buildMatrix(t, 1, 3, FlowRow, items...)
	s := NewTrackSizer(m, values, 0, -1, ColumnOrder)
	s.initializeTrackSizes()
	s.resolveIntrinsicTrackSizes()
	tu.AssertEqual(t, s.tracks[0].baseSize, Fl(15))
	tu.AssertEqual(t, s.tracks[0].growthLimit, Fl(15))
	tu.AssertEqual(t, s.tracks[1].baseSize, Fl(30))
	tu.AssertEqual(t, s.tracks[1].growthLimit, Fl(30))
	tu.AssertEqual(t, s.tracks[2].baseSize, Fl(10))
	tu.AssertEqual(t, s.tracks[2].growthLimit, Fl(30))
}

func TestGrowthLimitClamp(t *testing.T) {
	values := []Sizing{Auto(), MinContent(), MaxContent(), Fr(1), Length(5), Auto()}
	items := []Item{
		inColumn(0, box{min: 50, max: 20}), // inconsistent measure
		inColumn(1, box{min: 12, max: 40}),
		inColumn(2, box{min: 12, max: 40}),
		inColumn(3, box{min: 12, max: 40}),
		{Content: box{min: 200, max: 300}, Placement: Placement{Column: Line{Start: 5, Span: 2}}},
	}
	m, _ := buildMatrix(t, 1, len(values), FlowRow, items...)
	s := NewTrackSizer(m, values, 0, 100, ColumnOrder)
	s.initializeTrackSizes()
	s.resolveIntrinsicTrackSizes()
	for i, track := range s.tracks {
		if track.growthLimit < track.baseSize {
			t.Fatalf("track %d: growth limit %g < base size %g", i, track.growthLimit, track.baseSize)
		}
	}
	tu.AssertEqual(t, s.tracks[0].growthLimit, Fl(50))
	tu.AssertEqual(t, s.tracks[5].baseSize, Fl(195))
}

func TestSpanningItems(t *testing.T) {
	span := Item{Content: box{min: 100, max: 100}, Placement: Placement{Column: Line{Start: 1, Span: 2}}}

	sizes := sizeColumns(t, []Sizing{Auto(), Auto()}, -1, span)
	tu.AssertApprox(t, sizes, []Fl{50, 50})

	sizes = sizeColumns(t, []Sizing{Length(30), Auto()}, -1, span)
	tu.AssertApprox(t, sizes, []Fl{30, 70})

	// the growth limit of the first track is reached
	sizes = sizeColumns(t, []Sizing{MinContent(), Auto()}, -1, span, inColumn(0, box{min: 20, max: 20}))
	tu.AssertApprox(t, sizes, []Fl{20, 80})

	// spans are processed by increasing size
	span3 := Item{Content: box{min: 90}, Placement: Placement{Column: Line{Start: 1, Span: 3}}}
	sizes = sizeColumns(t, []Sizing{Auto(), Auto(), Auto()}, -1, span3, span)
	tu.AssertApprox(t, sizes, []Fl{50, 50, 0})
}

func TestSpanningFlexibleTracks(t *testing.T) {
	span := Item{Content: box{min: 80, max: 80}, Placement: Placement{Column: Line{Start: 1, Span: 2}}}
	// the base sizes are shared evenly, then expanded to 1fr = 40
	sizes := sizeColumns(t, []Sizing{Fr(1), Fr(3)}, -1, span)
	tu.AssertApprox(t, sizes, []Fl{40, 120})

	// only the flexible track grows, and the fixed track is not deduced
	span = Item{Content: box{min: 100, max: 100}, Placement: Placement{Column: Line{Start: 1, Span: 2}}}
	sizes = sizeColumns(t, []Sizing{Length(40), Fr(1)}, -1, span)
	tu.AssertApprox(t, sizes, []Fl{40, 100})

	// a flex sum below the track count gives space/sum to each track
	span = Item{Content: box{min: 10, max: 10}, Placement: Placement{Column: Line{Start: 1, Span: 2}}}
	sizes = sizeColumns(t, []Sizing{Fr(0.5), Fr(0.5)}, -1, span)
	tu.AssertApprox(t, sizes, []Fl{10, 10})
}

func TestIndefiniteFlexibleTracks(t *testing.T) {
	sizes := sizeColumns(t, []Sizing{Fr(1), Fr(2)}, -1, inColumn(0, box{min: 10, max: 50}))
	tu.AssertApprox(t, sizes, []Fl{50, 100})

	sizes = sizeColumns(t, []Sizing{Fr(2), Fr(1)}, -1, inColumn(0, box{min: 30, max: 30}))
	tu.AssertApprox(t, sizes, []Fl{30, 15})
}

func TestMaximizeTracks(t *testing.T) {
	sizes := sizeColumns(t, []Sizing{Auto(), Auto()}, 100,
		inColumn(0, box{min: 10, max: 40}),
		inColumn(1, box{min: 10, max: 100}),
	)
	tu.AssertApprox(t, sizes, []Fl{40, 60})

	sizes = sizeColumns(t, []Sizing{Auto(), Auto()}, 500,
		inColumn(0, box{min: 10, max: 40}),
		inColumn(1, box{min: 10, max: 100}),
	)
	tu.AssertApprox(t, sizes, []Fl{40, 100})
}

func TestFlexFrozenTrack(t *testing.T) {
	// the hypothetical fr size (100) is too small for the first track
	sizes := sizeColumns(t, []Sizing{Fr(1), Fr(1)}, 200, inColumn(0, box{min: 150, max: 150}))
	tu.AssertApprox(t, sizes, []Fl{150, 50})
}

func TestNoFreeSpace(t *testing.T) {
	sizes := sizeColumns(t, []Sizing{Length(100), Fr(1)}, 80)
	tu.AssertApprox(t, sizes, []Fl{100, 0})
}

func TestDegenerateSizer(t *testing.T) {
	m := NewMatrix(1, 1, FlowRow)
	tu.AssertEqual(t, NewTrackSizer(m, nil, 10, -1000, ColumnOrder).SizeTracks(), []Fl{0})
	tu.AssertEqual(t, NewTrackSizer(m, nil, 10, 0, RowOrder).SizeTracks(), []Fl{0})
	tu.AssertEqual(t, NewTrackSizer(m, []Sizing{Fr(0)}, 0, 50, RowOrder).SizeTracks(), []Fl{0})
}

func TestMoreSizingsThanTracks(t *testing.T) {
	m, _ := buildMatrix(t, 1, 1, FlowRow, Item{Content: box{min: 10, max: 30}})
	values := []Sizing{Auto(), Auto(), MinContent(), MaxContent(), Fr(1)}
	sizes := NewTrackSizer(m, values, 0, -1, ColumnOrder).SizeTracks()
	tu.AssertApprox(t, sizes, []Fl{30, 0, 0, 0, 0})

	sizes = NewTrackSizer(NewMatrix(1, 1, FlowRow), []Sizing{Auto(), Auto()}, 0, -1, ColumnOrder).SizeTracks()
	tu.AssertEqual(t, sizes, []Fl{0, 0})
}

func TestRowContributions(t *testing.T) {
	m, cells := buildMatrix(t, 1, 2, FlowRow,
		Item{Content: surface(1000)},
		Item{Content: box{height: 7}},
	)
	cells[0].Area.Width = 50
	cells[1].Area.Width = 10
	sizes := NewTrackSizer(m, []Sizing{Auto()}, 0, -1, RowOrder).SizeTracks()
	tu.AssertApprox(t, sizes, []Fl{20})
}

func TestContentOverflow(t *testing.T) {
	logs := tu.CaptureLogs()
	m, cells := buildMatrix(t, 1, 2, FlowRow,
		Item{Content: box{height: 30, overflow: true}},
		Item{Content: box{height: 7}},
	)
	sizes := NewTrackSizer(m, []Sizing{Auto()}, 0, -1, RowOrder).SizeTracks()
	tu.AssertApprox(t, sizes, []Fl{7})
	tu.AssertEqual(t, cells[0].FitsArea, false)
	tu.AssertEqual(t, cells[1].FitsArea, true)
	logs.CheckLogs(t, "does not fit")
}
