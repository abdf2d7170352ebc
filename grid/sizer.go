package grid

import (
	"github.com/benoitkugler/gridlayout/logger"
	"github.com/benoitkugler/gridlayout/utils"
)

// Implements https://www.w3.org/TR/css-grid-1/#algo-track-sizing

// infinite is used as growth limit for unbounded tracks
const infinite Fl = -1

type track struct {
	sizing      Sizing
	baseSize    Fl
	growthLimit Fl // infinite or >= 0
}

func (t *track) isFrozen() bool { return t.growthLimit >= 0 && t.baseSize >= t.growthLimit }

// grow increases the base size by at most [amount], up to the growth limit,
// and returns the actual increase.
func (t *track) grow(amount Fl) Fl {
	if t.growthLimit < 0 || t.baseSize+amount <= t.growthLimit {
		t.baseSize += amount
		return amount
	}
	added := t.growthLimit - t.baseSize
	t.baseSize = t.growthLimit
	return added
}

// TrackSizer resolves the sizes of the rows or the columns of a grid.
// It must only be used once.
type TrackSizer struct {
	matrix *Matrix
	order  Order
	cells  []*Cell // unique cells of the matrix, cached

	matrixTracks int // number of tracks of the matrix along order

	tracks         []track
	definite       bool
	availableSpace Fl // gaps excluded

	minContributions, maxContributions map[*Cell]Fl
}

// NewTrackSizer prepares the sizing of the tracks along [order].
// A negative [availableSpace] means the space is indefinite.
// Tracks of the matrix without sizing function in [values] are sized as auto,
// and extra sizing functions give tracks without content.
func NewTrackSizer(matrix *Matrix, values []Sizing, gap, availableSpace Fl, order Order) *TrackSizer {
	count := matrix.Rows()
	if order == ColumnOrder {
		count = matrix.Columns()
	}
	s := &TrackSizer{
		matrix:           matrix,
		order:            order,
		matrixTracks:     count,
		cells:            matrix.UniqueCells(order),
		tracks:           make([]track, max(count, len(values))),
		definite:         availableSpace >= 0,
		minContributions: make(map[*Cell]Fl),
		maxContributions: make(map[*Cell]Fl),
	}
	for i := range s.tracks {
		sizing := Auto()
		if i < len(values) {
			sizing = values[i]
		}
		// If the size of the grid container depends on the
		// size of its tracks, percentages are treated as auto.
		if !s.definite && sizing.Kind == Percentage {
			logger.WarningLogger.Printf("percentage track %s in an indefinite space, treated as auto", sizing)
			sizing = Auto()
		}
		s.tracks[i].sizing = sizing
	}
	if s.definite {
		// Gutters are handled by reducing the available space.
		s.availableSpace = utils.MaxF(0, availableSpace-Fl(len(s.tracks)-1)*gap)
	} else {
		s.availableSpace = availableSpace
	}
	return s
}

// SizeTracks runs the track sizing algorithm and returns the size of each track.
func (s *TrackSizer) SizeTracks() []Fl {
	s.initializeTrackSizes()
	s.resolveIntrinsicTrackSizes()
	s.maximizeTracks()
	s.expandFlexibleTracks()
	// Stretching auto tracks is not supported.

	out := make([]Fl, len(s.tracks))
	for i, t := range s.tracks {
		out[i] = t.baseSize
	}
	return out
}

// 12.4. Initialize Track Sizes
func (s *TrackSizer) initializeTrackSizes() {
	for i := range s.tracks {
		t := &s.tracks[i]
		switch t.sizing.Kind {
		case Fixed:
			t.baseSize = t.sizing.Value
			t.growthLimit = t.baseSize
		case Percentage:
			t.baseSize = t.sizing.Value / 100 * s.availableSpace
			t.growthLimit = t.baseSize
		default:
			t.baseSize = 0
			t.growthLimit = infinite
		}
	}
}

// 12.5. Resolve Intrinsic Track Sizes
func (s *TrackSizer) resolveIntrinsicTrackSizes() {
	// 1. Shim baseline-aligned items : baselines are not supported.

	// 2. Size tracks to fit non-spanning items.
	for i := range s.tracks {
		t := &s.tracks[i]
		if t.sizing.isDefinite() {
			continue
		}
		var cells []*Cell
		// tracks past the matrix have no content
		if i < s.matrixTracks {
			for _, cell := range s.matrix.UniqueCellsInTrack(s.order, i) {
				if cell.span(s.order) == 1 {
					cells = append(cells, cell)
				}
			}
		}

		switch t.sizing.Kind {
		case MaxContentSize: // max-content minimums
			t.baseSize = s.largestContribution(cells, s.maxContribution)
		case AutoSize, Flexible, MinContentSize: // min-content and auto minimums
			t.baseSize = s.largestContribution(cells, s.minContribution)
		}

		// min-content maximums
		if t.sizing.Kind == MinContentSize && t.baseSize > utils.Epsilon {
			t.growthLimit = t.baseSize
		}
		// max-content maximums, auto being treated as max-content
		if t.sizing.Kind == AutoSize || t.sizing.Kind == MaxContentSize {
			if m := s.largestContribution(cells, s.maxContribution); m > utils.Epsilon {
				t.growthLimit = m
			}
		}

		if t.growthLimit >= 0 && t.baseSize > t.growthLimit {
			t.growthLimit = t.baseSize
		}
	}

	// 3. Increase sizes to accommodate spanning items crossing content-sized tracks,
	// by increasing span.
	maxSpan := 0
	for _, cell := range s.cells {
		maxSpan = max(maxSpan, cell.span(s.order))
	}
	for span := 2; span <= maxSpan; span++ {
		for _, cell := range s.cells {
			if cell.span(s.order) != span {
				continue
			}
			affected := s.affectedTracks(cell)
			if hasFlexibleTrack(affected) {
				continue
			}
			s.distributeExtraSpace(affected, s.minContribution(cell))
		}
	}

	// 4. Increase sizes to accommodate spanning items crossing flexible tracks.
	for _, cell := range s.cells {
		affected := s.affectedTracks(cell)
		if !hasFlexibleTrack(affected) {
			continue
		}
		s.distributeExtraSpaceToFlexibleTracks(affected, s.minContribution(cell))
	}

	// 5. If any track still has an infinite growth limit, set it to its base size.
	for i := range s.tracks {
		if t := &s.tracks[i]; t.growthLimit < 0 {
			t.growthLimit = t.baseSize
		}
	}
}

// distributeExtraSpace increases the base sizes of the
// content-sized tracks among [tracks] so that they accommodate [contribution].
func (s *TrackSizer) distributeExtraSpace(tracks []*track, contribution Fl) {
	var affected []*track
	for _, t := range tracks {
		if !t.sizing.isDefinite() {
			affected = append(affected, t)
		}
	}
	distribute(affected, contribution-sumBaseSizes(tracks), func(*track) Fl { return 1 })
}

// distributeExtraSpaceToFlexibleTracks increases the base sizes of the
// flexible tracks among [tracks] so that they accommodate [contribution].
// Only the flexible tracks count, both for the space to fill and for
// its distribution.
func (s *TrackSizer) distributeExtraSpaceToFlexibleTracks(tracks []*track, contribution Fl) {
	var (
		affected []*track
		factors  Fl
	)
	for _, t := range tracks {
		if t.sizing.isFlexible() {
			affected = append(affected, t)
			factors += t.sizing.Value
		}
	}
	if factors <= 0 { // only 0fr tracks
		factors = Fl(len(affected))
	}
	space := contribution - sumBaseSizes(affected)
	// each round either consumes the space or freezes one track
	for rounds := len(affected) + 1; space > utils.Epsilon && rounds > 0; rounds-- {
		unfrozen := 0
		for _, t := range affected {
			if !t.isFrozen() {
				unfrozen++
			}
		}
		if unfrozen == 0 {
			return
		}
		// Giving space/factors to each track, repeatedly, converges to an even
		// share when factors >= unfrozen, and overshoots in one step otherwise.
		share := space / min(factors, Fl(unfrozen))
		for _, t := range affected {
			if !t.isFrozen() {
				space -= t.grow(share)
			}
		}
	}
	// Distributing space to non-affected tracks and beyond limits is skipped.
}

// distribute shares [space] between the tracks not frozen yet,
// proportionally to [weight], and repeats until the space is consumed or
// every track reaches its growth limit.
func distribute(tracks []*track, space Fl, weight func(*track) Fl) {
	// each round either consumes the space or freezes one track,
	// the margin absorbs floating point residues
	rounds := len(tracks) + 16
	for ; space > utils.Epsilon && rounds > 0; rounds-- {
		var weights Fl
		for _, t := range tracks {
			if !t.isFrozen() {
				weights += weight(t)
			}
		}
		if weights <= 0 {
			return
		}
		share := space / weights
		for _, t := range tracks {
			if !t.isFrozen() {
				space -= t.grow(share * weight(t))
			}
		}
	}
}

// 12.6. Maximize Tracks
func (s *TrackSizer) maximizeTracks() {
	if !s.definite {
		for i := range s.tracks {
			if t := &s.tracks[i]; t.baseSize < t.growthLimit {
				t.baseSize = t.growthLimit
			}
		}
		return
	}
	all := make([]*track, len(s.tracks))
	for i := range s.tracks {
		all[i] = &s.tracks[i]
	}
	distribute(all, s.freeSpace(), func(*track) Fl { return 1 })
}

// 12.7. Expand Flexible Tracks
func (s *TrackSizer) expandFlexibleTracks() {
	all := make([]*track, len(s.tracks))
	for i := range s.tracks {
		all[i] = &s.tracks[i]
	}
	if !hasFlexibleTrack(all) {
		return
	}

	var frSize Fl
	if s.definite {
		// If the free space is zero there is nothing to expand.
		if s.freeSpace() < utils.Epsilon {
			return
		}
		frSize = findFrSize(all, s.availableSpace)
	} else {
		for _, t := range all {
			if t.sizing.isFlexible() && t.sizing.Value > 0 {
				frSize = utils.MaxF(frSize, t.baseSize/t.sizing.Value)
			}
		}
		for _, cell := range s.cells {
			affected := s.affectedTracks(cell)
			if !hasFlexibleTrack(affected) {
				continue
			}
			frSize = utils.MaxF(frSize, findFrSize(affected, s.maxContribution(cell)))
		}
	}

	for _, t := range all {
		if t.sizing.isFlexible() {
			if size := frSize * t.sizing.Value; size > t.baseSize {
				t.baseSize = size
			}
		}
	}
}

// findFrSize implements 12.7.1. Find the Size of an fr
func findFrSize(tracks []*track, spaceToFill Fl) Fl {
	inflexible := make([]bool, len(tracks))
	for {
		leftoverSpace := spaceToFill
		var flexFactorSum Fl
		for i, t := range tracks {
			if t.sizing.isFlexible() && !inflexible[i] {
				flexFactorSum += t.sizing.Value
			} else {
				leftoverSpace -= t.baseSize
			}
		}
		flexFactorSum = utils.MaxF(1, flexFactorSum)
		hypotheticalFrSize := leftoverSpace / flexFactorSum

		satisfied := true
		for i, t := range tracks {
			if t.sizing.isFlexible() && !inflexible[i] && hypotheticalFrSize*t.sizing.Value < t.baseSize {
				inflexible[i] = true
				satisfied = false
			}
		}
		if satisfied {
			return hypotheticalFrSize
		}
	}
}

// freeSpace is only valid for a definite available space
func (s *TrackSizer) freeSpace() Fl {
	free := s.availableSpace
	for _, t := range s.tracks {
		free -= t.baseSize
	}
	return free
}

func (s *TrackSizer) affectedTracks(cell *Cell) []*track {
	out := make([]*track, 0, cell.span(s.order))
	for i := cell.start(s.order); i < cell.end(s.order); i++ {
		out = append(out, &s.tracks[i])
	}
	return out
}

func hasFlexibleTrack(tracks []*track) bool {
	for _, t := range tracks {
		if t.sizing.isFlexible() {
			return true
		}
	}
	return false
}

func sumBaseSizes(tracks []*track) Fl {
	var s Fl
	for _, t := range tracks {
		s += t.baseSize
	}
	return s
}

func (s *TrackSizer) largestContribution(cells []*Cell, contribution func(*Cell) Fl) Fl {
	var out Fl
	for _, cell := range cells {
		out = utils.MaxF(out, contribution(cell))
	}
	return out
}

// minContribution returns the min-content width for columns, and
// the height in the cell width for rows.
func (s *TrackSizer) minContribution(cell *Cell) Fl {
	if v, ok := s.minContributions[cell]; ok {
		return v
	}
	var v Fl
	if cell.Content != nil {
		if s.order == ColumnOrder {
			v, _ = cell.Content.MinMaxWidth()
		} else if height, ok := cell.Content.Height(cell.Area.Width); ok {
			v = height
		}
	}
	s.minContributions[cell] = v
	return v
}

// maxContribution returns the max-content width for columns, and
// the height in the cell width for rows (for block content, the min-content
// block size is equivalent to the max-content block size).
// Content which can't be laid out is flagged and contributes 0.
func (s *TrackSizer) maxContribution(cell *Cell) Fl {
	if v, ok := s.maxContributions[cell]; ok {
		return v
	}
	var v Fl
	if cell.Content != nil {
		if s.order == ColumnOrder {
			_, v = cell.Content.MinMaxWidth()
		} else if height, ok := cell.Content.Height(cell.Area.Width); ok {
			v = height
		} else {
			cell.FitsArea = false
			logger.WarningLogger.Printf("content of %s does not fit in a width of %g", cell, cell.Area.Width)
		}
	}
	s.maxContributions[cell] = v
	return v
}
