package measure

import "github.com/benoitkugler/gridlayout/utils"

// Box is a replaced content, with fixed dimensions.
type Box struct {
	width, height Fl
}

// NewBox returns a content of the given size. Negative
// values are clamped to 0.
func NewBox(width, height Fl) Box {
	return Box{width: utils.MaxF(width, 0), height: utils.MaxF(height, 0)}
}

func (b Box) MinMaxWidth() (Fl, Fl) { return b.width, b.width }

// Height returns the fixed height of the box, and false
// if the box is larger than [width].
func (b Box) Height(width Fl) (Fl, bool) {
	return b.height, b.width <= width+utils.Epsilon
}
