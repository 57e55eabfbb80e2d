package gridgraph

import "fmt"

// Overlay is a copy-on-write variant of a Grid in which a short list of
// cells is forced open. The base grid is shared, never copied.
type Overlay struct {
	base *Grid
	open []int // row-major indices
}

// WithOpen returns a view of g with cells made passable. Cells that are
// already open are accepted and have no effect.
// Returns ErrOutOfRange if any cell lies outside g.
// Complexity: O(k) for k cells.
func (g *Grid) WithOpen(cells ...Point) (*Overlay, error) {
	open := make([]int, 0, len(cells))
	for _, c := range cells {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %s not in %dx%d", ErrOutOfRange, c, g.width, g.height)
		}
		open = append(open, g.index(c))
	}

	return &Overlay{base: g, open: open}, nil
}

// Base returns the shared grid underneath the overlay.
func (o *Overlay) Base() *Grid { return o.base }

// Opened returns the cells this overlay forces open.
func (o *Overlay) Opened() []Point {
	out := make([]Point, len(o.open))
	for i, idx := range o.open {
		out[i] = o.base.Coordinate(idx)
	}

	return out
}

// Width returns the number of columns of the base grid.
func (o *Overlay) Width() int { return o.base.width }

// Height returns the number of rows of the base grid.
func (o *Overlay) Height() int { return o.base.height }

// InBounds reports whether p lies within the base grid.
func (o *Overlay) InBounds(p Point) bool { return o.base.InBounds(p) }

// Passable reports whether p is open in the base grid or forced open here.
func (o *Overlay) Passable(p Point) (bool, error) {
	open, err := o.base.Passable(p)
	if err != nil || open {
		return open, err
	}
	idx := o.base.index(p)
	for _, i := range o.open {
		if i == idx {
			return true, nil
		}
	}

	return false, nil
}

// String renders the overlay with '#' for walls and '.' for open cells.
func (o *Overlay) String() string {
	return render(o, nil)
}
