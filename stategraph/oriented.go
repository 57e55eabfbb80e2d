package stategraph

import "github.com/katalvlaran/mazepath/gridgraph"

// Oriented is the heading-aware state graph: forward moves plus 90° turns.
type Oriented struct {
	view  gridgraph.View
	costs CostModel
	w, h  int
}

// NewOriented builds an Oriented graph over v.
// Returns ErrNilView for a nil view and ErrNegativeCost for negative costs.
func NewOriented(v gridgraph.View, costs CostModel) (*Oriented, error) {
	if v == nil {
		return nil, ErrNilView
	}
	if err := costs.Validate(); err != nil {
		return nil, err
	}

	return &Oriented{view: v, costs: costs, w: v.Width(), h: v.Height()}, nil
}

// View returns the underlying grid view.
func (g *Oriented) View() gridgraph.View { return g.view }

// Costs returns the cost model.
func (g *Oriented) Costs() CostModel { return g.costs }

// MoveCost returns the cost of a forward move.
func (g *Oriented) MoveCost() int64 { return g.costs.Move }

// Size returns W×H×4.
func (g *Oriented) Size() int { return g.w * g.h * numHeadings }

// Index numbers (x, y, heading) as ((y*W)+x)*4 + heading.
func (g *Oriented) Index(s State) int {
	return (s.Pos.Y*g.w+s.Pos.X)*numHeadings + int(s.Heading)
}

// State is the inverse of Index.
func (g *Oriented) State(idx int) State {
	cell := idx / numHeadings

	return State{
		Pos:     gridgraph.Point{X: cell % g.w, Y: cell / g.w},
		Heading: Heading(idx % numHeadings),
	}
}

// Edges returns the forward move (when the next cell is in range and open)
// followed by the left and right turns.
func (g *Oriented) Edges(s State, buf []Edge) []Edge {
	buf = buf[:0]
	if next, ok := g.forward(s); ok {
		if open, _ := g.view.Passable(next); open {
			buf = append(buf, Edge{To: State{Pos: next, Heading: s.Heading}, Cost: g.costs.Move, Kind: Move})
		}
	}
	buf = append(buf,
		Edge{To: State{Pos: s.Pos, Heading: s.Heading.Left()}, Cost: g.costs.Turn, Kind: Turn},
		Edge{To: State{Pos: s.Pos, Heading: s.Heading.Right()}, Cost: g.costs.Turn, Kind: Turn},
	)

	return buf
}

// BlockedMoves returns the forward cell when it is in range and a wall.
func (g *Oriented) BlockedMoves(s State, buf []gridgraph.Point) []gridgraph.Point {
	buf = buf[:0]
	if next, ok := g.forward(s); ok {
		if open, _ := g.view.Passable(next); !open {
			buf = append(buf, next)
		}
	}

	return buf
}

// forward returns the cell ahead of s and whether it is inside the view.
func (g *Oriented) forward(s State) (gridgraph.Point, bool) {
	dx, dy := s.Heading.Delta()
	next := s.Pos.Add(dx, dy)

	return next, g.view.InBounds(next)
}
