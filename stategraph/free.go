package stategraph

import (
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Free is the headingless state graph: uniform-cost moves to the four
// orthogonal neighbors. Every state carries NoHeading.
type Free struct {
	view gridgraph.View
	move int64
	w, h int
}

// NewFree builds a Free graph over v with the given cost per move.
// Turn costs are ignored. Returns ErrNilView or ErrNegativeCost.
func NewFree(v gridgraph.View, costs CostModel) (*Free, error) {
	if v == nil {
		return nil, ErrNilView
	}
	if costs.Move < 0 {
		return nil, fmt.Errorf("%w: move=%d", ErrNegativeCost, costs.Move)
	}

	return &Free{view: v, move: costs.Move, w: v.Width(), h: v.Height()}, nil
}

// View returns the underlying grid view.
func (g *Free) View() gridgraph.View { return g.view }

// MoveCost returns the cost of one step.
func (g *Free) MoveCost() int64 { return g.move }

// Size returns W×H.
func (g *Free) Size() int { return g.w * g.h }

// Index is the row-major cell index; the heading is ignored.
func (g *Free) Index(s State) int { return s.Pos.Y*g.w + s.Pos.X }

// State is the inverse of Index.
func (g *Free) State(idx int) State {
	return State{Pos: gridgraph.Point{X: idx % g.w, Y: idx / g.w}, Heading: NoHeading}
}

// Edges returns moves to every in-range open neighbor, in N, E, S, W order.
func (g *Free) Edges(s State, buf []Edge) []Edge {
	buf = buf[:0]
	for _, d := range deltas {
		next := s.Pos.Add(d[0], d[1])
		if !g.view.InBounds(next) {
			continue
		}
		if open, _ := g.view.Passable(next); open {
			buf = append(buf, Edge{To: State{Pos: next, Heading: NoHeading}, Cost: g.move, Kind: Move})
		}
	}

	return buf
}

// BlockedMoves returns every in-range wall neighbor, in N, E, S, W order.
func (g *Free) BlockedMoves(s State, buf []gridgraph.Point) []gridgraph.Point {
	buf = buf[:0]
	for _, d := range deltas {
		next := s.Pos.Add(d[0], d[1])
		if !g.view.InBounds(next) {
			continue
		}
		if open, _ := g.view.Passable(next); !open {
			buf = append(buf, next)
		}
	}

	return buf
}
