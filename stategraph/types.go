package stategraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors for stategraph construction.
var (
	// ErrNilView indicates a nil gridgraph.View was passed to a constructor.
	ErrNilView = errors.New("stategraph: view is nil")
	// ErrNegativeCost indicates a negative move or turn cost.
	ErrNegativeCost = errors.New("stategraph: edge costs must be non-negative")
	// ErrBadHeading indicates a heading string that does not parse.
	ErrBadHeading = errors.New("stategraph: unknown heading")
	// ErrBadKind indicates an unknown model kind.
	ErrBadKind = errors.New("stategraph: unknown model kind")
)

// State is one node of the search graph.
type State struct {
	Pos     gridgraph.Point
	Heading Heading
}

// String renders s as "x,y/H".
func (s State) String() string {
	return s.Pos.String() + "/" + s.Heading.String()
}

// EdgeKind distinguishes the two kinds of edges a state can have.
type EdgeKind uint8

const (
	// Move advances one cell; heading is unchanged.
	Move EdgeKind = iota
	// Turn rotates heading by ±90° in place.
	Turn
)

// String returns "move" or "turn".
func (k EdgeKind) String() string {
	if k == Turn {
		return "turn"
	}

	return "move"
}

// Edge is an outgoing edge of some state.
type Edge struct {
	To   State
	Cost int64
	Kind EdgeKind
}

// CostModel holds the per-edge costs.
type CostModel struct {
	Move int64 // cost of advancing one cell
	Turn int64 // cost of rotating 90° (Oriented only)
}

// DefaultCostModel returns Move=1, Turn=1000.
func DefaultCostModel() CostModel {
	return CostModel{Move: 1, Turn: 1000}
}

// Validate returns ErrNegativeCost if either cost is negative.
func (c CostModel) Validate() error {
	if c.Move < 0 || c.Turn < 0 {
		return fmt.Errorf("%w: move=%d turn=%d", ErrNegativeCost, c.Move, c.Turn)
	}

	return nil
}

// Graph is an implicit state graph over a grid view.
//
// Edges appends the outgoing edges of s to buf[:0] and returns the result, so
// callers can reuse one buffer across a whole search. States must be valid for
// the graph (in range, heading matching the model); Index is only defined for
// such states and maps them onto [0, Size()).
type Graph interface {
	View() gridgraph.View
	Size() int
	Index(s State) int
	State(idx int) State
	Edges(s State, buf []Edge) []Edge
}

// WallProber is implemented by graphs that can report which wall cells a
// state's move edges would have entered. Cells are always in range.
type WallProber interface {
	BlockedMoves(s State, buf []gridgraph.Point) []gridgraph.Point
	MoveCost() int64
}
