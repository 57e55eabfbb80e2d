// Package stategraph turns a gridgraph.View into an implicit, directed,
// non-negatively weighted graph over search states.
//
// Two models are provided:
//
//   - Oriented: a state is (cell, heading). Each state has at most three
//     outgoing edges: a forward move into the next cell (omitted when that
//     cell is out of range or a wall) and a left and a right turn in place.
//     A 180° reversal is two consecutive turns; there is no direct edge.
//   - Free: a state is a cell with NoHeading. Each state moves to its open
//     orthogonal neighbors at a uniform cost; turning is not penalized.
//
// Edges are produced on demand; nothing is materialized up front. Every
// neighbor is bounds-checked against the view before Passable is asked about
// it, so gridgraph.ErrOutOfRange never escapes this package.
//
// Costs are validated once, at construction: NewOriented and NewFree reject
// negative move or turn costs with ErrNegativeCost, which is what keeps
// Dijkstra's monotonicity invariant intact downstream.
//
// Each graph also exposes a dense state numbering (Index / State / Size) so
// search engines can keep their distance and visited sets in flat slices.
package stategraph
