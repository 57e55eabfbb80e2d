// Package gridgraph models a rectangular maze as an immutable passability grid,
// the read-only substrate every shortest-path search in mazepath runs on.
//
// What:
//
//   - Grid stores one bit of information per cell: wall or open.
//   - Overlay is a copy-on-write variant of a Grid with a few walls opened,
//     used to evaluate "what if this wall were gone" without cloning the grid.
//   - Timeline replays obstacles in arrival order; Until(k) is the grid after
//     the first k obstacles have landed.
//   - Maze bundles a Grid with the start and end markers parsed from text.
//
// Why:
//
//   - Searches share one base grid across many goroutines. Nothing in this
//     package mutates a Grid after NewGrid returns.
//   - Variants (Overlay, TimelineView) cost O(1) to create instead of O(W×H).
//
// Input format:
//
//	#  wall
//	.  open cell
//	S  start (open)
//	E  end (open)
//
// Every line must have the same length; the grid is len(lines) rows high.
// Obstacle lists are one "x,y" pair per line.
//
// Complexity:
//
//   - NewGrid, ParseMaze:     O(W×H) time and memory.
//   - Passable, InBounds:     O(1).
//   - Overlay.Passable:       O(k) for k opened cells (k ≤ 2 in practice).
//   - TimelineView.Passable:  O(1).
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for any structural problem in the input.
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrUnknownCell: a character other than '#', '.', 'S', 'E'.
//   - ErrMissingMarker / ErrDuplicateMarker: S or E absent or repeated.
//   - ErrOutOfRange: a coordinate outside [0,W)×[0,H).
//   - ErrBadObstacle: an obstacle line that is not "x,y".
package gridgraph
