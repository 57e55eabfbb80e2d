// Package bfs floods a gridgraph.View breadth-first from a start cell through
// four-connected open cells, returning step counts, parent links, and visit
// order.
//
// What
//
//   - Visits cells in non-decreasing step count from the start.
//   - Neighbors are tried in N, E, S, W order, so the visit sequence and the
//     parent tree are fully reproducible.
//   - Supports an OnVisit hook (may abort with an error), neighbor
//     filtering, a depth limit, an early-exit target and cancellation.
//
// Why
//
//   - Connectivity does not depend on edge costs: a cell reachable under the
//     headingless model is reachable under the oriented one too, because
//     turning in place is always possible. Reachable answers "are these two
//     cells connected?" in O(W×H) without a priority queue.
//
// Complexity
//
//   - Time:   O(W×H)
//   - Memory: O(W×H) for depth and parent slices plus the queue.
//
// Usage
//
//	ok, err := bfs.Reachable(view, start, goal)
//
//	res, err := bfs.Walk(view, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(10),
//	    bfs.WithOnVisit(func(p gridgraph.Point, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrNilView          if the view is nil.
//   - ErrStartOutOfRange  if the start cell is outside the view.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped OnVisit errors and ctx.Err().
package bfs
