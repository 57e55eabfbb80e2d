// Package dijkstra implements Dijkstra's shortest-path search over the
// implicit state graphs of package stategraph.
//
// Overview:
//
//   - Search computes the exact minimum cost from a start state to the first
//     state whose cell equals the goal cell. Headings at the goal are ignored.
//   - Distances and finalized flags live in flat slices indexed by
//     stategraph.Graph.Index, so no per-state maps are allocated.
//   - The frontier is a binary heap ordered by (cost, push order). Equal costs
//     pop first-in first-out, which makes Result.Path deterministic.
//
// Key features:
//
//   - Bound: an exclusive cost ceiling. The run stops as soon as the cheapest
//     frontier entry reaches it, so a bounded run answers "is there a route
//     strictly cheaper than Bound?" without exploring further.
//   - Wall recording: for every wall cell a finalized state tried to enter,
//     Result.Walls keeps the cheapest such attempt (pop cost plus one move).
//   - All-optimal mode: every equal-cost predecessor is kept and popping
//     continues until the frontier passes the goal distance, so
//     Result.OptimalCells lists every cell lying on some shortest route.
//   - OnSettle hook: observes states in non-decreasing cost order.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V), V = g.Size().
//   - Space: O(V + E) under the “lazy decrease-key” strategy: improved states
//     are pushed again and stale entries are skipped at pop time.
//
// Thread safety:
//
//   - A Search owns all of its mutable state. Concurrent Searches over the
//     same graph are safe as long as the underlying gridgraph.View is not
//     mutated; Grid, Overlay and TimelineView are read-only after construction.
package dijkstra
