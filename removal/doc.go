// Package removal measures how much a maze's shortest route improves when
// one or two walls are opened, and answers the inverse question for a grid
// that fills up with obstacles over time.
//
// Improvements works in three stages:
//
//  1. Baseline: one wall-recording search on the unmodified maze gives the
//     distance D and, for every wall, the cheapest cost at which the search
//     tried to step into it.
//  2. Candidates: only interior walls approached strictly below D can lie on
//     a cheaper route. All others are pruned before any re-search.
//  3. Re-search: every candidate (ModeSingle) or unordered candidate pair
//     (ModePairs) is opened on a copy-on-write overlay and searched again
//     with Bound D, so a variant that cannot beat D stops early.
//
// The re-searches are independent and run on a bounded pool of workers, each
// collecting into a private slice that is merged and sorted once all workers
// return. Results are therefore independent of scheduling.
//
// FirstDisconnecting replays an obstacle list and reports the first obstacle
// after which start and goal are no longer connected. Connectivity only ever
// goes from true to false as obstacles land, so the replay is a binary search
// over prefixes of a gridgraph.Timeline, each probe a bfs flood fill.
// DistanceAfter gives the Model's shortest distance for one prefix.
//
// Spans and instruments go through the global OpenTelemetry providers; with
// none installed they are no-ops.
package removal
