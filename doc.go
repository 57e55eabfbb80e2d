// Package mazepath finds cheapest routes through grid mazes and measures how
// those routes change when the grid changes.
//
// What lives where:
//
//	gridgraph/    Point, Grid, copy-on-write Overlay, obstacle Timeline and
//	              the text parsers for mazes and obstacle lists
//	stategraph/   turns a grid into a weighted state graph: the oriented
//	              model (cell + heading, turns cost extra) or the free model
//	              (cell only, unit steps)
//	dijkstra/     deterministic single-goal Dijkstra with an exclusive cost
//	              bound, wall-approach recording and all-optimal-path cells
//	bfs/          four-connected flood fill used for plain connectivity
//	removal/      wall-opening enumeration (single cells or pairs) and the
//	              first obstacle that cuts start from goal
//	config/       YAML configuration with environment overrides
//	cmd/mazepath  the CLI: score, tiles, cheats and bytes
//
// Quick ASCII example:
//
//	#####
//	#S..#
//	#.#E#
//	#####
//
// Under the default oriented model a walker starts facing east: one step
// east, one step east, a turn south and one step south costs 1+1+1000+1.
//
//	go install github.com/katalvlaran/mazepath/cmd/mazepath@latest
package mazepath
