// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazepath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ParseMaze
////////////////////////////////////////////////////////////////////////////////

// ExampleParseMaze parses a small maze and reports its markers.
func ExampleParseMaze() {
	m, err := gridgraph.ParseMaze(strings.NewReader(
		"#####\n" +
			"#S#E#\n" +
			"#...#\n" +
			"#####\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%dx%d start=%s end=%s\n", m.Grid.Width(), m.Grid.Height(), m.Start, m.End)
	// Output: 5x4 start=1,1 end=3,1
}

////////////////////////////////////////////////////////////////////////////////
// Example: WithOpen
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_WithOpen opens the wall between start and end without
// copying the grid.
func ExampleGrid_WithOpen() {
	m, _ := gridgraph.ParseMaze(strings.NewReader("#####\n#S#E#\n#####\n"))
	ov, _ := m.Grid.WithOpen(gridgraph.Point{X: 2, Y: 1})
	fmt.Print(m.Grid.String())
	fmt.Print(ov.String())
	// Output:
	// #####
	// #.#.#
	// #####
	// #####
	// #...#
	// #####
}
