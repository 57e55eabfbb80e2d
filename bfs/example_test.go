package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// ExampleWalk shows the layer-by-layer visit order on an open 3×3 grid.
// Neighbors are tried north, east, south, west.
func ExampleWalk() {
	g, err := gridgraph.NewEmptyGrid(3, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.Walk(g, gridgraph.Point{X: 0, Y: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	d, _ := res.Depth(gridgraph.Point{X: 2, Y: 2})
	fmt.Println("depth of 2,2:", d)
	// Output:
	// [0,0 1,0 0,1 2,0 1,1 0,2 2,1 1,2 2,2]
	// depth of 2,2: 4
}

// ExampleReachable drops obstacles on a 3×3 grid until the corners are cut off.
func ExampleReachable() {
	obstacles := []gridgraph.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}
	tl, err := gridgraph.NewTimeline(3, 3, obstacles)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	start, goal := gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 2, Y: 2}
	for k := 0; k <= tl.Len(); k++ {
		ok, err := bfs.Reachable(tl.Until(k), start, goal)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("after %d: %v\n", k, ok)
	}
	// Output:
	// after 0: true
	// after 1: true
	// after 2: true
	// after 3: false
}
