package gridgraph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/mazepath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]bool
		err  error
	}{
		{"EmptyRows", [][]bool{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]bool{{true, false}, {true}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
			if !errors.Is(err, gridgraph.ErrMalformedGrid) {
				t.Errorf("NewGrid(%v) error = %v; want it to wrap ErrMalformedGrid", tc.rows, err)
			}
		})
	}
}

// TestNewGrid_DeepCopy checks that mutating the input after construction
// does not leak into the grid.
func TestNewGrid_DeepCopy(t *testing.T) {
	rows := [][]bool{{false, true}, {false, false}}
	g, err := gridgraph.NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	rows[0][0] = true

	open, err := g.Passable(gridgraph.Point{X: 0, Y: 0})
	if err != nil || !open {
		t.Errorf("Passable(0,0) = %v, %v; want true, nil", open, err)
	}
}

// TestInBounds checks InBounds and Passable on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid([][]bool{
		{false, true, false},
		{true, false, true},
	})
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}

	valid := []gridgraph.Point{{0, 0}, {2, 1}, {1, 1}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%s)=false; want true", p)
		}
	}
	invalid := []gridgraph.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%s)=true; want false", p)
		}
		if _, err := g.Passable(p); !errors.Is(err, gridgraph.ErrOutOfRange) {
			t.Errorf("Passable(%s) error = %v; want ErrOutOfRange", p, err)
		}
	}

	if open, _ := g.Passable(gridgraph.Point{X: 1, Y: 0}); open {
		t.Error("Passable(1,0) = true; want false (wall)")
	}
	if open, _ := g.Passable(gridgraph.Point{X: 1, Y: 1}); !open {
		t.Error("Passable(1,1) = false; want true")
	}
}

// TestIndexCoordinate round-trips every cell of a 4×3 grid.
func TestIndexCoordinate(t *testing.T) {
	g, err := gridgraph.NewEmptyGrid(4, 3)
	if err != nil {
		t.Fatalf("NewEmptyGrid error: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			p := gridgraph.Point{X: x, Y: y}
			idx := g.Index(p)
			if idx != y*4+x {
				t.Errorf("Index(%s) = %d; want %d", p, idx, y*4+x)
			}
			if back := g.Coordinate(idx); back != p {
				t.Errorf("Coordinate(%d) = %s; want %s", idx, back, p)
			}
		}
	}
}

// TestInteriorAndWalls checks the outer-ring filter and row-major wall order.
func TestInteriorAndWalls(t *testing.T) {
	m, err := gridgraph.ParseMaze(strings.NewReader("#####\n#S#E#\n#####\n"))
	if err != nil {
		t.Fatalf("ParseMaze error: %v", err)
	}
	walls := m.Grid.Walls()
	if len(walls) != 13 {
		t.Fatalf("len(Walls()) = %d; want 13", len(walls))
	}
	if walls[0] != (gridgraph.Point{X: 0, Y: 0}) || walls[6] != (gridgraph.Point{X: 2, Y: 1}) {
		t.Errorf("Walls() not in row-major order: %v", walls)
	}

	var interior []gridgraph.Point
	for _, w := range walls {
		if m.Grid.Interior(w) {
			interior = append(interior, w)
		}
	}
	if len(interior) != 1 || interior[0] != (gridgraph.Point{X: 2, Y: 1}) {
		t.Errorf("interior walls = %v; want [2,1]", interior)
	}
}

//----------------------------------------------------------------------------//
// Overlay Tests
//----------------------------------------------------------------------------//

// TestOverlay_OpensCellsWithoutTouchingBase verifies copy-on-write behavior.
func TestOverlay_OpensCellsWithoutTouchingBase(t *testing.T) {
	m, err := gridgraph.ParseMaze(strings.NewReader("#####\n#S#E#\n#####\n"))
	if err != nil {
		t.Fatalf("ParseMaze error: %v", err)
	}
	wall := gridgraph.Point{X: 2, Y: 1}

	ov, err := m.Grid.WithOpen(wall)
	if err != nil {
		t.Fatalf("WithOpen error: %v", err)
	}
	if open, _ := ov.Passable(wall); !open {
		t.Error("overlay: opened wall still blocked")
	}
	if open, _ := m.Grid.Passable(wall); open {
		t.Error("base grid was mutated by WithOpen")
	}
	if open, _ := ov.Passable(gridgraph.Point{X: 0, Y: 0}); open {
		t.Error("overlay: untouched wall reported open")
	}
	if ov.Base() != m.Grid {
		t.Error("overlay does not share the base grid")
	}
	if got := ov.Opened(); len(got) != 1 || got[0] != wall {
		t.Errorf("Opened() = %v; want [%s]", got, wall)
	}
	if _, err := ov.Passable(gridgraph.Point{X: 9, Y: 9}); !errors.Is(err, gridgraph.ErrOutOfRange) {
		t.Errorf("overlay Passable out of range error = %v; want ErrOutOfRange", err)
	}
}

// TestOverlay_RejectsOutOfRange checks WithOpen validation.
func TestOverlay_RejectsOutOfRange(t *testing.T) {
	g, _ := gridgraph.NewEmptyGrid(2, 2)
	if _, err := g.WithOpen(gridgraph.Point{X: 2, Y: 0}); !errors.Is(err, gridgraph.ErrOutOfRange) {
		t.Errorf("WithOpen error = %v; want ErrOutOfRange", err)
	}
}

//----------------------------------------------------------------------------//
// Timeline Tests
//----------------------------------------------------------------------------//

// TestTimeline_Until checks that prefixes include exactly the first k obstacles.
func TestTimeline_Until(t *testing.T) {
	obs := []gridgraph.Point{{1, 0}, {0, 1}, {1, 0}, {1, 1}}
	tl, err := gridgraph.NewTimeline(2, 2, obs)
	if err != nil {
		t.Fatalf("NewTimeline error: %v", err)
	}

	cases := []struct {
		k      int
		landed int
		want   string
	}{
		{-3, 0, "..\n..\n"},
		{0, 0, "..\n..\n"},
		{1, 1, ".#\n..\n"},
		{2, 2, ".#\n#.\n"},
		{3, 3, ".#\n#.\n"}, // repeated obstacle keeps its first arrival
		{4, 4, ".#\n##\n"},
		{99, 4, ".#\n##\n"},
	}
	for _, tc := range cases {
		v := tl.Until(tc.k)
		if got := v.String(); got != tc.want {
			t.Errorf("Until(%d) =\n%s want\n%s", tc.k, got, tc.want)
		}
		if got := v.Landed(); got != tc.landed {
			t.Errorf("Until(%d).Landed() = %d; want %d", tc.k, got, tc.landed)
		}
	}
	if tl.Len() != 4 || tl.Obstacle(3) != (gridgraph.Point{X: 1, Y: 1}) {
		t.Errorf("Len/Obstacle mismatch: %d %s", tl.Len(), tl.Obstacle(3))
	}
}

// TestTimeline_Errors checks size and range validation.
func TestTimeline_Errors(t *testing.T) {
	if _, err := gridgraph.NewTimeline(0, 3, nil); !errors.Is(err, gridgraph.ErrEmptyGrid) {
		t.Errorf("NewTimeline(0,3) error = %v; want ErrEmptyGrid", err)
	}
	_, err := gridgraph.NewTimeline(3, 3, []gridgraph.Point{{1, 1}, {3, 0}})
	if !errors.Is(err, gridgraph.ErrOutOfRange) {
		t.Errorf("NewTimeline out-of-range error = %v; want ErrOutOfRange", err)
	}
}
