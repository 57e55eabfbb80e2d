// Package gridgraph provides an immutable passability grid for maze searches.
//
// Cells with walls[idx] == true are impassable; everything else is open.
// Coordinates outside [0,Width)×[0,Height) are never silently treated as walls:
// Passable reports ErrOutOfRange so that neighbor generation has to bounds-check
// explicitly.
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice where
// rows[y][x] == true marks a wall. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs. Both wrap ErrMalformedGrid.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGrid, ErrEmptyGrid)
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: %w: row %d has length %d, want %d",
				ErrMalformedGrid, ErrNonRectangular, y, len(row), w)
		}
	}
	walls := make([]bool, 0, w*h)
	for _, row := range rows {
		walls = append(walls, row...)
	}

	return &Grid{width: w, height: h, walls: walls}, nil
}

// NewEmptyGrid returns a w×h grid with no walls.
func NewEmptyGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGrid, ErrEmptyGrid)
	}

	return &Grid{width: w, height: h, walls: make([]bool, w*h)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Passable reports whether p is open. It fails with ErrOutOfRange when p is
// outside the grid.
// Complexity: O(1).
func (g *Grid) Passable(p Point) (bool, error) {
	if !g.InBounds(p) {
		return false, fmt.Errorf("%w: %s not in %dx%d", ErrOutOfRange, p, g.width, g.height)
	}

	return !g.walls[g.index(p)], nil
}

// Interior reports whether p is strictly inside the outer ring of cells.
func (g *Grid) Interior(p Point) bool {
	return p.X > 0 && p.X < g.width-1 && p.Y > 0 && p.Y < g.height-1
}

// Walls returns every wall cell in row-major order.
// Complexity: O(W×H).
func (g *Grid) Walls() []Point {
	var out []Point
	for i, wall := range g.walls {
		if wall {
			out = append(out, g.Coordinate(i))
		}
	}

	return out
}

// Index maps p to its row-major index y*Width + x. The result is meaningful
// only for in-bounds points.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return g.index(p)
}

func (g *Grid) index(p Point) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// String renders the grid with '#' for walls and '.' for open cells.
func (g *Grid) String() string {
	return render(g, nil)
}

// String renders the maze in the same alphabet ParseMaze accepts.
func (m *Maze) String() string {
	return render(m.Grid, map[Point]byte{m.Start: CellStart, m.End: CellEnd})
}

func render(v View, marks map[Point]byte) string {
	var b strings.Builder
	b.Grow((v.Width() + 1) * v.Height())
	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			p := Point{X: x, Y: y}
			if c, ok := marks[p]; ok {
				b.WriteByte(c)
				continue
			}
			if open, _ := v.Passable(p); open {
				b.WriteByte(CellOpen)
			} else {
				b.WriteByte(CellWall)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
