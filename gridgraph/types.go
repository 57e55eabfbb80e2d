// Package gridgraph defines the core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/mazepath.
package gridgraph

import (
	"errors"
	"strconv"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrMalformedGrid is wrapped by every structural input error below.
	ErrMalformedGrid = errors.New("gridgraph: malformed grid")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownCell indicates a character outside the maze alphabet.
	ErrUnknownCell = errors.New("gridgraph: unknown cell character")
	// ErrMissingMarker indicates the start or end marker is absent.
	ErrMissingMarker = errors.New("gridgraph: missing start or end marker")
	// ErrDuplicateMarker indicates the start or end marker appears twice.
	ErrDuplicateMarker = errors.New("gridgraph: duplicate start or end marker")
	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("gridgraph: coordinate out of range")
	// ErrBadObstacle indicates an obstacle line that does not parse as "x,y".
	ErrBadObstacle = errors.New("gridgraph: malformed obstacle")
)

// Maze alphabet.
const (
	CellWall  = '#'
	CellOpen  = '.'
	CellStart = 'S'
	CellEnd   = 'E'
)

// Point is a cell coordinate. X grows to the east, Y grows to the south.
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String renders p as "x,y", the same shape obstacle lists use.
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// View is read-only access to a passability grid. *Grid, *Overlay and
// TimelineView implement it.
//
// Passable returns ErrOutOfRange for coordinates outside the grid; callers
// that walk neighbors must check InBounds first.
type View interface {
	Width() int
	Height() int
	InBounds(p Point) bool
	Passable(p Point) (bool, error)
}

// Grid is an immutable rectangular passability grid.
// walls[y*width+x] is true when the cell is impassable.
type Grid struct {
	width, height int
	walls         []bool
}

// Maze is a Grid together with its start and end cells.
type Maze struct {
	Grid  *Grid
	Start Point
	End   Point
}
