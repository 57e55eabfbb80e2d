package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLine bounds a single input line; real mazes are a few hundred cells wide.
const maxLine = 1 << 20

// ParseMaze reads a maze in the '#', '.', 'S', 'E' alphabet.
// Trailing '\r' is stripped and blank lines after the last row are ignored.
// Every structural problem wraps ErrMalformedGrid.
// Complexity: O(W×H).
func ParseMaze(r io.Reader) (*Maze, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGrid, ErrEmptyGrid)
	}

	var (
		start, end       Point
		hasStart, hasEnd bool
	)
	rows := make([][]bool, len(lines))
	for y, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, fmt.Errorf("%w: %w: line %d has length %d, want %d",
				ErrMalformedGrid, ErrNonRectangular, y+1, len(line), len(lines[0]))
		}
		row := make([]bool, len(line))
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case CellWall:
				row[x] = true
			case CellOpen:
			case CellStart:
				if hasStart {
					return nil, fmt.Errorf("%w: %w: second %q at %d,%d", ErrMalformedGrid, ErrDuplicateMarker, CellStart, x, y)
				}
				start, hasStart = Point{X: x, Y: y}, true
			case CellEnd:
				if hasEnd {
					return nil, fmt.Errorf("%w: %w: second %q at %d,%d", ErrMalformedGrid, ErrDuplicateMarker, CellEnd, x, y)
				}
				end, hasEnd = Point{X: x, Y: y}, true
			default:
				return nil, fmt.Errorf("%w: %w: %q at %d,%d", ErrMalformedGrid, ErrUnknownCell, line[x], x, y)
			}
		}
		rows[y] = row
	}
	if !hasStart || !hasEnd {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGrid, ErrMissingMarker)
	}

	g, err := NewGrid(rows)
	if err != nil {
		return nil, err
	}

	return &Maze{Grid: g, Start: start, End: end}, nil
}

// ParseObstacles reads one "x,y" pair per line. Blank lines are skipped.
// Returns ErrBadObstacle with the offending line number on any parse failure.
func ParseObstacles(r io.Reader) ([]Point, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	out := make([]Point, 0, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadObstacle, i+1, line)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadObstacle, i+1, line)
		}
		out = append(out, Point{X: x, Y: y})
	}

	return out, nil
}

// readLines returns every line of r without line terminators, dropping
// trailing blank lines.
func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}
