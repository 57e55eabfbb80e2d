package stategraph

import (
	"fmt"
	"strings"
)

// Heading is a compass direction, or NoHeading for models that ignore it.
type Heading uint8

// Headings in clockwise order; Right() is +1, Left() is -1 (mod 4).
const (
	North Heading = iota
	East
	South
	West
	NoHeading
)

// numHeadings is the number of real compass headings.
const numHeadings = 4

// deltas is indexed by Heading. Y grows to the south.
var deltas = [numHeadings][2]int{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

var headingNames = [...]string{
	North:     "N",
	East:      "E",
	South:     "S",
	West:      "W",
	NoHeading: "-",
}

// Headings lists the four compass headings in clockwise order.
func Headings() [numHeadings]Heading {
	return [numHeadings]Heading{North, East, South, West}
}

// Valid reports whether h is one of the four compass headings.
func (h Heading) Valid() bool { return h < numHeadings }

// Delta returns the (dx, dy) step of a forward move. NoHeading yields (0, 0).
func (h Heading) Delta() (dx, dy int) {
	if !h.Valid() {
		return 0, 0
	}
	d := deltas[h]

	return d[0], d[1]
}

// Right returns h rotated 90° clockwise.
func (h Heading) Right() Heading {
	if !h.Valid() {
		return h
	}

	return (h + 1) % numHeadings
}

// Left returns h rotated 90° counter-clockwise.
func (h Heading) Left() Heading {
	if !h.Valid() {
		return h
	}

	return (h + numHeadings - 1) % numHeadings
}

// Reverse returns h rotated 180°.
func (h Heading) Reverse() Heading {
	if !h.Valid() {
		return h
	}

	return (h + 2) % numHeadings
}

// String returns the one-letter compass name.
func (h Heading) String() string {
	if int(h) < len(headingNames) {
		return headingNames[h]
	}

	return fmt.Sprintf("Heading(%d)", uint8(h))
}

// ParseHeading accepts N, E, S, W (or north, east, ...), case-insensitively.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N", "NORTH":
		return North, nil
	case "E", "EAST":
		return East, nil
	case "S", "SOUTH":
		return South, nil
	case "W", "WEST":
		return West, nil
	}

	return NoHeading, fmt.Errorf("%w: %q", ErrBadHeading, s)
}
