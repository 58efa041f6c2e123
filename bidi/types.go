package bidi

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds indicates a coordinate or rectangle outside a view's valid range.
var ErrOutOfBounds = errors.New("bidi: coordinate out of bounds")

// Coord is an integer 2D coordinate: X counts columns, Y counts rows.
// It is a value type, compared by value and usable as a map key.
type Coord struct {
	X, Y int
}

// XY is shorthand for constructing a Coord.
func XY(x, y int) Coord { return Coord{X: x, Y: y} }

// String implements fmt.Stringer as "(x,y)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Connectivity selects the neighbor set: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// conn4Offsets and conn8Offsets are fixed so that neighbor expansion order,
// and therefore discovery order in the worklist algorithms, is deterministic.
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the (dx,dy) neighbor offsets for the connectivity.
// The returned slice is shared and must not be mutated.
// Complexity: O(1).
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return conn8Offsets
	}

	return conn4Offsets
}

// Valid reports whether c is a known connectivity value.
func (c Connectivity) Valid() bool { return c == Conn4 || c == Conn8 }

// AppendNeighbors appends to dst the in-bounds neighbors of pos on a
// width×height grid, in the fixed offset order, and returns the extended
// slice. Passing a slice with capacity 8 avoids allocation.
// Complexity: O(d), d = 4 or 8.
func (c Connectivity) AppendNeighbors(dst []Coord, pos Coord, width, height int) []Coord {
	var nx, ny int
	for _, d := range c.Offsets() {
		nx, ny = pos.X+d[0], pos.Y+d[1]
		if nx < 0 || nx >= width || ny < 0 || ny >= height {
			continue
		}
		dst = append(dst, Coord{X: nx, Y: ny})
	}

	return dst
}

// boundsError wraps ErrOutOfBounds with the offending coordinate and the
// dimensions it was checked against.
func boundsError(x, y, w, h int) error {
	return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, w, h)
}
