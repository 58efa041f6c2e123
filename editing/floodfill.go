package editing

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bidigrid/bidi"
	"github.com/katalvlaran/bidigrid/grid"
)

// ErrNilView indicates a nil view was passed to FloodFill.
var ErrNilView = errors.New("editing: view is nil")

// BelongsFunc decides whether a fill expands from one cell to a neighbor.
// origin is the element at the fill's start coordinate, from is the
// element the fill is expanding out of, to is the candidate neighbor.
type BelongsFunc[T any] func(origin, from, to T) bool

// ActionFunc transforms an admitted cell; it receives the coordinate and
// the current value and returns the value to store.
type ActionFunc[T any] func(c bidi.Coord, val T) T

// fillState tracks the per-cell fill status. A cell rejected once by the
// predicate stays a border cell and is not re-evaluated from another
// direction.
type fillState uint8

const (
	fillUnvisited fillState = iota
	fillBorder
	fillAdmitted
)

// FloodFill grows a region from start: neighbors (under conn) are admitted
// iff belongs returns true, each admitted coordinate is visited at most
// once however many neighbors reach it, and action is applied exactly once
// per admitted coordinate, in visitation order. The predicate always
// observes pre-action values: the region is fully discovered before any
// cell is rewritten.
//
// The traversal uses an explicit FIFO worklist, never recursion.
//
// Returns the number of admitted cells (at least 1: the start cell is
// always admitted). Fails with bidi.ErrOutOfBounds if start is outside v.
// Complexity: O(W×H×d) time, O(W×H) memory.
func FloodFill[T any](v bidi.MutView[T], start bidi.Coord, conn bidi.Connectivity, belongs BelongsFunc[T], action ActionFunc[T]) (int, error) {
	if v == nil {
		return 0, ErrNilView
	}
	w, h := v.Width(), v.Height()
	if !bidi.BoundingRect[T](v).ContainsCoord(start) {
		return 0, fmt.Errorf("%w: start %s not in %dx%d", bidi.ErrOutOfBounds, start, w, h)
	}

	origin := bidi.MustAt[T](v, start.X, start.Y)

	// visited is a dense side grid sized to the view; it exists only for
	// the duration of this call.
	visited, err := grid.NewFixed[fillState](w, h)
	if err != nil {
		return 0, err
	}

	order := make([]bidi.Coord, 0, 64) // admitted coords, in visitation order
	queue := make([]bidi.Coord, 0, 64) // FIFO worklist, head-indexed
	head := 0

	bidi.MustSet[fillState](visited, start.X, start.Y, fillAdmitted)
	order = append(order, start)
	queue = append(queue, start)

	neighbors := make([]bidi.Coord, 0, 8)
	for head < len(queue) {
		cur := queue[head]
		head++

		from := bidi.MustAt[T](v, cur.X, cur.Y)
		neighbors = conn.AppendNeighbors(neighbors[:0], cur, w, h)
		for _, n := range neighbors {
			if bidi.MustAt[fillState](visited, n.X, n.Y) != fillUnvisited {
				continue
			}
			if belongs(origin, from, bidi.MustAt[T](v, n.X, n.Y)) {
				bidi.MustSet[fillState](visited, n.X, n.Y, fillAdmitted)
				order = append(order, n)
				queue = append(queue, n)
			} else {
				bidi.MustSet[fillState](visited, n.X, n.Y, fillBorder)
			}
		}
	}

	if action != nil {
		for _, c := range order {
			bidi.MustSet(v, c.X, c.Y, action(c, bidi.MustAt[T](v, c.X, c.Y)))
		}
	}

	return len(order), nil
}
