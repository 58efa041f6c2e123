package pathfind

import (
	"fmt"

	"github.com/katalvlaran/bidigrid/bidi"
	"github.com/katalvlaran/bidigrid/grid"
)

// Tile is the per-cell outcome of a search run.
type Tile struct {
	// Cost is the accumulated cost from the source; valid when Known.
	Cost float64
	// Prev is the predecessor coordinate on the best path to this cell;
	// the source is its own predecessor.
	Prev bidi.Coord
	// Known reports whether the cell was finalized by the search. Cells
	// never reached, or skipped by early termination, are not Known.
	Known bool
}

// Result holds the outcome of a Dijkstra or AStar run. The per-cell data
// lives in a dense grid sized to the searched view; it is owned by the
// result and valid independently of the view searched.
type Result struct {
	// Source is the coordinate the search started from.
	Source bidi.Coord
	// Tiles maps every coordinate of the searched view to its Tile.
	Tiles *grid.FixedGrid[Tile]
}

// Reached reports whether the search finalized a cost for c.
// Complexity: O(1).
func (r *Result) Reached(c bidi.Coord) bool {
	t, err := r.Tiles.At(c.X, c.Y)

	return err == nil && t.Known
}

// CostTo returns the finalized accumulated cost to c; ok is false if c is
// out of range or was never reached. Complexity: O(1).
func (r *Result) CostTo(c bidi.Coord) (cost float64, ok bool) {
	t, err := r.Tiles.At(c.X, c.Y)
	if err != nil || !t.Known {
		return 0, false
	}

	return t.Cost, true
}

// PathTo reconstructs the best path from the source to c by walking
// predecessor links and reversing the walk. The returned path starts at
// the source and ends at c; its cost equals CostTo(c).
// Fails with bidi.ErrOutOfBounds for an out-of-range c and with
// ErrUnreachable if the search never reached c.
// Complexity: O(path length).
func (r *Result) PathTo(c bidi.Coord) ([]bidi.Coord, error) {
	t, err := r.Tiles.At(c.X, c.Y)
	if err != nil {
		return nil, err
	}
	if !t.Known {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, c)
	}

	path := []bidi.Coord{c}
	limit := r.Tiles.Len() // a longer chain means a corrupted predecessor graph
	for cur := c; cur != r.Source; {
		cur = bidi.MustAt[Tile](r.Tiles, cur.X, cur.Y).Prev
		path = append(path, cur)
		if len(path) > limit {
			panic("pathfind: predecessor cycle in search result")
		}
	}
	// Reverse: predecessor links run destination → source.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
