package pathfind

import (
	"errors"

	"github.com/katalvlaran/bidigrid/bidi"
)

// Sentinel errors returned by the pathfinding entry points.
var (
	// ErrNilView indicates a nil view was passed.
	ErrNilView = errors.New("pathfind: view is nil")

	// ErrNilCostFunc indicates a nil cost function was passed.
	ErrNilCostFunc = errors.New("pathfind: cost function is nil")

	// ErrBadConnectivity indicates an unknown Connectivity value.
	ErrBadConnectivity = errors.New("pathfind: unknown connectivity")

	// ErrNegativeCost indicates the cost function produced a negative or
	// NaN cost. Dijkstra and A* require non-negative edge costs; an
	// impassable edge is expressed by returning ok=false, not by a
	// special cost value.
	ErrNegativeCost = errors.New("pathfind: negative or NaN edge cost")

	// ErrUnreachable indicates the frontier emptied before every requested
	// destination was reached.
	ErrUnreachable = errors.New("pathfind: destination unreachable")
)

// CostFunc prices the movement between two neighboring cells. Both the
// elements and their coordinates are passed for convenience. Returning
// ok=false rejects the movement entirely (a wall); costs must be
// non-negative and finite.
type CostFunc[T any] func(from T, fromPos bidi.Coord, to T, toPos bidi.Coord) (cost float64, ok bool)

// Heuristic estimates the remaining cost between two coordinates. For A*
// optimality it must be admissible: never greater than the true remaining
// cost. Manhattan is the natural admissible choice for Conn4 unit grids,
// Chebyshev for Conn8.
type Heuristic func(from, to bidi.Coord) float64

// Manhattan returns |dx|+|dy|, admissible for Conn4 with cost ≥ 1 per step.
func Manhattan(from, to bidi.Coord) float64 {
	return float64(abs(from.X-to.X) + abs(from.Y-to.Y))
}

// Chebyshev returns max(|dx|,|dy|), admissible for Conn8 with cost ≥ 1 per step.
func Chebyshev(from, to bidi.Coord) float64 {
	return float64(max(abs(from.X-to.X), abs(from.Y-to.Y)))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// Options configures a search run.
//
// Conn         – neighbor set: bidi.Conn4 (default) or bidi.Conn8.
// Destinations – coordinates the search must finalize before stopping.
//
//	Empty means exhaustive: compute costs to every reachable
//	cell (Dijkstra only; AStar always has exactly one).
type Options struct {
	Conn         bidi.Connectivity
	Destinations []bidi.Coord
}

// Option is a functional option for configuring a search run.
type Option func(*Options)

// WithConnectivity selects the neighbor set (default bidi.Conn4).
func WithConnectivity(c bidi.Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithDestinations sets the destinations a Dijkstra run must reach.
// Passing none keeps the run exhaustive.
func WithDestinations(dests ...bidi.Coord) Option {
	return func(o *Options) { o.Destinations = append(o.Destinations, dests...) }
}

// DefaultOptions returns the defaults: Conn4, no destinations.
func DefaultOptions() Options {
	return Options{Conn: bidi.Conn4}
}
