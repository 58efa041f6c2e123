package pathfind

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/bidigrid/bidi"
	"github.com/katalvlaran/bidigrid/grid"
)

// Dijkstra computes minimum-cost paths from start over v, relaxing edges
// in increasing order of accumulated cost. With WithDestinations the run
// stops once every destination has been finalized and fails with
// ErrUnreachable if the frontier empties first; without destinations it
// finalizes every reachable cell and never reports ErrUnreachable.
//
// Validation order: nil view, nil cost function, bad connectivity, start
// out of bounds, destination out of bounds.
//
// Complexity: O(E log V) time, O(V) memory.
func Dijkstra[T any](v bidi.View[T], start bidi.Coord, costFn CostFunc[T], opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r, err := newRunner(v, start, costFn, nil, cfg)
	if err != nil {
		return nil, err
	}

	return r.run()
}

// AStar computes the minimum-cost path from start to dest over v. The
// frontier is ordered by accumulated cost plus h(node, dest); with an
// admissible h the destination's cost is minimal when it is popped, which
// is when the run stops. A nil h degrades to Dijkstra. Ties break by
// discovery order, identically to Dijkstra, so both agree on cost and on
// the path for the same inputs.
//
// Any destinations configured via options are replaced by dest.
// Fails with ErrUnreachable if the frontier empties before dest is popped.
//
// Complexity: O(E log V) time, O(V) memory.
func AStar[T any](v bidi.View[T], start, dest bidi.Coord, costFn CostFunc[T], h Heuristic, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Destinations = []bidi.Coord{dest}

	r, err := newRunner(v, start, costFn, h, cfg)
	if err != nil {
		return nil, err
	}

	return r.run()
}

// runner holds the mutable state of one search run. Cells are addressed
// by flat row-major index to keep the hot loop allocation-free.
type runner[T any] struct {
	view   bidi.View[T]
	w, h   int
	start  bidi.Coord
	costFn CostFunc[T]
	heur   Heuristic // nil for Dijkstra
	conn   bidi.Connectivity

	dests     map[int]struct{} // flat indices still to finalize
	heurDest  bidi.Coord       // heuristic target, valid when heur != nil
	tentative []float64        // best-known accumulated cost, +Inf undiscovered
	prev      []int            // predecessor flat index
	known     []bool           // finalized flag
	pq        frontier
	seq       int // discovery counter for deterministic tie-breaking
}

func newRunner[T any](v bidi.View[T], start bidi.Coord, costFn CostFunc[T], h Heuristic, cfg Options) (*runner[T], error) {
	if v == nil {
		return nil, ErrNilView
	}
	if costFn == nil {
		return nil, ErrNilCostFunc
	}
	if !cfg.Conn.Valid() {
		return nil, ErrBadConnectivity
	}
	bounds := bidi.BoundingRect(v)
	if !bounds.ContainsCoord(start) {
		return nil, fmt.Errorf("%w: start %s not in %dx%d", bidi.ErrOutOfBounds, start, bounds.Width, bounds.Height)
	}
	dests := make(map[int]struct{}, len(cfg.Destinations))
	for _, d := range cfg.Destinations {
		if !bounds.ContainsCoord(d) {
			return nil, fmt.Errorf("%w: destination %s not in %dx%d", bidi.ErrOutOfBounds, d, bounds.Width, bounds.Height)
		}
		dests[d.Y*bounds.Width+d.X] = struct{}{}
	}

	n := bounds.Area()
	r := &runner[T]{
		view:      v,
		w:         bounds.Width,
		h:         bounds.Height,
		start:     start,
		costFn:    costFn,
		heur:      h,
		conn:      cfg.Conn,
		dests:     dests,
		tentative: make([]float64, n),
		prev:      make([]int, n),
		known:     make([]bool, n),
		pq:        make(frontier, 0, bounds.Width+bounds.Height),
	}
	for i := range r.tentative {
		r.tentative[i] = math.Inf(1)
		r.prev[i] = -1
	}
	if h != nil {
		// AStar guarantees exactly one destination.
		r.heurDest = cfg.Destinations[0]
	}

	return r, nil
}

// run executes the shared relaxation loop and packages the result.
func (r *runner[T]) run() (*Result, error) {
	startIdx := r.start.Y*r.w + r.start.X
	r.tentative[startIdx] = 0
	r.prev[startIdx] = startIdx
	heap.Init(&r.pq)
	heap.Push(&r.pq, frontierItem{estimated: r.estimate(startIdx, 0), actual: 0, seq: r.seq, pos: startIdx, origin: startIdx})
	r.seq++

	remaining := len(r.dests)
	neighbors := make([]bidi.Coord, 0, 8)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(frontierItem)
		if r.known[item.pos] {
			continue // stale lazy-decrease-key entry
		}
		// Finalize: item.actual is the minimal accumulated cost to pos.
		r.known[item.pos] = true
		r.tentative[item.pos] = item.actual
		r.prev[item.pos] = item.origin

		if _, isDest := r.dests[item.pos]; isDest {
			delete(r.dests, item.pos)
			remaining--
			if remaining == 0 {
				break
			}
		}

		if err := r.relax(item, &neighbors); err != nil {
			return nil, err
		}
	}

	if remaining > 0 {
		return nil, fmt.Errorf("%w: %d destination(s) not reached", ErrUnreachable, remaining)
	}

	return r.result(), nil
}

// relax examines the neighbors of the just-finalized item and pushes a
// frontier entry for every strictly cheaper path found.
func (r *runner[T]) relax(item frontierItem, neighbors *[]bidi.Coord) error {
	pos := bidi.XY(item.pos%r.w, item.pos/r.w)
	from := bidi.MustAt(r.view, pos.X, pos.Y)

	*neighbors = r.conn.AppendNeighbors((*neighbors)[:0], pos, r.w, r.h)
	for _, n := range *neighbors {
		ni := n.Y*r.w + n.X
		if r.known[ni] {
			continue
		}
		to := bidi.MustAt(r.view, n.X, n.Y)
		cost, ok := r.costFn(from, pos, to, n)
		if !ok {
			continue // impassable edge
		}
		if cost < 0 || math.IsNaN(cost) {
			return fmt.Errorf("%w: %s→%s cost=%v", ErrNegativeCost, pos, n, cost)
		}
		next := item.actual + cost
		if next >= r.tentative[ni] {
			continue // not strictly better; avoids duplicate pushes on ties
		}
		r.tentative[ni] = next
		r.prev[ni] = item.pos
		heap.Push(&r.pq, frontierItem{
			estimated: r.estimate(ni, next),
			actual:    next,
			seq:       r.seq,
			pos:       ni,
			origin:    item.pos,
		})
		r.seq++
	}

	return nil
}

// estimate returns the frontier priority for a node with accumulated cost
// actual: the cost itself for Dijkstra, cost plus heuristic for A*. A
// non-finite heuristic value is treated as zero rather than corrupting
// the heap order.
func (r *runner[T]) estimate(pos int, actual float64) float64 {
	if r.heur == nil {
		return actual
	}
	est := r.heur(bidi.XY(pos%r.w, pos/r.w), r.heurDest)
	if math.IsNaN(est) || math.IsInf(est, 0) || est < 0 {
		est = 0
	}

	return actual + est
}

// result converts the flat search state into the exported Result.
func (r *runner[T]) result() *Result {
	tiles := make([]Tile, len(r.tentative))
	for i := range tiles {
		if !r.known[i] {
			continue
		}
		tiles[i] = Tile{
			Cost:  r.tentative[i],
			Prev:  bidi.XY(r.prev[i]%r.w, r.prev[i]/r.w),
			Known: true,
		}
	}
	tg, err := grid.NewFixedFromFlat(tiles, r.w, r.h)
	if err != nil {
		panic("pathfind: result grid sizing: " + err.Error())
	}

	return &Result{Source: r.start, Tiles: tg}
}
