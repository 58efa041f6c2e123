// Package pathfind implements shortest-path search over any bidi.View
// treated as a grid graph: every in-bounds coordinate is a node, edges
// connect a node to its configured neighbor set (Conn4 or Conn8), and the
// caller's cost function prices each movement (or rejects it entirely).
//
// What:
//
//   - Dijkstra: single source, any number of destinations in one run.
//     With no destinations it computes costs to every reachable cell;
//     with destinations it stops as soon as all of them are finalized.
//     Dijkstra's finalized-cost order is monotonic, so no per-destination
//     restart is needed.
//   - AStar: single source, single destination; the frontier is ordered
//     by accumulated cost plus a caller heuristic. The heuristic must be
//     admissible (never overestimate the true remaining cost) for the
//     result to be optimal.
//
// Both share the relaxation loop, the binary-heap frontier with lazy
// decrease-key, and path reconstruction by predecessor links. Ties in
// frontier priority break by discovery order, so runs are deterministic.
//
// Unlike the editing package, which clips silently, an out-of-range start
// or destination here is a caller bug and fails with bidi.ErrOutOfBounds.
//
// Errors:
//
//   - ErrNilView, ErrNilCostFunc, ErrBadConnectivity: invalid inputs.
//   - bidi.ErrOutOfBounds: start or a destination outside the view.
//   - ErrNegativeCost: the cost function produced a negative or NaN cost.
//   - ErrUnreachable: the frontier emptied with destinations unreached.
//
// Complexity:
//
//   - Time:  O(E log V), V and E bounded by grid area and connectivity.
//   - Space: O(V) for per-cell search state plus the frontier.
package pathfind
