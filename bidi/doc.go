// Package bidi defines the primitives shared by every bidigrid package:
// integer coordinates, axis-aligned rectangles, the neighbor connectivity
// model, and the View capability contract that all storage kinds implement.
//
// What:
//
//   - Coord and Rect: value types with containment, intersection and
//     clipping arithmetic.
//   - View[T] / MutView[T]: the polymorphism boundary. Algorithms in
//     editing and pathfind are written once against {Width, Height, At,
//     Set} and never against a concrete storage kind.
//   - Connectivity: Conn4 (orthogonal) or Conn8 (orthogonal + diagonal)
//     neighbor sets, used by flood fill and pathfinding.
//   - Lazy transforms: Transposed, Rotated90/180/270, ReversedRows,
//     ReversedColumns and Cropped wrap a source view and remap requested
//     coordinates without copying. Mutable counterparts write back through
//     the same remap.
//   - Iteration: Values, Cells and RectCells produce finite, restartable
//     row-major sequences over any view.
//
// Why:
//
//   - Tile maps, images and grids need efficient random access plus the
//     classic spatial algorithms, without committing to one memory layout.
//
// Errors:
//
//   - ErrOutOfBounds: a coordinate or rectangle falls outside a view's
//     valid range. Out-of-range access is never clamped or wrapped.
//
// Concurrency: every type in this package is a value or a stateless
// wrapper; read-only views may be shared by concurrent readers, mutable
// views require exclusive access for the duration of a mutating call.
package bidi
