// Package grid provides the concrete storage kinds behind the bidi.View
// contract: owned and borrowed, dense and jagged. The algorithm packages
// (editing, pathfind) never depend on a concrete kind; pick the layout by
// mutation cost and interop needs.
//
// What:
//
//   - Grid[T]: dense owned storage in a single contiguous row-major buffer.
//     Best locality; row/column insertion shifts O(area) elements.
//   - FixedGrid[T]: dense owned storage of constant length. Supports
//     Reshape and the area-preserving in-place transforms; no insertion.
//   - RowGrid[T]: one buffer per row. Cheap middle row insertion, column
//     operations cost O(row length) per row.
//   - Slice[T] / MutSlice[T]: non-owning views over an externally owned
//     flat buffer. Zero-copy interop; fixed size, in-place transform only.
//     The caller owns the buffer and must keep it alive for the lifetime
//     of the view; a MutSlice must be the only writer for that span.
//
// Construction:
//
//   - NewOf / NewRowsOf / NewFixedOf accept a rectangular nested slice of
//     rows and reject rows of mismatched length with ErrDimensionMismatch.
//   - NewSlice / NewMutSlice accept a flat buffer plus explicit width and
//     height and reject buffers whose length differs from width×height.
//
// In-place transforms:
//
//   - Transpose, Rotate90, Rotate180, Rotate270 physically relocate
//     elements (through a temporary buffer where the layout cannot reshape
//     losslessly) and update the stored dimensions.
//   - Crop (where supported) discards elements outside the target rect and
//     shrinks the stored dimensions; a rect not fully contained in the
//     current bounds is an error.
//
// Errors:
//
//   - ErrDimensionMismatch: non-rectangular row input, flat-buffer length
//     disagreeing with width×height, row/column arguments of the wrong
//     length, or a Reshape whose area differs from the element count.
//   - bidi.ErrOutOfBounds: any coordinate-taking method on an out-of-range
//     coordinate.
package grid
