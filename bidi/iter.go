package bidi

import "iter"

// Iteration helpers. All sequences are finite, lazy and restartable:
// ranging over the same sequence twice replays it from the start. Order is
// row-major (y outer, x inner), matching the conceptual linear index
// y*width + x.

// Values returns a row-major sequence of the elements of v.
// Complexity: O(W×H) for a full drain.
func Values[T any](v View[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for y := 0; y < v.Height(); y++ {
			for x := 0; x < v.Width(); x++ {
				if !yield(MustAt(v, x, y)) {
					return
				}
			}
		}
	}
}

// Cells returns a row-major sequence of (coordinate, element) pairs of v.
func Cells[T any](v View[T]) iter.Seq2[Coord, T] {
	return RectCells(v, BoundingRect(v))
}

// RectCells returns a row-major sequence of (coordinate, element) pairs
// restricted to rect. The rect is clipped to v's bounds first, so a
// partially overlapping rect yields only the overlap and an empty overlap
// yields nothing. Coordinates are reported in v's coordinate space.
func RectCells[T any](v View[T], rect Rect) iter.Seq2[Coord, T] {
	clipped := rect.ClipTo(v.Width(), v.Height())

	return func(yield func(Coord, T) bool) {
		for y := clipped.Y; y < clipped.MaxY(); y++ {
			for x := clipped.X; x < clipped.MaxX(); x++ {
				if !yield(Coord{X: x, Y: y}, MustAt(v, x, y)) {
					return
				}
			}
		}
	}
}

// Collect drains Values(v) into a new row-major slice of length W×H.
func Collect[T any](v View[T]) []T {
	out := make([]T, 0, Area(v))
	for val := range Values(v) {
		out = append(out, val)
	}

	return out
}

// Find returns the coordinate of the first element (in row-major order)
// for which pred returns true, and false if no element matches.
func Find[T any](v View[T], pred func(T) bool) (Coord, bool) {
	for c, val := range Cells(v) {
		if pred(val) {
			return c, true
		}
	}

	return Coord{}, false
}
