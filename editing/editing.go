package editing

import (
	"github.com/katalvlaran/bidigrid/bidi"
)

// Copy copies the from rectangle of src into dst starting at the to
// origin. The rectangle is clipped to the source's bounds and the write is
// clipped to the destination's bounds; the rectangles need not be the same
// size, and only the intersection of the clipped source and the destination
// capacity is copied. Returns the number of cells written.
// Complexity: O(clipped area).
func Copy[T any](src bidi.View[T], from bidi.Rect, dst bidi.MutView[T], to bidi.Coord) int {
	return Blend(src, from, dst, to, func(_, s T) T { return s })
}

// CloneOver is Copy for element types that need deep copying: every
// written cell is clone(source_cell). Returns the number of cells written.
func CloneOver[T any](src bidi.View[T], from bidi.Rect, dst bidi.MutView[T], to bidi.Coord, clone func(T) T) int {
	return Blend(src, from, dst, to, func(_, s T) T { return clone(s) })
}

// Blend iterates like Copy but replaces each destination cell with
// combine(dest_cell, source_cell) instead of overwriting, enabling
// caller-defined compositing (additive, masked, alpha, ...). The source
// and destination element types may differ. Returns the number of cells
// written. Complexity: O(clipped area).
func Blend[S, D any](src bidi.View[S], from bidi.Rect, dst bidi.MutView[D], to bidi.Coord, combine func(D, S) D) int {
	// Clip the requested rectangle to the source's bounds first.
	sr := from.ClipTo(src.Width(), src.Height())
	if sr.Empty() {
		return 0
	}
	// Then clip the landing rectangle to the destination's bounds. The
	// shift between dr and the raw landing origin tells how much of the
	// source rectangle was cut on the top/left.
	dr := bidi.RectOf(to.X, to.Y, sr.Width, sr.Height).ClipTo(dst.Width(), dst.Height())
	if dr.Empty() {
		return 0
	}
	offX, offY := sr.X+(dr.X-to.X), sr.Y+(dr.Y-to.Y)

	written := 0
	for dy := 0; dy < dr.Height; dy++ {
		for dx := 0; dx < dr.Width; dx++ {
			s := bidi.MustAt(src, offX+dx, offY+dy)
			d := bidi.MustAt[D](dst, dr.X+dx, dr.Y+dy)
			bidi.MustSet(dst, dr.X+dx, dr.Y+dy, combine(d, s))
			written++
		}
	}

	return written
}

// Fill sets every cell of the rect (clipped to dst's bounds) to v and
// returns the number of cells written. Complexity: O(clipped area).
func Fill[T any](dst bidi.MutView[T], rect bidi.Rect, v T) int {
	r := rect.ClipTo(dst.Width(), dst.Height())
	for y := r.Y; y < r.MaxY(); y++ {
		for x := r.X; x < r.MaxX(); x++ {
			bidi.MustSet(dst, x, y, v)
		}
	}

	return r.Area()
}
