package grid

import "slices"

// Flat row-major layout helpers shared by Grid, FixedGrid and MutSlice.
// All permutations preserve element count; the buffer-returning ones build
// the permuted layout in a temporary buffer so the caller can either adopt
// it (owned storage) or copy it back over a borrowed span.

// rowsDims validates that rows form a rectangle and returns its size.
// A grid with zero rows is valid and empty.
func rowsDims[T any](rows [][]T) (width, height int, err error) {
	height = len(rows)
	if height == 0 {
		return 0, 0, nil
	}
	width = len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return 0, 0, dimError("row %d has length %d, want %d", y, len(row), width)
		}
	}
	if width == 0 {
		return 0, 0, nil
	}

	return width, height, nil
}

// flattenRows copies rectangular rows into a single row-major buffer.
func flattenRows[T any](rows [][]T, width, height int) []T {
	data := make([]T, 0, width*height)
	for _, row := range rows {
		data = append(data, row...)
	}

	return data
}

// transposedFlat returns a new buffer holding data (w×h) transposed (h×w).
// out[x*h+y] = data[y*w+x] for every in-range (x,y).
func transposedFlat[T any](data []T, w, h int) []T {
	out := make([]T, len(data))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[x*h+y] = data[y*w+x]
		}
	}

	return out
}

// rotated90Flat returns a new buffer holding data (w×h) rotated 90°
// counter-clockwise (the result is h×w): out(x,y) = data(w-1-y, x).
func rotated90Flat[T any](data []T, w, h int) []T {
	out := make([]T, len(data))
	for y := 0; y < w; y++ { // new height is w
		for x := 0; x < h; x++ { // new width is h
			out[y*h+x] = data[x*w+(w-1-y)]
		}
	}

	return out
}

// rotated270Flat returns a new buffer holding data (w×h) rotated 270°
// counter-clockwise (the result is h×w): out(x,y) = data(y, h-1-x).
func rotated270Flat[T any](data []T, w, h int) []T {
	out := make([]T, len(data))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			out[y*h+x] = data[(h-1-x)*w+y]
		}
	}

	return out
}

// reverseFlat rotates data by 180° in place; for a row-major layout that
// is exactly reversing the buffer.
func reverseFlat[T any](data []T) {
	slices.Reverse(data)
}

// reverseRowFlat reverses one row of a w-wide buffer in place.
func reverseRowFlat[T any](data []T, w, y int) {
	slices.Reverse(data[y*w : (y+1)*w])
}

// reverseColFlat reverses one column of a w×h buffer in place.
func reverseColFlat[T any](data []T, w, h, x int) {
	for top, bot := 0, h-1; top < bot; top, bot = top+1, bot-1 {
		data[top*w+x], data[bot*w+x] = data[bot*w+x], data[top*w+x]
	}
}

// reverseRowOrderFlat swaps whole rows of a w×h buffer in place (flip over
// a horizontal axis).
func reverseRowOrderFlat[T any](data []T, w, h int) {
	for top, bot := 0, h-1; top < bot; top, bot = top+1, bot-1 {
		for x := 0; x < w; x++ {
			data[top*w+x], data[bot*w+x] = data[bot*w+x], data[top*w+x]
		}
	}
}

// croppedFlat returns a new buffer holding only rect of a w-wide buffer.
// The rect must already be validated against the buffer's bounds.
func croppedFlat[T any](data []T, w int, rx, ry, rw, rh int) []T {
	out := make([]T, 0, rw*rh)
	for y := ry; y < ry+rh; y++ {
		out = append(out, data[y*w+rx:y*w+rx+rw]...)
	}

	return out
}
