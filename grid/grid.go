package grid

import (
	"github.com/katalvlaran/bidigrid/bidi"
)

// Grid is a dense owned 2D container backed by a single contiguous
// row-major buffer (index = y*width + x). It has the best access locality
// of the storage kinds; structural edits in the middle shift O(area)
// elements.
type Grid[T any] struct {
	w, h int
	data []T // flat backing storage, len == w*h
}

// Compile-time contract conformance.
var _ bidi.MutView[int] = (*Grid[int])(nil)

// New creates a width×height Grid of zero values.
// Returns ErrNegativeSize for negative dimensions; zero is allowed and
// yields an empty grid.
// Complexity: O(W×H).
func New[T any](width, height int) (*Grid[T], error) {
	if width < 0 || height < 0 {
		return nil, ErrNegativeSize
	}
	if width == 0 || height == 0 {
		width, height = 0, 0
	}

	return &Grid[T]{w: width, h: height, data: make([]T, width*height)}, nil
}

// NewFilled creates a width×height Grid with every cell set to fill.
// Complexity: O(W×H).
func NewFilled[T any](width, height int, fill T) (*Grid[T], error) {
	g, err := New[T](width, height)
	if err != nil {
		return nil, err
	}
	for i := range g.data {
		g.data[i] = fill
	}

	return g, nil
}

// NewFunc creates a width×height Grid with each cell initialized to
// f(x, y). Complexity: O(W×H).
func NewFunc[T any](width, height int, f func(x, y int) T) (*Grid[T], error) {
	g, err := New[T](width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			g.data[y*g.w+x] = f(x, y)
		}
	}

	return g, nil
}

// NewOf creates a Grid from a rectangular nested slice of rows, deep
// copying the input. Rows of mismatched length yield ErrDimensionMismatch.
// Complexity: O(W×H).
func NewOf[T any](rows [][]T) (*Grid[T], error) {
	w, h, err := rowsDims(rows)
	if err != nil {
		return nil, err
	}

	return &Grid[T]{w: w, h: h, data: flattenRows(rows, w, h)}, nil
}

// NewFromFlat creates a Grid that adopts the given row-major buffer.
// The buffer length must equal width×height; it is not copied, so the
// caller hands over ownership.
func NewFromFlat[T any](data []T, width, height int) (*Grid[T], error) {
	if width < 0 || height < 0 {
		return nil, ErrNegativeSize
	}
	if len(data) != width*height {
		return nil, dimError("buffer length %d, want %d×%d=%d", len(data), width, height, width*height)
	}

	return &Grid[T]{w: width, h: height, data: data}, nil
}

// FromView materializes any view into a new Grid.
// Complexity: O(W×H).
func FromView[T any](v bidi.View[T]) *Grid[T] {
	return FromViewFunc(v, func(val T) T { return val })
}

// FromViewFunc materializes any view into a new Grid, mapping every
// element through f. Complexity: O(W×H).
func FromViewFunc[S, T any](v bidi.View[S], f func(S) T) *Grid[T] {
	w, h := v.Width(), v.Height()
	data := make([]T, 0, w*h)
	for val := range bidi.Values(v) {
		data = append(data, f(val))
	}

	return &Grid[T]{w: w, h: h, data: data}
}

// Width returns the number of columns. Complexity: O(1).
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows. Complexity: O(1).
func (g *Grid[T]) Height() int { return g.h }

// Len returns the number of stored elements (width×height).
func (g *Grid[T]) Len() int { return len(g.data) }

// index computes the flat offset for (x,y) or reports an out-of-bounds error.
func (g *Grid[T]) index(x, y int) (int, error) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return 0, boundsError(x, y, g.w, g.h)
	}

	return y*g.w + x, nil
}

// At returns the element at (x,y). Complexity: O(1).
func (g *Grid[T]) At(x, y int) (T, error) {
	idx, err := g.index(x, y)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.data[idx], nil
}

// Set stores v at (x,y). Complexity: O(1).
func (g *Grid[T]) Set(x, y int, v T) error {
	idx, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Swap exchanges the elements at a and b. Complexity: O(1).
func (g *Grid[T]) Swap(a, b bidi.Coord) error {
	ai, err := g.index(a.X, a.Y)
	if err != nil {
		return err
	}
	bi, err := g.index(b.X, b.Y)
	if err != nil {
		return err
	}
	g.data[ai], g.data[bi] = g.data[bi], g.data[ai]

	return nil
}

// Flat returns the backing row-major buffer. Mutating it mutates the grid;
// the slice is invalidated by any structural edit.
func (g *Grid[T]) Flat() []T { return g.data }

// Clone returns a deep copy. Complexity: O(W×H).
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)

	return &Grid[T]{w: g.w, h: g.h, data: data}
}

// PushRow appends a row at the bottom. On a non-empty grid the row length
// must equal the width; on an empty grid the row defines the width.
// Complexity: amortized O(W).
func (g *Grid[T]) PushRow(row []T) error {
	return g.InsertRow(g.h, row)
}

// PushCol appends a column at the right. On a non-empty grid the column
// length must equal the height; on an empty grid the column defines the
// height. Complexity: O(W×H) (shifts every row).
func (g *Grid[T]) PushCol(col []T) error {
	return g.InsertCol(g.w, col)
}

// InsertRow inserts a row before row index y (y == Height appends).
// Complexity: O(W×H) worst case (tail shift).
func (g *Grid[T]) InsertRow(y int, row []T) error {
	if y < 0 || y > g.h {
		return boundsError(0, y, g.w, g.h+1)
	}
	if g.h == 0 {
		if len(row) == 0 {
			return dimError("cannot insert an empty row into an empty grid")
		}
		g.w, g.h = len(row), 1
		g.data = append(g.data[:0], row...)

		return nil
	}
	if len(row) != g.w {
		return dimError("row length %d, want %d", len(row), g.w)
	}
	at := y * g.w
	g.data = append(g.data, row...)    // grow by one row
	copy(g.data[at+g.w:], g.data[at:]) // shift tail right
	copy(g.data[at:at+g.w], row)       // place the new row
	g.h++

	return nil
}

// InsertCol inserts a column before column index x (x == Width appends).
// Complexity: O(W×H) (every row shifts).
func (g *Grid[T]) InsertCol(x int, col []T) error {
	if x < 0 || x > g.w {
		return boundsError(x, 0, g.w+1, g.h)
	}
	if g.w == 0 {
		if len(col) == 0 {
			return dimError("cannot insert an empty column into an empty grid")
		}
		g.w, g.h = 1, len(col)
		g.data = append(g.data[:0], col...)

		return nil
	}
	if len(col) != g.h {
		return dimError("column length %d, want %d", len(col), g.h)
	}
	out := make([]T, 0, (g.w+1)*g.h)
	for y := 0; y < g.h; y++ {
		out = append(out, g.data[y*g.w:y*g.w+x]...)
		out = append(out, col[y])
		out = append(out, g.data[y*g.w+x:(y+1)*g.w]...)
	}
	g.data = out
	g.w++

	return nil
}

// RemoveRow removes row y and returns its elements.
// Complexity: O(W×H) worst case (tail shift).
func (g *Grid[T]) RemoveRow(y int) ([]T, error) {
	if y < 0 || y >= g.h {
		return nil, boundsError(0, y, g.w, g.h)
	}
	at := y * g.w
	removed := make([]T, g.w)
	copy(removed, g.data[at:at+g.w])
	g.data = append(g.data[:at], g.data[at+g.w:]...)
	g.h--
	if g.h == 0 {
		g.w = 0
	}

	return removed, nil
}

// RemoveCol removes column x and returns its elements.
// Complexity: O(W×H).
func (g *Grid[T]) RemoveCol(x int) ([]T, error) {
	if x < 0 || x >= g.w {
		return nil, boundsError(x, 0, g.w, g.h)
	}
	removed := make([]T, 0, g.h)
	out := g.data[:0]
	for y := 0; y < g.h; y++ {
		removed = append(removed, g.data[y*g.w+x])
		out = append(out, g.data[y*g.w:y*g.w+x]...)
		out = append(out, g.data[y*g.w+x+1:(y+1)*g.w]...)
	}
	g.data = out
	g.w--
	if g.w == 0 {
		g.h = 0
	}

	return removed, nil
}

// PopRow removes and returns the bottom row; ok is false on an empty grid.
func (g *Grid[T]) PopRow() (row []T, ok bool) {
	if g.h == 0 {
		return nil, false
	}
	row, _ = g.RemoveRow(g.h - 1)

	return row, true
}

// PopCol removes and returns the right-most column; ok is false on an
// empty grid.
func (g *Grid[T]) PopCol() (col []T, ok bool) {
	if g.w == 0 {
		return nil, false
	}
	col, _ = g.RemoveCol(g.w - 1)

	return col, true
}

// Resize grows or shrinks the grid to width×height, keeping the
// overlapping region and filling new cells with fill.
// Complexity: O(max(old, new) area).
func (g *Grid[T]) Resize(width, height int, fill T) error {
	return g.ResizeFunc(width, height, func(int, int) T { return fill })
}

// ResizeFunc is Resize with a generator for new cells.
func (g *Grid[T]) ResizeFunc(width, height int, f func(x, y int) T) error {
	if width < 0 || height < 0 {
		return ErrNegativeSize
	}
	if width == 0 || height == 0 {
		g.w, g.h, g.data = 0, 0, g.data[:0]

		return nil
	}
	out := make([]T, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < g.w && y < g.h {
				out[y*width+x] = g.data[y*g.w+x]
			} else {
				out[y*width+x] = f(x, y)
			}
		}
	}
	g.w, g.h, g.data = width, height, out

	return nil
}

// Transpose flips the grid over its diagonal in place, swapping width and
// height. Complexity: O(W×H).
func (g *Grid[T]) Transpose() {
	g.data = transposedFlat(g.data, g.w, g.h)
	g.w, g.h = g.h, g.w
}

// Rotate90 rotates the grid 90° counter-clockwise in place, swapping
// width and height. Complexity: O(W×H).
func (g *Grid[T]) Rotate90() {
	g.data = rotated90Flat(g.data, g.w, g.h)
	g.w, g.h = g.h, g.w
}

// Rotate180 rotates the grid 180° in place. Complexity: O(W×H).
func (g *Grid[T]) Rotate180() {
	reverseFlat(g.data)
}

// Rotate270 rotates the grid 270° counter-clockwise (90° clockwise) in
// place, swapping width and height. Complexity: O(W×H).
func (g *Grid[T]) Rotate270() {
	g.data = rotated270Flat(g.data, g.w, g.h)
	g.w, g.h = g.h, g.w
}

// ReverseRows reverses every row in place (flip over a vertical axis).
func (g *Grid[T]) ReverseRows() {
	for y := 0; y < g.h; y++ {
		reverseRowFlat(g.data, g.w, y)
	}
}

// ReverseColumns reverses every column in place (flip over a horizontal axis).
func (g *Grid[T]) ReverseColumns() {
	reverseRowOrderFlat(g.data, g.w, g.h)
}

// ReverseRow reverses a single row in place.
func (g *Grid[T]) ReverseRow(y int) error {
	if y < 0 || y >= g.h {
		return boundsError(0, y, g.w, g.h)
	}
	reverseRowFlat(g.data, g.w, y)

	return nil
}

// ReverseCol reverses a single column in place.
func (g *Grid[T]) ReverseCol(x int) error {
	if x < 0 || x >= g.w {
		return boundsError(x, 0, g.w, g.h)
	}
	reverseColFlat(g.data, g.w, g.h, x)

	return nil
}

// Crop discards every element outside rect and shrinks the grid to rect's
// size. The rect must be fully contained in the current bounds.
// Complexity: O(rect area).
func (g *Grid[T]) Crop(rect bidi.Rect) error {
	bounds := bidi.RectOf(0, 0, g.w, g.h)
	if rect.Width < 0 || rect.Height < 0 || !bounds.ContainsRect(rect) {
		return boundsError(rect.X, rect.Y, g.w, g.h)
	}
	if rect.Empty() {
		g.w, g.h, g.data = 0, 0, g.data[:0]

		return nil
	}
	g.data = croppedFlat(g.data, g.w, rect.X, rect.Y, rect.Width, rect.Height)
	g.w, g.h = rect.Width, rect.Height

	return nil
}
