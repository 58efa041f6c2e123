package grid

import (
	"github.com/katalvlaran/bidigrid/bidi"
)

// FixedGrid is a dense owned 2D container whose element count never
// changes after construction. It supports reshaping and the
// area-preserving in-place transforms, which makes it a fit for interop
// with constant-size backing (fixed tile maps, preallocated buffers).
// Structural edits (insert/remove/resize/crop) are deliberately absent.
type FixedGrid[T any] struct {
	w, h int
	data []T // flat backing storage, len is constant after construction
}

var _ bidi.MutView[int] = (*FixedGrid[int])(nil)

// NewFixed creates a width×height FixedGrid of zero values.
// Complexity: O(W×H).
func NewFixed[T any](width, height int) (*FixedGrid[T], error) {
	if width < 0 || height < 0 {
		return nil, ErrNegativeSize
	}
	if width == 0 || height == 0 {
		width, height = 0, 0
	}

	return &FixedGrid[T]{w: width, h: height, data: make([]T, width*height)}, nil
}

// NewFixedOf creates a FixedGrid from a rectangular nested slice of rows,
// deep copying the input. Rows of mismatched length yield
// ErrDimensionMismatch. Complexity: O(W×H).
func NewFixedOf[T any](rows [][]T) (*FixedGrid[T], error) {
	w, h, err := rowsDims(rows)
	if err != nil {
		return nil, err
	}

	return &FixedGrid[T]{w: w, h: h, data: flattenRows(rows, w, h)}, nil
}

// NewFixedFromFlat creates a FixedGrid adopting the given row-major
// buffer; its length must equal width×height.
func NewFixedFromFlat[T any](data []T, width, height int) (*FixedGrid[T], error) {
	if width < 0 || height < 0 {
		return nil, ErrNegativeSize
	}
	if len(data) != width*height {
		return nil, dimError("buffer length %d, want %d×%d=%d", len(data), width, height, width*height)
	}

	return &FixedGrid[T]{w: width, h: height, data: data}, nil
}

// Width returns the number of columns. Complexity: O(1).
func (g *FixedGrid[T]) Width() int { return g.w }

// Height returns the number of rows. Complexity: O(1).
func (g *FixedGrid[T]) Height() int { return g.h }

// Len returns the (constant) number of stored elements.
func (g *FixedGrid[T]) Len() int { return len(g.data) }

func (g *FixedGrid[T]) index(x, y int) (int, error) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return 0, boundsError(x, y, g.w, g.h)
	}

	return y*g.w + x, nil
}

// At returns the element at (x,y). Complexity: O(1).
func (g *FixedGrid[T]) At(x, y int) (T, error) {
	idx, err := g.index(x, y)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.data[idx], nil
}

// Set stores v at (x,y). Complexity: O(1).
func (g *FixedGrid[T]) Set(x, y int, v T) error {
	idx, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Swap exchanges the elements at a and b. Complexity: O(1).
func (g *FixedGrid[T]) Swap(a, b bidi.Coord) error {
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

// Reshape reinterprets the buffer as width×height without moving any
// element. The requested area must equal the current element count;
// otherwise ErrDimensionMismatch. Complexity: O(1).
func (g *FixedGrid[T]) Reshape(width, height int) error {
	if width < 0 || height < 0 {
		return ErrNegativeSize
	}
	if width*height != len(g.data) {
		return dimError("reshape to %d×%d=%d, have %d elements", width, height, width*height, len(g.data))
	}
	g.w, g.h = width, height

	return nil
}

// Flat returns the backing row-major buffer.
func (g *FixedGrid[T]) Flat() []T { return g.data }

// Clone returns a deep copy. Complexity: O(W×H).
func (g *FixedGrid[T]) Clone() *FixedGrid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)

	return &FixedGrid[T]{w: g.w, h: g.h, data: data}
}

// Transpose flips the grid over its diagonal in place, swapping width and
// height (the element count is unchanged). Complexity: O(W×H).
func (g *FixedGrid[T]) Transpose() {
	tmp := transposedFlat(g.data, g.w, g.h)
	copy(g.data, tmp)
	g.w, g.h = g.h, g.w
}

// Rotate90 rotates 90° counter-clockwise in place. Complexity: O(W×H).
func (g *FixedGrid[T]) Rotate90() {
	tmp := rotated90Flat(g.data, g.w, g.h)
	copy(g.data, tmp)
	g.w, g.h = g.h, g.w
}

// Rotate180 rotates 180° in place. Complexity: O(W×H).
func (g *FixedGrid[T]) Rotate180() {
	reverseFlat(g.data)
}

// Rotate270 rotates 270° counter-clockwise in place. Complexity: O(W×H).
func (g *FixedGrid[T]) Rotate270() {
	tmp := rotated270Flat(g.data, g.w, g.h)
	copy(g.data, tmp)
	g.w, g.h = g.h, g.w
}

// ReverseRows reverses every row in place.
func (g *FixedGrid[T]) ReverseRows() {
	for y := 0; y < g.h; y++ {
		reverseRowFlat(g.data, g.w, y)
	}
}

// ReverseColumns reverses every column in place.
func (g *FixedGrid[T]) ReverseColumns() {
	reverseRowOrderFlat(g.data, g.w, g.h)
}
