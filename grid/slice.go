package grid

import (
	"github.com/katalvlaran/bidigrid/bidi"
)

// Slice is a non-owning read-only view over an externally owned flat
// row-major buffer. The caller owns the buffer and must keep it alive and
// unmutated for as long as the view is used; the view itself never copies
// or mutates it.
type Slice[T any] struct {
	w, h int
	data []T
}

var _ bidi.View[int] = (*Slice[int])(nil)

// NewSlice wraps data as a width×height read-only view. The buffer length
// must equal width×height; otherwise ErrDimensionMismatch.
// Complexity: O(1), zero copies.
func NewSlice[T any](data []T, width, height int) (*Slice[T], error) {
	if width < 0 || height < 0 {
		return nil, ErrNegativeSize
	}
	if len(data) != width*height {
		return nil, dimError("buffer length %d, want %d×%d=%d", len(data), width, height, width*height)
	}

	return &Slice[T]{w: width, h: height, data: data}, nil
}

// Width returns the number of columns. Complexity: O(1).
func (s *Slice[T]) Width() int { return s.w }

// Height returns the number of rows. Complexity: O(1).
func (s *Slice[T]) Height() int { return s.h }

// At returns the element at (x,y). Complexity: O(1).
func (s *Slice[T]) At(x, y int) (T, error) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		var zero T
		return zero, boundsError(x, y, s.w, s.h)
	}

	return s.data[y*s.w+x], nil
}

// Flat returns the wrapped buffer.
func (s *Slice[T]) Flat() []T { return s.data }

// MutSlice is a non-owning mutable view over an externally owned flat
// row-major buffer. While a MutSlice is in use it must be the only writer
// of the buffer. The size is fixed: only Set, Swap and the area-preserving
// in-place transforms are available.
type MutSlice[T any] struct {
	w, h int
	data []T
}

var _ bidi.MutView[int] = (*MutSlice[int])(nil)

// NewMutSlice wraps data as a width×height mutable view. The buffer
// length must equal width×height; otherwise ErrDimensionMismatch.
// Complexity: O(1), zero copies.
func NewMutSlice[T any](data []T, width, height int) (*MutSlice[T], error) {
	if width < 0 || height < 0 {
		return nil, ErrNegativeSize
	}
	if len(data) != width*height {
		return nil, dimError("buffer length %d, want %d×%d=%d", len(data), width, height, width*height)
	}

	return &MutSlice[T]{w: width, h: height, data: data}, nil
}

// Width returns the number of columns. Complexity: O(1).
func (s *MutSlice[T]) Width() int { return s.w }

// Height returns the number of rows. Complexity: O(1).
func (s *MutSlice[T]) Height() int { return s.h }

func (s *MutSlice[T]) index(x, y int) (int, error) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return 0, boundsError(x, y, s.w, s.h)
	}

	return y*s.w + x, nil
}

// At returns the element at (x,y). Complexity: O(1).
func (s *MutSlice[T]) At(x, y int) (T, error) {
	idx, err := s.index(x, y)
	if err != nil {
		var zero T
		return zero, err
	}

	return s.data[idx], nil
}

// Set stores v at (x,y) in the underlying buffer. Complexity: O(1).
func (s *MutSlice[T]) Set(x, y int, v T) error {
	idx, err := s.index(x, y)
	if err != nil {
		return err
	}
	s.data[idx] = v

	return nil
}

// Swap exchanges the elements at a and b. Complexity: O(1).
func (s *MutSlice[T]) Swap(a, b bidi.Coord) error {
	ai, err := s.index(a.X, a.Y)
	if err != nil {
		return err
	}
	bi, err := s.index(b.X, b.Y)
	if err != nil {
		return err
	}
	s.data[ai], s.data[bi] = s.data[bi], s.data[ai]

	return nil
}

// Flat returns the wrapped buffer.
func (s *MutSlice[T]) Flat() []T { return s.data }

// ReadOnly returns a Slice over the same buffer.
func (s *MutSlice[T]) ReadOnly() *Slice[T] {
	return &Slice[T]{w: s.w, h: s.h, data: s.data}
}

// Transpose flips the view over its diagonal, permuting the borrowed
// buffer through a temporary copy (the buffer cannot be reallocated) and
// swapping width and height. Complexity: O(W×H) time and memory.
func (s *MutSlice[T]) Transpose() {
	tmp := transposedFlat(s.data, s.w, s.h)
	copy(s.data, tmp)
	s.w, s.h = s.h, s.w
}

// Rotate90 rotates 90° counter-clockwise in place. Complexity: O(W×H).
func (s *MutSlice[T]) Rotate90() {
	tmp := rotated90Flat(s.data, s.w, s.h)
	copy(s.data, tmp)
	s.w, s.h = s.h, s.w
}

// Rotate180 rotates 180° in place without a temporary buffer.
// Complexity: O(W×H).
func (s *MutSlice[T]) Rotate180() {
	reverseFlat(s.data)
}

// Rotate270 rotates 270° counter-clockwise in place. Complexity: O(W×H).
func (s *MutSlice[T]) Rotate270() {
	tmp := rotated270Flat(s.data, s.w, s.h)
	copy(s.data, tmp)
	s.w, s.h = s.h, s.w
}

// ReverseRows reverses every row in place.
func (s *MutSlice[T]) ReverseRows() {
	for y := 0; y < s.h; y++ {
		reverseRowFlat(s.data, s.w, y)
	}
}

// ReverseColumns reverses every column in place.
func (s *MutSlice[T]) ReverseColumns() {
	reverseRowOrderFlat(s.data, s.w, s.h)
}

// ReverseRow reverses a single row in place.
func (s *MutSlice[T]) ReverseRow(y int) error {
	if y < 0 || y >= s.h {
		return boundsError(0, y, s.w, s.h)
	}
	reverseRowFlat(s.data, s.w, y)

	return nil
}

// ReverseCol reverses a single column in place.
func (s *MutSlice[T]) ReverseCol(x int) error {
	if x < 0 || x >= s.w {
		return boundsError(x, 0, s.w, s.h)
	}
	reverseColFlat(s.data, s.w, s.h, x)

	return nil
}
