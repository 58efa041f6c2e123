package bidi

// View is the read capability contract over 2D element storage.
// Every storage kind in the grid package implements it, and every generic
// algorithm in editing and pathfind is written against it.
//
// Implementations must validate 0 ≤ x < Width() and 0 ≤ y < Height() and
// return an error wrapping ErrOutOfBounds on violation; coordinates are
// never clamped or wrapped. Width()*Height() equals the number of
// addressable elements.
type View[T any] interface {
	// Width returns the number of columns.
	Width() int
	// Height returns the number of rows.
	Height() int
	// At returns the element at (x,y), or an error wrapping ErrOutOfBounds.
	At(x, y int) (T, error)
}

// MutView is the read/write capability contract. Set requires exclusive
// access to the view for the duration of the call.
type MutView[T any] interface {
	View[T]
	// Set stores v at (x,y), or returns an error wrapping ErrOutOfBounds.
	Set(x, y int, v T) error
}

// Size returns (width, height) of v.
// Complexity: O(1).
func Size[T any](v View[T]) (width, height int) {
	return v.Width(), v.Height()
}

// Area returns the number of addressable elements of v.
func Area[T any](v View[T]) int { return v.Width() * v.Height() }

// BoundingRect returns the rect covering all of v: (0,0,Width,Height).
func BoundingRect[T any](v View[T]) Rect {
	return Rect{Width: v.Width(), Height: v.Height()}
}

// InBounds reports whether (x,y) addresses an element of v.
func InBounds[T any](v View[T], x, y int) bool {
	return x >= 0 && x < v.Width() && y >= 0 && y < v.Height()
}

// Equivalent reports whether two views have the same dimensions and equal
// elements at every coordinate.
// Complexity: O(W×H).
func Equivalent[T comparable](a, b View[T]) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if MustAt(a, x, y) != MustAt(b, x, y) {
				return false
			}
		}
	}

	return true
}

// MustAt returns the element at (x,y), panicking on error. It is intended
// for coordinates already known to be in bounds (loop indices derived from
// the view's own dimensions); an error there is a defect in the view, not
// a recoverable condition.
func MustAt[T any](v View[T], x, y int) T {
	val, err := v.At(x, y)
	if err != nil {
		panic("bidi: view failed in-bounds access: " + err.Error())
	}

	return val
}

// MustSet stores v at (x,y), panicking on error. Same contract as MustAt.
func MustSet[T any](m MutView[T], x, y int, val T) {
	if err := m.Set(x, y, val); err != nil {
		panic("bidi: view failed in-bounds access: " + err.Error())
	}
}
