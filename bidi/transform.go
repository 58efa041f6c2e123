package bidi

// Lazy transform adapters. Each wraps a source view and remaps requested
// coordinates to source coordinates without copying; the mutable variants
// write back through the same remap, so a Set on the adapter lands in the
// source's storage. All adapters are O(1) to construct and add O(1) to
// each access.

// Transposed returns a read-only view of src flipped over its diagonal:
// the adapter's (x,y) reads src's (y,x); width and height are swapped.
func Transposed[T any](src View[T]) View[T] { return transposedView[T]{src} }

// TransposedMut is Transposed for mutable views; Set writes through.
func TransposedMut[T any](src MutView[T]) MutView[T] {
	return transposedMut[T]{transposedView[T]{src}, src}
}

type transposedView[T any] struct{ src View[T] }

func (v transposedView[T]) Width() int             { return v.src.Height() }
func (v transposedView[T]) Height() int            { return v.src.Width() }
func (v transposedView[T]) At(x, y int) (T, error) { return v.src.At(y, x) }

type transposedMut[T any] struct {
	transposedView[T]
	mut MutView[T]
}

func (v transposedMut[T]) Set(x, y int, val T) error { return v.mut.Set(y, x, val) }

// Rotated90 returns a read-only view of src rotated by 90° counter-clockwise:
// the adapter's (x,y) reads src's (srcWidth-1-y, x).
func Rotated90[T any](src View[T]) View[T] { return rotated90View[T]{src} }

// Rotated90Mut is Rotated90 for mutable views; Set writes through.
func Rotated90Mut[T any](src MutView[T]) MutView[T] {
	return rotated90Mut[T]{rotated90View[T]{src}, src}
}

type rotated90View[T any] struct{ src View[T] }

func (v rotated90View[T]) Width() int             { return v.src.Height() }
func (v rotated90View[T]) Height() int            { return v.src.Width() }
func (v rotated90View[T]) At(x, y int) (T, error) { return v.src.At(v.src.Width()-1-y, x) }

type rotated90Mut[T any] struct {
	rotated90View[T]
	mut MutView[T]
}

func (v rotated90Mut[T]) Set(x, y int, val T) error { return v.mut.Set(v.mut.Width()-1-y, x, val) }

// Rotated180 returns a read-only view of src rotated by 180°:
// the adapter's (x,y) reads src's (width-1-x, height-1-y).
func Rotated180[T any](src View[T]) View[T] { return rotated180View[T]{src} }

// Rotated180Mut is Rotated180 for mutable views; Set writes through.
func Rotated180Mut[T any](src MutView[T]) MutView[T] {
	return rotated180Mut[T]{rotated180View[T]{src}, src}
}

type rotated180View[T any] struct{ src View[T] }

func (v rotated180View[T]) Width() int  { return v.src.Width() }
func (v rotated180View[T]) Height() int { return v.src.Height() }
func (v rotated180View[T]) At(x, y int) (T, error) {
	return v.src.At(v.src.Width()-1-x, v.src.Height()-1-y)
}

type rotated180Mut[T any] struct {
	rotated180View[T]
	mut MutView[T]
}

func (v rotated180Mut[T]) Set(x, y int, val T) error {
	return v.mut.Set(v.mut.Width()-1-x, v.mut.Height()-1-y, val)
}

// Rotated270 returns a read-only view of src rotated by 270° counter-clockwise
// (90° clockwise): the adapter's (x,y) reads src's (y, srcHeight-1-x).
func Rotated270[T any](src View[T]) View[T] { return rotated270View[T]{src} }

// Rotated270Mut is Rotated270 for mutable views; Set writes through.
func Rotated270Mut[T any](src MutView[T]) MutView[T] {
	return rotated270Mut[T]{rotated270View[T]{src}, src}
}

type rotated270View[T any] struct{ src View[T] }

func (v rotated270View[T]) Width() int             { return v.src.Height() }
func (v rotated270View[T]) Height() int            { return v.src.Width() }
func (v rotated270View[T]) At(x, y int) (T, error) { return v.src.At(y, v.src.Height()-1-x) }

type rotated270Mut[T any] struct {
	rotated270View[T]
	mut MutView[T]
}

func (v rotated270Mut[T]) Set(x, y int, val T) error { return v.mut.Set(y, v.mut.Height()-1-x, val) }

// ReversedRows returns a read-only view of src with every row reversed,
// as if flipped over a vertical axis.
func ReversedRows[T any](src View[T]) View[T] { return reversedRowsView[T]{src} }

// ReversedRowsMut is ReversedRows for mutable views; Set writes through.
func ReversedRowsMut[T any](src MutView[T]) MutView[T] {
	return reversedRowsMut[T]{reversedRowsView[T]{src}, src}
}

type reversedRowsView[T any] struct{ src View[T] }

func (v reversedRowsView[T]) Width() int             { return v.src.Width() }
func (v reversedRowsView[T]) Height() int            { return v.src.Height() }
func (v reversedRowsView[T]) At(x, y int) (T, error) { return v.src.At(v.src.Width()-1-x, y) }

type reversedRowsMut[T any] struct {
	reversedRowsView[T]
	mut MutView[T]
}

func (v reversedRowsMut[T]) Set(x, y int, val T) error { return v.mut.Set(v.mut.Width()-1-x, y, val) }

// ReversedColumns returns a read-only view of src with every column
// reversed, as if flipped over a horizontal axis.
func ReversedColumns[T any](src View[T]) View[T] { return reversedColumnsView[T]{src} }

// ReversedColumnsMut is ReversedColumns for mutable views; Set writes through.
func ReversedColumnsMut[T any](src MutView[T]) MutView[T] {
	return reversedColumnsMut[T]{reversedColumnsView[T]{src}, src}
}

type reversedColumnsView[T any] struct{ src View[T] }

func (v reversedColumnsView[T]) Width() int             { return v.src.Width() }
func (v reversedColumnsView[T]) Height() int            { return v.src.Height() }
func (v reversedColumnsView[T]) At(x, y int) (T, error) { return v.src.At(x, v.src.Height()-1-y) }

type reversedColumnsMut[T any] struct {
	reversedColumnsView[T]
	mut MutView[T]
}

func (v reversedColumnsMut[T]) Set(x, y int, val T) error {
	return v.mut.Set(x, v.mut.Height()-1-y, val)
}

// Cropped returns a read-only view exposing only rect of src: the
// adapter's (x,y) reads src's (x+rect.X, y+rect.Y) and the adapter's
// dimensions are rect's. Unlike the editing functions, which clip, a rect
// not fully contained in src's bounds is a caller bug and yields an error
// wrapping ErrOutOfBounds.
func Cropped[T any](src View[T], rect Rect) (View[T], error) {
	if err := checkCrop(BoundingRect(src), rect); err != nil {
		return nil, err
	}

	return croppedView[T]{src: src, rect: rect}, nil
}

// CroppedMut is Cropped for mutable views; Set writes through.
func CroppedMut[T any](src MutView[T], rect Rect) (MutView[T], error) {
	if err := checkCrop(BoundingRect(src), rect); err != nil {
		return nil, err
	}

	return croppedMut[T]{croppedView[T]{src: src, rect: rect}, src}, nil
}

func checkCrop(bounds, rect Rect) error {
	if rect.Width < 0 || rect.Height < 0 || !bounds.ContainsRect(rect) {
		return boundsError(rect.X, rect.Y, bounds.Width, bounds.Height)
	}

	return nil
}

type croppedView[T any] struct {
	src  View[T]
	rect Rect
}

func (v croppedView[T]) Width() int  { return v.rect.Width }
func (v croppedView[T]) Height() int { return v.rect.Height }

// At rejects coordinates outside the cropped window even when the remapped
// coordinate would still fall inside the source.
func (v croppedView[T]) At(x, y int) (T, error) {
	if x < 0 || x >= v.rect.Width || y < 0 || y >= v.rect.Height {
		var zero T
		return zero, boundsError(x, y, v.rect.Width, v.rect.Height)
	}

	return v.src.At(x+v.rect.X, y+v.rect.Y)
}

type croppedMut[T any] struct {
	croppedView[T]
	mut MutView[T]
}

func (v croppedMut[T]) Set(x, y int, val T) error {
	if x < 0 || x >= v.rect.Width || y < 0 || y >= v.rect.Height {
		return boundsError(x, y, v.rect.Width, v.rect.Height)
	}

	return v.mut.Set(x+v.rect.X, y+v.rect.Y, val)
}
