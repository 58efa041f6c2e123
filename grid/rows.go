package grid

import (
	"slices"

	"github.com/katalvlaran/bidigrid/bidi"
)

// RowGrid is an owned 2D container backed by one buffer per row. Row
// insertion and removal in the middle move only row headers, so they cost
// O(height) pointer moves instead of the O(area) element shift of Grid;
// column operations still touch every row. Locality is worse than Grid.
type RowGrid[T any] struct {
	w    int
	rows [][]T // every row has len == w
}

var _ bidi.MutView[int] = (*RowGrid[int])(nil)

// NewRows creates a width×height RowGrid of zero values.
// Complexity: O(W×H).
func NewRows[T any](width, height int) (*RowGrid[T], error) {
	if width < 0 || height < 0 {
		return nil, ErrNegativeSize
	}
	if width == 0 || height == 0 {
		return &RowGrid[T]{}, nil
	}
	rows := make([][]T, height)
	for y := range rows {
		rows[y] = make([]T, width)
	}

	return &RowGrid[T]{w: width, rows: rows}, nil
}

// NewRowsOf creates a RowGrid from a rectangular nested slice of rows,
// deep copying the input. Rows of mismatched length yield
// ErrDimensionMismatch. Complexity: O(W×H).
func NewRowsOf[T any](rows [][]T) (*RowGrid[T], error) {
	w, h, err := rowsDims(rows)
	if err != nil {
		return nil, err
	}
	if w == 0 || h == 0 {
		return &RowGrid[T]{}, nil
	}
	cp := make([][]T, h)
	for y := range cp {
		cp[y] = slices.Clone(rows[y])
	}

	return &RowGrid[T]{w: w, rows: cp}, nil
}

// Width returns the number of columns. Complexity: O(1).
func (g *RowGrid[T]) Width() int { return g.w }

// Height returns the number of rows. Complexity: O(1).
func (g *RowGrid[T]) Height() int { return len(g.rows) }

// Len returns the number of stored elements.
func (g *RowGrid[T]) Len() int { return g.w * len(g.rows) }

// At returns the element at (x,y). Complexity: O(1).
func (g *RowGrid[T]) At(x, y int) (T, error) {
	if x < 0 || x >= g.w || y < 0 || y >= len(g.rows) {
		var zero T
		return zero, boundsError(x, y, g.w, len(g.rows))
	}

	return g.rows[y][x], nil
}

// Set stores v at (x,y). Complexity: O(1).
func (g *RowGrid[T]) Set(x, y int, v T) error {
	if x < 0 || x >= g.w || y < 0 || y >= len(g.rows) {
		return boundsError(x, y, g.w, len(g.rows))
	}
	g.rows[y][x] = v

	return nil
}

// Row returns the backing slice of row y; mutating it mutates the grid.
func (g *RowGrid[T]) Row(y int) ([]T, error) {
	if y < 0 || y >= len(g.rows) {
		return nil, boundsError(0, y, g.w, len(g.rows))
	}

	return g.rows[y], nil
}

// Clone returns a deep copy. Complexity: O(W×H).
func (g *RowGrid[T]) Clone() *RowGrid[T] {
	rows := make([][]T, len(g.rows))
	for y := range rows {
		rows[y] = slices.Clone(g.rows[y])
	}

	return &RowGrid[T]{w: g.w, rows: rows}
}

// PushRow appends a row at the bottom; on an empty grid the row defines
// the width. Complexity: O(W) for the row copy.
func (g *RowGrid[T]) PushRow(row []T) error {
	return g.InsertRow(len(g.rows), row)
}

// InsertRow inserts a row before row index y (y == Height appends).
// Complexity: O(W + H): one row copy plus a header shift.
func (g *RowGrid[T]) InsertRow(y int, row []T) error {
	if y < 0 || y > len(g.rows) {
		return boundsError(0, y, g.w, len(g.rows)+1)
	}
	if len(g.rows) == 0 {
		if len(row) == 0 {
			return dimError("cannot insert an empty row into an empty grid")
		}
		g.w = len(row)
		g.rows = [][]T{slices.Clone(row)}

		return nil
	}
	if len(row) != g.w {
		return dimError("row length %d, want %d", len(row), g.w)
	}
	g.rows = slices.Insert(g.rows, y, slices.Clone(row))

	return nil
}

// RemoveRow removes row y and returns its elements.
// Complexity: O(H) header shift; the row buffer is returned, not copied.
func (g *RowGrid[T]) RemoveRow(y int) ([]T, error) {
	if y < 0 || y >= len(g.rows) {
		return nil, boundsError(0, y, g.w, len(g.rows))
	}
	row := g.rows[y]
	g.rows = slices.Delete(g.rows, y, y+1)
	if len(g.rows) == 0 {
		g.w = 0
	}

	return row, nil
}

// PopRow removes and returns the bottom row; ok is false on an empty grid.
func (g *RowGrid[T]) PopRow() (row []T, ok bool) {
	if len(g.rows) == 0 {
		return nil, false
	}
	row, _ = g.RemoveRow(len(g.rows) - 1)

	return row, true
}

// PushCol appends a column at the right; on an empty grid the column
// defines the height. Complexity: O(H) amortized appends.
func (g *RowGrid[T]) PushCol(col []T) error {
	return g.InsertCol(g.w, col)
}

// InsertCol inserts a column before column index x (x == Width appends).
// Complexity: O(W) per row, O(W×H) total.
func (g *RowGrid[T]) InsertCol(x int, col []T) error {
	if x < 0 || x > g.w {
		return boundsError(x, 0, g.w+1, len(g.rows))
	}
	if len(g.rows) == 0 {
		if len(col) == 0 {
			return dimError("cannot insert an empty column into an empty grid")
		}
		g.w = 1
		g.rows = make([][]T, len(col))
		for y, v := range col {
			g.rows[y] = []T{v}
		}

		return nil
	}
	if len(col) != len(g.rows) {
		return dimError("column length %d, want %d", len(col), len(g.rows))
	}
	for y := range g.rows {
		g.rows[y] = slices.Insert(g.rows[y], x, col[y])
	}
	g.w++

	return nil
}

// RemoveCol removes column x and returns its elements.
// Complexity: O(W) per row, O(W×H) total.
func (g *RowGrid[T]) RemoveCol(x int) ([]T, error) {
	if x < 0 || x >= g.w {
		return nil, boundsError(x, 0, g.w, len(g.rows))
	}
	col := make([]T, 0, len(g.rows))
	for y := range g.rows {
		col = append(col, g.rows[y][x])
		g.rows[y] = slices.Delete(g.rows[y], x, x+1)
	}
	g.w--
	if g.w == 0 {
		g.rows = nil
	}

	return col, nil
}

// PopCol removes and returns the right-most column; ok is false on an
// empty grid.
func (g *RowGrid[T]) PopCol() (col []T, ok bool) {
	if g.w == 0 {
		return nil, false
	}
	col, _ = g.RemoveCol(g.w - 1)

	return col, true
}

// Transpose flips the grid over its diagonal in place, swapping width and
// height. The jagged layout cannot be permuted row by row, so the rows are
// rebuilt. Complexity: O(W×H).
func (g *RowGrid[T]) Transpose() {
	h := len(g.rows)
	if h == 0 {
		return
	}
	rows := make([][]T, g.w)
	for y := range rows {
		rows[y] = make([]T, h)
		for x := 0; x < h; x++ {
			rows[y][x] = g.rows[x][y]
		}
	}
	g.rows, g.w = rows, h
}

// Rotate90 rotates 90° counter-clockwise in place. Complexity: O(W×H).
func (g *RowGrid[T]) Rotate90() {
	g.Transpose()
	g.ReverseColumns()
}

// Rotate180 rotates 180° in place. Complexity: O(W×H).
func (g *RowGrid[T]) Rotate180() {
	g.ReverseRows()
	g.ReverseColumns()
}

// Rotate270 rotates 270° counter-clockwise in place. Complexity: O(W×H).
func (g *RowGrid[T]) Rotate270() {
	g.Transpose()
	g.ReverseRows()
}

// ReverseRows reverses every row in place.
func (g *RowGrid[T]) ReverseRows() {
	for y := range g.rows {
		slices.Reverse(g.rows[y])
	}
}

// ReverseColumns reverses the order of the rows in place.
func (g *RowGrid[T]) ReverseColumns() {
	slices.Reverse(g.rows)
}

// Crop discards every element outside rect and shrinks the grid to rect's
// size. The rect must be fully contained in the current bounds.
// Complexity: O(rect area).
func (g *RowGrid[T]) Crop(rect bidi.Rect) error {
	bounds := bidi.RectOf(0, 0, g.w, len(g.rows))
	if rect.Width < 0 || rect.Height < 0 || !bounds.ContainsRect(rect) {
		return boundsError(rect.X, rect.Y, g.w, len(g.rows))
	}
	if rect.Empty() {
		g.w, g.rows = 0, nil

		return nil
	}
	rows := make([][]T, rect.Height)
	for y := range rows {
		rows[y] = slices.Clone(g.rows[rect.Y+y][rect.X : rect.X+rect.Width])
	}
	g.rows, g.w = rows, rect.Width

	return nil
}
