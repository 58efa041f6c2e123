package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bidigrid/bidi"
	"github.com/katalvlaran/bidigrid/grid"
)

// seq23 builds the canonical 3×2 fixture:
//
//	1 2 3
//	4 5 6
func seq23(t *testing.T) *grid.Grid[int] {
	t.Helper()
	g, err := grid.NewOf([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	return g
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		make func() error
		want error
	}{
		{"NegativeWidth", func() error { _, err := grid.New[int](-1, 3); return err }, grid.ErrNegativeSize},
		{"NegativeHeight", func() error { _, err := grid.New[int](3, -1); return err }, grid.ErrNegativeSize},
		{"RaggedRows", func() error { _, err := grid.NewOf([][]int{{1, 2}, {3}}); return err }, grid.ErrDimensionMismatch},
		{"FlatLenMismatch", func() error { _, err := grid.NewFromFlat([]int{1, 2, 3}, 2, 2); return err }, grid.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.make(), tc.want)
		})
	}
}

func TestGrid_AtSet(t *testing.T) {
	g := seq23(t)

	v, err := g.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	require.NoError(t, g.Set(0, 0, 10))
	v, err = g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	_, err = g.At(3, 0)
	assert.ErrorIs(t, err, bidi.ErrOutOfBounds)
	assert.ErrorIs(t, g.Set(0, 2, 0), bidi.ErrOutOfBounds)
	assert.ErrorIs(t, g.Swap(bidi.XY(0, 0), bidi.XY(5, 5)), bidi.ErrOutOfBounds)
}

func TestGrid_Swap(t *testing.T) {
	g := seq23(t)
	require.NoError(t, g.Swap(bidi.XY(0, 0), bidi.XY(2, 1)))
	assert.Equal(t, []int{6, 2, 3, 4, 5, 1}, g.Flat())
}

func TestGrid_RowOps(t *testing.T) {
	g := seq23(t)

	require.NoError(t, g.PushRow([]int{7, 8, 9}))
	require.NoError(t, g.InsertRow(1, []int{0, 0, 0}))
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, []int{1, 2, 3, 0, 0, 0, 4, 5, 6, 7, 8, 9}, g.Flat())

	row, err := g.RemoveRow(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, row)

	row, ok := g.PopRow()
	require.True(t, ok)
	assert.Equal(t, []int{7, 8, 9}, row)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, g.Flat())

	assert.ErrorIs(t, g.PushRow([]int{1}), grid.ErrDimensionMismatch)
	assert.ErrorIs(t, g.InsertRow(5, []int{0, 0, 0}), bidi.ErrOutOfBounds)
	_, err = g.RemoveRow(-1)
	assert.ErrorIs(t, err, bidi.ErrOutOfBounds)
}

func TestGrid_ColOps(t *testing.T) {
	g := seq23(t)

	require.NoError(t, g.PushCol([]int{10, 20}))
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, []int{1, 2, 3, 10, 4, 5, 6, 20}, g.Flat())

	require.NoError(t, g.InsertCol(0, []int{-1, -2}))
	assert.Equal(t, []int{-1, 1, 2, 3, 10, -2, 4, 5, 6, 20}, g.Flat())

	col, err := g.RemoveCol(0)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, -2}, col)

	col, ok := g.PopCol()
	require.True(t, ok)
	assert.Equal(t, []int{10, 20}, col)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, g.Flat())

	assert.ErrorIs(t, g.PushCol([]int{1, 2, 3}), grid.ErrDimensionMismatch)
}

func TestGrid_PopEmpty(t *testing.T) {
	g, err := grid.New[int](0, 0)
	require.NoError(t, err)

	_, ok := g.PopRow()
	assert.False(t, ok)
	_, ok = g.PopCol()
	assert.False(t, ok)
}

func TestGrid_Resize(t *testing.T) {
	g := seq23(t)

	// Grow: kept cells survive, new cells take the fill value.
	require.NoError(t, g.Resize(4, 3, -1))
	assert.Equal(t, []int{
		1, 2, 3, -1,
		4, 5, 6, -1,
		-1, -1, -1, -1,
	}, g.Flat())

	// Shrink back: only the top-left window survives.
	require.NoError(t, g.Resize(2, 2, 0))
	assert.Equal(t, []int{1, 2, 4, 5}, g.Flat())

	assert.ErrorIs(t, g.Resize(-1, 2, 0), grid.ErrNegativeSize)
}

func TestGrid_ResizeFunc(t *testing.T) {
	g := seq23(t)
	require.NoError(t, g.ResizeFunc(4, 2, func(x, y int) int { return 100 + y*4 + x }))
	assert.Equal(t, []int{1, 2, 3, 103, 4, 5, 6, 107}, g.Flat())
}

// TestGrid_InPlaceTransforms checks each eager transform against the
// lazy adapter materialized over a pristine copy.
func TestGrid_InPlaceTransforms(t *testing.T) {
	cases := []struct {
		name  string
		apply func(*grid.Grid[int])
		lazy  func(bidi.View[int]) bidi.View[int]
	}{
		{"Transpose", (*grid.Grid[int]).Transpose, bidi.Transposed[int]},
		{"Rotate90", (*grid.Grid[int]).Rotate90, bidi.Rotated90[int]},
		{"Rotate180", (*grid.Grid[int]).Rotate180, bidi.Rotated180[int]},
		{"Rotate270", (*grid.Grid[int]).Rotate270, bidi.Rotated270[int]},
		{"ReverseRows", (*grid.Grid[int]).ReverseRows, bidi.ReversedRows[int]},
		{"ReverseColumns", (*grid.Grid[int]).ReverseColumns, bidi.ReversedColumns[int]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := seq23(t)
			want := grid.FromView(tc.lazy(g.Clone()))
			tc.apply(g)
			assert.True(t, bidi.Equivalent[int](want, g),
				"got %v (%dx%d)", g.Flat(), g.Width(), g.Height())
		})
	}
}

func TestGrid_ReverseSingle(t *testing.T) {
	g := seq23(t)

	require.NoError(t, g.ReverseRow(0))
	assert.Equal(t, []int{3, 2, 1, 4, 5, 6}, g.Flat())

	require.NoError(t, g.ReverseCol(1))
	assert.Equal(t, []int{3, 5, 1, 4, 2, 6}, g.Flat())

	assert.ErrorIs(t, g.ReverseRow(2), bidi.ErrOutOfBounds)
	assert.ErrorIs(t, g.ReverseCol(-1), bidi.ErrOutOfBounds)
}

func TestGrid_Crop(t *testing.T) {
	g, err := grid.NewFunc(4, 4, func(x, y int) int { return y*4 + x })
	require.NoError(t, err)

	require.NoError(t, g.Crop(bidi.RectOf(1, 1, 2, 3)))
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, []int{5, 6, 9, 10, 13, 14}, g.Flat())

	err = g.Crop(bidi.RectOf(1, 1, 5, 5))
	assert.ErrorIs(t, err, bidi.ErrOutOfBounds)
}

func TestGrid_CloneIsolation(t *testing.T) {
	g := seq23(t)
	c := g.Clone()
	require.NoError(t, c.Set(0, 0, 99))

	v, err := g.At(0, 0)
	require.NoError(t, err)
	if v != 1 {
		t.Fatalf("clone write leaked into source: %d", v)
	}
}

func TestFromViewFunc(t *testing.T) {
	g := seq23(t)
	doubled := grid.FromViewFunc[int, int](g, func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6, 8, 10, 12}, doubled.Flat())
}

func TestGrid_ZeroSize(t *testing.T) {
	g, err := grid.New[string](0, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())

	_, err = g.At(0, 0)
	assert.True(t, errors.Is(err, bidi.ErrOutOfBounds))
}
