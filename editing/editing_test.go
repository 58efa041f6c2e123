package editing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bidigrid/bidi"
	"github.com/katalvlaran/bidigrid/editing"
	"github.com/katalvlaran/bidigrid/grid"
)

func numbered(t *testing.T, w, h int) *grid.Grid[int] {
	t.Helper()
	g, err := grid.NewFunc(w, h, func(x, y int) int { return y*w + x })
	require.NoError(t, err)
	return g
}

func TestCopy_Exact(t *testing.T) {
	src := numbered(t, 4, 4)
	dst, err := grid.NewFilled(4, 4, -1)
	require.NoError(t, err)

	n := editing.Copy[int](src, bidi.RectOf(1, 1, 2, 2), dst, bidi.XY(0, 0))
	assert.Equal(t, 4, n)
	assert.Equal(t, []int{
		5, 6, -1, -1,
		9, 10, -1, -1,
		-1, -1, -1, -1,
		-1, -1, -1, -1,
	}, dst.Flat())
}

// TestCopy_Clipping runs origins that hang over every edge; the written
// count must match the visible intersection and no cell outside it may
// change.
func TestCopy_Clipping(t *testing.T) {
	cases := []struct {
		name string
		from bidi.Rect
		to   bidi.Coord
		want int
	}{
		{"OverRightEdge", bidi.RectOf(0, 0, 3, 3), bidi.XY(2, 0), 6},
		{"OverBottomEdge", bidi.RectOf(0, 0, 3, 3), bidi.XY(0, 3), 3},
		{"NegativeOrigin", bidi.RectOf(0, 0, 3, 3), bidi.XY(-1, -1), 4},
		{"FullyOutside", bidi.RectOf(0, 0, 3, 3), bidi.XY(10, 10), 0},
		{"SourceRectOverflows", bidi.RectOf(2, 2, 10, 10), bidi.XY(0, 0), 4},
		{"EmptySourceRect", bidi.RectOf(1, 1, 0, 5), bidi.XY(0, 0), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := numbered(t, 4, 4)
			dst, err := grid.NewFilled(4, 4, -1)
			require.NoError(t, err)

			n := editing.Copy[int](src, tc.from, dst, tc.to)
			assert.Equal(t, tc.want, n)

			touched := 0
			for _, v := range dst.Flat() {
				if v != -1 {
					touched++
				}
			}
			assert.Equal(t, tc.want, touched, "cells changed outside the clipped area")
		})
	}
}

// TestCopy_NegativeOriginAlignment pins down which source cells survive
// when the landing origin is negative: the cut happens on the source's
// top-left.
func TestCopy_NegativeOriginAlignment(t *testing.T) {
	src := numbered(t, 3, 3)
	dst, err := grid.NewFilled(3, 3, -1)
	require.NoError(t, err)

	editing.Copy[int](src, bidi.RectOf(0, 0, 3, 3), dst, bidi.XY(-1, -1))
	assert.Equal(t, []int{
		4, 5, -1,
		7, 8, -1,
		-1, -1, -1,
	}, dst.Flat())
}

func TestCloneOver(t *testing.T) {
	src, err := grid.NewOf([][][]int{
		{{1}, {2}},
		{{3}, {4}},
	})
	require.NoError(t, err)
	dst, err := grid.NewFilled[[]int](2, 2, nil)
	require.NoError(t, err)

	n := editing.CloneOver[[]int](src, bidi.RectOf(0, 0, 2, 2), dst, bidi.XY(0, 0),
		func(s []int) []int {
			out := make([]int, len(s))
			copy(out, s)
			return out
		})
	require.Equal(t, 4, n)

	// Mutating the clone must not reach the source.
	cell, err := dst.At(0, 0)
	require.NoError(t, err)
	cell[0] = 99

	orig, err := src.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, orig)
}

func TestBlend_Additive(t *testing.T) {
	src, err := grid.NewFilled(2, 2, 10)
	require.NoError(t, err)
	dst := numbered(t, 3, 3)

	n := editing.Blend[int, int](src, bidi.RectOf(0, 0, 2, 2), dst, bidi.XY(1, 1),
		func(d, s int) int { return d + s })
	assert.Equal(t, 4, n)
	assert.Equal(t, []int{
		0, 1, 2,
		3, 14, 15,
		6, 17, 18,
	}, dst.Flat())
}

// TestBlend_MixedTypes blends a byte mask into an int grid.
func TestBlend_MixedTypes(t *testing.T) {
	mask, err := grid.NewOf([][]byte{
		{1, 0},
		{0, 1},
	})
	require.NoError(t, err)
	dst, err := grid.NewFilled(2, 2, 5)
	require.NoError(t, err)

	editing.Blend[byte, int](mask, bidi.RectOf(0, 0, 2, 2), dst, bidi.XY(0, 0),
		func(d int, s byte) int {
			if s == 0 {
				return 0
			}
			return d
		})
	assert.Equal(t, []int{5, 0, 0, 5}, dst.Flat())
}

func TestFill(t *testing.T) {
	g, err := grid.NewFilled(4, 4, 0)
	require.NoError(t, err)

	n := editing.Fill[int](g, bidi.RectOf(1, 1, 2, 2), 7)
	assert.Equal(t, 4, n)
	assert.Equal(t, []int{
		0, 0, 0, 0,
		0, 7, 7, 0,
		0, 7, 7, 0,
		0, 0, 0, 0,
	}, g.Flat())

	// Overflowing rects clip silently.
	n = editing.Fill[int](g, bidi.RectOf(3, 3, 10, 10), 9)
	assert.Equal(t, 1, n)

	n = editing.Fill[int](g, bidi.RectOf(-5, -5, 2, 2), 9)
	assert.Equal(t, 0, n)
}
