package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bidigrid/bidi"
	"github.com/katalvlaran/bidigrid/grid"
	"github.com/katalvlaran/bidigrid/pathfind"
)

// terrain builds a rune grid from equal-length string rows. '#' cells
// are walls, everything else is floor.
func terrain(t *testing.T, rows ...string) *grid.Grid[rune] {
	t.Helper()
	cells := make([][]rune, len(rows))
	for y, row := range rows {
		cells[y] = []rune(row)
	}
	g, err := grid.NewOf(cells)
	require.NoError(t, err)
	return g
}

// unitCost prices every move onto a floor cell at 1 and rejects walls.
func unitCost(_ rune, _ bidi.Coord, to rune, _ bidi.Coord) (float64, bool) {
	if to == '#' {
		return 0, false
	}
	return 1, true
}

func TestDijkstra_Validation(t *testing.T) {
	g := terrain(t, "...", "...")
	cases := []struct {
		name string
		run  func() error
		want error
	}{
		{"NilView", func() error {
			_, err := pathfind.Dijkstra[rune](nil, bidi.XY(0, 0), unitCost)
			return err
		}, pathfind.ErrNilView},
		{"NilCostFunc", func() error {
			_, err := pathfind.Dijkstra[rune](g, bidi.XY(0, 0), nil)
			return err
		}, pathfind.ErrNilCostFunc},
		{"BadConnectivity", func() error {
			_, err := pathfind.Dijkstra[rune](g, bidi.XY(0, 0), unitCost,
				pathfind.WithConnectivity(bidi.Connectivity(42)))
			return err
		}, pathfind.ErrBadConnectivity},
		{"StartOutOfBounds", func() error {
			_, err := pathfind.Dijkstra[rune](g, bidi.XY(3, 0), unitCost)
			return err
		}, bidi.ErrOutOfBounds},
		{"DestOutOfBounds", func() error {
			_, err := pathfind.Dijkstra[rune](g, bidi.XY(0, 0), unitCost,
				pathfind.WithDestinations(bidi.XY(0, 9)))
			return err
		}, bidi.ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.run(), tc.want)
		})
	}
}

// TestDijkstra_Exhaustive runs without destinations on an open 3×3 grid;
// every cell gets a finalized cost equal to its Manhattan distance.
func TestDijkstra_Exhaustive(t *testing.T) {
	g := terrain(t, "...", "...", "...")

	res, err := pathfind.Dijkstra[rune](g, bidi.XY(0, 0), unitCost)
	require.NoError(t, err)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			cost, ok := res.CostTo(bidi.XY(x, y))
			require.True(t, ok, "cell (%d,%d) not reached", x, y)
			assert.Equal(t, float64(x+y), cost)
		}
	}
}

func TestDijkstra_WallsBlock(t *testing.T) {
	// A full wall column splits the grid; the right half is unreachable.
	g := terrain(t,
		"..#..",
		"..#..",
		"..#..",
	)
	res, err := pathfind.Dijkstra[rune](g, bidi.XY(0, 0), unitCost)
	require.NoError(t, err)

	assert.True(t, res.Reached(bidi.XY(1, 2)))
	assert.False(t, res.Reached(bidi.XY(3, 0)))
	assert.False(t, res.Reached(bidi.XY(2, 1)), "wall cell itself must stay unknown")

	_, err = res.PathTo(bidi.XY(4, 2))
	assert.ErrorIs(t, err, pathfind.ErrUnreachable)
}

func TestDijkstra_UnreachableDestination(t *testing.T) {
	g := terrain(t,
		".....",
		".###.",
		".#.#.",
		".###.",
		".....",
	)
	// (2,2) is fully enclosed.
	_, err := pathfind.Dijkstra[rune](g, bidi.XY(0, 0), unitCost,
		pathfind.WithDestinations(bidi.XY(2, 2)))
	assert.ErrorIs(t, err, pathfind.ErrUnreachable)
}

// TestDijkstra_MultiDestination requests three targets; the run must
// finalize all of them and may skip cells beyond the furthest one.
func TestDijkstra_MultiDestination(t *testing.T) {
	g := terrain(t,
		".....",
		".....",
		".....",
	)
	dests := []bidi.Coord{bidi.XY(4, 0), bidi.XY(0, 2), bidi.XY(4, 2)}

	res, err := pathfind.Dijkstra[rune](g, bidi.XY(0, 0), unitCost,
		pathfind.WithDestinations(dests...))
	require.NoError(t, err)

	for _, d := range dests {
		cost, ok := res.CostTo(d)
		require.True(t, ok, "destination %s not finalized", d)
		assert.Equal(t, float64(d.X+d.Y), cost)
	}
}

func TestDijkstra_WeightedTerrain(t *testing.T) {
	// Digit cells price entering them; the cheap detour beats the short
	// expensive row.
	g, err := grid.NewOf([][]int{
		{1, 9, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)

	res, err := pathfind.Dijkstra[int](g, bidi.XY(0, 0),
		func(_ int, _ bidi.Coord, to int, _ bidi.Coord) (float64, bool) {
			return float64(to), true
		},
		pathfind.WithDestinations(bidi.XY(2, 0)))
	require.NoError(t, err)

	cost, ok := res.CostTo(bidi.XY(2, 0))
	require.True(t, ok)
	assert.Equal(t, 4.0, cost) // down, right, right, up

	path, err := res.PathTo(bidi.XY(2, 0))
	require.NoError(t, err)
	assert.Equal(t, []bidi.Coord{
		bidi.XY(0, 0), bidi.XY(0, 1), bidi.XY(1, 1), bidi.XY(2, 1), bidi.XY(2, 0),
	}, path)
}

func TestDijkstra_NegativeCost(t *testing.T) {
	g := terrain(t, "..", "..")
	_, err := pathfind.Dijkstra[rune](g, bidi.XY(0, 0),
		func(_ rune, _ bidi.Coord, _ rune, _ bidi.Coord) (float64, bool) {
			return -1, true
		})
	assert.ErrorIs(t, err, pathfind.ErrNegativeCost)
}

func TestDijkstra_Conn8(t *testing.T) {
	g := terrain(t,
		"...",
		"...",
		"...",
	)
	res, err := pathfind.Dijkstra[rune](g, bidi.XY(0, 0), unitCost,
		pathfind.WithConnectivity(bidi.Conn8),
		pathfind.WithDestinations(bidi.XY(2, 2)))
	require.NoError(t, err)

	// Diagonal steps also cost 1, so the corner is two moves away.
	cost, ok := res.CostTo(bidi.XY(2, 2))
	require.True(t, ok)
	assert.Equal(t, 2.0, cost)
}

// TestDijkstra_Deterministic repeats a run with many equal-cost paths;
// the reconstructed path must be identical every time.
func TestDijkstra_Deterministic(t *testing.T) {
	g := terrain(t,
		".....",
		".#...",
		"..#..",
		"...#.",
		".....",
	)
	dest := bidi.XY(4, 4)

	first, err := pathfind.Dijkstra[rune](g, bidi.XY(0, 0), unitCost,
		pathfind.WithDestinations(dest))
	require.NoError(t, err)
	want, err := first.PathTo(dest)
	require.NoError(t, err)
	require.Len(t, want, 9)

	for i := 0; i < 5; i++ {
		res, err := pathfind.Dijkstra[rune](g, bidi.XY(0, 0), unitCost,
			pathfind.WithDestinations(dest))
		require.NoError(t, err)
		got, err := res.PathTo(dest)
		require.NoError(t, err)
		assert.Equal(t, want, got, "run %d diverged", i)
	}
}

func TestResult_PathToSource(t *testing.T) {
	g := terrain(t, "..", "..")
	res, err := pathfind.Dijkstra[rune](g, bidi.XY(1, 1), unitCost)
	require.NoError(t, err)

	path, err := res.PathTo(bidi.XY(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []bidi.Coord{bidi.XY(1, 1)}, path)

	_, err = res.PathTo(bidi.XY(5, 5))
	assert.ErrorIs(t, err, bidi.ErrOutOfBounds)
}
