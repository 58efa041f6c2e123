package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bidigrid/bidi"
	"github.com/katalvlaran/bidigrid/grid"
	"github.com/katalvlaran/bidigrid/pathfind"
)

// MazeSuite exercises both search algorithms end to end on a walled maze
// with a single winding corridor.
type MazeSuite struct {
	suite.Suite

	maze  *grid.Grid[rune]
	start bidi.Coord
	goal  bidi.Coord
}

func (s *MazeSuite) SetupTest() {
	rows := []string{
		"##########",
		"##  S#   #",
		"## ### # #",
		"##     # #",
		"## ### # #",
		"##   # #D#",
		"##########",
	}
	cells := make([][]rune, len(rows))
	for y, row := range rows {
		cells[y] = []rune(row)
	}
	maze, err := grid.NewOf(cells)
	require.NoError(s.T(), err)

	s.maze = maze
	start, ok := bidi.Find[rune](maze, func(r rune) bool { return r == 'S' })
	require.True(s.T(), ok)
	goal, ok := bidi.Find[rune](maze, func(r rune) bool { return r == 'D' })
	require.True(s.T(), ok)
	s.start, s.goal = start, goal
}

// TestDijkstraSolves walks the maze with Dijkstra; the corridor is 16
// moves long.
func (s *MazeSuite) TestDijkstraSolves() {
	res, err := pathfind.Dijkstra[rune](s.maze, s.start, unitCost,
		pathfind.WithDestinations(s.goal))
	require.NoError(s.T(), err)

	cost, ok := res.CostTo(s.goal)
	require.True(s.T(), ok)
	require.Equal(s.T(), 16.0, cost)

	path, err := res.PathTo(s.goal)
	require.NoError(s.T(), err)
	require.Len(s.T(), path, 17)
	require.Equal(s.T(), s.start, path[0])
	require.Equal(s.T(), s.goal, path[len(path)-1])

	// Every step moves exactly one cell onto floor.
	for i := 1; i < len(path); i++ {
		dx, dy := path[i].X-path[i-1].X, path[i].Y-path[i-1].Y
		require.Equal(s.T(), 1, dx*dx+dy*dy, "step %d is not a unit move", i)
		v, err := s.maze.At(path[i].X, path[i].Y)
		require.NoError(s.T(), err)
		require.NotEqual(s.T(), '#', v)
	}
}

// TestAStarSolves solves the same maze with A*; cost and path match
// Dijkstra exactly.
func (s *MazeSuite) TestAStarSolves() {
	dj, err := pathfind.Dijkstra[rune](s.maze, s.start, unitCost,
		pathfind.WithDestinations(s.goal))
	require.NoError(s.T(), err)
	as, err := pathfind.AStar[rune](s.maze, s.start, s.goal, unitCost, pathfind.Manhattan)
	require.NoError(s.T(), err)

	djPath, err := dj.PathTo(s.goal)
	require.NoError(s.T(), err)
	asPath, err := as.PathTo(s.goal)
	require.NoError(s.T(), err)
	require.Equal(s.T(), djPath, asPath)
}

// TestAStarExpandsLess verifies the heuristic actually prunes: A*
// finalizes no more cells than Dijkstra on the same maze.
func (s *MazeSuite) TestAStarExpandsLess() {
	dj, err := pathfind.Dijkstra[rune](s.maze, s.start, unitCost,
		pathfind.WithDestinations(s.goal))
	require.NoError(s.T(), err)
	as, err := pathfind.AStar[rune](s.maze, s.start, s.goal, unitCost, pathfind.Manhattan)
	require.NoError(s.T(), err)

	count := func(r *pathfind.Result) int {
		n := 0
		for _, t := range bidi.Collect[pathfind.Tile](r.Tiles) {
			if t.Known {
				n++
			}
		}
		return n
	}
	require.LessOrEqual(s.T(), count(as), count(dj))
}

// TestWalledInStart starts the search inside a sealed pocket; only the
// start cell itself is reachable.
func (s *MazeSuite) TestWalledInStart() {
	require.NoError(s.T(), s.maze.Set(3, 1, '#')) // seal the corridor left of S

	_, err := pathfind.Dijkstra[rune](s.maze, s.start, unitCost,
		pathfind.WithDestinations(s.goal))
	require.ErrorIs(s.T(), err, pathfind.ErrUnreachable)
}

func TestMazeSuite(t *testing.T) {
	suite.Run(t, new(MazeSuite))
}
