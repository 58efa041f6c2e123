package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bidigrid/pathfind"
)

// solveCommand creates the solve command: load a scenario, find the
// cheapest start→goal path and print the annotated terrain.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		scenarioPath string
		algo         string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a terrain scenario with Dijkstra or A*",
		Long: `Solve loads a terrain scenario (or the built-in maze), runs the
selected search algorithm from the start marker to the goal marker and
prints the terrain with the path highlighted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(scenarioPath, algo)
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "TOML scenario file (default: built-in maze)")
	cmd.Flags().StringVarP(&algo, "algo", "a", "astar", "search algorithm: astar, dijkstra")

	return cmd
}

func (c *CLI) runSolve(scenarioPath, algo string) error {
	s, err := LoadScenario(scenarioPath)
	if err != nil {
		return err
	}
	g, err := s.Grid()
	if err != nil {
		return err
	}
	start, goal, err := s.Endpoints(g)
	if err != nil {
		return err
	}
	c.Logger.Debug("scenario loaded", "name", s.Name, "size", fmt.Sprintf("%dx%d", g.Width(), g.Height()))

	began := time.Now()
	var res *pathfind.Result
	switch algo {
	case "dijkstra":
		res, err = pathfind.Dijkstra[rune](g, start, s.CostFunc(),
			pathfind.WithConnectivity(s.Conn()),
			pathfind.WithDestinations(goal))
	case "astar":
		res, err = pathfind.AStar[rune](g, start, goal, s.CostFunc(), s.Heuristic(),
			pathfind.WithConnectivity(s.Conn()))
	default:
		return fmt.Errorf("unknown algorithm %q (want astar or dijkstra)", algo)
	}
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	path, err := res.PathTo(goal)
	if err != nil {
		return err
	}
	cost, _ := res.CostTo(goal)
	c.Logger.Info("solved", "algo", algo, "cost", cost, "steps", len(path)-1,
		"elapsed", time.Since(began).Round(time.Microsecond))

	fmt.Fprint(c.out(), renderTerrain(g, s, path))

	return nil
}
