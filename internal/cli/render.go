package cli

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	"github.com/katalvlaran/bidigrid/bidi"
	"github.com/katalvlaran/bidigrid/grid"
	"github.com/katalvlaran/bidigrid/pathfind"
)

// Pixel palette for the PNG export.
var (
	pixelWall  = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	pixelFloor = color.RGBA{R: 228, G: 228, B: 234, A: 255}
	pixelPath  = color.RGBA{R: 0, G: 158, B: 148, A: 255}
	pixelMark  = color.RGBA{R: 255, G: 184, B: 0, A: 255}
)

// renderCommand creates the render command: solve a scenario and export
// the result as a PNG image, one upscaled block per cell.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		scenarioPath string
		output       string
		scale        int
		noSolve      bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export a scenario (and its solution) as a PNG image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale < 1 {
				return fmt.Errorf("scale %d, want >= 1", scale)
			}
			return c.runRender(scenarioPath, output, scale, noSolve)
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "TOML scenario file (default: built-in maze)")
	cmd.Flags().StringVarP(&output, "output", "o", "terrain.png", "output PNG path")
	cmd.Flags().IntVar(&scale, "scale", 16, "pixels per cell")
	cmd.Flags().BoolVar(&noSolve, "no-solve", false, "render the raw terrain without a path")

	return cmd
}

func (c *CLI) runRender(scenarioPath, output string, scale int, noSolve bool) error {
	s, err := LoadScenario(scenarioPath)
	if err != nil {
		return err
	}
	g, err := s.Grid()
	if err != nil {
		return err
	}

	var path []bidi.Coord
	if !noSolve {
		start, goal, err := s.Endpoints(g)
		if err != nil {
			return err
		}
		res, err := pathfind.AStar[rune](g, start, goal, s.CostFunc(), s.Heuristic(),
			pathfind.WithConnectivity(s.Conn()))
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		if path, err = res.PathTo(goal); err != nil {
			return err
		}
	}

	img := terrainImage(g, s, path, scale)
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	c.Logger.Info("rendered", "output", output,
		"size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()))

	return nil
}

// terrainImage rasterizes the terrain one pixel per cell, then upscales
// by scale with nearest-neighbor so cells stay crisp squares.
func terrainImage(g *grid.Grid[rune], s *Scenario, path []bidi.Coord, scale int) *image.RGBA {
	onPath := make(map[bidi.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	wall, start, goal := s.wallRune(), s.startRune(), s.goalRune()

	small := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for c, r := range bidi.Cells[rune](g) {
		var px color.RGBA
		switch {
		case r == start || r == goal:
			px = pixelMark
		case onPath[c]:
			px = pixelPath
		case r == wall:
			px = pixelWall
		default:
			px = pixelFloor
		}
		small.SetRGBA(c.X, c.Y, px)
	}
	if scale == 1 {
		return small
	}

	big := image.NewRGBA(image.Rect(0, 0, g.Width()*scale, g.Height()*scale))
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), xdraw.Src, nil)

	return big
}
