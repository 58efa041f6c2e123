package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bidigrid/bidi"
	"github.com/katalvlaran/bidigrid/editing"
)

// fillCommand creates the fill command: flood-fill the region of equal
// runes around a coordinate and print the highlighted terrain.
func (c *CLI) fillCommand() *cobra.Command {
	var (
		scenarioPath string
		x, y         int
		replacement  string
	)

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Flood-fill a region of the terrain",
		Long: `Fill grows a region from the given coordinate across cells holding
the same rune, optionally rewriting them, and prints the terrain with the
region highlighted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFill(scenarioPath, bidi.XY(x, y), replacement)
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "TOML scenario file (default: built-in maze)")
	cmd.Flags().IntVarP(&x, "col", "x", 2, "fill origin column")
	cmd.Flags().IntVarP(&y, "row", "y", 1, "fill origin row")
	cmd.Flags().StringVarP(&replacement, "set", "r", "", "rewrite admitted cells with this rune")

	return cmd
}

func (c *CLI) runFill(scenarioPath string, origin bidi.Coord, replacement string) error {
	s, err := LoadScenario(scenarioPath)
	if err != nil {
		return err
	}
	g, err := s.Grid()
	if err != nil {
		return err
	}

	region := make(map[bidi.Coord]bool)
	var action editing.ActionFunc[rune]
	if replacement == "" {
		action = func(c bidi.Coord, v rune) rune {
			region[c] = true
			return v
		}
	} else {
		repl := firstRuneOr(replacement, ' ')
		action = func(c bidi.Coord, _ rune) rune {
			region[c] = true
			return repl
		}
	}

	n, err := editing.FloodFill[rune](g, origin, s.Conn(),
		func(_, from, to rune) bool { return from == to }, action)
	if err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	c.Logger.Info("filled", "origin", origin, "cells", n)

	fmt.Fprint(c.out(), renderFilled(g, s, region))

	return nil
}
