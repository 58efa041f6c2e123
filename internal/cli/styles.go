package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/bidigrid/bidi"
	"github.com/katalvlaran/bidigrid/grid"
)

var (
	colorWall  = lipgloss.Color("240") // dim gray
	colorFloor = lipgloss.Color("255") // bright white
	colorPath  = lipgloss.Color("36")  // teal
	colorMark  = lipgloss.Color("220") // amber
	colorFill  = lipgloss.Color("35")  // green
)

var (
	styleWall  = lipgloss.NewStyle().Foreground(colorWall)
	stylePath  = lipgloss.NewStyle().Bold(true).Foreground(colorPath)
	styleMark  = lipgloss.NewStyle().Bold(true).Foreground(colorMark)
	styleFill  = lipgloss.NewStyle().Foreground(colorFill)
	styleFloor = lipgloss.NewStyle().Foreground(colorFloor)
)

// renderTerrain draws the terrain with an optional path overlay. Walls
// are dimmed, path cells are highlighted, start and goal markers keep
// their own color.
func renderTerrain(g *grid.Grid[rune], s *Scenario, path []bidi.Coord) string {
	onPath := make(map[bidi.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	wall, start, goal := s.wallRune(), s.startRune(), s.goalRune()

	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			r := bidi.MustAt[rune](g, x, y)
			cell := string(r)
			switch {
			case r == start || r == goal:
				b.WriteString(styleMark.Render(cell))
			case onPath[bidi.XY(x, y)]:
				b.WriteString(stylePath.Render("*"))
			case r == wall:
				b.WriteString(styleWall.Render(cell))
			default:
				b.WriteString(styleFloor.Render(cell))
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// renderFilled draws the terrain highlighting every cell in region.
func renderFilled(g *grid.Grid[rune], s *Scenario, region map[bidi.Coord]bool) string {
	wall := s.wallRune()

	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			r := bidi.MustAt[rune](g, x, y)
			switch {
			case region[bidi.XY(x, y)]:
				b.WriteString(styleFill.Render(string(r)))
			case r == wall:
				b.WriteString(styleWall.Render(string(r)))
			default:
				b.WriteString(styleFloor.Render(string(r)))
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
