package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bidigrid/bidi"
	"github.com/katalvlaran/bidigrid/grid"
	"github.com/katalvlaran/bidigrid/pathfind"
)

var styleStatus = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// playCommand creates the play command: an interactive stepper that
// walks the solved path one cell at a time.
func (c *CLI) playCommand() *cobra.Command {
	var scenarioPath string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Step through a solved scenario interactively",
		Long: `Play solves the scenario and opens an interactive view. Use the
arrow keys (or space) to advance along the path, 'a' to autoplay and 'q'
to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlay(scenarioPath)
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "TOML scenario file (default: built-in maze)")

	return cmd
}

func (c *CLI) runPlay(scenarioPath string) error {
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
	res, err := pathfind.AStar[rune](g, start, goal, s.CostFunc(), s.Heuristic(),
		pathfind.WithConnectivity(s.Conn()))
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	path, err := res.PathTo(goal)
	if err != nil {
		return err
	}
	cost, _ := res.CostTo(goal)

	m := newPlayModel(g, s, path, cost)
	_, err = tea.NewProgram(m).Run()

	return err
}

// tickMsg drives autoplay.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// playModel is the bubbletea model for the path stepper.
type playModel struct {
	terrain *grid.Grid[rune]
	scn     *Scenario
	path    []bidi.Coord
	cost    float64
	step    int // cells of path currently revealed, 1..len(path)
	auto    bool
}

func newPlayModel(g *grid.Grid[rune], s *Scenario, path []bidi.Coord, cost float64) playModel {
	return playModel{terrain: g, scn: s, path: path, cost: cost, step: 1}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", " ", "l":
			if m.step < len(m.path) {
				m.step++
			}
		case "left", "h":
			if m.step > 1 {
				m.step--
			}
		case "a":
			m.auto = !m.auto
			if m.auto {
				return m, tick()
			}
		case "r":
			m.step = 1
		}
	case tickMsg:
		if !m.auto {
			return m, nil
		}
		if m.step < len(m.path) {
			m.step++
			return m, tick()
		}
		m.auto = false
	}

	return m, nil
}

func (m playModel) View() string {
	out := renderTerrain(m.terrain, m.scn, m.path[:m.step])
	status := fmt.Sprintf("step %d/%d  cost %.6g", m.step-1, len(m.path)-1, m.cost)
	help := "←/→ step · space advance · a autoplay · r restart · q quit"

	return out + styleStatus.Render(status) + "\n" + styleStatus.Render(help) + "\n"
}
