package cli

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/bidigrid/bidi"
	"github.com/katalvlaran/bidigrid/grid"
	"github.com/katalvlaran/bidigrid/pathfind"
)

// Scenario is a terrain description decoded from a TOML file.
//
// Rows must all have the same rune length. Wall cells reject movement;
// any other rune moves at the cost listed in Costs (default 1).
type Scenario struct {
	Name         string             `toml:"name"`
	Connectivity int                `toml:"connectivity"` // 4 (default) or 8
	Rows         []string           `toml:"rows"`
	Wall         string             `toml:"wall"`  // default "#"
	Start        string             `toml:"start"` // default "S"
	Goal         string             `toml:"goal"`  // default "D"
	Costs        map[string]float64 `toml:"costs"` // per-rune step cost
}

// defaultScenario is used when no --scenario file is given.
var defaultScenario = Scenario{
	Name: "corridor",
	Rows: []string{
		"##########",
		"##  S#   #",
		"## ### # #",
		"##     # #",
		"## ### # #",
		"##   # #D#",
		"##########",
	},
}

// LoadScenario decodes a scenario from a TOML file, or returns the
// built-in corridor maze for an empty path.
func LoadScenario(path string) (*Scenario, error) {
	s := defaultScenario
	if path == "" {
		return &s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s = Scenario{}
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}

	return &s, nil
}

func (s *Scenario) validate() error {
	if len(s.Rows) == 0 {
		return fmt.Errorf("no rows")
	}
	want := utf8.RuneCountInString(s.Rows[0])
	for i, row := range s.Rows {
		if utf8.RuneCountInString(row) != want {
			return fmt.Errorf("row %d has %d cells, want %d", i, utf8.RuneCountInString(row), want)
		}
	}
	if c := s.Connectivity; c != 0 && c != 4 && c != 8 {
		return fmt.Errorf("connectivity %d, want 4 or 8", c)
	}
	for key := range s.Costs {
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("cost key %q is not a single rune", key)
		}
	}

	return nil
}

// Grid materializes the scenario rows into rune storage.
func (s *Scenario) Grid() (*grid.Grid[rune], error) {
	cells := make([][]rune, len(s.Rows))
	for y, row := range s.Rows {
		cells[y] = []rune(row)
	}

	return grid.NewOf(cells)
}

// Conn returns the configured neighbor set, defaulting to Conn4.
func (s *Scenario) Conn() bidi.Connectivity {
	if s.Connectivity == 8 {
		return bidi.Conn8
	}

	return bidi.Conn4
}

func (s *Scenario) wallRune() rune  { return firstRuneOr(s.Wall, '#') }
func (s *Scenario) startRune() rune { return firstRuneOr(s.Start, 'S') }
func (s *Scenario) goalRune() rune  { return firstRuneOr(s.Goal, 'D') }

func firstRuneOr(s string, def rune) rune {
	if s == "" {
		return def
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r
}

// Endpoints locates the start and goal markers on the terrain.
func (s *Scenario) Endpoints(g *grid.Grid[rune]) (start, goal bidi.Coord, err error) {
	startR, goalR := s.startRune(), s.goalRune()
	start, ok := bidi.Find[rune](g, func(r rune) bool { return r == startR })
	if !ok {
		return start, goal, fmt.Errorf("scenario has no start marker %q", startR)
	}
	goal, ok = bidi.Find[rune](g, func(r rune) bool { return r == goalR })
	if !ok {
		return start, goal, fmt.Errorf("scenario has no goal marker %q", goalR)
	}

	return start, goal, nil
}

// CostFunc builds the movement pricing for the scenario: walls reject,
// listed runes use their configured cost, everything else costs 1.
func (s *Scenario) CostFunc() pathfind.CostFunc[rune] {
	wall := s.wallRune()
	costs := make(map[rune]float64, len(s.Costs))
	for key, c := range s.Costs {
		r, _ := utf8.DecodeRuneInString(key)
		costs[r] = c
	}

	return func(_ rune, _ bidi.Coord, to rune, _ bidi.Coord) (float64, bool) {
		if to == wall {
			return 0, false
		}
		if c, ok := costs[to]; ok {
			return c, true
		}

		return 1, true
	}
}

// Heuristic returns the admissible heuristic matching the scenario's
// connectivity.
func (s *Scenario) Heuristic() pathfind.Heuristic {
	if s.Conn() == bidi.Conn8 {
		return pathfind.Chebyshev
	}

	return pathfind.Manhattan
}
