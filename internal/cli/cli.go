// Package cli implements the bidigrid command-line interface.
//
// The bidigrid binary is a small showcase for the library: it loads a
// terrain scenario from a TOML file, solves it with Dijkstra or A*,
// flood-fills regions, renders results to the terminal or to a PNG, and
// offers an interactive path stepper.
//
// All commands accept --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output (rendered terrain, summaries). Logs go
	// to the logger's writer instead, so output stays pipeable.
	Out io.Writer
}

// New creates a CLI instance logging to w at the given level. Command
// output goes to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Out: os.Stdout,
	}
}

func (c *CLI) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}

	return c.Out
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "bidigrid",
		Short:        "Bidigrid demonstrates grid containers, editing and pathfinding",
		Long:         `Bidigrid loads terrain scenarios and runs the library's algorithms on them: shortest paths (Dijkstra, A*), flood fill, and geometric transforms, rendered to the terminal or to PNG images.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.fillCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.playCommand())

	return root
}
