package commands

import (
	"encoding/json"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/integ/functions"
	"github.com/katalvlaran/integ/internal/bench"
	"github.com/katalvlaran/integ/internal/cli/config"
	"github.com/katalvlaran/integ/internal/report"
)

// catalog is what list prints.
type catalog struct {
	Functions   []string `json:"functions"`
	Functions2D []string `json:"functions_2d"`
	Solvers     []string `json:"solvers"`
	Formats     []string `json:"formats"`
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List function ids, solvers and output formats",
		Long: `List the function ids usable in suite files, the solver names accepted by
--solvers and --pairs, and the output formats.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			reg := functions.NewRegistry()
			c := catalog{
				Functions:   reg.IDs(),
				Functions2D: reg.IDs2D(),
				Solvers:     bench.SolverNames(),
				Formats:     report.Formats(),
			}

			format, err := report.ParseFormat(cfg.Output)
			if err != nil {
				return err
			}
			if format == report.JSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(c)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Kind", "Name"})
			appendKind := func(kind string, names []string) {
				for _, n := range names {
					t.AppendRow(table.Row{kind, n})
				}
			}
			appendKind("function", c.Functions)
			appendKind("function 2d", c.Functions2D)
			appendKind("solver", c.Solvers)
			appendKind("format", c.Formats)
			if format == report.Markdown {
				t.RenderMarkdown()
			} else {
				t.Render()
			}

			return nil
		},
	}
}
