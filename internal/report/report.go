// Package report renders a bench.Report as a table, markdown, CSV or JSON.
package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/integ/internal/bench"
)

// Format selects a renderer.
type Format string

// Supported formats.
const (
	Table    Format = "table"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	JSON     Format = "json"
)

// ErrUnknownFormat indicates a format name ParseFormat does not accept.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Formats lists the accepted format names.
func Formats() []string {
	return []string{string(Table), string(Markdown), string(CSV), string(JSON)}
}

// ParseFormat accepts the names in Formats plus "md" and "" (table).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table", "text":
		return Table, nil
	case "markdown", "md":
		return Markdown, nil
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%q (want one of %s): %w", s, strings.Join(Formats(), ", "), ErrUnknownFormat)
	}
}

// Render writes rep to w in format f.
func Render(w io.Writer, rep bench.Report, f Format) error {
	switch f {
	case Table, "":
		renderTable(w, rep, false)
		return nil
	case Markdown:
		renderTable(w, rep, true)
		return nil
	case CSV:
		return renderCSV(w, rep.Rows)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

// CSVHeader is the column layout of the CSV renderer.
var CSVHeader = []string{"Function", "Interval", "Solver", "Approx", "Exact", "AbsError", "Evals", "ErrEst"}

func renderCSV(w io.Writer, rows []bench.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(csvRecord(r)); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func csvRecord(r bench.Row) []string {
	rec := []string{r.Function, r.Interval, r.Solver}
	if r.Failed() {
		return append(rec, "FAILED", "N/A", "N/A", "-", "-")
	}

	rec = append(rec, full(r.Approx))
	if r.HasExact {
		rec = append(rec, full(r.Exact), full(r.AbsError))
	} else {
		rec = append(rec, "N/A", "N/A")
	}
	rec = append(rec, strconv.Itoa(r.Evaluations))
	if r.HasErrEst {
		return append(rec, full(r.ErrEst))
	}

	return append(rec, "-")
}

func full(v float64) string { return strconv.FormatFloat(v, 'g', 17, 64) }

func short(v float64) string { return strconv.FormatFloat(v, 'g', 15, 64) }

func renderTable(w io.Writer, rep bench.Report, markdown bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("%s (run %s)", rep.Suite, rep.RunID)
	t.AppendHeader(table.Row{"Function", "Interval", "Solver", "Approx", "Exact", "AbsError", "Evals", "ErrEst", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})

	for _, r := range rep.Rows {
		row := table.Row{r.Function, r.Interval, r.Solver}
		if r.Failed() {
			row = append(row, "FAILED", "N/A", "N/A", "-", "-", r.Status)
			t.AppendRow(row)
			continue
		}
		row = append(row, short(r.Approx))
		if r.HasExact {
			row = append(row, short(r.Exact), fmt.Sprintf("%.3g", r.AbsError))
		} else {
			row = append(row, "N/A", "N/A")
		}
		row = append(row, r.Evaluations)
		if r.HasErrEst {
			row = append(row, fmt.Sprintf("%.3g", r.ErrEst))
		} else {
			row = append(row, "-")
		}
		t.AppendRow(append(row, r.Status))
	}

	s := table.NewWriter()
	s.SetOutputMirror(w)
	s.SetStyle(table.StyleLight)
	s.AppendHeader(table.Row{"Solver", "Solves", "Failures", "Evals", "MeanAbsError", "StdAbsError", "MaxAbsError"})
	for _, sum := range rep.Summary {
		s.AppendRow(table.Row{
			sum.Solver, sum.Solves, sum.Failures, sum.Evaluations,
			fmt.Sprintf("%.3g", sum.MeanAbsError),
			fmt.Sprintf("%.3g", sum.StdAbsError),
			fmt.Sprintf("%.3g", sum.MaxAbsError),
		})
	}

	if markdown {
		t.RenderMarkdown()
		_, _ = fmt.Fprintln(w)
		s.RenderMarkdown()
		return
	}
	t.Render()
	s.Render()
}
