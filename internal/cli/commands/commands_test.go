package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/integ/internal/bench"
	"github.com/katalvlaran/integ/internal/cli/config"
	"github.com/katalvlaran/integ/internal/testutil"
)

// execute runs cmd with cfg in its context and returns stdout.
func execute(t *testing.T, cmd *cobra.Command, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	ctx := config.WithConfig(context.Background(), cfg)
	ctx = config.WithLogger(ctx, testutil.NewTestLogger(t))
	err := cmd.ExecuteContext(ctx)

	return out.String(), err
}

func quickConfig() *config.Config {
	cfg := config.FromContext(context.Background())
	cfg.Subdivisions = 50
	cfg.Samples = 500

	return cfg
}

func TestNewVersionCommand(t *testing.T) {
	out, err := execute(t, NewVersionCommand("1.2.3"), quickConfig())
	require.NoError(t, err)
	assert.Contains(t, out, "integ v1.2.3")
	assert.Contains(t, out, "built with go")
}

func TestRunCommand_CSV(t *testing.T) {
	cfg := quickConfig()
	cfg.Output = "csv"

	out, err := execute(t, NewRunCommand(), cfg)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+4*5+4*3)
	assert.Equal(t, "Function,Interval,Solver,Approx,Exact,AbsError,Evals,ErrEst", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "x^10,\"[0, 1]\",CompositeTrapezoid,"))
}

func TestRunCommand_SuiteAndMetrics(t *testing.T) {
	dir := t.TempDir()
	suite := filepath.Join(dir, "s.yaml")
	require.NoError(t, os.WriteFile(suite, []byte("name: tiny\nproblems:\n  - function: power\n    args: {n: 2}\n    interval: [0, 3]\n    exact: 9\n"), 0o600))

	cfg := quickConfig()
	cfg.Output = "json"
	cfg.Suite = suite
	cfg.Solvers = []string{bench.GaussLegendre}
	cfg.MetricsFile = filepath.Join(dir, "integ.prom")

	out, err := execute(t, NewRunCommand(), cfg)
	require.NoError(t, err)

	var rep bench.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "tiny", rep.Suite)
	require.Len(t, rep.Rows, 1)
	assert.InDelta(t, 9, rep.Rows[0].Approx, 1e-12)

	prom, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "integ_solves_total")
}

func TestRunCommand_BadSuite(t *testing.T) {
	cfg := quickConfig()
	cfg.Suite = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := execute(t, NewRunCommand(), cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListCommand(t *testing.T) {
	cfg := quickConfig()
	out, err := execute(t, NewListCommand(), cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "inv_sqrt")
	assert.Contains(t, out, "sum_squares_xy")
	assert.Contains(t, out, "monte-carlo")

	cfg.Output = "json"
	out, err = execute(t, NewListCommand(), cfg)
	require.NoError(t, err)
	var got catalog
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, bench.SolverNames(), got.Solvers)
	assert.Contains(t, got.Functions, "power")
}
