package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const cityExample = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, "list")

	require.NoError(t, err)
	require.Equal(t, "crucible\ngeode\n", out)
}

func TestSolveCommand(t *testing.T) {
	t.Run("printing the answer of one part", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "crucible.txt"), []byte(cityExample), 0644))

		out, err := run(t, "solve", "crucible", "1", "--input-dir", dir, "--level", "error")

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Equal(t, "102", lines[0])
		require.True(t, strings.HasPrefix(lines[1], "Elapsed: "), "Should report elapsed time")
	})

	t.Run("rejecting a non-numeric part", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := run(t, "solve", "crucible", "one")

		require.ErrorContains(t, err, "invalid part")
	})

	t.Run("rejecting a bad log level", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := run(t, "list", "--level", "loud")

		require.ErrorContains(t, err, "invalid log level")
	})
}

func TestExperimentCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crucible.txt"), []byte(cityExample), 0644))
	metricsDir := filepath.Join(dir, "records")

	out, err := run(t, "experiment", "crucible", "--input-dir", dir, "--metrics-dir", metricsDir, "--level", "error")

	require.NoError(t, err)
	require.Contains(t, out, "Stored 4 runs")
	matches, err := filepath.Glob(filepath.Join(metricsDir, "short_circuit", "*", "search_runs.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1, "Should write one record file")
}
