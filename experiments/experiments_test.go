package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"puzzlesearch/engine"
	"puzzlesearch/puzzles"

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

func TestRunShortCircuitExperiment(t *testing.T) {
	t.Run("recording both modes for every part", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "crucible.txt"), []byte(cityExample), 0644))
		e := engine.NewEngine(dir, puzzles.Settings{})

		records, err := RunShortCircuitExperiment(e, []string{"crucible"})

		require.NoError(t, err)
		require.Len(t, records, 4, "Two parts times two modes")
		require.True(t, records[0].BreakOnGoal, "First run of a part should short-circuit")
		require.False(t, records[1].BreakOnGoal, "Second run of a part should be exhaustive")
		require.LessOrEqual(t, records[0].Pops, records[1].Pops, "Short-circuit should not pop more")
		require.Equal(t, 2, records[2].Part)
	})

	t.Run("stopping at the first failure", func(t *testing.T) {
		e := engine.NewEngine(t.TempDir(), puzzles.Settings{})

		_, err := RunShortCircuitExperiment(e, []string{"crucible"})

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestStore(t *testing.T) {
	root := t.TempDir()

	dir, err := Store(root, ShortCircuitName, nil)

	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "search_runs.csv"))
}
