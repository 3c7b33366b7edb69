package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting search events", func(t *testing.T) {
		c := NewCollector()
		c.Start(true)
		c.AddPop()
		c.AddPop()
		c.AddExpansion()
		c.AddBoundPruned()
		c.AddDominated()
		c.AddGoal()
		c.AddReplaced()
		c.AddRejected()
		c.AddRejected()
		c.SetTruncated(true)

		got := c.Complete()

		require.Equal(t, 2, got.Pops, "Should count every pop")
		require.Equal(t, 1, got.Expansions, "Should count every expansion")
		require.Equal(t, 1, got.BoundPruned, "Should count bound cutoffs")
		require.Equal(t, 1, got.Dominated, "Should count dominance cutoffs")
		require.Equal(t, 1, got.Goals, "Should count goals")
		require.Equal(t, 1, got.Replaced, "Should count frontier replacements")
		require.Equal(t, 2, got.Rejected, "Should count rejected successors")
		require.True(t, got.BreakOnGoal, "Should record the short-circuit mode")
		require.True(t, got.Truncated, "Should record truncation")
	})

	t.Run("tracking the largest frontier concurrently", func(t *testing.T) {
		c := NewCollector()
		c.Start(false)

		var wg sync.WaitGroup
		for i := 1; i <= 100; i++ {
			wg.Add(1)
			go func(size int) {
				defer wg.Done()
				c.ObserveFrontier(size)
			}(i)
		}
		wg.Wait()

		require.Equal(t, 100, c.Complete().MaxFrontier, "Should keep the maximum observed size")
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(true)
		c.AddPop()
		c.ObserveFrontier(10)

		require.Equal(t, SearchMetric{}, c.Complete(), "Dummy collector should return an empty metric")
	})
}

func TestWriter(t *testing.T) {
	t.Run("writing run records as csv", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "short_circuit")
		require.NoError(t, err)

		records := []RunMetric{
			{Puzzle: "crucible", Part: 1, Label: "break", SearchMetric: SearchMetric{
				Duration: time.Millisecond, Pops: 10, Expansions: 9, BreakOnGoal: true,
			}},
			{Puzzle: "crucible", Part: 1, Label: "exhaustive", SearchMetric: SearchMetric{Pops: 12}},
		}
		require.NoError(t, w.WriteRunRecords(records))

		f, err := os.Open(filepath.Join(w.Dir(), "search_runs.csv"))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)

		require.Len(t, rows, 3, "Should write a header and one row per record")
		require.Equal(t, "puzzle", rows[0][0], "First row should be the header")
		require.Equal(t, []string{"crucible", "1", "break", "true", "1ms", "10", "9"}, rows[1][:7],
			"Row should carry the record fields in header order")
		require.Equal(t, "12", rows[2][5], "Second record should carry its pop count")
	})
}
