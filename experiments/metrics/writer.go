package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder of root named after the experiment.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteRunRecords(records []RunMetric) error {
	path := filepath.Join(w.baseDir, "search_runs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create search runs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{
		"puzzle", "part", "label", "break_on_goal", "duration", "pops", "expansions",
		"bound_pruned", "dominated", "goals", "replaced", "rejected", "max_frontier", "truncated",
	}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write search runs header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Puzzle,
			strconv.Itoa(record.Part),
			record.Label,
			strconv.FormatBool(record.BreakOnGoal),
			record.Duration.String(),
			strconv.Itoa(record.Pops),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.BoundPruned),
			strconv.Itoa(record.Dominated),
			strconv.Itoa(record.Goals),
			strconv.Itoa(record.Replaced),
			strconv.Itoa(record.Rejected),
			strconv.Itoa(record.MaxFrontier),
			strconv.FormatBool(record.Truncated),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write search run row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush search runs: %w", err)
	}
	return nil
}
