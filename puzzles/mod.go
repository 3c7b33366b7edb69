// Package puzzles holds the contract between puzzle solutions and the driver
// that runs them.
package puzzles

import (
	"errors"

	"puzzlesearch/experiments/metrics"
	"puzzlesearch/searcher"
)

var (
	ErrNoSolution  = errors.New("no solution found")
	ErrUnknownPart = errors.New("unknown puzzle part")
)

// Settings tune how a solution drives its searches.
type Settings struct {
	Goroutines     int  // Upper bound on searches running at once
	ExpansionLimit int  // Per-search cap, zero for unbounded
	Exhaustive     bool // Disable short-circuiting even where the estimate allows it
}

func (s Settings) SearchOptions() []searcher.Option {
	return []searcher.Option{
		searcher.WithMetrics(),
		searcher.WithExpansionLimit(s.ExpansionLimit),
	}
}

type Answer struct {
	Value   string
	Metrics []metrics.RunMetric
}

type Solution interface {
	Solve(part int, input string) (Answer, error)
}

// Factory builds a Solution for the given settings.
type Factory func(settings Settings) Solution
