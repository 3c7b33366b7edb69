package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"puzzlesearch/puzzles"
	"puzzlesearch/puzzles/crucible"
	"puzzlesearch/puzzles/geode"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

var ErrUnknownPuzzle = errors.New("unknown puzzle")

var Parts = []int{1, 2}

var registry = map[string]puzzles.Factory{
	crucible.Name: crucible.NewSolution,
	geode.Name:    geode.NewSolution,
}

// Names lists the registered puzzles in sorted order.
func Names() []string {
	names := lo.Keys(registry)
	slices.Sort(names)
	return names
}

type Report struct {
	Puzzle  string
	Part    int
	Answer  puzzles.Answer
	Elapsed time.Duration
}

// Engine reads puzzle inputs from a directory and runs their solutions.
type Engine struct {
	inputDir string
	settings puzzles.Settings
}

func NewEngine(inputDir string, settings puzzles.Settings) *Engine {
	return &Engine{inputDir: inputDir, settings: settings}
}

// WithSettings returns a copy of the engine that solves with settings.
func (e *Engine) WithSettings(settings puzzles.Settings) *Engine {
	return &Engine{inputDir: e.inputDir, settings: settings}
}

func (e *Engine) Settings() puzzles.Settings {
	return e.settings
}

// ReadInput prefers a part specific input file and falls back to the shared one.
func (e *Engine) ReadInput(name string, part int) (string, error) {
	specific := filepath.Join(e.inputDir, fmt.Sprintf("%s-%d.txt", name, part))
	if data, err := os.ReadFile(specific); err == nil {
		return string(data), nil
	}
	shared := filepath.Join(e.inputDir, name+".txt")
	data, err := os.ReadFile(shared)
	if err != nil {
		return "", fmt.Errorf("failed to read input for %s part %d: %w", name, part, err)
	}
	return string(data), nil
}

func (e *Engine) Solve(name string, part int) (Report, error) {
	if _, ok := registry[name]; !ok {
		return Report{}, fmt.Errorf("%q: %w", name, ErrUnknownPuzzle)
	}
	input, err := e.ReadInput(name, part)
	if err != nil {
		return Report{}, err
	}
	return e.SolveInput(name, part, input)
}

func (e *Engine) SolveInput(name string, part int, input string) (Report, error) {
	factory, ok := registry[name]
	if !ok {
		return Report{}, fmt.Errorf("%q: %w", name, ErrUnknownPuzzle)
	}

	log.Debug().Msgf("solving %s part %d", name, part)
	start := time.Now()
	answer, err := factory(e.settings).Solve(part, input)
	report := Report{Puzzle: name, Part: part, Answer: answer, Elapsed: time.Since(start)}
	if err != nil {
		return report, err
	}
	log.Debug().Msgf("solved %s part %d in %s", name, part, report.Elapsed)
	return report, nil
}

// SolveParts runs the given parts of one puzzle concurrently. Each part owns
// its searches, so nothing is shared between them.
func (e *Engine) SolveParts(name string, parts []int) ([]Report, error) {
	reports := make([]Report, len(parts))
	var g errgroup.Group
	for i, part := range parts {
		g.Go(func() error {
			report, err := e.Solve(name, part)
			reports[i] = report
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
