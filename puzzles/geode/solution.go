package geode

import (
	"fmt"
	"strconv"

	"puzzlesearch/experiments/metrics"
	"puzzlesearch/puzzles"
	"puzzlesearch/searcher"
	"puzzlesearch/utils"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const Name = "geode"

const (
	ShortMinutes   = 24
	LongMinutes    = 32
	LongBlueprints = 3 // Only the first few blueprints survive the long run
)

type Solution struct {
	settings puzzles.Settings
	parser   *Parser
}

func NewSolution(settings puzzles.Settings) puzzles.Solution {
	return &Solution{settings: settings, parser: NewParser()}
}

type outcome struct {
	blueprint Blueprint
	geodes    int
	run       metrics.RunMetric
}

func (s *Solution) Solve(part int, input string) (puzzles.Answer, error) {
	if part != 1 && part != 2 {
		return puzzles.Answer{}, fmt.Errorf("%s part %d: %w", Name, part, puzzles.ErrUnknownPart)
	}

	blueprints, err := utils.ParseLines(input, s.parser.Parse)
	if err != nil {
		return puzzles.Answer{}, fmt.Errorf("failed to parse blueprints: %w", err)
	}

	minutes := ShortMinutes
	if part == 2 {
		minutes = LongMinutes
		blueprints = blueprints[:min(LongBlueprints, len(blueprints))]
	}

	outcomes, err := s.crackAll(part, blueprints, minutes)
	answer := puzzles.Answer{
		Metrics: lo.Map(outcomes, func(o outcome, _ int) metrics.RunMetric { return o.run }),
	}
	if err != nil {
		return answer, err
	}

	var total int
	if part == 1 {
		total = lo.SumBy(outcomes, func(o outcome) int { return o.blueprint.ID * o.geodes })
	} else {
		total = 1
		for _, o := range outcomes {
			total *= o.geodes
		}
	}
	answer.Value = strconv.Itoa(total)
	return answer, nil
}

// crackAll searches every blueprint independently, a bounded number at a time.
func (s *Solution) crackAll(part int, blueprints []Blueprint, minutes int) ([]outcome, error) {
	outcomes := make([]outcome, len(blueprints))
	options := s.settings.SearchOptions()

	var g errgroup.Group
	if s.settings.Goroutines > 0 {
		g.SetLimit(s.settings.Goroutines)
	}
	for i, bp := range blueprints {
		g.Go(func() error {
			result := searcher.NewSearcher[State, State, int](NewFactory(bp, minutes), options...).Run()
			outcomes[i] = outcome{
				blueprint: bp,
				geodes:    result.Value,
				run: metrics.RunMetric{
					Puzzle:       Name,
					Part:         part,
					Label:        fmt.Sprintf("blueprint %d", bp.ID),
					SearchMetric: result.Metric,
				},
			}
			if !result.Found {
				return fmt.Errorf("%s blueprint %d: %w", Name, bp.ID, puzzles.ErrNoSolution)
			}
			log.Info().Msgf("blueprint %d: %d geodes in %d minutes", bp.ID, result.Value, minutes)
			return nil
		})
	}
	err := g.Wait()
	return outcomes, err
}
