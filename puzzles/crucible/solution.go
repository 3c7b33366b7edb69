package crucible

import (
	"fmt"
	"strconv"

	"puzzlesearch/experiments/metrics"
	"puzzlesearch/puzzles"
	"puzzlesearch/searcher"

	"github.com/rs/zerolog/log"
)

const Name = "crucible"

type Solution struct {
	settings puzzles.Settings
}

func NewSolution(settings puzzles.Settings) puzzles.Solution {
	return &Solution{settings: settings}
}

func (s *Solution) Solve(part int, input string) (puzzles.Answer, error) {
	var minStraight, maxStraight uint8
	switch part {
	case 1:
		minStraight, maxStraight = 0, 3
	case 2:
		minStraight, maxStraight = 4, 10
	default:
		return puzzles.Answer{}, fmt.Errorf("%s part %d: %w", Name, part, puzzles.ErrUnknownPart)
	}

	blocks, err := ParseMap(input)
	if err != nil {
		return puzzles.Answer{}, fmt.Errorf("failed to parse city map: %w", err)
	}
	city := NewCity(blocks, minStraight, maxStraight)
	city.exhaustive = s.settings.Exhaustive

	result := searcher.NewSearcher[State, Key, int](city, s.settings.SearchOptions()...).Run()
	run := metrics.RunMetric{Puzzle: Name, Part: part, Label: "city", SearchMetric: result.Metric}
	answer := puzzles.Answer{Metrics: []metrics.RunMetric{run}}
	if !result.Found {
		return answer, fmt.Errorf("%s part %d: %w", Name, part, puzzles.ErrNoSolution)
	}

	log.Info().Msgf("least heat loss %d after %d pops", result.State.TotalCost, result.Metric.Pops)
	answer.Value = strconv.Itoa(result.State.TotalCost)
	return answer, nil
}
