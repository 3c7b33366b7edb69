package experiments

import (
	"fmt"

	"puzzlesearch/engine"
	"puzzlesearch/experiments/metrics"

	"github.com/rs/zerolog/log"
)

const ShortCircuitName = "short_circuit"

// RunShortCircuitExperiment solves every puzzle part with and without
// short-circuiting and records the search metrics of each run. Answers of the
// two modes are compared; a mismatch means a puzzle's estimate does not
// justify short-circuiting.
func RunShortCircuitExperiment(base *engine.Engine, names []string) ([]metrics.RunMetric, error) {
	var records []metrics.RunMetric

	log.Info().Msgf("starting %s experiment...", ShortCircuitName)

	for pi, name := range names {
		for _, part := range engine.Parts {
			log.Info().Msgf("starting puzzle %d of %d (%s) part %d...", pi+1, len(names), name, part)

			answers := map[bool]string{}
			for _, exhaustive := range []bool{false, true} {
				settings := base.Settings()
				settings.Exhaustive = exhaustive
				report, err := base.WithSettings(settings).Solve(name, part)
				if err != nil {
					return records, fmt.Errorf("failed to solve %s part %d: %w", name, part, err)
				}
				answers[exhaustive] = report.Answer.Value
				records = append(records, report.Answer.Metrics...)
			}

			if answers[false] != answers[true] {
				log.Warn().Msgf("%s part %d: short-circuit answer %s differs from exhaustive answer %s",
					name, part, answers[false], answers[true])
			}
			log.Info().Msgf("completed puzzle %s part %d with answer: %s", name, part, answers[true])
		}
	}

	log.Info().Msgf("completed %s experiment", ShortCircuitName)
	return records, nil
}

// Store writes the records of an experiment below root.
func Store(root, name string, records []metrics.RunMetric) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteRunRecords(records)
	if err != nil {
		return "", fmt.Errorf("failed to write run records: %w", err)
	}
	log.Info().Msg("stored run records")
	return writer.Dir(), nil
}
