package searcher

import (
	"puzzlesearch/experiments/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"
)

type Option func(s *settings)

type settings struct {
	expansionLimit int
	metrics        func() metrics.Collector
	logger         *zerolog.Logger
}

// WithExpansionLimit stops the search after n states have been expanded. The
// result is then marked as truncated.
func WithExpansionLimit(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.expansionLimit = n
		}
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = &logger
	}
}

// Result is the best goal found by a search.
type Result[S any, V constraints.Ordered] struct {
	State     S
	Value     V
	Found     bool
	Truncated bool
	Metric    metrics.SearchMetric
}

type Searcher[S any, K comparable, V constraints.Ordered] struct {
	world    Searchable[S, K, V]
	settings settings
}

func NewSearcher[S any, K comparable, V constraints.Ordered](world Searchable[S, K, V], options ...Option) *Searcher[S, K, V] {
	s := &Searcher[S, K, V]{ // Default values
		world: world,
		settings: settings{
			metrics: metrics.NewDummyCollector,
		},
	}
	for _, option := range options {
		option(&s.settings)
	}
	return s
}

// Search runs a best-first search over world and returns the best goal state
// and its value. ok is false when no goal is reachable.
func Search[S any, K comparable, V constraints.Ordered](world Searchable[S, K, V], options ...Option) (state S, value V, ok bool) {
	result := NewSearcher(world, options...).Run()
	return result.State, result.Value, result.Found
}

// Run performs one complete search. A Searcher holds no state between runs, so
// Run may be called repeatedly, and separate Searchers may run concurrently.
func (s *Searcher[S, K, V]) Run() Result[S, V] {
	logger := s.logger()
	collector := s.settings.metrics()
	breakOnGoal := breaksOnGoal(s.world)
	collector.Start(breakOnGoal)

	open := newFrontier[S, K, V]()
	closed := make(map[K]V)
	var best Result[S, V]

	initial := s.world.InitialState()
	open.offer(s.world.Key(initial), initial, s.world.ValueEstimate(initial))

	pops, expansions := 0, 0
	for open.Len() > 0 {
		key, state, estimate := open.pop()
		pops++
		collector.AddPop()
		logger.Trace().Msgf("checking %+v, estimate %v", state, estimate)

		// Nothing below this state can beat the best goal
		if best.Found && estimate <= best.Value {
			collector.AddBoundPruned()
			continue
		}

		value := s.world.Value(state)
		if prev, seen := closed[key]; seen && prev >= value {
			collector.AddDominated()
			continue
		}

		if s.world.IsGoal(state) {
			collector.AddGoal()
			if !best.Found || value > best.Value {
				logger.Debug().Msgf("new best goal %+v, value %v", state, value)
				best.State = state
				best.Value = value
				best.Found = true
				if breakOnGoal {
					break
				}
			}
			continue
		}

		if limit := s.settings.expansionLimit; limit > 0 && expansions >= limit {
			logger.Debug().Msgf("expansion limit %d reached", limit)
			best.Truncated = true
			break
		}

		closed[key] = value
		expansions++
		collector.AddExpansion()

		for _, next := range s.world.Successors(state) {
			nextKey := s.world.Key(next)
			nextEstimate := s.world.ValueEstimate(next)
			logger.Trace().Msgf("next %+v, estimate %v", next, nextEstimate)

			kept, replaced := open.offer(nextKey, next, nextEstimate)
			switch {
			case replaced:
				collector.AddReplaced()
			case !kept:
				collector.AddRejected()
			}
		}
		collector.ObserveFrontier(open.Len())
	}

	collector.SetTruncated(best.Truncated)
	best.Metric = collector.Complete()
	logger.Debug().
		Bool("found", best.Found).
		Int("pops", pops).
		Int("expansions", expansions).
		Msg("search complete")
	return best
}

func (s *Searcher[S, K, V]) logger() *zerolog.Logger {
	if s.settings.logger != nil {
		return s.settings.logger
	}
	return &log.Logger
}
