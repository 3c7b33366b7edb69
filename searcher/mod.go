package searcher

import "golang.org/x/exp/constraints"

// Searchable describes a world that can be explored by a Searcher.
//
// Value and ValueEstimate share one totally ordered type. Cost minimisation is
// expressed by negating the cost. ValueEstimate must never be lower than the
// best Value reachable from the state (the state itself included), otherwise
// the returned goal may be suboptimal.
type Searchable[S any, K comparable, V constraints.Ordered] interface {
	InitialState() S
	// Successors consumes state and returns the states reachable in one step.
	// The result must not contain state itself.
	Successors(state S) []S
	Key(state S) K
	Value(state S) V
	ValueEstimate(state S) V
	// IsGoal reports whether state is an acceptable end state. Goal states are
	// never expanded.
	IsGoal(state S) bool
}

// GoalBreaker is implemented by worlds whose estimate guarantees that the first
// goal popped from the frontier is optimal, so the search can stop there.
type GoalBreaker interface {
	BreakOnGoal() bool
}

func breaksOnGoal(world any) bool {
	b, ok := world.(GoalBreaker)
	return ok && b.BreakOnGoal()
}
