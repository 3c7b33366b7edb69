package searcher

// intWorld is a world over integer states keyed by themselves.
type intWorld struct {
	initial     int
	next        func(n int) []int
	value       func(n int) int
	estimate    func(n int) int
	goal        func(n int) bool
	breakOnGoal bool

	expanded map[int]int // Successors calls per state
	offered  map[int]int // Successor states handed back to the searcher
}

func (w *intWorld) InitialState() int { return w.initial }

func (w *intWorld) Successors(n int) []int {
	if w.expanded == nil {
		w.expanded = map[int]int{}
		w.offered = map[int]int{}
	}
	w.expanded[n]++
	next := w.next(n)
	for _, c := range next {
		w.offered[c]++
	}
	return next
}

func (w *intWorld) Key(n int) int           { return n }
func (w *intWorld) Value(n int) int         { return w.value(n) }
func (w *intWorld) ValueEstimate(n int) int { return w.estimate(n) }
func (w *intWorld) IsGoal(n int) bool       { return w.goal(n) }
func (w *intWorld) BreakOnGoal() bool       { return w.breakOnGoal }

type edge struct {
	to   int
	gain int
}

// pathState is a node reached with an accumulated gain. Its key is the node
// alone, so different paths to one node collapse.
type pathState struct {
	node int
	acc  int
}

type graphWorld struct {
	edges       map[int][]edge
	goals       map[int]bool
	estimate    func(s pathState) int
	breakOnGoal bool

	expanded map[int]int // Successors calls per node
}

func (w *graphWorld) InitialState() pathState { return pathState{} }

func (w *graphWorld) Successors(s pathState) []pathState {
	if w.expanded == nil {
		w.expanded = map[int]int{}
	}
	w.expanded[s.node]++
	var next []pathState
	for _, e := range w.edges[s.node] {
		next = append(next, pathState{node: e.to, acc: s.acc + e.gain})
	}
	return next
}

func (w *graphWorld) Key(s pathState) int           { return s.node }
func (w *graphWorld) Value(s pathState) int         { return s.acc }
func (w *graphWorld) ValueEstimate(s pathState) int { return w.estimate(s) }
func (w *graphWorld) IsGoal(s pathState) bool       { return w.goals[s.node] }
func (w *graphWorld) BreakOnGoal() bool             { return w.breakOnGoal }

func (w *graphWorld) expansions() int {
	total := 0
	for _, n := range w.expanded {
		total += n
	}
	return total
}
