package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration    time.Duration
	Pops        int
	Expansions  int
	BoundPruned int // Discarded because the estimate could not beat the best goal
	Dominated   int // Discarded because the key was already expanded at an equal or better value
	Goals       int
	Replaced    int // Frontier entries replaced by a higher estimate for the same key
	Rejected    int // Successors dropped in favour of an existing frontier entry
	MaxFrontier int
	BreakOnGoal bool
	Truncated   bool
}

type RunMetric struct {
	Puzzle string
	Part   int
	Label  string // Identifies the search within a solve, e.g. a blueprint id
	SearchMetric
}

type Collector interface {
	Start(breakOnGoal bool)
	AddPop()
	AddExpansion()
	AddBoundPruned()
	AddDominated()
	AddGoal()
	AddReplaced()
	AddRejected()
	ObserveFrontier(size int)
	SetTruncated(value bool)
	Complete() SearchMetric
}

type collector struct {
	startTime   time.Time
	breakOnGoal bool
	pops        atomic.Int64
	expansions  atomic.Int64
	boundPruned atomic.Int64
	dominated   atomic.Int64
	goals       atomic.Int64
	replaced    atomic.Int64
	rejected    atomic.Int64
	maxFrontier atomic.Int64
	truncated   atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(breakOnGoal bool) {
	m.startTime = time.Now()
	m.breakOnGoal = breakOnGoal
}

func (m *collector) AddPop() {
	m.pops.Add(1)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) AddBoundPruned() {
	m.boundPruned.Add(1)
}

func (m *collector) AddDominated() {
	m.dominated.Add(1)
}

func (m *collector) AddGoal() {
	m.goals.Add(1)
}

func (m *collector) AddReplaced() {
	m.replaced.Add(1)
}

func (m *collector) AddRejected() {
	m.rejected.Add(1)
}

func (m *collector) ObserveFrontier(size int) {
	n := int64(size)
	for {
		current := m.maxFrontier.Load()
		if n <= current || m.maxFrontier.CompareAndSwap(current, n) {
			return
		}
	}
}

func (m *collector) SetTruncated(value bool) {
	m.truncated.Store(value)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:    time.Since(m.startTime),
		Pops:        int(m.pops.Load()),
		Expansions:  int(m.expansions.Load()),
		BoundPruned: int(m.boundPruned.Load()),
		Dominated:   int(m.dominated.Load()),
		Goals:       int(m.goals.Load()),
		Replaced:    int(m.replaced.Load()),
		Rejected:    int(m.rejected.Load()),
		MaxFrontier: int(m.maxFrontier.Load()),
		BreakOnGoal: m.breakOnGoal,
		Truncated:   m.truncated.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(breakOnGoal bool)   {}
func (m *dummyCollector) AddPop()                  {}
func (m *dummyCollector) AddExpansion()            {}
func (m *dummyCollector) AddBoundPruned()          {}
func (m *dummyCollector) AddDominated()            {}
func (m *dummyCollector) AddGoal()                 {}
func (m *dummyCollector) AddReplaced()             {}
func (m *dummyCollector) AddRejected()             {}
func (m *dummyCollector) ObserveFrontier(size int) {}
func (m *dummyCollector) SetTruncated(value bool)  {}
func (m *dummyCollector) Complete() SearchMetric   { return SearchMetric{} }
