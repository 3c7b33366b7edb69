package searcher

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

type entry[S any, K comparable, V constraints.Ordered] struct {
	key      K
	state    S
	estimate V
	seq      uint64 // Insertion order, breaks ties between equal estimates
	index    int
}

// queue is a max-heap on estimate
type queue[S any, K comparable, V constraints.Ordered] []*entry[S, K, V]

func (q queue[S, K, V]) Len() int { return len(q) }

func (q queue[S, K, V]) Less(i, j int) bool {
	if q[i].estimate != q[j].estimate {
		return q[i].estimate > q[j].estimate
	}
	return q[i].seq < q[j].seq
}

func (q queue[S, K, V]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *queue[S, K, V]) Push(x any) {
	e := x.(*entry[S, K, V])
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *queue[S, K, V]) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

// frontier holds at most one live entry per key.
type frontier[S any, K comparable, V constraints.Ordered] struct {
	queue   queue[S, K, V]
	entries map[K]*entry[S, K, V]
	seq     uint64
}

func newFrontier[S any, K comparable, V constraints.Ordered]() *frontier[S, K, V] {
	return &frontier[S, K, V]{
		entries: make(map[K]*entry[S, K, V]),
	}
}

func (f *frontier[S, K, V]) Len() int {
	return f.queue.Len()
}

// offer inserts state under key, or replaces the live entry for key when
// estimate is strictly higher. It reports whether state was kept and whether
// an existing entry was replaced.
func (f *frontier[S, K, V]) offer(key K, state S, estimate V) (kept bool, replaced bool) {
	f.seq++
	if e, ok := f.entries[key]; ok {
		if estimate <= e.estimate {
			return false, false
		}
		e.state = state
		e.estimate = estimate
		e.seq = f.seq
		heap.Fix(&f.queue, e.index)
		return true, true
	}

	e := &entry[S, K, V]{key: key, state: state, estimate: estimate, seq: f.seq}
	heap.Push(&f.queue, e)
	f.entries[key] = e
	return true, false
}

func (f *frontier[S, K, V]) pop() (K, S, V) {
	e := heap.Pop(&f.queue).(*entry[S, K, V])
	delete(f.entries, e.key)
	return e.key, e.state, e.estimate
}

func (f *frontier[S, K, V]) estimateOf(key K) (V, bool) {
	e, ok := f.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.estimate, true
}
