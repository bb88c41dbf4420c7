package search

import (
	"container/heap"
	"fmt"
)

// Dijkstra runs a uniform-cost search of p, applying any number of
// functional Options. Step costs must be non-negative.
//
// States are finalized in increasing cost order; ties are broken by
// insertion sequence, so runs are reproducible for a deterministic
// transition. A strictly cheaper route to a state replaces its predecessor
// set; a route of exactly equal cost is appended to it.
//
// Returns ErrNoStart, ErrNilTransition, ErrOptionViolation or
// ErrBoundsUndeclared for invalid input, ErrNegativeCost or ErrOutOfBounds
// for a bad transition, and ErrExpansionLimit (with the partial result) when
// the expansion budget runs out. Not reaching a goal is not an error.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E), E entries in the heap worst-case under lazy decrease-key.
func Dijkstra[S comparable](p Problem[S], opts ...Option) (*Result[S], error) {
	// 1) Build and validate options and problem.
	f, err := newFrontier(p, opts)
	if err != nil {
		return nil, err
	}

	// 2) Initialize runner with tentative costs and the heap.
	r := &runner[S]{
		frontier:  f,
		best:      make(map[S]int64, len(f.res.Starts)),
		finalized: make(map[S]bool, len(f.res.Starts)),
		pq:        make(nodePQ[S], 0, len(f.res.Starts)),
	}
	r.init()

	// 3) Run main loop.
	if err := r.process(); err != nil {
		return nil, err
	}
	return r.done()
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[S comparable] struct {
	*frontier[S]
	best      map[S]int64 // state → best known cost so far
	finalized map[S]bool  // state → cost is final
	pq        nodePQ[S]   // min-heap of *nodeItem for lazy priority queue
	seq       uint64      // insertion counter for tie-breaking
}

// init pushes every start state at cost 0.
func (r *runner[S]) init() {
	heap.Init(&r.pq)
	for _, s := range r.res.Starts {
		r.best[s] = 0
		r.push(s, 0)
	}
}

func (r *runner[S]) push(s S, cost int64) {
	heap.Push(&r.pq, &nodeItem[S]{state: s, cost: cost, seq: r.seq})
	r.seq++
}

// process repeatedly extracts the cheapest state and relaxes its steps.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all affordable reachable states processed).
//   - ModeShortest: the first goal is finalized.
//   - ModeAllOptimal: the cheapest entry costs more than the best goal.
//   - The expansion budget is spent.
func (r *runner[S]) process() error {
	for r.pq.Len() > 0 {
		// 1) Peek the cheapest entry; skip stale ones (lazy deletion).
		item := r.pq[0]
		if r.finalized[item.state] || item.cost > r.best[item.state] {
			heap.Pop(&r.pq)
			continue
		}

		// 2) Stop rules that leave the entry in place.
		if r.beyondOptimal(item.cost) || r.exhausted() {
			return nil
		}
		heap.Pop(&r.pq)

		// 3) Cost of item.state is now final.
		r.finalized[item.state] = true
		if r.finalize(item.state, item.cost) {
			return nil
		}

		// 4) Relax all outgoing steps.
		if err := r.relax(item.state, item.cost); err != nil {
			return err
		}
	}
	return nil
}

// relax examines each step out of u (finalized at cost du).
// A strictly better cost for v replaces its predecessors and pushes a new
// heap entry; an equal cost only records u as a further predecessor.
// Start states never gain predecessors.
func (r *runner[S]) relax(u S, du int64) error {
	for _, st := range r.p.Next(u) {
		if st.Cost < 0 {
			return fmt.Errorf("%w: step %v -> %v costs %d", ErrNegativeCost, u, st.To, st.Cost)
		}
		if err := r.check(st.To); err != nil {
			return err
		}
		// Prune before push: successors beyond MaxCost never enter the heap.
		if !r.affordable(du, st.Cost) {
			continue
		}
		v, dv := st.To, du+st.Cost

		old, seen := r.best[v]
		switch {
		case !seen || dv < old:
			r.best[v] = dv
			r.res.Preds[v] = []S{u}
			r.push(v, dv)
		case dv == old && !r.isStart[v]:
			r.res.addPred(v, u)
		}
	}
	return nil
}

// nodeItem represents a state and its tentative cost.
type nodeItem[S comparable] struct {
	state S
	cost  int64
	seq   uint64
}

// nodePQ is a min-heap of *nodeItem ordered by cost, then insertion sequence.
// When a cheaper cost is found for a state, a new entry is pushed and the
// outdated one is ignored when popped.
type nodePQ[S comparable] []*nodeItem[S]

func (pq nodePQ[S]) Len() int { return len(pq) }

func (pq nodePQ[S]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ[S]) Push(x any) { *pq = append(*pq, x.(*nodeItem[S])) }

// Pop removes and returns the last element; heap.Pop has already moved
// the minimum there.
func (pq *nodePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
