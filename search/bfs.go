package search

import "fmt"

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int64
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	*frontier[S]
	queue []queueItem[S]
	head  int
	depth map[S]int64 // discovery depth, final on first visit
}

// BFS runs a layer-by-layer breadth-first search of p, applying any number
// of functional Options. Every step must cost exactly 1.
//
// A state's distance is fixed the first time it is discovered and it is
// never expanded twice. When a state is discovered again at the same depth
// from another state of the previous layer, that state is appended to its
// predecessor set, so every shortest path stays recoverable.
//
// Returns ErrNoStart, ErrNilTransition, ErrOptionViolation or
// ErrBoundsUndeclared for invalid input, ErrNonUnitCost or ErrOutOfBounds
// for a bad transition, and ErrExpansionLimit (with the partial result) when
// the expansion budget runs out. Not reaching a goal is not an error.
//
// Complexity: O(V + E) time, O(V) memory, for V reachable states and E steps.
func BFS[S comparable](p Problem[S], opts ...Option) (*Result[S], error) {
	f, err := newFrontier(p, opts)
	if err != nil {
		return nil, err
	}
	w := &walker[S]{
		frontier: f,
		queue:    make([]queueItem[S], 0, len(f.res.Starts)),
		depth:    make(map[S]int64, len(f.res.Starts)),
	}

	// Seed queue with start states (no predecessors)
	for _, s := range f.res.Starts {
		w.enqueue(s, 0)
	}
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.done()
}

// enqueue marks s discovered at depth d and adds it to the queue.
func (w *walker[S]) enqueue(s S, d int64) {
	w.depth[s] = d
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop processes the queue until it is empty or a stop rule fires.
func (w *walker[S]) loop() error {
	for w.head < len(w.queue) {
		item := w.queue[w.head]
		if w.beyondOptimal(item.depth) || w.exhausted() {
			return nil
		}
		w.head++

		if w.finalize(item.state, item.depth) {
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors expands item: unseen successors join the next layer,
// successors already in the next layer gain item as a further predecessor.
func (w *walker[S]) enqueueNeighbors(item queueItem[S]) error {
	next := item.depth + 1
	if !w.affordable(item.depth, 1) {
		return nil
	}
	for _, st := range w.p.Next(item.state) {
		if st.Cost != 1 {
			return fmt.Errorf("%w: step %v -> %v costs %d", ErrNonUnitCost, item.state, st.To, st.Cost)
		}
		if err := w.check(st.To); err != nil {
			return err
		}

		d, seen := w.depth[st.To]
		switch {
		case !seen:
			w.res.Preds[st.To] = []S{item.state}
			w.enqueue(st.To, next)
		case d == next:
			w.res.addPred(st.To, item.state)
		}
	}
	return nil
}
