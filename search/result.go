package search

import (
	"slices"

	"github.com/katalvlaran/gridstate/coord"
)

// Result holds the outcome of a search:
//   - Dist: exact cost of every finalized state. Absent means not finalized.
//   - Preds: for every finalized non-start state, all predecessors through
//     which it is reached at its exact cost, in discovery order.
//   - Order: states in finalization order.
//   - Goals: goal states finalized at the reported cost, in finalization order.
//   - Starts: the deduplicated start states.
//   - Cost: cost of the cheapest goal, or -1 when no goal was reached.
//   - Expanded: number of finalized states.
//
// A Result is owned by the caller; the engine keeps no reference to it.
type Result[S comparable] struct {
	Dist     map[S]int64
	Preds    map[S][]S
	Order    []S
	Goals    []S
	Starts   []S
	Cost     int64
	Expanded int
}

func newResult[S comparable](starts []S) *Result[S] {
	return &Result[S]{
		Dist:   make(map[S]int64),
		Preds:  make(map[S][]S),
		Starts: starts,
		Cost:   -1,
	}
}

// Distance returns the exact cost of s, if it was finalized.
func (r *Result[S]) Distance(s S) (int64, bool) {
	d, ok := r.Dist[s]
	return d, ok
}

// Reached reports whether any goal state was reached.
func (r *Result[S]) Reached() bool {
	return r.Cost >= 0
}

// IsStart reports whether s is one of the start states.
func (r *Result[S]) IsStart(s S) bool {
	return slices.Contains(r.Starts, s)
}

// addPred records p as a predecessor of s unless already present.
func (r *Result[S]) addPred(s, p S) {
	if !slices.Contains(r.Preds[s], p) {
		r.Preds[s] = append(r.Preds[s], p)
	}
}

// Collapse projects a field over (position, aux) states onto positions,
// keeping the minimum cost found for each coordinate.
func Collapse[A comparable](dist map[State[A]]int64) map[coord.Coordinate]int64 {
	out := make(map[coord.Coordinate]int64, len(dist))
	for s, d := range dist {
		if cur, ok := out[s.Pos]; !ok || d < cur {
			out[s.Pos] = d
		}
	}
	return out
}
