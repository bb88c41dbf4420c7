// Package route turns search results into concrete paths.
//
// A search.Result records, for every finalized state, all predecessors
// through which it is reached at its exact cost. That predecessor DAG is
// enough to recover one optimal path (One), every optimal path (All), the
// number of optimal paths (Count), or the set of cells on any optimal path
// (Tiles), without searching again. Descend instead walks downhill over a
// distance field that was computed backward from a goal.
//
// Errors:
//
//   - ErrUnreached:   the requested state was never finalized.
//   - ErrBrokenField: a distance field offers no descending step.
package route

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridstate/coord"
	"github.com/katalvlaran/gridstate/search"
)

var (
	// ErrUnreached indicates a goal that the search never finalized.
	ErrUnreached = errors.New("route: state not reached")
	// ErrBrokenField indicates a distance field with no step leading downhill.
	ErrBrokenField = errors.New("route: distance field has no descending step")
)

// Path is a sequence of states from a start to a goal and its total cost.
type Path[S comparable] struct {
	States []S
	Cost   int64
}

// Steps returns the number of moves along p.
func (p Path[S]) Steps() int {
	return max(0, len(p.States)-1)
}

// First returns the first state of p.
func (p Path[S]) First() S { return p.States[0] }

// Last returns the last state of p.
func (p Path[S]) Last() S { return p.States[len(p.States)-1] }

// Granularity selects when two optimal paths count as distinct.
type Granularity int

const (
	// FullPath treats paths with different state sequences as distinct.
	FullPath Granularity = iota
	// Endpoints treats paths as distinct only when their (start, goal) pairs differ.
	Endpoints
)

func (g Granularity) String() string {
	if g == Endpoints {
		return "endpoints"
	}
	return "full-path"
}

// One reconstructs an optimal path to goal by following the first recorded
// predecessor of each state back to a start.
func One[S comparable](res *search.Result[S], goal S) (Path[S], error) {
	cost, ok := res.Dist[goal]
	if !ok {
		return Path[S]{}, fmt.Errorf("%w: %v", ErrUnreached, goal)
	}
	// The first predecessor was recorded when the state's cost last
	// improved, so it was finalized earlier and the walk cannot loop.
	states := []S{goal}
	for cur := goal; len(res.Preds[cur]) > 0; {
		cur = res.Preds[cur][0]
		states = append(states, cur)
	}
	slices.Reverse(states)
	return Path[S]{States: states, Cost: cost}, nil
}

// Descend walks from `from` down a distance field computed backward from a
// goal (field[goal] == 0), taking at each state the first step, in
// transition order, whose cost equals the drop in the field.
func Descend[S comparable](field map[S]int64, from S, next search.Transition[S]) (Path[S], error) {
	cost, ok := field[from]
	if !ok {
		return Path[S]{}, fmt.Errorf("%w: %v", ErrUnreached, from)
	}
	states := []S{from}
	seen := map[S]bool{from: true}
	for cur, left := from, cost; left > 0; {
		moved := false
		for _, st := range next(cur) {
			d, ok := field[st.To]
			if !ok || d != left-st.Cost || seen[st.To] {
				continue
			}
			cur, left, moved = st.To, d, true
			break
		}
		if !moved {
			return Path[S]{}, fmt.Errorf("%w: stuck at %v with %d left", ErrBrokenField, cur, left)
		}
		seen[cur] = true
		states = append(states, cur)
	}
	return Path[S]{States: states, Cost: cost}, nil
}

// All enumerates optimal paths to goal over the predecessor DAG of res.
// With FullPath every distinct state sequence is returned; with Endpoints
// one path per distinct start. States already on the path being built are
// never revisited, so zero-cost cycles cannot loop; Count agrees with the
// number of FullPath results even then. Every returned path costs exactly
// res.Dist[goal].
func All[S comparable](res *search.Result[S], goal S, g Granularity) ([]Path[S], error) {
	cost, ok := res.Dist[goal]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreached, goal)
	}
	if g == Endpoints {
		return endpoints(res, goal, cost), nil
	}

	var out []Path[S]
	onPath := map[S]bool{goal: true}
	stack := []S{goal}

	var dfs func(cur S)
	dfs = func(cur S) {
		preds := res.Preds[cur]
		if len(preds) == 0 {
			states := slices.Clone(stack)
			slices.Reverse(states)
			out = append(out, Path[S]{States: states, Cost: cost})
			return
		}
		for _, p := range preds {
			if onPath[p] {
				continue
			}
			onPath[p] = true
			stack = append(stack, p)
			dfs(p)
			stack = stack[:len(stack)-1]
			delete(onPath, p)
		}
	}
	dfs(goal)
	return out, nil
}

// endpoints walks the predecessor DAG backward from goal breadth-first and
// returns one path per start found, in discovery order.
func endpoints[S comparable](res *search.Result[S], goal S, cost int64) []Path[S] {
	toward := map[S]S{} // state → next state on its way to goal
	seen := map[S]bool{goal: true}
	queue := []S{goal}
	var out []Path[S]
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if len(res.Preds[cur]) == 0 {
			states := []S{cur}
			for s := cur; s != goal; {
				s = toward[s]
				states = append(states, s)
			}
			out = append(out, Path[S]{States: states, Cost: cost})
			continue
		}
		for _, p := range res.Preds[cur] {
			if !seen[p] {
				seen[p] = true
				toward[p] = cur
				queue = append(queue, p)
			}
		}
	}
	return out
}

// AllGoals enumerates optimal paths to every goal in res.Goals, goal by goal.
func AllGoals[S comparable](res *search.Result[S], g Granularity) ([]Path[S], error) {
	var out []Path[S]
	for _, goal := range res.Goals {
		paths, err := All(res, goal, g)
		if err != nil {
			return nil, err
		}
		out = append(out, paths...)
	}
	return out, nil
}

// Count returns the number of distinct optimal paths to goal without
// materializing them; it always equals len(All(res, goal, FullPath)).
// Predecessors already on the path being counted are skipped, as in All.
// Counts that depended on such a skip are not memoized, so graphs with
// zero-cost cycles are counted exactly at the price of re-walking the
// states on those cycles.
func Count[S comparable](res *search.Result[S], goal S) (int64, error) {
	if _, ok := res.Dist[goal]; !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnreached, goal)
	}
	memo := make(map[S]int64)
	active := make(map[S]bool)
	// count reports the number of paths from s back to a start and
	// whether that number is independent of the active states.
	var count func(s S) (int64, bool)
	count = func(s S) (int64, bool) {
		if n, ok := memo[s]; ok {
			return n, true
		}
		preds := res.Preds[s]
		if len(preds) == 0 {
			memo[s] = 1
			return 1, true
		}
		active[s] = true
		var n int64
		clean := true
		for _, p := range preds {
			if active[p] {
				clean = false
				continue
			}
			m, ok := count(p)
			n += m
			clean = clean && ok
		}
		delete(active, s)
		if clean {
			memo[s] = n
		}
		return n, clean
	}
	n, _ := count(goal)
	return n, nil
}

// Positions projects a state path onto grid positions, dropping consecutive
// repeats such as in-place turns.
func Positions[S comparable](p Path[S], locate func(S) coord.Coordinate) []coord.Coordinate {
	out := make([]coord.Coordinate, 0, len(p.States))
	for _, s := range p.States {
		c := locate(s)
		if len(out) == 0 || out[len(out)-1] != c {
			out = append(out, c)
		}
	}
	return out
}

// Tiles returns every position lying on at least one optimal path to any
// goal in res.Goals, found by walking the predecessor DAG backward.
func Tiles[S comparable](res *search.Result[S], locate func(S) coord.Coordinate) mapset.Set[coord.Coordinate] {
	tiles := mapset.New[coord.Coordinate]()
	seen := make(map[S]bool, len(res.Goals))
	queue := make([]S, 0, len(res.Goals))
	for _, g := range res.Goals {
		if !seen[g] {
			seen[g] = true
			queue = append(queue, g)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		tiles.Put(locate(cur))
		for _, p := range res.Preds[cur] {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}
	return tiles
}
