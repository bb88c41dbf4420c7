// Package search implements frontier search over implicit state graphs:
// breadth-first search for unit-cost moves and uniform-cost (Dijkstra)
// search for weighted moves, both generic over any comparable state type.
//
// A Problem names the start states, a Transition producing successors with
// their step costs, and an optional goal predicate. The engine never builds
// the graph: states are discovered on demand, so a state may carry any
// auxiliary dimension (a facing direction, a remaining budget) next to its
// position, as State[A] does.
//
// Both algorithms keep, for every finalized state, the full set of
// predecessors through which it is reached at its exact cost. Package route
// turns that predecessor DAG into one path, every optimal path, or a count.
//
// Modes:
//
//   - ModeShortest:   stop once the first goal is finalized.
//   - ModeField:      exhaust the reachable space (distance field). Run it
//     from the goal with a symmetric transition to get a distance-to-goal field.
//   - ModeAllOptimal: finalize everything up to the cheapest goal cost.
//
// Options:
//
//   - WithMaxCost(c):       prune successors costing more than c before they are pushed.
//   - WithMaxExpansions(n): stop after n finalized states with ErrExpansionLimit.
//   - WithBounds(r):        located states must lie inside r (ErrOutOfBounds).
//   - WithUnbounded():      located states are not bounds-checked.
//   - WithOnFinalize(fn):   observe each finalized state and its cost.
//
// States that implement Locator (coord.Coordinate and State[A] do) must be
// run with WithBounds or WithUnbounded; otherwise the run fails with
// ErrBoundsUndeclared.
//
// Concurrency: each call owns its frontier and maps. Transitions that only
// read shared immutable data (such as a gridgraph.Index) may be used from
// many concurrent searches.
//
// Complexity:
//
//   - BFS:      O(V + E) time, O(V) memory.
//   - Dijkstra: O((V + E) log E) time, O(V + E) memory.
package search
