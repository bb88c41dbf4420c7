// Package moves provides ready-made search transitions for grid maps:
// plain unit steps, facing-aware moves with a turn cost, ascending trails
// over height maps, and budgeted moves through blocked cells.
//
// Every transition is deterministic: successors are produced in a fixed
// order (clockwise from Right, or straight-right-left for facing moves),
// so searches built on them are reproducible. No transition ever produces
// a position outside the grid; passable predicates from gridgraph already
// reject out-of-bounds cells.
package moves

import (
	"github.com/katalvlaran/gridstate/coord"
	"github.com/katalvlaran/gridstate/gridgraph"
	"github.com/katalvlaran/gridstate/search"
)

// Passable reports whether a position may be entered.
type Passable func(coord.Coordinate) bool

// Coordinates moves a plain coordinate one cell along each of dirs onto passable cells.
func Coordinates(pass Passable, dirs []coord.Direction) search.Transition[coord.Coordinate] {
	return search.Unweighted(func(c coord.Coordinate) []coord.Coordinate {
		out := make([]coord.Coordinate, 0, len(dirs))
		for _, d := range dirs {
			if n := c.Translate(d, 1); pass(n) {
				out = append(out, n)
			}
		}
		return out
	})
}

// Step is Coordinates for State[Unit] states.
func Step(pass Passable, dirs []coord.Direction) search.Transition[search.State[search.Unit]] {
	plain := Coordinates(pass, dirs)
	return func(s search.State[search.Unit]) []search.Step[search.State[search.Unit]] {
		steps := plain(s.Pos)
		out := make([]search.Step[search.State[search.Unit]], len(steps))
		for i, st := range steps {
			out[i] = search.Step[search.State[search.Unit]]{To: search.At(st.To, search.Unit{}), Cost: st.Cost}
		}
		return out
	}
}

// Heading is a position with the direction it faces.
type Heading = search.State[coord.Direction]

// Facing moves a heading state either one cell straight ahead (cost
// straight) or by turning 90 degrees in place (cost turn). It never
// reverses: a U-turn takes two turns.
func Facing(pass Passable, straight, turn int64) search.Transition[Heading] {
	return func(s Heading) []search.Step[Heading] {
		out := make([]search.Step[Heading], 0, 3)
		if n := s.Pos.Translate(s.Aux, 1); pass(n) {
			out = append(out, search.Step[Heading]{To: search.At(n, s.Aux), Cost: straight})
		}
		out = append(out,
			search.Step[Heading]{To: search.At(s.Pos, s.Aux.RotateRight()), Cost: turn},
			search.Step[Heading]{To: search.At(s.Pos, s.Aux.RotateLeft()), Cost: turn},
		)
		return out
	}
}

// FacingStep moves a heading state one cell straight ahead (cost straight)
// or one cell to its right or left, turning as it goes (cost straight+turn).
// It never reverses.
func FacingStep(pass Passable, straight, turn int64) search.Transition[Heading] {
	return func(s Heading) []search.Step[Heading] {
		out := make([]search.Step[Heading], 0, 3)
		for i, d := range [3]coord.Direction{s.Aux, s.Aux.RotateRight(), s.Aux.RotateLeft()} {
			n := s.Pos.Translate(d, 1)
			if !pass(n) {
				continue
			}
			cost := straight
			if i > 0 {
				cost += turn
			}
			out = append(out, search.Step[Heading]{To: search.At(n, d), Cost: cost})
		}
		return out
	}
}

// Ascending steps to orthogonal neighbours whose label is exactly one
// higher, as on a topographic map of digits.
func Ascending(heights *gridgraph.Index) search.Transition[coord.Coordinate] {
	return search.Unweighted(func(c coord.Coordinate) []coord.Coordinate {
		h, ok := heights.Get(c)
		if !ok {
			return nil
		}
		var out []coord.Coordinate
		for _, n := range c.Adjacent4() {
			if nh, ok := heights.Get(n); ok && nh == h+1 {
				out = append(out, n)
			}
		}
		return out
	})
}

// Budgeted is a position with a remaining budget of blocked cells it may still enter.
type Budgeted = search.State[int]

// Budget moves orthogonally inside bounds. Entering a passable cell is
// free of budget; entering a blocked cell spends one unit. Moves that would
// drive the budget negative are pruned before they are produced.
func Budget(bounds coord.Rect, pass Passable) search.Transition[Budgeted] {
	return func(s Budgeted) []search.Step[Budgeted] {
		out := make([]search.Step[Budgeted], 0, 4)
		for _, n := range s.Pos.Adjacent4() {
			if !bounds.Contains(n) {
				continue
			}
			left := s.Aux
			if !pass(n) {
				left--
			}
			if left < 0 {
				continue
			}
			out = append(out, search.Step[Budgeted]{To: search.At(n, left), Cost: 1})
		}
		return out
	}
}

// Reached returns a goal predicate matching any state at target, whatever its aux.
func Reached[A comparable](target coord.Coordinate) func(search.State[A]) bool {
	return func(s search.State[A]) bool { return s.Pos == target }
}
