// Package search provides tunable options, state types and error
// definitions for frontier search over implicit state graphs.
package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridstate/coord"
)

// Sentinel errors for search execution.
var (
	// ErrNoStart is returned when Problem.Start is empty.
	ErrNoStart = errors.New("search: no start state")

	// ErrNilTransition is returned when Problem.Next is nil.
	ErrNilTransition = errors.New("search: transition function is nil")

	// ErrOutOfBounds is returned when a located state falls outside the declared bounds.
	ErrOutOfBounds = errors.New("search: state outside declared bounds")

	// ErrBoundsUndeclared is returned when states are locatable but neither
	// WithBounds nor WithUnbounded was given.
	ErrBoundsUndeclared = errors.New("search: locatable states require WithBounds or WithUnbounded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNegativeCost is returned when a transition yields a negative step cost.
	ErrNegativeCost = errors.New("search: negative step cost")

	// ErrNonUnitCost is returned when BFS meets a step whose cost is not 1.
	ErrNonUnitCost = errors.New("search: breadth-first search requires unit step costs")

	// ErrExpansionLimit is returned, together with the partial result, when
	// the WithMaxExpansions budget runs out before the search completes.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// Step is one outgoing move of a transition: the successor state and the
// non-negative cost of reaching it.
type Step[S comparable] struct {
	To   S
	Cost int64
}

// Transition lists the successors of a state. It must be deterministic:
// the same state always yields the same steps in the same order.
type Transition[S comparable] func(S) []Step[S]

// Unweighted lifts a plain successor function into a Transition of unit-cost steps.
func Unweighted[S comparable](next func(S) []S) Transition[S] {
	return func(s S) []Step[S] {
		succ := next(s)
		steps := make([]Step[S], len(succ))
		for i, to := range succ {
			steps[i] = Step[S]{To: to, Cost: 1}
		}
		return steps
	}
}

// Problem describes one search: where it starts, how it moves, and when it stops.
type Problem[S comparable] struct {
	// Start holds the initial states, each at distance 0. Duplicates are ignored.
	Start []S
	// Next produces the successors of a state.
	Next Transition[S]
	// Goal reports whether a state is a goal. Nil means no state is.
	Goal func(S) bool
	// Locate maps a state to its grid position for bounds checking.
	// When nil and S implements Locator, Position is used.
	Locate func(S) coord.Coordinate
}

// Locator is implemented by states that know their grid position.
type Locator interface {
	Position() coord.Coordinate
}

// Unit is the empty auxiliary dimension of a plain positional state.
type Unit struct{}

// State pairs a grid position with an auxiliary dimension such as a
// facing direction or a remaining budget.
type State[A comparable] struct {
	Pos coord.Coordinate
	Aux A
}

// At builds a State.
func At[A comparable](pos coord.Coordinate, aux A) State[A] {
	return State[A]{Pos: pos, Aux: aux}
}

// Position implements Locator.
func (s State[A]) Position() coord.Coordinate { return s.Pos }

func (s State[A]) String() string {
	return fmt.Sprintf("%v/%v", s.Pos, s.Aux)
}

// Mode selects when a search stops.
type Mode int

const (
	// ModeShortest stops as soon as the first goal state is finalized.
	ModeShortest Mode = iota
	// ModeField exhausts the reachable space, producing a full distance field.
	ModeField
	// ModeAllOptimal finalizes every state costing no more than the cheapest
	// goal and reports every goal at that cost.
	ModeAllOptimal
)

func (m Mode) String() string {
	switch m {
	case ModeShortest:
		return "shortest"
	case ModeField:
		return "field"
	case ModeAllOptimal:
		return "all-optimal"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. negative cost cap), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds the parameters of one search run.
type Options struct {
	// Mode selects the stop rule. Default ModeShortest.
	Mode Mode

	// MaxCost prunes every step whose total cost would exceed it, before
	// the successor is pushed. Default math.MaxInt64 (no cap).
	MaxCost int64

	// MaxExpansions, if > 0, bounds the number of finalized states.
	MaxExpansions int

	// Bounds is checked against located states when Bounded is set.
	Bounds  coord.Rect
	Bounded bool

	// Unbounded explicitly declares that located states need no bounds check.
	Unbounded bool

	// onFinalize is a func(S, int64) for the state type of the run.
	onFinalize any

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - ModeShortest
//   - no cost cap (MaxCost == math.MaxInt64)
//   - no expansion budget
//   - bounds undeclared.
func DefaultOptions() Options {
	return Options{
		Mode:    ModeShortest,
		MaxCost: math.MaxInt64,
	}
}

// WithMode selects the stop rule.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m < ModeShortest || m > ModeAllOptimal {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithMaxCost prunes successors whose cost would exceed c.
//
//	c >= 0: cap at c
//	c < 0:  invalid option → ErrOptionViolation
func WithMaxCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithMaxExpansions bounds the number of finalized states.
//
//	n > 0:  stop with ErrExpansionLimit once n states are finalized
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithBounds declares the rectangle every located state must lie in.
func WithBounds(r coord.Rect) Option {
	return func(o *Options) {
		if r.Empty() {
			o.err = fmt.Errorf("%w: empty bounds %v..%v", ErrOptionViolation, r.Min, r.Max)
			return
		}
		o.Bounds = r
		o.Bounded = true
		o.Unbounded = false
	}
}

// WithUnbounded declares that located states are not bounds-checked.
func WithUnbounded() Option {
	return func(o *Options) {
		o.Unbounded = true
		o.Bounded = false
	}
}

// WithOnFinalize registers an observer called once per finalized state with
// its final cost, in finalization order. The engine itself never logs;
// callers use this hook to log or render progress. The state type of fn
// must match the Problem it is used with, or the run fails with
// ErrOptionViolation.
func WithOnFinalize[S comparable](fn func(s S, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onFinalize = fn
		}
	}
}
