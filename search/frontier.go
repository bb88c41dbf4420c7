package search

import (
	"fmt"

	"github.com/katalvlaran/gridstate/coord"
)

// frontier is the state shared by the BFS walker and the Dijkstra runner:
// validated options, the locating and observing hooks, and the result
// being filled in.
type frontier[S comparable] struct {
	p        Problem[S]
	opts     Options
	locate   func(S) coord.Coordinate
	observe  func(S, int64)
	res      *Result[S]
	isStart  map[S]bool
	limitHit bool
}

// newFrontier validates p and opts and prepares an empty result.
func newFrontier[S comparable](p Problem[S], opts []Option) (*frontier[S], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(p.Start) == 0 {
		return nil, ErrNoStart
	}
	if p.Next == nil {
		return nil, ErrNilTransition
	}

	f := &frontier[S]{p: p, opts: o, isStart: make(map[S]bool, len(p.Start))}

	if o.onFinalize != nil {
		fn, ok := o.onFinalize.(func(S, int64))
		if !ok {
			return nil, fmt.Errorf("%w: OnFinalize observer has type %T", ErrOptionViolation, o.onFinalize)
		}
		f.observe = fn
	}

	f.locate = p.Locate
	if f.locate == nil {
		var zero S
		if _, ok := any(zero).(Locator); ok {
			f.locate = func(s S) coord.Coordinate { return any(s).(Locator).Position() }
		}
	}
	if f.locate != nil && !o.Bounded && !o.Unbounded {
		return nil, ErrBoundsUndeclared
	}

	starts := make([]S, 0, len(p.Start))
	for _, s := range p.Start {
		if f.isStart[s] {
			continue
		}
		if err := f.check(s); err != nil {
			return nil, err
		}
		f.isStart[s] = true
		starts = append(starts, s)
	}
	f.res = newResult(starts)
	return f, nil
}

// check enforces the declared bounds on a located state.
func (f *frontier[S]) check(s S) error {
	if f.locate == nil || !f.opts.Bounded {
		return nil
	}
	if pos := f.locate(s); !f.opts.Bounds.Contains(pos) {
		return fmt.Errorf("%w: %v at %v", ErrOutOfBounds, s, pos)
	}
	return nil
}

// exhausted reports whether the expansion budget is spent; it remembers
// the fact so the run can return ErrExpansionLimit.
func (f *frontier[S]) exhausted() bool {
	if f.opts.MaxExpansions > 0 && f.res.Expanded >= f.opts.MaxExpansions {
		f.limitHit = true
		return true
	}
	return false
}

// finalize fixes the cost of s and reports whether the search should stop.
func (f *frontier[S]) finalize(s S, cost int64) (stop bool) {
	f.res.Dist[s] = cost
	f.res.Order = append(f.res.Order, s)
	f.res.Expanded++
	if f.observe != nil {
		f.observe(s, cost)
	}
	if f.p.Goal == nil || !f.p.Goal(s) {
		return false
	}
	if f.res.Cost < 0 {
		f.res.Cost = cost
	}
	if cost == f.res.Cost {
		f.res.Goals = append(f.res.Goals, s)
	}
	return f.opts.Mode == ModeShortest
}

// beyondOptimal reports whether, in ModeAllOptimal, cost lies past the cheapest goal.
func (f *frontier[S]) beyondOptimal(cost int64) bool {
	return f.opts.Mode == ModeAllOptimal && f.res.Cost >= 0 && cost > f.res.Cost
}

// affordable reports whether a step of cost c from a state at base stays within MaxCost.
func (f *frontier[S]) affordable(base, c int64) bool {
	return c <= f.opts.MaxCost-base
}

// done returns the result, with ErrExpansionLimit if the budget ran out.
// Predecessors of states that were discovered but never finalized are dropped.
func (f *frontier[S]) done() (*Result[S], error) {
	for s := range f.res.Preds {
		if _, ok := f.res.Dist[s]; !ok {
			delete(f.res.Preds, s)
		}
	}
	if f.limitHit {
		return f.res, fmt.Errorf("%w: %d states finalized", ErrExpansionLimit, f.res.Expanded)
	}
	return f.res, nil
}
