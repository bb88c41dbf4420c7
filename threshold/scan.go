package threshold

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Linear probes every prefix in increasing order.
type Linear struct{ opts Options }

// NewLinear returns a linear scanner.
func NewLinear(opts ...Option) *Linear {
	return &Linear{opts: buildOptions(opts)}
}

// FirstBlocking implements Scanner.
func (l *Linear) FirstBlocking(ctx context.Context, n int, test Test) (int, error) {
	if err := l.opts.validate(n); err != nil {
		return 0, err
	}
	for k := l.opts.Start; k <= n; k++ {
		ok, err := l.opts.probe(ctx, "linear", test, k)
		if err != nil {
			return 0, err
		}
		if !ok {
			return k, nil
		}
	}
	return NotFound, nil
}

// Binary bisects the scan range.
type Binary struct{ opts Options }

// NewBinary returns a binary-search scanner.
func NewBinary(opts ...Option) *Binary {
	return &Binary{opts: buildOptions(opts)}
}

// FirstBlocking implements Scanner.
func (b *Binary) FirstBlocking(ctx context.Context, n int, test Test) (int, error) {
	lo, hi, done, res, err := bracket(ctx, b.opts, "binary", n, test)
	if done || err != nil {
		return res, err
	}
	// test(lo) holds, test(hi) fails
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		ok, err := b.opts.probe(ctx, "binary", test, mid)
		if err != nil {
			return 0, err
		}
		if ok {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi, nil
}

// bracket probes both ends of [start, n]. When the answer is already known
// it returns done with the result; otherwise test(lo) holds and test(hi) fails.
func bracket(ctx context.Context, o Options, strategy string, n int, test Test) (lo, hi int, done bool, res int, err error) {
	if err := o.validate(n); err != nil {
		return 0, 0, true, 0, err
	}
	ok, err := o.probe(ctx, strategy, test, n)
	if err != nil {
		return 0, 0, true, 0, err
	}
	if ok {
		return 0, 0, true, NotFound, nil
	}
	if o.Start == n {
		return 0, 0, true, n, nil
	}
	ok, err = o.probe(ctx, strategy, test, o.Start)
	if err != nil {
		return 0, 0, true, 0, err
	}
	if !ok {
		return 0, 0, true, o.Start, nil
	}
	return o.Start, n, false, 0, nil
}

// Parallel narrows the bracket by probing up to Workers evenly spaced
// prefixes concurrently each round.
type Parallel struct{ opts Options }

// NewParallel returns a concurrent k-ary search scanner.
func NewParallel(opts ...Option) *Parallel {
	return &Parallel{opts: buildOptions(opts)}
}

// FirstBlocking implements Scanner. The test must be safe for concurrent use.
func (p *Parallel) FirstBlocking(ctx context.Context, n int, test Test) (int, error) {
	lo, hi, done, res, err := bracket(ctx, p.opts, "parallel", n, test)
	if done || err != nil {
		return res, err
	}
	for hi-lo > 1 {
		points := splitPoints(lo, hi, p.opts.Workers)
		holds := make([]bool, len(points))

		g, gctx := errgroup.WithContext(ctx)
		for i, k := range points {
			g.Go(func() error {
				ok, err := p.opts.probe(gctx, "parallel", test, k)
				holds[i] = ok
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return 0, err
		}

		first := slices.Index(holds, false)
		if first < 0 {
			lo = points[len(points)-1]
			continue
		}
		if slices.Contains(holds[first:], true) {
			return 0, fmt.Errorf("%w: prefix %d fails but a longer prefix holds", ErrNonMonotonic, points[first])
		}
		hi = points[first]
		if first > 0 {
			lo = points[first-1]
		}
	}
	return hi, nil
}

// splitPoints returns up to w distinct prefixes strictly inside (lo, hi),
// evenly spaced and increasing.
func splitPoints(lo, hi, w int) []int {
	span := hi - lo
	if w > span-1 {
		w = span - 1
	}
	points := make([]int, 0, w)
	for i := 1; i <= w; i++ {
		k := lo + span*i/(w+1)
		if k > lo && k < hi && (len(points) == 0 || points[len(points)-1] != k) {
			points = append(points, k)
		}
	}
	return points
}
