// Package threshold finds the first prefix of an ordered change list at
// which a monotone property stops holding, typically the first falling
// obstacle that cuts every route to a goal.
//
// A Test reports whether the property holds after applying the first k
// changes. The property must be monotone: once it fails at k it fails for
// every larger k. Three Scanner strategies share one contract:
//
//   - Linear:   probes k = start, start+1, … ; O(n) probes.
//   - Binary:   bisects [start, n]; O(log n) probes.
//   - Parallel: probes several points of the bracket concurrently per round
//     (errgroup fan-out); O(log n / log(w+1)) rounds for w workers.
//
// FirstBlocking returns the smallest k in [start, n] whose test fails, or
// NotFound when even k = n passes. A result of 0 means the property already
// fails with no changes applied.
//
// Errors:
//
//   - ErrBadRange:     n < 0, or a start outside [0, n].
//   - ErrNonMonotonic: Parallel saw a passing prefix longer than a failing one.
//   - Test errors and context cancellation are returned as-is.
package threshold

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// NotFound is returned by FirstBlocking when no prefix fails.
const NotFound = -1

var (
	// ErrBadRange indicates an invalid scan range.
	ErrBadRange = errors.New("threshold: invalid scan range")
	// ErrNonMonotonic indicates a test that passed after having failed at a shorter prefix.
	ErrNonMonotonic = errors.New("threshold: test is not monotonic")
)

// Test reports whether the property holds with the first prefix changes applied.
type Test func(ctx context.Context, prefix int) (bool, error)

// Scanner locates the first failing prefix of a monotone Test over [0, n].
type Scanner interface {
	FirstBlocking(ctx context.Context, n int, test Test) (int, error)
}

// Options configures a scanner.
type Options struct {
	// Start is the first prefix considered. Default 0.
	Start int
	// Logger receives one debug event per probe. Default zerolog.Nop().
	Logger zerolog.Logger
	// Workers is the number of concurrent probes per Parallel round. Default 4.
	Workers int
}

// Option configures a scanner via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options starting at prefix 0, with a no-op logger and 4 workers.
func DefaultOptions() Options {
	return Options{
		Logger:  zerolog.Nop(),
		Workers: 4,
	}
}

// WithStart begins the scan at prefix k, typically a prefix already known to pass.
func WithStart(k int) Option {
	return func(o *Options) { o.Start = k }
}

// WithLogger sets the probe logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithWorkers sets the number of concurrent probes for Parallel; n < 1 is ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Workers = n
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// validate checks the scan range [o.Start, n].
func (o Options) validate(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: n = %d", ErrBadRange, n)
	}
	if o.Start < 0 || o.Start > n {
		return fmt.Errorf("%w: start %d outside [0, %d]", ErrBadRange, o.Start, n)
	}
	return nil
}

// probe runs one test and logs it.
func (o Options) probe(ctx context.Context, strategy string, test Test, k int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok, err := test(ctx, k)
	if err != nil {
		return false, fmt.Errorf("threshold: probe %d: %w", k, err)
	}
	o.Logger.Debug().Str("strategy", strategy).Int("prefix", k).Bool("holds", ok).Msg("probe")
	return ok, nil
}
