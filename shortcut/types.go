// Package shortcut measures how much a single-track route shortens when the
// walker may jump, once, to any cell within a radius.
//
// A Track is the reference route from start to goal together with the
// distance-to-goal field of every reachable cell. Scan then tries, from
// every cell on the route, every landing cell within the radius under the
// chosen Metric:
//
//	saved = field[from] - field[to] - metric(from, to)
//
// and keeps the jumps that save at least the threshold.
//
// Errors:
//
//   - ErrBadRadius: radius < 1.
//   - ErrNoTrack:   the goal cannot be reached from the start.
package shortcut

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridstate/coord"
)

var (
	// ErrBadRadius indicates a jump radius below 1.
	ErrBadRadius = errors.New("shortcut: radius must be at least 1")
	// ErrNoTrack indicates that no route joins the start to the goal.
	ErrNoTrack = errors.New("shortcut: goal unreachable from start")
)

// Metric measures jump length.
type Metric int

const (
	// Manhattan counts orthogonal moves: |dr| + |dc|.
	Manhattan Metric = iota
	// Chebyshev counts king moves: max(|dr|, |dc|).
	Chebyshev
)

func (m Metric) String() string {
	switch m {
	case Manhattan:
		return "manhattan"
	case Chebyshev:
		return "chebyshev"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// Distance returns the length of a jump from a to b.
func (m Metric) Distance(a, b coord.Coordinate) int {
	if m == Chebyshev {
		return a.Chebyshev(b)
	}
	return a.Manhattan(b)
}

// Within lists the cells at distance 1..radius from c in row-major order.
func (m Metric) Within(c coord.Coordinate, radius int) []coord.Coordinate {
	if m == Chebyshev {
		return c.WithinChebyshev(radius)
	}
	return c.WithinManhattan(radius)
}

// Saving is one jump and the number of moves it saves.
type Saving struct {
	From  coord.Coordinate
	To    coord.Coordinate
	Saved int64
}

func (s Saving) String() string {
	return fmt.Sprintf("%v->%v saves %d", s.From, s.To, s.Saved)
}
