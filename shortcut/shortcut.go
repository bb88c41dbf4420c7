package shortcut

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/katalvlaran/gridstate/coord"
	"github.com/katalvlaran/gridstate/gridgraph"
	"github.com/katalvlaran/gridstate/moves"
	"github.com/katalvlaran/gridstate/route"
	"github.com/katalvlaran/gridstate/search"
)

// Track is a reference route and the distance-to-goal field it descends.
type Track struct {
	// Path runs from the start to the goal, both included.
	Path []coord.Coordinate
	// Field holds the orthogonal walking distance to the goal of every
	// cell reachable from it.
	Field map[coord.Coordinate]int64
}

// NewTrack computes the distance-to-goal field of grid by a breadth-first
// search from goal and walks it down from start.
func NewTrack(grid *gridgraph.Index, start, goal coord.Coordinate, pass moves.Passable) (*Track, error) {
	next := moves.Coordinates(pass, coord.Orthogonal[:])
	res, err := search.BFS(search.Problem[coord.Coordinate]{
		Start: []coord.Coordinate{goal},
		Next:  next,
	}, search.WithMode(search.ModeField), search.WithBounds(grid.Bounds()))
	if err != nil {
		return nil, err
	}
	p, err := route.Descend(res.Dist, start, next)
	if errors.Is(err, route.ErrUnreached) {
		return nil, fmt.Errorf("%w: %v to %v", ErrNoTrack, start, goal)
	}
	if err != nil {
		return nil, err
	}
	return &Track{Path: p.States, Field: res.Dist}, nil
}

// Len returns the number of moves along the track.
func (t *Track) Len() int64 {
	return int64(len(t.Path) - 1)
}

// Scan is Scan over the track's own path and field.
func (t *Track) Scan(radius int, threshold int64, metric Metric) ([]Saving, error) {
	return Scan(t.Path, t.Field, radius, threshold, metric)
}

// Scan tries every jump from a cell of track to a cell of field within
// radius and returns those saving at least threshold moves, ordered by
// saving, then origin, then landing cell. Cells missing from field are
// never landed on.
func Scan(track []coord.Coordinate, field map[coord.Coordinate]int64, radius int, threshold int64, metric Metric) ([]Saving, error) {
	if radius < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadRadius, radius)
	}
	var out []Saving
	for _, from := range track {
		df, ok := field[from]
		if !ok {
			continue
		}
		for _, to := range metric.Within(from, radius) {
			dt, ok := field[to]
			if !ok {
				continue
			}
			if saved := df - dt - int64(metric.Distance(from, to)); saved >= threshold {
				out = append(out, Saving{From: from, To: to, Saved: saved})
			}
		}
	}
	slices.SortFunc(out, func(a, b Saving) int {
		return cmp.Or(
			cmp.Compare(a.Saved, b.Saved),
			a.From.Compare(b.From),
			a.To.Compare(b.To),
		)
	})
	return out, nil
}

// Histogram counts savings by the number of moves saved.
func Histogram(savings []Saving) map[int64]int {
	return lo.CountValuesBy(savings, func(s Saving) int64 { return s.Saved })
}
