package threshold

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridstate/coord"
	"github.com/katalvlaran/gridstate/gridgraph"
	"github.com/katalvlaran/gridstate/moves"
	"github.com/katalvlaran/gridstate/search"
)

// ObstacleLabel is the label recorded for added obstacles.
const ObstacleLabel = '#'

// Steps returns the length of the shortest orthogonal walk from start to
// goal on grid (wall-set convention) with obstacles added as walls, or -1
// when the goal cannot be reached.
func Steps(grid *gridgraph.Index, start, goal coord.Coordinate, obstacles []coord.Coordinate) (int64, error) {
	blocked := grid.WithObstacles(ObstacleLabel, obstacles...)
	pass := blocked.Passable(gridgraph.WallSet)
	if !pass(start) || !pass(goal) {
		return -1, nil
	}
	res, err := search.BFS(search.Problem[coord.Coordinate]{
		Start: []coord.Coordinate{start},
		Next:  moves.Coordinates(pass, coord.Orthogonal[:]),
		Goal:  func(c coord.Coordinate) bool { return c == goal },
	}, search.WithBounds(grid.Bounds()))
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// Obstacles returns the Test "goal is reachable from start once the first
// prefix obstacles have fallen". Each probe rebuilds its own grid, so the
// Test is safe for concurrent use.
func Obstacles(grid *gridgraph.Index, start, goal coord.Coordinate, obstacles []coord.Coordinate) Test {
	return func(_ context.Context, prefix int) (bool, error) {
		if prefix < 0 || prefix > len(obstacles) {
			return false, fmt.Errorf("%w: prefix %d of %d obstacles", ErrBadRange, prefix, len(obstacles))
		}
		steps, err := Steps(grid, start, goal, obstacles[:prefix])
		if err != nil {
			return false, err
		}
		return steps >= 0, nil
	}
}
