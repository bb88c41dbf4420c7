package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridstate/coord"
	"github.com/katalvlaran/gridstate/gridgraph"
	"github.com/katalvlaran/gridstate/moves"
	"github.com/katalvlaran/gridstate/route"
	"github.com/katalvlaran/gridstate/search"
	"github.com/katalvlaran/gridstate/shortcut"
	"github.com/katalvlaran/gridstate/threshold"
)

// Answer is what a solver found for one problem.
type Answer struct {
	Values      map[string]int64
	Notes       map[string]string
	Fingerprint uint64
	Drawing     string
}

func newAnswer(ix *gridgraph.Index) *Answer {
	return &Answer{
		Values:      make(map[string]int64),
		Notes:       make(map[string]string),
		Fingerprint: ix.Fingerprint(),
	}
}

// env carries the run-wide settings a solver may need.
type env struct {
	Logger  zerolog.Logger
	Workers int
	Render  bool
}

type solver func(ctx context.Context, p Problem, e env) (*Answer, error)

var solvers = map[string]solver{
	KindMaze:      solveMaze,
	KindTurns:     solveTurns,
	KindTrails:    solveTrails,
	KindShortcuts: solveShortcuts,
	KindBytes:     solveBytes,
	KindRegions:   solveRegions,
}

// Solve dispatches p to the solver for its kind.
func Solve(ctx context.Context, p Problem, e env) (*Answer, error) {
	s, ok := solvers[p.Kind]
	if !ok {
		return nil, fmt.Errorf("problem %s: unknown kind %q", p.Name, p.Kind)
	}
	return s(ctx, p, e)
}

// parseMaze reads a wall-set grid with one S and one E.
func parseMaze(lines []string) (ix *gridgraph.Index, start, goal coord.Coordinate, err error) {
	if ix, err = gridgraph.Parse(lines); err != nil {
		return nil, start, goal, err
	}
	if start, err = ix.Find('S'); err != nil {
		return nil, start, goal, err
	}
	if goal, err = ix.Find('E'); err != nil {
		return nil, start, goal, err
	}
	return ix, start, goal, nil
}

// trace logs every finalized state at trace level.
func trace[S comparable](l zerolog.Logger) search.Option {
	return search.WithOnFinalize(func(s S, cost int64) {
		l.Trace().Interface("state", s).Int64("cost", cost).Msg("finalized")
	})
}

func draw(ix *gridgraph.Index, tiles mapset.Set[coord.Coordinate]) string {
	marks := make([]coord.Coordinate, 0, tiles.Size())
	tiles.Each(func(c coord.Coordinate) { marks = append(marks, c) })
	return "\n" + ix.Overlay(marks, 'O', '.')
}

func solveMaze(_ context.Context, p Problem, e env) (*Answer, error) {
	ix, start, goal, err := parseMaze(p.Grid)
	if err != nil {
		return nil, err
	}
	res, err := search.BFS(search.Problem[coord.Coordinate]{
		Start: []coord.Coordinate{start},
		Next:  moves.Coordinates(ix.Passable(gridgraph.WallSet, 'S', 'E'), coord.Orthogonal[:]),
		Goal:  func(c coord.Coordinate) bool { return c == goal },
	}, search.WithMode(search.ModeAllOptimal), search.WithBounds(ix.Bounds()), trace[coord.Coordinate](e.Logger))
	if err != nil {
		return nil, err
	}
	ans := newAnswer(ix)
	ans.Values["steps"] = res.Cost
	if !res.Reached() {
		return ans, nil
	}
	routes, err := route.Count(res, goal)
	if err != nil {
		return nil, err
	}
	tiles := route.Tiles(res, func(c coord.Coordinate) coord.Coordinate { return c })
	ans.Values["routes"] = routes
	ans.Values["tiles"] = int64(tiles.Size())
	if e.Render {
		ans.Drawing = draw(ix, tiles)
	}
	return ans, nil
}

func solveTurns(_ context.Context, p Problem, e env) (*Answer, error) {
	ix, start, goal, err := parseMaze(p.Grid)
	if err != nil {
		return nil, err
	}
	facing := coord.Right
	if p.Facing != "" {
		if facing, err = coord.FromSymbol([]rune(p.Facing)[0]); err != nil {
			return nil, err
		}
	}
	straight, turn := p.Straight, p.Turn
	if straight == 0 {
		straight = 1
	}
	if turn == 0 {
		turn = 1000
	}
	res, err := search.Dijkstra(search.Problem[moves.Heading]{
		Start: []moves.Heading{search.At(start, facing)},
		Next:  moves.Facing(ix.Passable(gridgraph.WallSet, 'S', 'E'), straight, turn),
		Goal:  moves.Reached[coord.Direction](goal),
	}, search.WithMode(search.ModeAllOptimal), search.WithBounds(ix.Bounds()), trace[moves.Heading](e.Logger))
	if err != nil {
		return nil, err
	}
	ans := newAnswer(ix)
	ans.Values["cost"] = res.Cost
	if !res.Reached() {
		return ans, nil
	}
	var routes int64
	for _, g := range res.Goals {
		n, err := route.Count(res, g)
		if err != nil {
			return nil, err
		}
		routes += n
	}
	tiles := route.Tiles(res, moves.Heading.Position)
	ans.Values["routes"] = routes
	ans.Values["tiles"] = int64(tiles.Size())
	if e.Render {
		ans.Drawing = draw(ix, tiles)
	}
	return ans, nil
}

func solveTrails(_ context.Context, p Problem, _ env) (*Answer, error) {
	ix, err := gridgraph.Parse(p.Grid)
	if err != nil {
		return nil, err
	}
	res, err := search.BFS(search.Problem[coord.Coordinate]{
		Start: ix.FindAll('0'),
		Next:  moves.Ascending(ix),
		Goal: func(c coord.Coordinate) bool {
			r, _ := ix.Get(c)
			return r == '9'
		},
	}, search.WithMode(search.ModeField), search.WithBounds(ix.Bounds()))
	if err != nil {
		return nil, err
	}
	ans := newAnswer(ix)
	peaks, err := route.AllGoals(res, route.Endpoints)
	if err != nil {
		return nil, err
	}
	var rating int64
	for _, g := range res.Goals {
		n, err := route.Count(res, g)
		if err != nil {
			return nil, err
		}
		rating += n
	}
	ans.Values["score"] = int64(len(peaks))
	ans.Values["rating"] = rating
	return ans, nil
}

func solveShortcuts(_ context.Context, p Problem, e env) (*Answer, error) {
	ix, start, goal, err := parseMaze(p.Grid)
	if err != nil {
		return nil, err
	}
	metric := shortcut.Manhattan
	switch p.Metric {
	case "", "manhattan":
	case "chebyshev":
		metric = shortcut.Chebyshev
	default:
		return nil, fmt.Errorf("problem %s: unknown metric %q", p.Name, p.Metric)
	}
	tr, err := shortcut.NewTrack(ix, start, goal, ix.Passable(gridgraph.WallSet, 'S', 'E'))
	if err != nil {
		return nil, err
	}
	savings, err := tr.Scan(p.Radius, p.Threshold, metric)
	if err != nil {
		return nil, err
	}
	ans := newAnswer(ix)
	ans.Values["length"] = tr.Len()
	ans.Values["cheats"] = int64(len(savings))
	if len(savings) > 0 {
		ans.Notes["best"] = savings[len(savings)-1].String()
	}
	if e.Render {
		ans.Drawing = draw(ix, mapset.Of(tr.Path...))
	}
	e.Logger.Debug().Str("problem", p.Name).Interface("histogram", shortcut.Histogram(savings)).Msg("savings")
	return ans, nil
}

func solveBytes(ctx context.Context, p Problem, e env) (*Answer, error) {
	if p.Rows < 1 || p.Cols < 1 {
		return nil, fmt.Errorf("problem %s: %w", p.Name, gridgraph.ErrEmptyGrid)
	}
	obstacles := make([]coord.Coordinate, len(p.Obstacles))
	for i, s := range p.Obstacles {
		c, err := parseXY(s)
		if err != nil {
			return nil, err
		}
		obstacles[i] = c
	}
	if p.Fallen < 0 || p.Fallen > len(obstacles) {
		return nil, fmt.Errorf("problem %s: %w: fallen %d of %d", p.Name, threshold.ErrBadRange, p.Fallen, len(obstacles))
	}

	grid := gridgraph.FromCoordinates(coord.Bounds(coord.At(0, 0), p.Rows, p.Cols), nil, threshold.ObstacleLabel)
	start, goal := coord.At(0, 0), coord.At(p.Rows-1, p.Cols-1)
	ans := newAnswer(grid)

	steps, err := threshold.Steps(grid, start, goal, obstacles[:p.Fallen])
	if err != nil {
		return nil, err
	}
	ans.Values["steps"] = steps

	opts := []threshold.Option{
		threshold.WithLogger(e.Logger.With().Str("problem", p.Name).Logger()),
		threshold.WithWorkers(e.Workers),
	}
	var sc threshold.Scanner
	switch p.Scan {
	case "", "binary":
		sc = threshold.NewBinary(opts...)
	case "linear":
		sc = threshold.NewLinear(opts...)
	case "parallel":
		sc = threshold.NewParallel(opts...)
	default:
		return nil, fmt.Errorf("problem %s: unknown scan %q", p.Name, p.Scan)
	}
	k, err := sc.FirstBlocking(ctx, len(obstacles), threshold.Obstacles(grid, start, goal, obstacles))
	if err != nil {
		return nil, err
	}
	ans.Values["first_blocking"] = int64(k)
	if k > 0 {
		ans.Notes["blocker"] = formatXY(obstacles[k-1])
	}
	if e.Render {
		ans.Drawing = "\n" + grid.WithObstacles(threshold.ObstacleLabel, obstacles[:p.Fallen]...).Draw('.')
	}
	return ans, nil
}

func solveRegions(_ context.Context, p Problem, _ env) (*Answer, error) {
	ix, err := gridgraph.Parse(p.Grid)
	if err != nil {
		return nil, err
	}
	ans := newAnswer(ix)
	regions := ix.Regions()
	var price, bulk int64
	for _, r := range regions {
		price += int64(len(r) * gridgraph.Perimeter(r))
		bulk += int64(len(r) * gridgraph.Sides(r))
	}
	ans.Values["regions"] = int64(len(regions))
	ans.Values["price"] = price
	ans.Values["bulk_price"] = bulk
	return ans, nil
}
