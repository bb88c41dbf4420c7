package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridstate/coord"
	"github.com/katalvlaran/gridstate/gridgraph"
	"github.com/katalvlaran/gridstate/route"
	"github.com/katalvlaran/gridstate/search"
)

type edges map[string][]search.Step[string]

func (e edges) next(s string) []search.Step[string] { return e[s] }

func walk(pass func(coord.Coordinate) bool) search.Transition[coord.Coordinate] {
	return search.Unweighted(func(c coord.Coordinate) []coord.Coordinate {
		var out []coord.Coordinate
		for _, n := range c.Adjacent4() {
			if pass(n) {
				out = append(out, n)
			}
		}
		return out
	})
}

// RouteSuite groups reconstruction tests over a shared 3×3 open grid field.
type RouteSuite struct {
	suite.Suite
	grid  *gridgraph.Index
	field *search.Result[coord.Coordinate]
}

func (s *RouteSuite) SetupTest() {
	s.grid = gridgraph.FromCoordinates(coord.Bounds(coord.At(0, 0), 3, 3), nil, '#')
	res, err := search.BFS(search.Problem[coord.Coordinate]{
		Start: []coord.Coordinate{{Row: 0, Col: 0}},
		Next:  walk(s.grid.Passable(gridgraph.WallSet)),
	}, search.WithMode(search.ModeField), search.WithBounds(s.grid.Bounds()))
	require.NoError(s.T(), err)
	s.field = res
}

// TestOne follows first predecessors: right along the top, then down.
func (s *RouteSuite) TestOne() {
	p, err := route.One(s.field, coord.At(2, 2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []coord.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}, p.States)
	require.Equal(s.T(), int64(4), p.Cost)
	require.Equal(s.T(), int(p.Cost), p.Steps(), "goal distance equals path length minus one")
	require.Equal(s.T(), coord.At(0, 0), p.First())
	require.Equal(s.T(), coord.At(2, 2), p.Last())

	start, err := route.One(s.field, coord.At(0, 0))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, start.Steps())
}

// TestAll enumerates the six monotone lattice paths across the grid.
func (s *RouteSuite) TestAll() {
	paths, err := route.All(s.field, coord.At(2, 2), route.FullPath)
	require.NoError(s.T(), err)
	require.Len(s.T(), paths, 6)

	seen := map[string]bool{}
	for _, p := range paths {
		require.Equal(s.T(), int64(4), p.Cost)
		require.Len(s.T(), p.States, 5)
		require.Equal(s.T(), coord.At(0, 0), p.First())
		require.Equal(s.T(), coord.At(2, 2), p.Last())
		for i := 1; i < len(p.States); i++ {
			require.Equal(s.T(), 1, p.States[i-1].Manhattan(p.States[i]))
		}
		key := ""
		for _, c := range p.States {
			key += c.String()
		}
		require.False(s.T(), seen[key], "duplicate path %s", key)
		seen[key] = true
	}

	ends, err := route.All(s.field, coord.At(2, 2), route.Endpoints)
	require.NoError(s.T(), err)
	require.Len(s.T(), ends, 1)
	require.Equal(s.T(), int64(4), ends[0].Cost)
	require.Len(s.T(), ends[0].States, 5)

	n, err := route.Count(s.field, coord.At(2, 2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(6), n)
}

// TestTiles covers every cell of the grid: each lies on some optimal route.
func (s *RouteSuite) TestTiles() {
	res, err := search.BFS(search.Problem[coord.Coordinate]{
		Start: []coord.Coordinate{{Row: 0, Col: 0}},
		Next:  walk(s.grid.Passable(gridgraph.WallSet)),
		Goal:  func(c coord.Coordinate) bool { return c == coord.At(2, 2) },
	}, search.WithMode(search.ModeAllOptimal), search.WithBounds(s.grid.Bounds()))
	require.NoError(s.T(), err)

	tiles := route.Tiles(res, coord.Coordinate.Position)
	require.Equal(s.T(), 9, tiles.Size())
	require.True(s.T(), tiles.Has(coord.At(1, 1)))
}

// TestUnreached rejects states that were never finalized.
func (s *RouteSuite) TestUnreached() {
	missing := coord.At(7, 7)
	_, err := route.One(s.field, missing)
	require.ErrorIs(s.T(), err, route.ErrUnreached)
	_, err = route.All(s.field, missing, route.FullPath)
	require.ErrorIs(s.T(), err, route.ErrUnreached)
	_, err = route.Count(s.field, missing)
	require.ErrorIs(s.T(), err, route.ErrUnreached)
	_, err = route.Descend(s.field.Dist, missing, walk(s.grid.Passable(gridgraph.WallSet)))
	require.ErrorIs(s.T(), err, route.ErrUnreached)
}

// Entry point for running the suite.
func TestRouteSuite(t *testing.T) {
	suite.Run(t, new(RouteSuite))
}

// TestAll_WeightedTies enumerates the two equal routes of a diamond.
func TestAll_WeightedTies(t *testing.T) {
	g := edges{
		"A": {{To: "B", Cost: 1}, {To: "C", Cost: 2}, {To: "E", Cost: 9}},
		"B": {{To: "D", Cost: 2}},
		"C": {{To: "D", Cost: 1}},
		"D": {{To: "E", Cost: 5}},
	}
	res, err := search.Dijkstra(search.Problem[string]{
		Start: []string{"A"},
		Next:  g.next,
		Goal:  func(s string) bool { return s == "E" },
	}, search.WithMode(search.ModeAllOptimal))
	require.NoError(t, err)

	paths, err := route.AllGoals(res, route.FullPath)
	require.NoError(t, err)
	require.Equal(t, []route.Path[string]{
		{States: []string{"A", "B", "D", "E"}, Cost: 8},
		{States: []string{"A", "C", "D", "E"}, Cost: 8},
	}, paths)

	n, err := route.Count(res, "E")
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}

// TestAll_ZeroCostCycle never loops through a zero-cost cycle.
func TestAll_ZeroCostCycle(t *testing.T) {
	g := edges{
		"A": {{To: "B", Cost: 1}},
		"B": {{To: "C", Cost: 0}},
		"C": {{To: "B", Cost: 0}},
	}
	res, err := search.Dijkstra(search.Problem[string]{Start: []string{"A"}, Next: g.next},
		search.WithMode(search.ModeField))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C"}, res.Preds["B"])

	paths, err := route.All(res, "B", route.FullPath)
	require.NoError(t, err)
	require.Equal(t, []route.Path[string]{{States: []string{"A", "B"}, Cost: 1}}, paths)

	paths, err = route.All(res, "C", route.FullPath)
	require.NoError(t, err)
	require.Equal(t, []route.Path[string]{{States: []string{"A", "B", "C"}, Cost: 1}}, paths)

	n, err := route.Count(res, "B")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

// TestCount_CyclicPreds counts the same paths as All when two tied states
// are each other's zero-cost predecessors.
func TestCount_CyclicPreds(t *testing.T) {
	g := edges{
		"S": {{To: "A", Cost: 1}, {To: "B", Cost: 1}},
		"A": {{To: "B", Cost: 0}, {To: "G", Cost: 1}},
		"B": {{To: "A", Cost: 0}, {To: "G", Cost: 1}},
	}
	res, err := search.Dijkstra(search.Problem[string]{
		Start: []string{"S"},
		Next:  g.next,
		Goal:  func(s string) bool { return s == "G" },
	}, search.WithMode(search.ModeAllOptimal))
	require.NoError(t, err)
	require.Equal(t, []string{"S", "B"}, res.Preds["A"])
	require.Equal(t, []string{"S", "A"}, res.Preds["B"])
	require.Equal(t, []string{"A", "B"}, res.Preds["G"])

	paths, err := route.All(res, "G", route.FullPath)
	require.NoError(t, err)
	require.Equal(t, []route.Path[string]{
		{States: []string{"S", "A", "G"}, Cost: 2},
		{States: []string{"S", "B", "A", "G"}, Cost: 2},
		{States: []string{"S", "B", "G"}, Cost: 2},
		{States: []string{"S", "A", "B", "G"}, Cost: 2},
	}, paths)

	n, err := route.Count(res, "G")
	require.NoError(t, err)
	require.Equal(t, int64(len(paths)), n)

	for _, s := range []string{"A", "B"} {
		sub, err := route.All(res, s, route.FullPath)
		require.NoError(t, err)
		n, err := route.Count(res, s)
		require.NoError(t, err)
		require.Equal(t, int64(len(sub)), n, "paths to %s", s)
	}
}

// TestAll_MultiSource keeps one path per start with Endpoints granularity.
func TestAll_MultiSource(t *testing.T) {
	g := edges{
		"s1": {{To: "m", Cost: 1}},
		"s2": {{To: "m", Cost: 1}},
		"m":  {{To: "x", Cost: 1}, {To: "y", Cost: 1}},
		"x":  {{To: "goal", Cost: 1}},
		"y":  {{To: "goal", Cost: 1}},
	}
	res, err := search.BFS(search.Problem[string]{
		Start: []string{"s1", "s2"},
		Next:  g.next,
		Goal:  func(s string) bool { return s == "goal" },
	}, search.WithMode(search.ModeAllOptimal))
	require.NoError(t, err)

	full, err := route.All(res, "goal", route.FullPath)
	require.NoError(t, err)
	require.Len(t, full, 4)

	ends, err := route.All(res, "goal", route.Endpoints)
	require.NoError(t, err)
	require.Equal(t, []route.Path[string]{
		{States: []string{"s1", "m", "x", "goal"}, Cost: 3},
		{States: []string{"s2", "m", "x", "goal"}, Cost: 3},
	}, ends)
}

// TestDescend walks a backward field from the start of a corridor maze.
func TestDescend(t *testing.T) {
	ix, err := gridgraph.Parse([]string{
		"###########",
		"#.........#",
		"#.#######.#",
		"#S...#...E#",
		"###########",
	})
	require.NoError(t, err)
	start, _ := ix.Find('S')
	goal, _ := ix.Find('E')
	next := walk(ix.Passable(gridgraph.WallSet, 'S', 'E'))

	back, err := search.BFS(search.Problem[coord.Coordinate]{Start: []coord.Coordinate{goal}, Next: next},
		search.WithMode(search.ModeField), search.WithBounds(ix.Bounds()))
	require.NoError(t, err)

	p, err := route.Descend(back.Dist, start, next)
	require.NoError(t, err)
	require.Equal(t, int64(12), p.Cost)
	require.Len(t, p.States, 13)
	require.Equal(t, start, p.First())
	require.Equal(t, goal, p.Last())

	broken := map[string]int64{"A": 2, "B": 0}
	_, err = route.Descend(broken, "A", edges{"A": {{To: "B", Cost: 1}}}.next)
	require.ErrorIs(t, err, route.ErrBrokenField)
}

// TestPositions drops in-place turns from a facing path.
func TestPositions(t *testing.T) {
	p := route.Path[search.State[coord.Direction]]{States: []search.State[coord.Direction]{
		search.At(coord.At(1, 1), coord.Right),
		search.At(coord.At(1, 2), coord.Right),
		search.At(coord.At(1, 2), coord.Down),
		search.At(coord.At(2, 2), coord.Down),
	}}
	got := route.Positions(p, search.State[coord.Direction].Position)
	require.Equal(t, []coord.Coordinate{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}, got)
}
