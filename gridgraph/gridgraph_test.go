package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstate/coord"
	"github.com/katalvlaran/gridstate/gridgraph"
)

var corridor = []string{
	"###########",
	"#.........#",
	"#.#######.#",
	"#S...#...E#",
	"###########",
	"###########",
	"###########",
}

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects empty or ragged inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		opts  []gridgraph.Option
		err   error
	}{
		{"NoRows", nil, nil, gridgraph.ErrEmptyGrid},
		{"EmptyRows", []string{"", ""}, nil, gridgraph.ErrEmptyGrid},
		{"NonRectangular", []string{"..", "."}, nil, gridgraph.ErrNonRectangular},
		{"RaggedEmpty", []string{""}, []gridgraph.Option{gridgraph.WithRagged()}, gridgraph.ErrEmptyGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.Parse(tc.lines, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.lines, err, tc.err)
			}
		})
	}
}

// TestParse_Dense checks 1-indexed placement, bounds and label lookup.
func TestParse_Dense(t *testing.T) {
	ix, err := gridgraph.Parse(corridor)
	require.NoError(t, err)

	assert.Equal(t, 7, ix.Rows())
	assert.Equal(t, 11, ix.Cols())
	assert.Equal(t, coord.Bounds(coord.At(1, 1), 7, 11), ix.Bounds())

	start, err := ix.Find('S')
	require.NoError(t, err)
	assert.Equal(t, coord.At(4, 2), start)
	goal, err := ix.Find('E')
	require.NoError(t, err)
	assert.Equal(t, coord.At(4, 10), goal)

	r, ok := ix.Get(coord.At(1, 1))
	assert.True(t, ok)
	assert.Equal(t, '#', r)
	assert.False(t, ix.Contains(coord.At(2, 2)), "blank cells are not recorded")
	assert.True(t, ix.InBounds(coord.At(2, 2)))
	assert.False(t, ix.InBounds(coord.At(0, 1)))
}

// TestParse_Options covers marker mode, origin and ragged input.
func TestParse_Options(t *testing.T) {
	lines := []string{"#.O", "O#", "..O#"}

	_, err := gridgraph.Parse(lines)
	require.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	ix, err := gridgraph.Parse(lines, gridgraph.WithRagged(), gridgraph.WithMarker('O'), gridgraph.WithOrigin(coord.At(0, 0)))
	require.NoError(t, err)
	assert.Equal(t, 3, ix.Rows())
	assert.Equal(t, 4, ix.Cols())
	assert.Equal(t, []coord.Coordinate{{Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 2, Col: 2}}, ix.FindAll('O'))
	assert.Equal(t, 3, ix.Len())

	// Labels are runes, not bytes.
	uni, err := gridgraph.Parse([]string{"→.↓", "..."})
	require.NoError(t, err)
	assert.Equal(t, 3, uni.Cols())
	down, err := uni.Find('↓')
	require.NoError(t, err)
	assert.Equal(t, coord.At(1, 3), down)
}

// TestFind_Errors verifies the exactly-one contract of Find.
func TestFind_Errors(t *testing.T) {
	ix, err := gridgraph.Parse([]string{"S.S", "..."})
	require.NoError(t, err)

	_, err = ix.Find('S')
	assert.ErrorIs(t, err, gridgraph.ErrDuplicateCell)
	_, err = ix.Find('E')
	assert.ErrorIs(t, err, gridgraph.ErrMissingCell)
}

//----------------------------------------------------------------------------//
// Convention and rebuild Tests
//----------------------------------------------------------------------------//

// TestPassable contrasts the wall-set and open-set conventions.
func TestPassable(t *testing.T) {
	ix, err := gridgraph.Parse(corridor)
	require.NoError(t, err)

	walls := ix.Passable(gridgraph.WallSet, 'S', 'E')
	assert.True(t, walls(coord.At(2, 2)))
	assert.True(t, walls(coord.At(4, 2)), "start marker is exempt")
	assert.False(t, walls(coord.At(1, 1)))
	assert.False(t, walls(coord.At(0, 0)), "out of bounds never passes")

	strict := ix.Passable(gridgraph.WallSet)
	assert.False(t, strict(coord.At(4, 2)), "without exemption S is just a recorded cell")

	open := gridgraph.FromCoordinates(coord.Bounds(coord.At(0, 0), 3, 3), []coord.Coordinate{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, 'O').
		Passable(gridgraph.OpenSet)
	assert.True(t, open(coord.At(1, 1)))
	assert.False(t, open(coord.At(1, 2)))
}

// TestRebuild verifies that WithObstacles and Without never mutate the receiver.
func TestRebuild(t *testing.T) {
	base := gridgraph.FromCoordinates(coord.Bounds(coord.At(0, 0), 7, 7), nil, '#')
	assert.Equal(t, 0, base.Len())

	blocked := base.WithObstacles('#', coord.At(3, 3), coord.At(4, 4))
	assert.Equal(t, 0, base.Len())
	assert.Equal(t, 2, blocked.Len())
	assert.True(t, blocked.Contains(coord.At(3, 3)))
	assert.Equal(t, base.Bounds(), blocked.Bounds())

	cleared := blocked.Without(coord.At(3, 3))
	assert.Equal(t, 2, blocked.Len())
	assert.Equal(t, 1, cleared.Len())
	assert.False(t, cleared.Contains(coord.At(3, 3)))

	cells := cleared.Cells()
	cells[coord.At(0, 0)] = 'X'
	assert.False(t, cleared.Contains(coord.At(0, 0)), "Cells returns a copy")
}

// TestEachAndNeighbors checks row-major iteration and bounded neighbors.
func TestEachAndNeighbors(t *testing.T) {
	ix, err := gridgraph.Parse([]string{".b", "a."}, gridgraph.WithOrigin(coord.At(0, 0)))
	require.NoError(t, err)

	var order []rune
	ix.Each(func(_ coord.Coordinate, r rune) { order = append(order, r) })
	assert.Equal(t, []rune{'b', 'a'}, order)

	assert.Equal(t, []coord.Coordinate{{Row: 0, Col: 1}, {Row: 1, Col: 0}}, ix.Neighbors(coord.At(0, 0), gridgraph.Conn4))
	assert.Equal(t, []coord.Coordinate{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 0}}, ix.Neighbors(coord.At(0, 0), gridgraph.Conn8))
}

// TestRenderAndFingerprint checks the debug renderers and digest stability.
func TestRenderAndFingerprint(t *testing.T) {
	ix, err := gridgraph.Parse([]string{"#.", ".#"})
	require.NoError(t, err)

	assert.Equal(t, "# \n #", ix.Draw(' '))
	assert.Equal(t, "#O\n.#", ix.Overlay([]coord.Coordinate{{Row: 1, Col: 2}}, 'O', '.'))

	dist := map[coord.Coordinate]int{{Row: 1, Col: 1}: 0, {Row: 2, Col: 2}: 7}
	got := gridgraph.Render(ix.Bounds(), dist, func(v int) rune { return rune('0' + v) }, '.')
	assert.Equal(t, "0.\n.7", got)

	same, err := gridgraph.Parse([]string{"#.", ".#"})
	require.NoError(t, err)
	assert.Equal(t, ix.Fingerprint(), same.Fingerprint())
	assert.NotEqual(t, ix.Fingerprint(), ix.Without(coord.At(1, 1)).Fingerprint())
}
