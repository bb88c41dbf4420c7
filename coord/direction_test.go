package coord_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstate/coord"
)

// TestDirection_Codecs round-trips every direction through its symbol and letter.
func TestDirection_Codecs(t *testing.T) {
	symbols := "<>v^↘↙↖↗"
	for _, r := range symbols {
		d, err := coord.FromSymbol(r)
		require.NoError(t, err)
		assert.Equal(t, r, d.Symbol())
	}
	for _, d := range coord.All {
		got, err := coord.FromLetter(d.Letter())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	for _, bad := range []rune{'x', '.', '#', 'r'} {
		_, err := coord.FromSymbol(bad)
		assert.True(t, errors.Is(err, coord.ErrUnknownDirectionCode), "symbol %q", bad)
	}
	_, err := coord.FromLetter('X')
	assert.ErrorIs(t, err, coord.ErrUnknownDirectionCode)
}

// TestDirection_Opposite verifies the involution and that vectors cancel out.
func TestDirection_Opposite(t *testing.T) {
	for _, d := range coord.All {
		assert.Equal(t, d, d.Opposite().Opposite(), d.String())
		assert.Equal(t, coord.Coordinate{}, d.Vector().Add(d.Opposite().Vector()), d.String())
		assert.NotEqual(t, d, d.Opposite())
	}
	assert.Equal(t, coord.Left, coord.Right.Opposite())
	assert.Equal(t, coord.UpRight, coord.DownLeft.Opposite())
}

// TestDirection_Rotate checks right-angle rotation in both senses.
func TestDirection_Rotate(t *testing.T) {
	cases := []struct {
		name    string
		from    coord.Direction
		degrees int
		want    coord.Direction
	}{
		{"Zero", coord.Up, 0, coord.Up},
		{"Clockwise", coord.Right, 90, coord.Down},
		{"CounterClockwise", coord.Right, -90, coord.Up},
		{"Half", coord.Left, 180, coord.Right},
		{"Full", coord.Down, 360, coord.Down},
		{"Wrap", coord.Up, 450, coord.Right},
		{"Diagonal", coord.RightDown, 90, coord.DownLeft},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.from.Rotate(tc.degrees)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := coord.Right.Rotate(45)
	assert.ErrorIs(t, err, coord.ErrInvalidRotation)
	_, err = coord.Right.Rotate(-30)
	assert.ErrorIs(t, err, coord.ErrInvalidRotation)

	assert.Equal(t, coord.RightDown, coord.Right.Rotate45(1))
	assert.Equal(t, coord.UpRight, coord.Right.Rotate45(-1))
	for _, d := range coord.Orthogonal {
		assert.True(t, d.IsOrthogonal())
		assert.True(t, d.RotateRight().IsOrthogonal())
		assert.Equal(t, d, d.RotateRight().RotateLeft())
		assert.Equal(t, d.Opposite(), d.RotateRight().RotateRight())
	}
}

// TestDirection_Vector checks unit vectors and Between.
func TestDirection_Vector(t *testing.T) {
	origin := coord.At(3, 3)
	for _, d := range coord.All {
		assert.Equal(t, 1, coord.Coordinate{}.Chebyshev(d.Vector()), d.String())
		got, ok := coord.Between(origin, origin.Translate(d, 1))
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := coord.Between(origin, origin)
	assert.False(t, ok)
	_, ok = coord.Between(origin, coord.At(5, 3))
	assert.False(t, ok)

	assert.Equal(t, "Down", coord.Down.String())
	assert.Equal(t, "Direction(9)", coord.Direction(9).String())
}
