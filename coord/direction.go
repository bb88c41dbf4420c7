package coord

import "fmt"

// Direction is one of the eight compass moves on a grid, numbered clockwise
// starting from Right. Adding 4 (mod 8) yields the opposite direction.
type Direction uint8

const (
	Right Direction = iota
	RightDown
	Down
	DownLeft
	Left
	LeftUp
	Up
	UpRight
)

// numDirections is the size of the closed Direction set.
const numDirections = 8

// Orthogonal lists the 4-connected directions, clockwise from Right.
var Orthogonal = [4]Direction{Right, Down, Left, Up}

// All lists the 8-connected directions, clockwise from Right.
var All = [numDirections]Direction{Right, RightDown, Down, DownLeft, Left, LeftUp, Up, UpRight}

type directionInfo struct {
	name   string
	vector Coordinate
	symbol rune
	letter rune
}

var directionTable = [numDirections]directionInfo{
	Right:     {"Right", Coordinate{0, 1}, '>', 'R'},
	RightDown: {"RightDown", Coordinate{1, 1}, '↘', 'C'},
	Down:      {"Down", Coordinate{1, 0}, 'v', 'D'},
	DownLeft:  {"DownLeft", Coordinate{1, -1}, '↙', 'Z'},
	Left:      {"Left", Coordinate{0, -1}, '<', 'L'},
	LeftUp:    {"LeftUp", Coordinate{-1, -1}, '↖', 'Q'},
	Up:        {"Up", Coordinate{-1, 0}, '^', 'U'},
	UpRight:   {"UpRight", Coordinate{-1, 1}, '↗', 'E'},
}

var (
	bySymbol = make(map[rune]Direction, numDirections)
	byLetter = make(map[rune]Direction, numDirections)
)

func init() {
	for d, info := range directionTable {
		bySymbol[info.symbol] = Direction(d)
		byLetter[info.letter] = Direction(d)
	}
}

// FromSymbol decodes a display symbol such as '>' or '↙'.
func FromSymbol(r rune) (Direction, error) {
	if d, ok := bySymbol[r]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: symbol %q", ErrUnknownDirectionCode, r)
}

// FromLetter decodes a single-letter code such as 'R' or 'Z'.
func FromLetter(r rune) (Direction, error) {
	if d, ok := byLetter[r]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: letter %q", ErrUnknownDirectionCode, r)
}

// Valid reports whether d names one of the eight directions.
func (d Direction) Valid() bool {
	return d < numDirections
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + numDirections/2) % numDirections
}

// Rotate turns d clockwise by degrees (negative turns counter-clockwise).
// Only multiples of 90 are accepted, so orthogonal directions stay orthogonal.
func (d Direction) Rotate(degrees int) (Direction, error) {
	if degrees%90 != 0 {
		return d, fmt.Errorf("%w: got %d", ErrInvalidRotation, degrees)
	}
	return d.Rotate45(degrees / 45), nil
}

// Rotate45 turns d clockwise by steps eighths of a full turn.
func (d Direction) Rotate45(steps int) Direction {
	n := (int(d) + steps) % numDirections
	if n < 0 {
		n += numDirections
	}
	return Direction(n)
}

// RotateRight turns d 90 degrees clockwise.
func (d Direction) RotateRight() Direction { return d.Rotate45(2) }

// RotateLeft turns d 90 degrees counter-clockwise.
func (d Direction) RotateLeft() Direction { return d.Rotate45(-2) }

// IsOrthogonal reports whether d is one of Right, Down, Left, Up.
func (d Direction) IsOrthogonal() bool {
	return d%2 == 0
}

// Vector returns the unit step of d as a Coordinate offset.
func (d Direction) Vector() Coordinate {
	return directionTable[d%numDirections].vector
}

// Symbol returns the display symbol of d.
func (d Direction) Symbol() rune {
	return directionTable[d%numDirections].symbol
}

// Letter returns the single-letter code of d.
func (d Direction) Letter() rune {
	return directionTable[d%numDirections].letter
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionTable[d].name
}

// Between returns the direction of the single step from -> to.
// The second result is false when the two coordinates are not 8-adjacent.
func Between(from, to Coordinate) (Direction, bool) {
	delta := to.Sub(from)
	for _, d := range All {
		if directionTable[d].vector == delta {
			return d, true
		}
	}
	return 0, false
}
