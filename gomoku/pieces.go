package gomoku

import "fmt"

type Cell byte

const (
	Empty    Cell = 0
	Self     Cell = 1
	Opponent Cell = 2
)

func (c Cell) Opponent() Cell {
	switch c {
	case Self:
		return Opponent
	case Opponent:
		return Self
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Self:
		return "self"
	case Opponent:
		return "opponent"
	default:
		return fmt.Sprintf("Cell(%d)", byte(c))
	}
}

type Move struct {
	X, Y int
}

func (m Move) String() string {
	return fmt.Sprintf("%d,%d", m.X, m.Y)
}

// Direction is a unit step along one of the four lines through a
// cell. The opposite half-line is walked with (-DX, -DY).
type Direction struct {
	DX, DY int
}

// Directions lists horizontal, vertical, diagonal and anti-diagonal,
// in the order every scan in this module visits them.
var Directions = [4]Direction{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}
