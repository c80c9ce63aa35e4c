package gomoku

import "fmt"

const (
	MinSize = 5
	MaxSize = 100

	// WinLength is the number of co-linear stones that wins.
	WinLength = 5
)

// RangeError reports a board size or coordinate outside the legal
// bounds.
type RangeError struct {
	What  string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d,%d]", e.What, e.Value, e.Min, e.Max)
}

type Board struct {
	size  int
	cells []Cell
}

func New(size int) (*Board, error) {
	if size < MinSize || size > MaxSize {
		return nil, &RangeError{What: "board size", Value: size, Min: MinSize, Max: MaxSize}
	}
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}, nil
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

func (b *Board) Clone() *Board {
	out := &Board{size: b.size, cells: make([]Cell, len(b.cells))}
	copy(out.cells, b.cells)
	return out
}

// Flipped returns a copy of b seen from the other side: Self and
// Opponent stones are exchanged.
func (b *Board) Flipped() *Board {
	out := &Board{size: b.size, cells: make([]Cell, len(b.cells))}
	for i, c := range b.cells {
		out.cells[i] = c.Opponent()
	}
	return out
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.size && y < b.size
}

// At returns the contents of (x, y). Out-of-bounds coordinates read as
// Empty; callers that care about the edge check InBounds first.
func (b *Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.cells[y*b.size+x]
}

func (b *Board) set(x, y int, c Cell) {
	b.cells[y*b.size+x] = c
}

func (b *Board) IsValidMove(x, y int) bool {
	return b.InBounds(x, y) && b.cells[y*b.size+x] == Empty
}

// PlaceStone puts c at (x, y). Without force the cell must be empty.
// With force the cell is overwritten unconditionally; placing Empty
// with force removes a stone. Out-of-bounds placements always fail.
func (b *Board) PlaceStone(x, y int, c Cell, force bool) bool {
	if !b.InBounds(x, y) {
		return false
	}
	if !force && !b.IsValidMove(x, y) {
		return false
	}
	b.set(x, y, c)
	return true
}

// Try places c at (x, y), calls fn, and restores the previous contents
// of the cell before returning, including when fn panics. The
// coordinate must be in bounds.
func (b *Board) Try(x, y int, c Cell, fn func()) {
	i := y*b.size + x
	prev := b.cells[i]
	b.cells[i] = c
	defer func() { b.cells[i] = prev }()
	fn()
}

// CountConsecutive counts cells equal to c starting one step from
// (x, y) in direction (dx, dy), stopping at the edge or the first
// mismatch.
func (b *Board) CountConsecutive(x, y, dx, dy int, c Cell) int {
	n := 0
	for i, j := x+dx, y+dy; b.InBounds(i, j) && b.cells[j*b.size+i] == c; i, j = i+dx, j+dy {
		n++
	}
	return n
}

// CheckWin reports whether five co-linear cells all hold c. Every cell
// is tried as the start of a run in each direction, so a run longer
// than five is seen more than once; only existence matters.
func (b *Board) CheckWin(c Cell) bool {
	n := b.size
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if b.cells[y*n+x] != c {
				continue
			}
			for _, d := range Directions {
				if b.runFrom(x, y, d, c) {
					return true
				}
			}
		}
	}
	return false
}

func (b *Board) runFrom(x, y int, d Direction, c Cell) bool {
	ex, ey := x+(WinLength-1)*d.DX, y+(WinLength-1)*d.DY
	if !b.InBounds(ex, ey) {
		return false
	}
	for k := 1; k < WinLength; k++ {
		if b.cells[(y+k*d.DY)*b.size+x+k*d.DX] != c {
			return false
		}
	}
	return true
}

func (b *Board) Stones() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

func (b *Board) EmptyCells() int {
	return len(b.cells) - b.Stones()
}

func (b *Board) Full() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// Center returns the middle cell, (N/2, N/2).
func (b *Board) Center() Move {
	return Move{b.size / 2, b.size / 2}
}
