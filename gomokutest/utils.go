package gomokutest

import (
	"strings"

	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/notation"
)

// Board builds a board of the given size from a space-separated list
// of "x,y,v" stones.
func Board(size int, stones string) *gomoku.Board {
	b, e := gomoku.New(size)
	if e != nil {
		panic(e)
	}
	if stones == "" {
		return b
	}
	for _, s := range strings.Fields(stones) {
		if e := notation.AddStone(b, s); e != nil {
			panic(e)
		}
	}
	return b
}

func Move(s string) gomoku.Move {
	m, e := notation.ParseMove(s)
	if e != nil {
		panic(e)
	}
	return m
}

func Moves(s string) []gomoku.Move {
	if s == "" {
		return nil
	}
	var ms []gomoku.Move
	for _, b := range strings.Fields(s) {
		ms = append(ms, Move(b))
	}
	return ms
}

// Snapshot copies the cells of b so a test can check that an
// operation left the board untouched.
func Snapshot(b *gomoku.Board) []gomoku.Cell {
	out := make([]gomoku.Cell, 0, b.Size()*b.Size())
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			out = append(out, b.At(x, y))
		}
	}
	return out
}
