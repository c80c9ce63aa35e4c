package gomoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, size int) *Board {
	b, err := New(size)
	require.NoError(t, err)
	return b
}

func TestNewSize(t *testing.T) {
	for _, sz := range []int{5, 20, 100} {
		b, err := New(sz)
		require.NoError(t, err, "size=%d", sz)
		assert.Equal(t, sz, b.Size())
		assert.Equal(t, sz*sz, b.EmptyCells())
	}
	for _, sz := range []int{-1, 0, 4, 101} {
		_, err := New(sz)
		var re *RangeError
		assert.ErrorAs(t, err, &re, "size=%d", sz)
	}
}

func TestPlaceStone(t *testing.T) {
	b := newBoard(t, 20)
	assert.True(t, b.PlaceStone(3, 4, Self, false))
	assert.Equal(t, Self, b.At(3, 4))
	assert.False(t, b.PlaceStone(3, 4, Opponent, false), "occupied")
	assert.Equal(t, Self, b.At(3, 4))

	assert.True(t, b.PlaceStone(3, 4, Opponent, true), "force overwrite")
	assert.Equal(t, Opponent, b.At(3, 4))
	assert.True(t, b.PlaceStone(3, 4, Empty, true), "undo")
	assert.True(t, b.IsValidMove(3, 4))

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {20, 0}, {0, 20}} {
		assert.False(t, b.PlaceStone(c[0], c[1], Self, false))
		assert.False(t, b.PlaceStone(c[0], c[1], Self, true))
		assert.False(t, b.IsValidMove(c[0], c[1]))
	}
}

func TestClear(t *testing.T) {
	b := newBoard(t, 10)
	b.PlaceStone(1, 1, Self, false)
	b.PlaceStone(2, 2, Opponent, false)
	b.Clear()
	assert.Equal(t, 0, b.Stones())
	assert.Equal(t, 10, b.Size())
}

func TestCountConsecutive(t *testing.T) {
	b := newBoard(t, 10)
	for x := 2; x < 6; x++ {
		b.PlaceStone(x, 5, Self, false)
	}
	b.PlaceStone(6, 5, Opponent, false)
	assert.Equal(t, 4, b.CountConsecutive(1, 5, 1, 0, Self))
	assert.Equal(t, 3, b.CountConsecutive(2, 5, 1, 0, Self))
	assert.Equal(t, 0, b.CountConsecutive(5, 5, 1, 0, Self))
	assert.Equal(t, 1, b.CountConsecutive(5, 5, 1, 0, Opponent))
	assert.Equal(t, 3, b.CountConsecutive(5, 5, -1, 0, Self))

	b.PlaceStone(0, 0, Self, false)
	b.PlaceStone(1, 0, Self, false)
	assert.Equal(t, 2, b.CountConsecutive(2, 0, -1, 0, Self), "stops at edge")
}

func TestCheckWin(t *testing.T) {
	cases := []struct {
		name   string
		start  [2]int
		dx, dy int
	}{
		{"horizontal", [2]int{10, 10}, 1, 0},
		{"vertical", [2]int{10, 10}, 0, 1},
		{"diagonal", [2]int{10, 10}, 1, 1},
		{"anti-diagonal", [2]int{10, 14}, 1, -1},
		{"edge", [2]int{15, 19}, 1, 0},
	}
	for _, tc := range cases {
		b := newBoard(t, 20)
		for k := 0; k < 4; k++ {
			b.PlaceStone(tc.start[0]+k*tc.dx, tc.start[1]+k*tc.dy, Self, false)
		}
		assert.False(t, b.CheckWin(Self), "%s: four is not a win", tc.name)
		b.PlaceStone(tc.start[0]+4*tc.dx, tc.start[1]+4*tc.dy, Self, false)
		assert.True(t, b.CheckWin(Self), tc.name)
		assert.False(t, b.CheckWin(Opponent), tc.name)
	}
}

func TestCheckWinLongRun(t *testing.T) {
	b := newBoard(t, 10)
	for x := 0; x < 7; x++ {
		b.PlaceStone(x, 3, Opponent, false)
	}
	assert.True(t, b.CheckWin(Opponent))
}

func TestCheckWinBroken(t *testing.T) {
	b := newBoard(t, 10)
	for _, x := range []int{0, 1, 2, 4, 5} {
		b.PlaceStone(x, 0, Self, false)
	}
	assert.False(t, b.CheckWin(Self))
	b.PlaceStone(3, 0, Opponent, false)
	assert.False(t, b.CheckWin(Self))
}

// TestCheckWinExhaustive compares CheckWin against a brute-force scan
// over every 5-window on a small board.
func TestCheckWinExhaustive(t *testing.T) {
	b := newBoard(t, 7)
	lines := [][]Move{}
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			for _, d := range Directions {
				var ms []Move
				for k := 0; k < 5; k++ {
					ms = append(ms, Move{x + k*d.DX, y + k*d.DY})
				}
				if b.InBounds(ms[4].X, ms[4].Y) {
					lines = append(lines, ms)
				}
			}
		}
	}
	seed := uint32(7)
	for round := 0; round < 200; round++ {
		b.Clear()
		for i := 0; i < 7*7; i++ {
			seed = seed*1103515245 + 12345
			switch (seed >> 16) % 3 {
			case 1:
				b.PlaceStone(i%7, i/7, Self, true)
			case 2:
				b.PlaceStone(i%7, i/7, Opponent, true)
			}
		}
		for _, c := range []Cell{Self, Opponent} {
			want := false
			for _, l := range lines {
				all := true
				for _, m := range l {
					if b.At(m.X, m.Y) != c {
						all = false
						break
					}
				}
				if all {
					want = true
					break
				}
			}
			require.Equal(t, want, b.CheckWin(c), "round %d cell %s", round, c)
		}
	}
}

func TestTryRestores(t *testing.T) {
	b := newBoard(t, 10)
	b.PlaceStone(4, 4, Opponent, false)
	b.Try(4, 4, Self, func() {
		assert.Equal(t, Self, b.At(4, 4))
	})
	assert.Equal(t, Opponent, b.At(4, 4))

	assert.Panics(t, func() {
		b.Try(5, 5, Self, func() { panic("boom") })
	})
	assert.Equal(t, Empty, b.At(5, 5))
}

func TestCellOpponent(t *testing.T) {
	assert.Equal(t, Opponent, Self.Opponent())
	assert.Equal(t, Self, Opponent.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}

func TestFlipped(t *testing.T) {
	b := newBoard(t, 7)
	b.PlaceStone(1, 2, Self, false)
	b.PlaceStone(3, 3, Opponent, false)
	f := b.Flipped()
	assert.Equal(t, Opponent, f.At(1, 2))
	assert.Equal(t, Self, f.At(3, 3))
	assert.Equal(t, Empty, f.At(0, 0))
	assert.Equal(t, 2, f.Stones())

	f.PlaceStone(0, 0, Self, false)
	assert.Equal(t, Empty, b.At(0, 0))
}
