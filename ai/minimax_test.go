package ai

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/gomokutest"
)

var size = flag.Int("size", 20, "board size to benchmark")
var depth = flag.Int("depth", 2, "minimax search depth")

func TestMinimaxTakesWin(t *testing.T) {
	b := gomokutest.Board(20, "5,5,1 6,5,1 7,5,1 8,5,1 10,10,2 11,11,2 12,12,2")
	before := gomokutest.Snapshot(b)
	m, v, _, ok := NewMinimax(MinimaxConfig{}).Analyze(context.Background(), b)
	require.True(t, ok)
	assert.Contains(t, gomokutest.Moves("4,5 9,5"), m)
	assert.Equal(t, WinScore+WinDepthBonus, v)
	assert.Equal(t, before, gomokutest.Snapshot(b))
}

func TestMinimaxBlocks(t *testing.T) {
	b := gomokutest.Board(20, "10,10,2 11,10,2 12,10,2 13,10,2")
	m, ok := NewMinimax(MinimaxConfig{}).GetMove(context.Background(), b)
	require.True(t, ok)
	assert.Contains(t, gomokutest.Moves("9,10 14,10"), m)
}

func TestMinimaxBlocksFour(t *testing.T) {
	b := gomokutest.Board(20, "9,10,1 10,10,2 11,10,2 12,10,2 13,10,2 5,5,1")
	m, ok := NewMinimax(MinimaxConfig{Depth: 3}).GetMove(context.Background(), b)
	require.True(t, ok)
	assert.Equal(t, gomokutest.Move("14,10"), m)
}

func TestMinimaxEmptyBoard(t *testing.T) {
	b := gomokutest.Board(15, "")
	m, ok := NewMinimax(MinimaxConfig{}).GetMove(context.Background(), b)
	require.True(t, ok)
	assert.Equal(t, gomoku.Move{X: 7, Y: 7}, m)
}

func TestMinimaxFullBoard(t *testing.T) {
	b := gomokutest.Board(5, "")
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := gomoku.Self
			if (x/2+y)%2 == 1 {
				c = gomoku.Opponent
			}
			b.PlaceStone(x, y, c, true)
		}
	}
	_, ok := NewMinimax(MinimaxConfig{}).GetMove(context.Background(), b)
	assert.False(t, ok)
}

func TestMinimaxPrefersFasterWin(t *testing.T) {
	b := gomokutest.Board(10, "0,0,1 1,0,1 2,0,1 3,0,1 4,0,1")
	m := NewMinimax(MinimaxConfig{})
	m.b = b
	m.pd = NewPatternDetector(b, m.cfg.Weights)
	slow, _, _ := m.minimax(1, MinEval-1, MaxEval+1, true)
	fast, _, _ := m.minimax(3, MinEval-1, MaxEval+1, true)
	assert.Greater(t, fast, slow)
	assert.Greater(t, slow, WinScore-1)

	b = gomokutest.Board(10, "0,0,2 1,0,2 2,0,2 3,0,2 4,0,2")
	m.b = b
	slow, _, _ = m.minimax(1, MinEval-1, MaxEval+1, true)
	fast, _, _ = m.minimax(3, MinEval-1, MaxEval+1, true)
	assert.Less(t, fast, slow)
	assert.Less(t, slow, -WinScore+1)
}

func TestMinimaxHorizonEvaluates(t *testing.T) {
	b := gomokutest.Board(10, "0,0,1 1,0,1 2,0,1 3,0,1 4,0,1")
	m := NewMinimax(MinimaxConfig{})
	m.b = b
	m.pd = NewPatternDetector(b, m.cfg.Weights)
	v, _, _ := m.minimax(0, MinEval-1, MaxEval+1, true)
	assert.Equal(t, Evaluate(nil, b, gomoku.Self), v)
	assert.Equal(t, uint64(1), m.st.Evaluated)
	assert.Zero(t, m.st.Terminal)
}

func TestMinimaxLeavesBoard(t *testing.T) {
	b := gomokutest.Board(15,
		"7,7,1 8,7,2 8,8,1 6,6,2 9,9,1 7,8,2 6,8,1 10,10,2 5,9,2 9,6,1")
	before := gomokutest.Snapshot(b)
	for d := 1; d <= 3; d++ {
		_, _, st, ok := NewMinimax(MinimaxConfig{Depth: d}).Analyze(context.Background(), b)
		require.True(t, ok)
		assert.Equal(t, before, gomokutest.Snapshot(b), "depth=%d", d)
		assert.Equal(t, d, st.Depth)
	}
}

func TestMinimaxPrunes(t *testing.T) {
	b := gomokutest.Board(15,
		"7,7,1 8,7,2 8,8,1 6,6,2 9,9,1 7,8,2 6,8,1 10,10,2 5,9,2 9,6,1")
	_, _, st, _ := NewMinimax(MinimaxConfig{Depth: 3}).Analyze(context.Background(), b)
	assert.NotZero(t, st.CutNodes)
	assert.NotZero(t, st.Evaluated)
}

func BenchmarkMinimax(b *testing.B) {
	ai := NewMinimax(MinimaxConfig{Depth: *depth})
	board := gomokutest.Board(*size, "")
	c := board.Center()
	board.PlaceStone(c.X, c.Y, gomoku.Opponent, false)
	for i := 0; i < b.N; i++ {
		m, ok := ai.GetMove(context.Background(), board)
		if !ok {
			b.Fatal("no move")
		}
		board.PlaceStone(m.X, m.Y, gomoku.Self, false)
		if board.CheckWin(gomoku.Self) || board.Full() {
			board.Clear()
			board.PlaceStone(c.X, c.Y, gomoku.Opponent, false)
			continue
		}
		// reply for the opponent with the same engine, from the
		// opponent's side of the board.
		flipped := board.Flipped()
		r, ok := ai.GetMove(context.Background(), flipped)
		if !ok {
			board.Clear()
			continue
		}
		board.PlaceStone(r.X, r.Y, gomoku.Opponent, false)
		if board.CheckWin(gomoku.Opponent) {
			board.Clear()
			board.PlaceStone(c.X, c.Y, gomoku.Opponent, false)
		}
	}
}
