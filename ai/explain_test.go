package ai

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/gomokutest"
)

func TestExplainWin(t *testing.T) {
	b := gomokutest.Board(15, "5,5,1 6,5,1 7,5,1 8,5,1 5,6,2 6,6,2")
	before := gomokutest.Snapshot(b)
	r := Explain(context.Background(), b, MinimaxConfig{Depth: 2})
	assert.Equal(t, before, gomokutest.Snapshot(b))

	require.True(t, r.HasMove)
	assert.Equal(t, TierWin, r.Tier)
	assert.Contains(t, []gomoku.Move{{X: 4, Y: 5}, {X: 9, Y: 5}}, r.Move)
	assert.Equal(t, 1, r.Threats.Five)
	assert.Contains(t, []gomoku.Move{{X: 4, Y: 5}, {X: 9, Y: 5}}, r.MinimaxMove)
	assert.Equal(t, WinScore+WinDepthBonus, r.Value)
	assert.Equal(t, Evaluate(&DefaultWeights, b, gomoku.Self), r.Static)
	require.NotEmpty(t, r.Critical)
	assert.Equal(t, []gomoku.Move{{X: 4, Y: 5}, {X: 9, Y: 5}}, r.WinIn1)
	assert.Empty(t, r.LoseIn1)
	assert.NotEmpty(t, r.WinIn2)
	assert.Equal(t, []gomoku.Move{{X: 4, Y: 6}, {X: 7, Y: 6}}, r.LoseIn2)

	var out bytes.Buffer
	r.Write(&out)
	assert.Contains(t, out.String(), "(win)")
	assert.Contains(t, out.String(), "move  score")
	assert.Contains(t, out.String(), "win in 1: 4,5 9,5\n")
	assert.Contains(t, out.String(), "lose in 2: 4,6 7,6\n")
	assert.NotContains(t, out.String(), "lose in 1")
}

func TestExplainStatic(t *testing.T) {
	b := gomokutest.Board(20, "10,10,1 11,10,1")
	r := Explain(context.Background(), b, MinimaxConfig{Depth: 1})
	assert.Equal(t, int64(100), Evaluate(&DefaultWeights, b, gomoku.Self))
	assert.Equal(t, int64(100), r.Static)

	b = gomokutest.Board(20, "10,10,1 11,10,1 5,5,2 5,6,2 5,7,2")
	r = Explain(context.Background(), b, MinimaxConfig{Depth: 1})
	assert.Equal(t, int64(100-1000), r.Static)
}

func TestExplainFull(t *testing.T) {
	b, _ := gomoku.New(5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			b.PlaceStone(x, y, gomoku.Cell(1+(x+2*y)%2), false)
		}
	}
	r := Explain(context.Background(), b, MinimaxConfig{})
	assert.False(t, r.HasMove)
	assert.Empty(t, r.Critical)
	var out bytes.Buffer
	r.Write(&out)
	assert.Equal(t, "no legal move\n", out.String())
}
