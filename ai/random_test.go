package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/context"

	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/gomokutest"
)

func TestRandomStaysNear(t *testing.T) {
	b := gomokutest.Board(19, "9,9,1 10,10,2")
	r := NewRandom(42)
	for i := 0; i < 200; i++ {
		m, ok := r.GetMove(context.Background(), b)
		assert.True(t, ok)
		assert.True(t, b.IsValidMove(m.X, m.Y))
		assert.True(t, m.X >= 7 && m.X <= 12 && m.Y >= 7 && m.Y <= 12, "far move %s", m)
	}
}

func TestRandomEmpty(t *testing.T) {
	b, _ := gomoku.New(15)
	m, ok := NewRandom(1).GetMove(context.Background(), b)
	assert.True(t, ok)
	assert.Equal(t, gomoku.Move{X: 7, Y: 7}, m)
}

func TestRandomDeterministic(t *testing.T) {
	b := gomokutest.Board(15, "7,7,1")
	a, _ := NewRandom(9).GetMove(context.Background(), b)
	c, _ := NewRandom(9).GetMove(context.Background(), b)
	assert.Equal(t, a, c)
}
