package ai

import (
	"golang.org/x/net/context"

	"github.com/nelhage/gomokutician/gomoku"
)

// GomokuPlayer chooses a move for gomoku.Self on b. The board is
// returned unmodified; ok is false only when b has no empty cell.
type GomokuPlayer interface {
	GetMove(ctx context.Context, b *gomoku.Board) (m gomoku.Move, ok bool)
}

// fallbackMove returns the center if it is free, and otherwise the
// first empty cell in row-major order.
func fallbackMove(b *gomoku.Board) (gomoku.Move, bool) {
	if c := b.Center(); b.IsValidMove(c.X, c.Y) {
		return c, true
	}
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			if b.IsValidMove(x, y) {
				return gomoku.Move{X: x, Y: y}, true
			}
		}
	}
	return gomoku.Move{}, false
}
