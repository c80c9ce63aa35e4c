package ai

import (
	"math/rand"

	"golang.org/x/net/context"

	"github.com/nelhage/gomokutician/gomoku"
)

// RandomAI plays a uniformly random empty cell within two cells of an
// existing stone, or the center on an empty board.
type RandomAI struct {
	r *rand.Rand
}

func NewRandom(seed int64) *RandomAI {
	return &RandomAI{
		r: rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomAI) GetMove(ctx context.Context, b *gomoku.Board) (gomoku.Move, bool) {
	pd := NewPatternDetector(b, nil)
	var moves []gomoku.Move
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			if b.IsValidMove(x, y) && pd.nearStone(x, y, nearDistance) {
				moves = append(moves, gomoku.Move{X: x, Y: y})
			}
		}
	}
	if len(moves) == 0 {
		return fallbackMove(b)
	}
	return moves[r.r.Intn(len(moves))], true
}
