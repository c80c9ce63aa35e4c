package ai

import "github.com/nelhage/gomokutician/gomoku"

// Evaluate scores b from c's point of view: the value of every run c
// has on the board minus the value of every run of c's opponent.
func Evaluate(w *Weights, b *gomoku.Board, c gomoku.Cell) int64 {
	if w == nil {
		w = &DefaultWeights
	}
	return runScore(w, b, c) - runScore(w, b, c.Opponent())
}

// runScore counts each run once, from the stone that starts it.
func runScore(w *Weights, b *gomoku.Board, c gomoku.Cell) int64 {
	var score int64
	n := b.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if b.At(x, y) != c {
				continue
			}
			for _, d := range gomoku.Directions {
				px, py := x-d.DX, y-d.DY
				if b.InBounds(px, py) && b.At(px, py) == c {
					continue
				}
				run := 1 + b.CountConsecutive(x, y, d.DX, d.DY, c)
				if run > gomoku.WinLength {
					run = gomoku.WinLength
				}
				score += w.Runs[run]
			}
		}
	}
	return score
}
