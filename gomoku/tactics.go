package gomoku

// WinIn1 returns every empty cell where placing c completes five in a
// row, in row-major order.
func (b *Board) WinIn1(c Cell) []Move {
	var out []Move
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if !b.IsValidMove(x, y) {
				continue
			}
			b.Try(x, y, c, func() {
				if b.CheckWin(c) {
					out = append(out, Move{x, y})
				}
			})
		}
	}
	return out
}

// LoseIn1 returns the cells where c's opponent wins immediately.
func (b *Board) LoseIn1(c Cell) []Move {
	return b.WinIn1(c.Opponent())
}

// WinIn2 returns every empty cell where placing c makes a run of at
// least three, in some direction, with an empty cell past at least one
// end of the run.
func (b *Board) WinIn2(c Cell) []Move {
	var out []Move
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if !b.IsValidMove(x, y) {
				continue
			}
			b.Try(x, y, c, func() {
				for _, d := range Directions {
					if b.openRun(x, y, d, c, 3) {
						out = append(out, Move{x, y})
						return
					}
				}
			})
		}
	}
	return out
}

func (b *Board) LoseIn2(c Cell) []Move {
	return b.WinIn2(c.Opponent())
}

func (b *Board) openRun(x, y int, d Direction, c Cell, min int) bool {
	left := b.CountConsecutive(x, y, -d.DX, -d.DY, c)
	right := b.CountConsecutive(x, y, d.DX, d.DY, c)
	if 1+left+right < min {
		return false
	}
	lx, ly := x-(left+1)*d.DX, y-(left+1)*d.DY
	rx, ry := x+(right+1)*d.DX, y+(right+1)*d.DY
	return b.IsValidMove(lx, ly) || b.IsValidMove(rx, ry)
}
