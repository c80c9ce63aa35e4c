package ai

import (
	"sort"

	"github.com/nelhage/gomokutician/gomoku"
)

const (
	// MaxCandidates bounds the list returned by FindCriticalMoves.
	MaxCandidates = 15

	// nearDistance is the Chebyshev radius around existing stones
	// inside which empty cells are considered at all.
	nearDistance = 2

	gapWindow = 5
)

// Threats counts, over the four lines through a cell, the shapes a
// single stone placed there would make.
type Threats struct {
	Five      int
	OpenFour  int
	Four      int
	OpenThree int
	Two       int
}

func (t Threats) Score(w *Weights) int64 {
	return int64(t.Five)*w.Five +
		int64(t.OpenFour)*w.OpenFour +
		int64(t.Four)*w.Four +
		int64(t.OpenThree)*w.OpenThree +
		int64(t.Two)*w.Two
}

type shape int

// Shapes are ordered by strength.
const (
	shapeNone shape = iota
	shapeTwo
	shapeOpenThree
	shapeFour
	shapeOpenFour
	shapeFive
)

func (t *Threats) add(s shape) {
	switch s {
	case shapeFive:
		t.Five++
	case shapeOpenFour:
		t.OpenFour++
	case shapeFour:
		t.Four++
	case shapeOpenThree:
		t.OpenThree++
	case shapeTwo:
		t.Two++
	}
}

type Candidate struct {
	gomoku.Move
	Score int64
}

type PatternDetector struct {
	b *gomoku.Board
	w *Weights
}

func NewPatternDetector(b *gomoku.Board, w *Weights) *PatternDetector {
	if w == nil {
		w = &DefaultWeights
	}
	return &PatternDetector{b: b, w: w}
}

// AnalyzeMove classifies the lines through (x, y) as if c were placed
// there. (x, y) must be on the board; the board is left as it was
// found.
func (pd *PatternDetector) AnalyzeMove(x, y int, c gomoku.Cell) Threats {
	var t Threats
	pd.b.Try(x, y, c, func() {
		for _, d := range gomoku.Directions {
			t.add(pd.classify(x, y, d, c))
		}
	})
	return t
}

func (pd *PatternDetector) classify(x, y int, d gomoku.Direction, c gomoku.Cell) shape {
	left, openL := pd.walk(x, y, -d.DX, -d.DY, c)
	right, openR := pd.walk(x, y, d.DX, d.DY, c)
	run := 1 + left + right

	s := shapeNone
	switch {
	case run >= gomoku.WinLength:
		return shapeFive
	case run == 4:
		if openL && openR {
			s = shapeOpenFour
		} else if openL || openR {
			s = shapeFour
		}
	case run == 3:
		if openL && openR {
			s = shapeOpenThree
		}
	case run == 2:
		if openL || openR {
			s = shapeTwo
		}
	}
	if g := pd.gapShape(x, y, d, c); g > s {
		s = g
	}
	return s
}

// walk counts c-stones from (x, y) in direction (dx, dy) and reports
// whether the run ends on an empty cell rather than the edge or an
// opposing stone.
func (pd *PatternDetector) walk(x, y, dx, dy int, c gomoku.Cell) (int, bool) {
	n := pd.b.CountConsecutive(x, y, dx, dy, c)
	return n, pd.b.IsValidMove(x+(n+1)*dx, y+(n+1)*dy)
}

// gapShape looks for a broken shape through (x, y): a 5-cell window
// along d, with no opposing stone or edge in it, whose stones are
// split by exactly one empty cell. Four such stones make a four and
// three make an open three.
func (pd *PatternDetector) gapShape(x, y int, d gomoku.Direction, c gomoku.Cell) shape {
	best := shapeNone
	for start := -(gapWindow - 1); start <= 0; start++ {
		var stones, first, last int
		first = -1
		blocked := false
		var empty [gapWindow]bool
		for k := 0; k < gapWindow; k++ {
			nx, ny := x+(start+k)*d.DX, y+(start+k)*d.DY
			if !pd.b.InBounds(nx, ny) {
				blocked = true
				break
			}
			switch pd.b.At(nx, ny) {
			case c:
				stones++
				if first < 0 {
					first = k
				}
				last = k
			case gomoku.Empty:
				empty[k] = true
			default:
				blocked = true
			}
			if blocked {
				break
			}
		}
		if blocked || first < 0 {
			continue
		}
		gaps := 0
		for k := first + 1; k < last; k++ {
			if empty[k] {
				gaps++
			}
		}
		if gaps != 1 {
			continue
		}
		switch stones {
		case 4:
			return shapeFour
		case 3:
			best = shapeOpenThree
		}
	}
	return best
}

// FindCriticalMoves ranks the empty cells near existing stones by how
// much they build c's threats and block the opponent's. Cells that do
// neither are dropped; at most MaxCandidates are returned, best first,
// equal scores in row-major order.
func (pd *PatternDetector) FindCriticalMoves(c gomoku.Cell) []Candidate {
	var out []Candidate
	opp := c.Opponent()
	n := pd.b.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !pd.b.IsValidMove(x, y) || !pd.nearStone(x, y, nearDistance) {
				continue
			}
			score := 2*pd.AnalyzeMove(x, y, c).Score(pd.w) +
				pd.AnalyzeMove(x, y, opp).Score(pd.w)
			if score > 0 {
				out = append(out, Candidate{Move: gomoku.Move{X: x, Y: y}, Score: score})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > MaxCandidates {
		out = out[:MaxCandidates]
	}
	return out
}

func (pd *PatternDetector) nearStone(x, y, dist int) bool {
	for dy := -dist; dy <= dist; dy++ {
		for dx := -dist; dx <= dist; dx++ {
			nx, ny := x+dx, y+dy
			if pd.b.InBounds(nx, ny) && pd.b.At(nx, ny) != gomoku.Empty {
				return true
			}
		}
	}
	return false
}
