package ai

import (
	"log"
	"time"

	"golang.org/x/net/context"

	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/notation"
)

const (
	MaxEval int64 = 1 << 30
	MinEval       = -MaxEval

	// WinScore is the value of a decided position. Each ply of
	// search left when the win is found adds WinDepthBonus, so that
	// faster wins (and slower losses) are preferred.
	WinScore      int64 = 100000
	WinDepthBonus int64 = 1000

	DefaultDepth = 2
	DefaultWidth = 10
)

type MinimaxConfig struct {
	Depth int
	// Width is the number of ranked candidates searched at each node.
	Width int
	Debug int

	Weights *Weights
}

type Stats struct {
	Depth     int
	Visited   uint64
	Evaluated uint64
	Terminal  uint64
	CutNodes  uint64
	Elapsed   time.Duration
}

type MinimaxAI struct {
	cfg MinimaxConfig
	st  Stats

	b  *gomoku.Board
	pd *PatternDetector
}

func NewMinimax(cfg MinimaxConfig) *MinimaxAI {
	m := &MinimaxAI{cfg: cfg}
	if m.cfg.Depth == 0 {
		m.cfg.Depth = DefaultDepth
	}
	if m.cfg.Width == 0 {
		m.cfg.Width = DefaultWidth
	}
	if m.cfg.Weights == nil {
		m.cfg.Weights = &DefaultWeights
	}
	return m
}

func (m *MinimaxAI) GetMove(ctx context.Context, b *gomoku.Board) (gomoku.Move, bool) {
	mv, _, _, ok := m.Analyze(ctx, b)
	return mv, ok
}

// Analyze searches b for gomoku.Self and returns the chosen move with
// its minimax value. The board is searched in place and is unchanged
// on return. If the search finds no candidate the center, or failing
// that the first empty cell, is returned.
func (m *MinimaxAI) Analyze(ctx context.Context, b *gomoku.Board) (gomoku.Move, int64, Stats, bool) {
	m.st = Stats{Depth: m.cfg.Depth}
	m.b = b
	m.pd = NewPatternDetector(b, m.cfg.Weights)
	defer func() {
		m.b = nil
		m.pd = nil
	}()

	start := time.Now()
	v, mv, ok := m.root(ctx)
	if !ok {
		mv, ok = fallbackMove(b)
	}
	m.st.Elapsed = time.Since(start)

	if m.cfg.Debug > 0 {
		log.Printf("[minimax] depth=%d val=%d move=%s time=%s visited=%d evaluated=%d terminal=%d cut=%d",
			m.st.Depth, v, notation.FormatMove(mv), m.st.Elapsed,
			m.st.Visited, m.st.Evaluated, m.st.Terminal, m.st.CutNodes)
	}
	return mv, v, m.st, ok
}

// root is the maximizing top-level node. It additionally stops
// considering candidates once ctx is done, keeping the best move found
// so far.
func (m *MinimaxAI) root(ctx context.Context) (int64, gomoku.Move, bool) {
	if v, over := m.terminal(m.cfg.Depth); over {
		return v, gomoku.Move{}, false
	}
	cands := m.candidates(gomoku.Self)
	if len(cands) == 0 {
		return m.evaluate(), gomoku.Move{}, false
	}
	m.st.Visited++
	α, β := MinEval-1, MaxEval+1
	best, bestV := cands[0].Move, MinEval-1
	for i, c := range cands {
		if i > 0 && ctx.Err() != nil {
			break
		}
		var v int64
		m.b.Try(c.X, c.Y, gomoku.Self, func() {
			v, _, _ = m.minimax(m.cfg.Depth-1, α, β, false)
		})
		if m.cfg.Debug > 1 {
			log.Printf("[minimax]  root move=%s order=%d val=%d", notation.FormatMove(c.Move), c.Score, v)
		}
		if v > bestV {
			best, bestV = c.Move, v
		}
		if v > α {
			α = v
		}
	}
	return bestV, best, true
}

func (m *MinimaxAI) minimax(depth int, α, β int64, maximizing bool) (int64, gomoku.Move, bool) {
	if depth <= 0 {
		return m.evaluate(), gomoku.Move{}, false
	}
	if v, over := m.terminal(depth); over {
		return v, gomoku.Move{}, false
	}

	mover := gomoku.Self
	if !maximizing {
		mover = gomoku.Opponent
	}
	cands := m.candidates(mover)
	if len(cands) == 0 {
		return m.evaluate(), gomoku.Move{}, false
	}
	m.st.Visited++

	var best gomoku.Move
	bestV := MinEval - 1
	if !maximizing {
		bestV = MaxEval + 1
	}
	for _, c := range cands {
		var v int64
		m.b.Try(c.X, c.Y, mover, func() {
			v, _, _ = m.minimax(depth-1, α, β, !maximizing)
		})
		if maximizing {
			if v > bestV {
				best, bestV = c.Move, v
			}
			if v > α {
				α = v
			}
		} else {
			if v < bestV {
				best, bestV = c.Move, v
			}
			if v < β {
				β = v
			}
		}
		if β <= α {
			m.st.CutNodes++
			break
		}
	}
	return bestV, best, true
}

// terminal scores a board on which either side already has five in a
// row.
func (m *MinimaxAI) terminal(depth int) (int64, bool) {
	if m.b.CheckWin(gomoku.Self) {
		m.st.Terminal++
		return WinScore + int64(depth)*WinDepthBonus, true
	}
	if m.b.CheckWin(gomoku.Opponent) {
		m.st.Terminal++
		return -WinScore - int64(depth)*WinDepthBonus, true
	}
	return 0, false
}

func (m *MinimaxAI) evaluate() int64 {
	m.st.Evaluated++
	return Evaluate(m.cfg.Weights, m.b, gomoku.Self)
}

func (m *MinimaxAI) candidates(c gomoku.Cell) []Candidate {
	cands := m.pd.FindCriticalMoves(c)
	if len(cands) > m.cfg.Width {
		cands = cands[:m.cfg.Width]
	}
	return cands
}
