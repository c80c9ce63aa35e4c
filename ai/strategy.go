package ai

import (
	"log"

	"golang.org/x/net/context"

	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/notation"
)

// Tier identifies the rule of the strategy cascade that chose a move.
type Tier int

const (
	TierNone Tier = iota
	TierWin
	TierBlockWin
	TierBlockOpenFour
	TierBlockFour
	TierFour
	TierOpenFour
	TierThree
	TierCritical
	TierAny
)

var tierNames = [...]string{
	TierNone:          "none",
	TierWin:           "win",
	TierBlockWin:      "block-win",
	TierBlockOpenFour: "block-open-four",
	TierBlockFour:     "block-four",
	TierFour:          "four",
	TierOpenFour:      "open-four",
	TierThree:         "three",
	TierCritical:      "critical",
	TierAny:           "any",
}

func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return "unknown"
	}
	return tierNames[t]
}

type StrategyConfig struct {
	Debug   int
	Weights *Weights
}

// StrategyAI picks a move with a fixed priority cascade over the
// threats every empty cell would create. It does no lookahead beyond
// the single placement.
type StrategyAI struct {
	cfg StrategyConfig
}

func NewStrategy(cfg StrategyConfig) *StrategyAI {
	if cfg.Weights == nil {
		cfg.Weights = &DefaultWeights
	}
	return &StrategyAI{cfg: cfg}
}

func (s *StrategyAI) GetMove(ctx context.Context, b *gomoku.Board) (gomoku.Move, bool) {
	m, _, ok := s.Choose(b)
	return m, ok
}

type probe struct {
	m         gomoku.Move
	self, opp Threats
}

// Choose returns the move picked for gomoku.Self and the tier that
// picked it. Within a tier the first cell in row-major order wins.
func (s *StrategyAI) Choose(b *gomoku.Board) (gomoku.Move, Tier, bool) {
	m, t, ok := s.choose(b)
	if s.cfg.Debug > 0 {
		if ok {
			log.Printf("[strategy] tier=%s move=%s", t, notation.FormatMove(m))
		} else {
			log.Printf("[strategy] no move: board full")
		}
	}
	return m, t, ok
}

func (s *StrategyAI) choose(b *gomoku.Board) (gomoku.Move, Tier, bool) {
	pd := NewPatternDetector(b, s.cfg.Weights)
	var probes []probe
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			if !b.IsValidMove(x, y) {
				continue
			}
			probes = append(probes, probe{
				m:    gomoku.Move{X: x, Y: y},
				self: pd.AnalyzeMove(x, y, gomoku.Self),
				opp:  pd.AnalyzeMove(x, y, gomoku.Opponent),
			})
		}
	}
	if len(probes) == 0 {
		return gomoku.Move{}, TierNone, false
	}

	cascade := []struct {
		tier Tier
		test func(p *probe) bool
	}{
		{TierWin, func(p *probe) bool { return p.self.Five > 0 }},
		{TierBlockWin, func(p *probe) bool { return p.opp.Five > 0 }},
		{TierBlockOpenFour, func(p *probe) bool { return p.opp.OpenFour > 0 }},
		{TierBlockFour, func(p *probe) bool { return p.opp.Four > 0 }},
		{TierFour, func(p *probe) bool { return p.self.Four > 0 }},
		{TierOpenFour, func(p *probe) bool { return p.self.OpenFour > 0 }},
	}
	for _, rule := range cascade {
		for i := range probes {
			if rule.test(&probes[i]) {
				return probes[i].m, rule.tier, true
			}
		}
	}

	if m, ok := bestThree(probes); ok {
		return m, TierThree, true
	}

	if cands := pd.FindCriticalMoves(gomoku.Self); len(cands) > 0 {
		return cands[0].Move, TierCritical, true
	}
	m, _ := fallbackMove(b)
	return m, TierAny, true
}

// bestThree returns the first cell making two open threes at once,
// or else the first cell with the best positive three/four score.
func bestThree(probes []probe) (gomoku.Move, bool) {
	var best gomoku.Move
	var bestScore int
	for i := range probes {
		p := &probes[i]
		if p.self.OpenThree >= 2 {
			return p.m, true
		}
		if score := p.self.OpenThree*100 + p.self.Four*50; score > bestScore {
			best, bestScore = p.m, score
		}
	}
	return best, bestScore > 0
}
