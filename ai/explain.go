package ai

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/net/context"

	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/notation"
)

// Report is a full analysis of a position for gomoku.Self: what the
// cascade and the search each choose, and the ranked critical cells.
type Report struct {
	Move    gomoku.Move
	Tier    Tier
	Threats Threats
	HasMove bool

	MinimaxMove gomoku.Move
	Value       int64
	Stats       Stats

	Static   int64
	Critical []Candidate

	// Cells completing five now, and cells making an open-ended run
	// of three, for each side.
	WinIn1, LoseIn1 []gomoku.Move
	WinIn2, LoseIn2 []gomoku.Move
}

// Explain analyzes b. b is searched in place and is unchanged on
// return.
func Explain(ctx context.Context, b *gomoku.Board, cfg MinimaxConfig) *Report {
	w := cfg.Weights
	if w == nil {
		w = &DefaultWeights
	}
	r := &Report{
		Static:  Evaluate(w, b, gomoku.Self),
		WinIn1:  b.WinIn1(gomoku.Self),
		LoseIn1: b.LoseIn1(gomoku.Self),
		WinIn2:  b.WinIn2(gomoku.Self),
		LoseIn2: b.LoseIn2(gomoku.Self),
	}
	s := NewStrategy(StrategyConfig{Debug: cfg.Debug, Weights: w})
	r.Move, r.Tier, r.HasMove = s.Choose(b)
	pd := NewPatternDetector(b, w)
	if r.HasMove {
		r.Threats = pd.AnalyzeMove(r.Move.X, r.Move.Y, gomoku.Self)
		r.MinimaxMove, r.Value, r.Stats, _ = NewMinimax(cfg).Analyze(ctx, b)
	}
	r.Critical = pd.FindCriticalMoves(gomoku.Self)
	return r
}

func (r *Report) Write(out io.Writer) {
	if !r.HasMove {
		fmt.Fprintln(out, "no legal move")
		return
	}
	fmt.Fprintf(out, "cascade: %s (%s) threats=%+v\n",
		notation.FormatMove(r.Move), r.Tier, r.Threats)
	fmt.Fprintf(out, "minimax: %s value=%d depth=%d visited=%d evaluated=%d cut=%d time=%s\n",
		notation.FormatMove(r.MinimaxMove), r.Value, r.Stats.Depth,
		r.Stats.Visited, r.Stats.Evaluated, r.Stats.CutNodes, r.Stats.Elapsed)
	fmt.Fprintf(out, "static: %d\n", r.Static)
	for _, l := range []struct {
		name  string
		moves []gomoku.Move
	}{
		{"win in 1", r.WinIn1},
		{"lose in 1", r.LoseIn1},
		{"win in 2", r.WinIn2},
		{"lose in 2", r.LoseIn2},
	} {
		if len(l.moves) > 0 {
			fmt.Fprintf(out, "%s: %s\n", l.name, formatMoves(l.moves))
		}
	}
	if len(r.Critical) == 0 {
		return
	}
	w := tabwriter.NewWriter(out, 4, 8, 2, ' ', 0)
	fmt.Fprintf(w, "move\tscore\n")
	for _, c := range r.Critical {
		fmt.Fprintf(w, "%s\t%d\n", notation.FormatMove(c.Move), c.Score)
	}
	w.Flush()
}

func formatMoves(ms []gomoku.Move) string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = notation.FormatMove(m)
	}
	return strings.Join(out, " ")
}
