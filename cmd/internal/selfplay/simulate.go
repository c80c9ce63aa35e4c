package selfplay

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nelhage/gomokutician/ai"
	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/notation"
)

type Config struct {
	Games int

	Verbose bool

	P1, P2 string

	Size  int
	Debug int

	Swap    bool
	Threads int
	Seed    int64
	Cutoff  int
	Limit   time.Duration

	// Epsilon is the chance that any single move is replaced by a
	// random one, to diversify otherwise deterministic games.
	Epsilon float64
}

const (
	ReasonFive    = "five"
	ReasonDraw    = "draw"
	ReasonCutoff  = "cutoff"
	ReasonForfeit = "forfeit"
)

type Stats struct {
	Players [2]struct {
		Wins       int
		FirstWins  int
		SecondWins int
		Forfeits   int
	}
	First, Second int
	Draws         int
	Cutoff        int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.First + s.Second + s.Draws + s.Cutoff
}

type gameSpec struct {
	id int
	// p1First is true when P1 places the first stone.
	p1First bool
	r       *rand.Rand
}

type Result struct {
	ID      int
	P1First bool
	Moves   []gomoku.Move
	// Winner is 1 or 2 for P1 or P2, 0 if nobody won.
	Winner int
	Reason string
}

// Simulate plays c.Games games (twice that with c.Swap) on c.Threads
// workers and tallies the results.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	specs := make(chan gameSpec)
	results := make(chan Result)
	grp, ctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		defer close(specs)
		r := rand.New(rand.NewSource(c.Seed))
		n := c.Games
		if c.Swap {
			n *= 2
		}
		for g := 0; g < n; g++ {
			spec := gameSpec{
				id:      g,
				p1First: g%2 == 0 || !c.Swap,
				r:       rand.New(rand.NewSource(r.Int63())),
			}
			select {
			case specs <- spec:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var workers sync.WaitGroup
	for i := 0; i < c.Threads; i++ {
		workers.Add(1)
		grp.Go(func() error {
			defer workers.Done()
			return worker(ctx, c, specs, results)
		})
	}
	go func() {
		workers.Wait()
		close(results)
	}()

	var st Stats
	for r := range results {
		if c.Verbose {
			log.Printf("game n=%d plies=%d p1first=%v winner=%d reason=%s",
				r.ID, len(r.Moves), r.P1First, r.Winner, r.Reason)
		}
		st.add(r)
	}
	err := grp.Wait()
	sort.Slice(st.Games, func(i, j int) bool { return st.Games[i].ID < st.Games[j].ID })
	return st, err
}

func (st *Stats) add(r Result) {
	st.Games = append(st.Games, r)
	switch r.Reason {
	case ReasonDraw:
		st.Draws++
		return
	case ReasonCutoff:
		st.Cutoff++
		return
	}
	pst := &st.Players[r.Winner-1]
	pst.Wins++
	if r.Reason == ReasonForfeit {
		st.Players[2-r.Winner].Forfeits++
	}
	if (r.Winner == 1) == r.P1First {
		st.First++
		pst.FirstWins++
	} else {
		st.Second++
		pst.SecondWins++
	}
}

func worker(ctx context.Context, c *Config, specs <-chan gameSpec, out chan<- Result) error {
	s1, err := openSeat(c.P1, c.Debug)
	if err != nil {
		return fmt.Errorf("starting player[%s]: %w", c.P1, err)
	}
	defer s1.Close()
	s2, err := openSeat(c.P2, c.Debug)
	if err != nil {
		return fmt.Errorf("starting player[%s]: %w", c.P2, err)
	}
	defer s2.Close()

	for g := range specs {
		p1, err := s1.NewGame(c.Size)
		if err != nil {
			return fmt.Errorf("starting game[%s]: %w", c.P1, err)
		}
		p2, err := s2.NewGame(c.Size)
		if err != nil {
			return fmt.Errorf("starting game[%s]: %w", c.P2, err)
		}
		r, err := playGame(ctx, c, g, p1, p2)
		if err != nil {
			return err
		}
		select {
		case out <- r:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// playGame plays one game. The board is kept from the point of view of
// whoever moves first; each player is shown its own stones as
// gomoku.Self.
func playGame(ctx context.Context, c *Config, g gameSpec, p1, p2 ai.GomokuPlayer) (Result, error) {
	res := Result{ID: g.id, P1First: g.p1First}
	b, err := gomoku.New(c.Size)
	if err != nil {
		return res, err
	}
	first, second := p1, p2
	firstID, secondID := 1, 2
	if !g.p1First {
		first, second = p2, p1
		firstID, secondID = 2, 1
	}
	rnd := ai.NewRandom(g.r.Int63())

	cutoff := c.Cutoff
	if cutoff <= 0 {
		cutoff = c.Size * c.Size
	}
	for ply := 0; ; ply++ {
		if b.Full() {
			res.Reason = ReasonDraw
			return res, nil
		}
		if ply >= cutoff {
			res.Reason = ReasonCutoff
			return res, nil
		}
		color, player, id, other := gomoku.Self, first, firstID, secondID
		view := b.Clone()
		if ply%2 == 1 {
			color, player, id, other = gomoku.Opponent, second, secondID, firstID
			view = b.Flipped()
		}
		if c.Epsilon > 0 && g.r.Float64() < c.Epsilon {
			player = rnd
		}

		mctx, cancel := ctx, context.CancelFunc(func() {})
		if c.Limit != 0 {
			mctx, cancel = context.WithTimeout(ctx, c.Limit)
		}
		m, ok := player.GetMove(mctx, view)
		cancel()
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if !ok || !b.PlaceStone(m.X, m.Y, color, false) {
			log.Printf("game %d: player %d made illegal move %s", g.id, id, notation.FormatMove(m))
			res.Winner, res.Reason = other, ReasonForfeit
			return res, nil
		}
		res.Moves = append(res.Moves, m)
		if b.CheckWin(color) {
			res.Winner, res.Reason = id, ReasonFive
			return res, nil
		}
	}
}
