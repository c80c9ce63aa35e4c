package play

import (
	"bufio"
	"flag"
	"log"
	"os"
	"time"

	"context"

	"github.com/google/subcommands"
	"github.com/nelhage/gomokutician/ai"
	"github.com/nelhage/gomokutician/cli"
	"github.com/nelhage/gomokutician/cmd/internal/opt"
	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/logs"
)

type Command struct {
	first  string
	second string
	size   int
	debug  int
	limit  time.Duration
	db     string

	unicode bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play gomoku from the command line" }
func (*Command) Usage() string {
	return `play

Play gomoku on the command-line, against a human or AI. Players are
"human", "cascade", "minimax[:DEPTH]" or "rand[:SEED]". Moves are
entered as x,y.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.first, "first", "human", "first player (X)")
	flags.StringVar(&c.second, "second", "cascade", "second player (O)")
	flags.IntVar(&c.size, "size", 15, "board size")
	flags.IntVar(&c.debug, "debug", 0, "debug level")
	flags.DurationVar(&c.limit, "limit", time.Minute, "ai time limit")
	flags.StringVar(&c.db, "db", "", "record the game to this sqlite database")

	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := bufio.NewReader(os.Stdin)
	st := &cli.CLI{
		Size:   c.size,
		Out:    os.Stdout,
		First:  c.parsePlayer(in, c.first),
		Second: c.parsePlayer(in, c.second),
		Glyphs: glyphs(c.unicode),
	}
	b, winner := st.Play()
	if b == nil {
		return subcommands.ExitUsageError
	}
	if c.db != "" {
		if err := c.record(b, st.Moves(), winner); err != nil {
			log.Printf("record game: %v", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func (c *Command) record(b *gomoku.Board, moves []gomoku.Move, winner gomoku.Cell) error {
	repo, err := logs.Open(c.db)
	if err != nil {
		return err
	}
	defer repo.Close()
	g := &logs.Game{
		Match:   logs.NewMatch(),
		Size:    c.size,
		Player1: c.first,
		Player2: c.second,
		Result:  "resign",
	}
	switch {
	case winner == gomoku.Empty && b.Full():
		g.Result = "draw"
	case winner == gomoku.Empty:
		g.Result = "unfinished"
	case winner == gomoku.Self:
		g.Winner = logs.WinnerPlayer1
	default:
		g.Winner = logs.WinnerPlayer2
	}
	if winner != gomoku.Empty && b.CheckWin(winner) {
		g.Result = "five"
	}
	for i, m := range moves {
		g.Stones = append(g.Stones, logs.Stone{X: m.X, Y: m.Y, Player: 1 + i%2})
	}
	return repo.InsertGame(g)
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

type aiWrapper struct {
	limit time.Duration
	p     ai.GomokuPlayer
}

func (a *aiWrapper) GetMove(b *gomoku.Board) (gomoku.Move, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), a.limit)
	defer cancel()
	return a.p.GetMove(ctx, b)
}

func (c *Command) parsePlayer(in *bufio.Reader, s string) cli.Player {
	p, err := opt.ParsePlayer(s, c.debug)
	if err != nil {
		log.Fatal(err)
	}
	if p == nil {
		return cli.NewCLIPlayer(os.Stdout, in)
	}
	return &aiWrapper{c.limit, p}
}
