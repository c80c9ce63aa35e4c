package selfplay

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/nelhage/gomokutician/logs"
)

type Command struct {
	size int
	p1   string
	p2   string
	seed int64

	games   int
	cutoff  int
	swap    bool
	epsilon float64

	debug int
	limit time.Duration

	threads int

	db      string
	report  bool
	summary string
	verbose bool
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]

Players are built-in names ("cascade", "minimax:DEPTH", "rand:SEED") or
"exec:COMMAND ARGS..." to drive an external engine over the protocol.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.size, "size", 15, "board size")
	flags.StringVar(&c.p1, "p1", "cascade", "player 1")
	flags.StringVar(&c.p2, "p2", "minimax:2", "player 2")

	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 10, "number of games to play per color")
	flags.IntVar(&c.cutoff, "cutoff", 0, "cut games off after how many plies (0: never)")
	flags.BoolVar(&c.swap, "swap", true, "swap colors each game")
	flags.Float64Var(&c.epsilon, "epsilon", 0.05, "probability of a random move")
	flags.IntVar(&c.debug, "debug", 0, "debug level")
	flags.DurationVar(&c.limit, "limit", 0, "amount of time to search each move")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel threads")
	flags.StringVar(&c.db, "db", "", "record games to this sqlite database")
	flags.BoolVar(&c.report, "report", false, "print per-player standings from -db")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}
	if c.threads < 1 {
		c.threads = 1
	}

	cfg := &Config{
		Size:    c.size,
		Debug:   c.debug,
		Swap:    c.swap,
		Games:   c.games,
		Threads: c.threads,
		Seed:    c.seed,
		Cutoff:  c.cutoff,
		Limit:   c.limit,
		Epsilon: c.epsilon,
		Verbose: c.verbose,
		P1:      c.p1,
		P2:      c.p2,
	}

	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Printf("selfplay: %v", err)
		return subcommands.ExitFailure
	}

	if c.db != "" {
		if err := c.record(&st); err != nil {
			log.Printf("record games: %v", err)
			return subcommands.ExitFailure
		}
	}
	if c.summary != "" {
		if err := c.writeSummary(c.summary, &st); err != nil {
			log.Println("writing summary: ", err.Error())
		}
	}

	log.Printf("done games=%d seed=%d draws=%d cutoff=%d first=%d second=%d",
		st.Count(), c.seed, st.Draws, st.Cutoff, st.First, st.Second)
	printTable(os.Stderr, &st)

	a, b := int64(st.Players[0].Wins), int64(st.Players[1].Wins)
	if a < b {
		a, b = b, a
	}
	log.Printf("p[one-sided]=%f", binomTest(a, b, 0.5))
	return subcommands.ExitSuccess
}

func printTable(out io.Writer, st *Stats) {
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tfirst\tsecond\tsum\tforfeits\n")
	for i, p := range st.Players {
		fmt.Fprintf(tw, "p%d\t%d\t%d\t%d\t%d\n", i+1, p.FirstWins, p.SecondWins, p.Wins, p.Forfeits)
	}
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\t\n",
		st.Players[0].FirstWins+st.Players[1].FirstWins,
		st.Players[0].SecondWins+st.Players[1].SecondWins,
		st.Players[0].Wins+st.Players[1].Wins,
	)
	tw.Flush()
}

func (c *Command) record(st *Stats) error {
	repo, err := logs.Open(c.db)
	if err != nil {
		return err
	}
	defer repo.Close()
	match := logs.NewMatch()
	games := make([]*logs.Game, 0, len(st.Games))
	for i := range st.Games {
		g := toLog(&st.Games[i], c.size, c.p1, c.p2)
		g.Match = match
		games = append(games, g)
	}
	if err := repo.InsertGames(games); err != nil {
		return err
	}
	log.Printf("recorded %d games match=%s", len(games), match)
	if !c.report {
		return nil
	}
	standings, err := repo.Standings()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "player\tgames\twins\tlosses\tties\tavg moves\n")
	for _, s := range standings {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.1f\n", s.Player, s.Games, s.Wins, s.Losses, s.Ties, s.AvgMoves)
	}
	return tw.Flush()
}

// toLog records a game with the first mover as Player1.
func toLog(r *Result, size int, p1, p2 string) *logs.Game {
	g := &logs.Game{
		Size:    size,
		Player1: p1,
		Player2: p2,
		Result:  r.Reason,
	}
	winner := r.Winner
	if !r.P1First {
		g.Player1, g.Player2 = p2, p1
		winner = [...]int{0, 2, 1}[winner]
	}
	switch winner {
	case 1:
		g.Winner = logs.WinnerPlayer1
	case 2:
		g.Winner = logs.WinnerPlayer2
	}
	for i, m := range r.Moves {
		g.Stones = append(g.Stones, logs.Stone{X: m.X, Y: m.Y, Player: 1 + i%2})
	}
	return g
}

type Summary struct {
	Cmdline []string
	Player1 string
	Player2 string
	Limit   time.Duration
	Stats   *Stats
}

func (c *Command) writeSummary(path string, stats *Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	summary := Summary{
		Cmdline: os.Args,
		Player1: c.p1,
		Player2: c.p2,
		Limit:   c.limit,
		Stats:   stats,
	}

	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	_, err = f.Write(bs)
	return err
}
