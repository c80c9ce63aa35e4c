package pbrain

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/nelhage/gomokutician/cmd/internal/opt"
	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/logs"
	"github.com/nelhage/gomokutician/protocol"
)

type Command struct {
	opt opt.Engine
	db  string
}

func (*Command) Name() string     { return "pbrain" }
func (*Command) Synopsis() string { return "Run the engine on stdin/stdout" }
func (*Command) Usage() string {
	return `pbrain [flags]

Speak the START/TURN/BOARD line protocol on stdin and stdout, suitable
for being driven by a tournament manager or GUI.

`
}

func (c *Command) SetFlags(fs *flag.FlagSet) {
	c.opt.AddFlags(fs)
	fs.StringVar(&c.db, "db", "", "record finished games to this sqlite database")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.opt.Validate(); err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	engine := protocol.NewEngine(os.Stdin, os.Stdout)
	engine.PlayerFactory = c.opt.Player
	engine.Debug = c.opt.Debug

	if c.db != "" {
		repo, err := logs.Open(c.db)
		if err != nil {
			log.Printf("open %s: %v", c.db, err)
			return subcommands.ExitFailure
		}
		defer repo.Close()
		match := logs.NewMatch()
		engine.OnGameEnd = func(g *protocol.GameRecord) {
			lg := Record(g, engine.About.Name+"/"+c.opt.Strategy)
			lg.Match = match
			if err := repo.InsertGame(lg); err != nil {
				log.Printf("record game: %v", err)
			}
		}
	}

	if err := engine.Run(ctx); err != nil {
		log.Println("pbrain: ", err.Error())
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Record converts a session's game into a log entry with the engine
// as player 1.
func Record(g *protocol.GameRecord, name string) *logs.Game {
	out := &logs.Game{
		Size:    g.Size,
		Player1: name,
		Player2: "opponent",
		Result:  "unfinished",
	}
	if o := g.Info["opponent"]; o != "" {
		out.Player2 = o
	}
	switch g.Winner {
	case gomoku.Self:
		out.Winner, out.Result = logs.WinnerPlayer1, "five"
	case gomoku.Opponent:
		out.Winner, out.Result = logs.WinnerPlayer2, "five"
	}
	for _, s := range g.Stones {
		p := 1
		if s.Cell == gomoku.Opponent {
			p = 2
		}
		out.Stones = append(out.Stones, logs.Stone{X: s.X, Y: s.Y, Player: p})
	}
	return out
}
