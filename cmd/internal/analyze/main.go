package analyze

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"context"

	"github.com/google/subcommands"
	"github.com/nelhage/gomokutician/ai"
	"github.com/nelhage/gomokutician/cli"
	"github.com/nelhage/gomokutician/cmd/internal/opt"
	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/notation"
)

type Command struct {
	size       int
	quiet      bool
	flip       bool
	diagram    bool
	cpuProfile string
	timeLimit  time.Duration

	opt opt.Engine
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Evaluate a position from a board dump" }
func (*Command) Usage() string {
	return `analyze [options] FILE

Evaluate a position read from FILE (or stdin, given "-") as a series
of x,y,v lines in the format of the BOARD command, where v is 1 for the
side to move and 2 for its opponent.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.size, "size", 15, "board size")
	flags.BoolVar(&c.quiet, "quiet", false, "don't print the board diagram")
	flags.BoolVar(&c.flip, "flip", false, "analyze for the player with value 2")
	flags.BoolVar(&c.diagram, "diagram", false, "read a board diagram of '.', 'X' and 'O' rows instead of x,y,v lines")
	flags.StringVar(&c.cpuProfile, "cpuprofile", "", "write CPU profile")
	flags.DurationVar(&c.timeLimit, "limit", time.Minute, "limit of how much time to use")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flag.Args()) != 1 {
		flag.Usage()
		return subcommands.ExitUsageError
	}
	if err := c.opt.Validate(); err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	b, err := c.readBoard(flag.Arg(0))
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	if c.cpuProfile != "" {
		f, err := os.OpenFile(c.cpuProfile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			log.Fatalf("open cpu-profile: %s: %v", c.cpuProfile, err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeLimit)
	defer cancel()
	c.analyze(ctx, os.Stdout, b)
	return subcommands.ExitSuccess
}

func (c *Command) readBoard(path string) (*gomoku.Board, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var b *gomoku.Board
	if c.diagram {
		bs, err := ioutil.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if b, err = notation.ParseBoard(string(bs)); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	} else {
		var err error
		if b, err = gomoku.New(c.size); err != nil {
			return nil, err
		}
		skipped, err := notation.ReadDump(b, r)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		for _, e := range skipped {
			log.Printf("skipping line: %v", e)
		}
	}
	if c.flip {
		b = b.Flipped()
	}
	return b, nil
}

func (c *Command) analyze(ctx context.Context, out io.Writer, b *gomoku.Board) {
	if !c.quiet {
		cli.RenderBoard(nil, out, b)
	}
	for _, w := range []gomoku.Cell{gomoku.Self, gomoku.Opponent} {
		if b.CheckWin(w) {
			fmt.Fprintf(out, "game over: %s has five\n", w)
		}
	}
	ai.Explain(ctx, b, c.opt.BuildConfig()).Write(out)
}
