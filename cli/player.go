package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/notation"
)

// NewCLIPlayer reads moves as "x,y" lines from in. It gives up at end
// of input.
func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) GetMove(b *gomoku.Board) (gomoku.Move, bool) {
	for {
		fmt.Fprintf(c.out, "%d> ", b.Stones()+1)
		line, err := c.in.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			return gomoku.Move{}, false
		}
		m, err := notation.ParseMove(line)
		if err != nil {
			fmt.Fprintln(c.out, "parse error: ", err)
			continue
		}
		if !b.IsValidMove(m.X, m.Y) {
			fmt.Fprintln(c.out, "illegal move: ", notation.FormatMove(m))
			continue
		}
		return m, true
	}
}
