// Package cli plays games of gomoku on a terminal.
package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/notation"
)

// Player chooses moves for one side. The board it is given always
// shows its own stones as gomoku.Self.
type Player interface {
	GetMove(b *gomoku.Board) (gomoku.Move, bool)
}

type Glyphs struct {
	Empty         string
	First, Second string
}

type CLI struct {
	moves []gomoku.Move
	b     *gomoku.Board

	Size   int
	Glyphs *Glyphs
	Out    io.Writer
	First  Player
	Second Player
}

var DefaultGlyphs = Glyphs{
	Empty:  ".",
	First:  "X",
	Second: "O",
}

var UnicodeGlyphs = Glyphs{
	Empty:  "·",
	First:  "●",
	Second: "○",
}

// Play runs a game to completion. The returned board holds the first
// player's stones as gomoku.Self; the winner is gomoku.Self,
// gomoku.Opponent, or gomoku.Empty for a draw or an abandoned game.
func (c *CLI) Play() (*gomoku.Board, gomoku.Cell) {
	c.moves = nil
	b, err := gomoku.New(c.Size)
	if err != nil {
		fmt.Fprintln(c.Out, err)
		return nil, gomoku.Empty
	}
	c.b = b
	for {
		c.render()
		for _, w := range []gomoku.Cell{gomoku.Self, gomoku.Opponent} {
			if c.b.CheckWin(w) {
				fmt.Fprintf(c.Out, "Game Over! %s wins.\n", c.glyph(w))
				return c.b, w
			}
		}
		if c.b.Full() {
			fmt.Fprintln(c.Out, "Game Over! Draw.")
			return c.b, gomoku.Empty
		}
		toMove := c.ToMove()
		var m gomoku.Move
		var ok bool
		if toMove == gomoku.Self {
			m, ok = c.First.GetMove(c.b.Clone())
		} else {
			m, ok = c.Second.GetMove(c.b.Flipped())
		}
		if !ok {
			fmt.Fprintf(c.Out, "%s resigns.\n", c.glyph(toMove))
			return c.b, toMove.Opponent()
		}
		if !c.b.PlaceStone(m.X, m.Y, toMove, false) {
			fmt.Fprintln(c.Out, "illegal move:", notation.FormatMove(m))
			continue
		}
		fmt.Fprintf(c.Out, "%d. %s %s\n", len(c.moves)+1, c.glyph(toMove), notation.FormatMove(m))
		c.moves = append(c.moves, m)
	}
}

func (c *CLI) Moves() []gomoku.Move {
	return c.moves
}

// ToMove reports whose turn it is, gomoku.Self for the first player.
func (c *CLI) ToMove() gomoku.Cell {
	if len(c.moves)%2 == 0 {
		return gomoku.Self
	}
	return gomoku.Opponent
}

func (c *CLI) glyph(w gomoku.Cell) string {
	g := c.Glyphs
	if g == nil {
		g = &DefaultGlyphs
	}
	if w == gomoku.Self {
		return g.First
	}
	return g.Second
}

func (c *CLI) render() {
	RenderBoard(c.Glyphs, c.Out, c.b)
}

// RenderBoard draws b with column numbers across the top and row
// numbers down the side.
func RenderBoard(g *Glyphs, out io.Writer, b *gomoku.Board) {
	if g == nil {
		g = &DefaultGlyphs
	}
	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "\t")
	for x := 0; x < b.Size(); x++ {
		fmt.Fprintf(w, "%d\t", x)
	}
	fmt.Fprintf(w, "\n")
	for y := 0; y < b.Size(); y++ {
		fmt.Fprintf(w, "%d\t", y)
		for x := 0; x < b.Size(); x++ {
			switch b.At(x, y) {
			case gomoku.Self:
				fmt.Fprintf(w, "%s\t", g.First)
			case gomoku.Opponent:
				fmt.Fprintf(w, "%s\t", g.Second)
			default:
				fmt.Fprintf(w, "%s\t", g.Empty)
			}
		}
		fmt.Fprintf(w, "\n")
	}
	w.Flush()
	fmt.Fprintf(out, "stones: %d/%d\n", b.Stones(), b.Size()*b.Size())
}
