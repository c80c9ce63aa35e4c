// Package notation reads and writes the textual forms used on the
// wire and in diagnostics: "x,y" moves, "x,y,v" board dump lines, and
// a plain-text board diagram.
package notation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nelhage/gomokutician/gomoku"
)

var ErrSyntax = errors.New("malformed coordinate")

func ParseMove(s string) (gomoku.Move, error) {
	bits := strings.Split(strings.TrimSpace(s), ",")
	if len(bits) != 2 {
		return gomoku.Move{}, fmt.Errorf("%q: %w", s, ErrSyntax)
	}
	x, err := parseCoord(bits[0])
	if err != nil {
		return gomoku.Move{}, fmt.Errorf("%q: %w", s, err)
	}
	y, err := parseCoord(bits[1])
	if err != nil {
		return gomoku.Move{}, fmt.Errorf("%q: %w", s, err)
	}
	return gomoku.Move{X: x, Y: y}, nil
}

func parseCoord(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrSyntax
	}
	return v, nil
}

func FormatMove(m gomoku.Move) string {
	return strconv.Itoa(m.X) + "," + strconv.Itoa(m.Y)
}

// ParseStone parses one "x,y,v" line of a board dump. v is 1 for the
// engine's own stones and 2 for the opponent's.
func ParseStone(s string) (gomoku.Move, gomoku.Cell, error) {
	bits := strings.Split(strings.TrimSpace(s), ",")
	if len(bits) != 3 {
		return gomoku.Move{}, gomoku.Empty, fmt.Errorf("%q: %w", s, ErrSyntax)
	}
	m, err := ParseMove(bits[0] + "," + bits[1])
	if err != nil {
		return gomoku.Move{}, gomoku.Empty, err
	}
	v, err := parseCoord(bits[2])
	if err != nil {
		return gomoku.Move{}, gomoku.Empty, fmt.Errorf("%q: bad value", s)
	}
	switch gomoku.Cell(v) {
	case gomoku.Self, gomoku.Opponent:
		return m, gomoku.Cell(v), nil
	default:
		return gomoku.Move{}, gomoku.Empty, fmt.Errorf("%q: bad value %d", s, v)
	}
}

func FormatStone(m gomoku.Move, c gomoku.Cell) string {
	return fmt.Sprintf("%d,%d,%d", m.X, m.Y, byte(c))
}

// ReadDump fills b from "x,y,v" lines until EOF or a line reading
// DONE. Lines that do not parse, or name a cell off the board, are
// reported in skipped and otherwise ignored.
func ReadDump(b *gomoku.Board, r io.Reader) (skipped []error, err error) {
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "DONE") {
			break
		}
		if e := AddStone(b, line); e != nil {
			skipped = append(skipped, e)
		}
	}
	return skipped, s.Err()
}

// AddStone applies a single dump line to b, overwriting whatever was
// there.
func AddStone(b *gomoku.Board, line string) error {
	m, c, err := ParseStone(line)
	if err != nil {
		return err
	}
	if !b.PlaceStone(m.X, m.Y, c, true) {
		return &gomoku.RangeError{What: "coordinate", Value: outOfRange(b, m), Min: 0, Max: b.Size() - 1}
	}
	return nil
}

func outOfRange(b *gomoku.Board, m gomoku.Move) int {
	if m.X < 0 || m.X >= b.Size() {
		return m.X
	}
	return m.Y
}

// WriteDump writes every stone on b as an "x,y,v" line, in row-major
// order, without the trailing DONE.
func WriteDump(w io.Writer, b *gomoku.Board) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			if c := b.At(x, y); c != gomoku.Empty {
				fmt.Fprintln(bw, FormatStone(gomoku.Move{X: x, Y: y}, c))
			}
		}
	}
	return bw.Flush()
}
