package notation

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/nelhage/gomokutician/gomoku"
)

var glyphs = map[gomoku.Cell]byte{
	gomoku.Empty:    '.',
	gomoku.Self:     'X',
	gomoku.Opponent: 'O',
}

// FormatBoard renders b one row per line, y increasing downwards, with
// '.' for empty cells, 'X' for Self and 'O' for Opponent.
func FormatBoard(b *gomoku.Board) string {
	var out bytes.Buffer
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			if x != 0 {
				out.WriteByte(' ')
			}
			out.WriteByte(glyphs[b.At(x, y)])
		}
		out.WriteByte('\n')
	}
	return out.String()
}

// ParseBoard is the inverse of FormatBoard. Whitespace within a row is
// ignored.
func ParseBoard(s string) (*gomoku.Board, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, errors.New("empty diagram")
	}
	b, err := gomoku.New(len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", y, len(rows), len(row))
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '.':
			case 'X', 'x':
				b.PlaceStone(x, y, gomoku.Self, true)
			case 'O', 'o':
				b.PlaceStone(x, y, gomoku.Opponent, true)
			default:
				return nil, fmt.Errorf("row %d: bad cell %q", y, row[x])
			}
		}
	}
	return b, nil
}
