package protocol

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nelhage/gomokutician/ai"
	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/notation"
)

type About struct {
	Name    string
	Version string
	Author  string
	Country string
}

var DefaultAbout = About{
	Name:    "gomokutician",
	Version: "1.0",
	Author:  "Nelson Elhage",
	Country: "USA",
}

func (a About) String() string {
	return fmt.Sprintf("name=%q, version=%q, author=%q, country=%q",
		a.Name, a.Version, a.Author, a.Country)
}

type Stone struct {
	gomoku.Move
	Cell gomoku.Cell
}

// GameRecord describes one game as seen by the engine, from START or
// RESTART, or a BOARD dump that does not continue the current game,
// until the board is discarded.
type GameRecord struct {
	Size   int
	Stones []Stone
	// Winner is gomoku.Empty if nobody had five in a row when the
	// game was discarded.
	Winner gomoku.Cell
	Info   map[string]string
}

type Engine struct {
	// PlayerFactory builds the move chooser for a new board. If nil,
	// the strategy cascade is used.
	PlayerFactory func(size int) ai.GomokuPlayer
	// OnGameEnd, if set, receives every game that had at least one
	// stone when it was discarded.
	OnGameEnd func(g *GameRecord)
	About     About
	Debug     int

	in  *bufio.Reader
	out io.Writer

	upper cases.Caser

	board   *gomoku.Board
	player  ai.GomokuPlayer
	history []Stone
	info    map[string]string
	done    bool
}

func NewEngine(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		About: DefaultAbout,
		in:    bufio.NewReader(in),
		out:   out,
		upper: cases.Upper(language.Und),
		info:  make(map[string]string),
	}
}

// Run processes commands until END or end of input. Command errors are
// reported to the peer and do not stop the loop; only a failure to
// read input does.
func (e *Engine) Run(ctx context.Context) error {
	for !e.done {
		line, err := e.readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		resp, err := e.Handle(ctx, line)
		if err == errUnexpectedEOF {
			return err
		}
		if err != nil {
			if e.Debug > 0 {
				log.Printf("[protocol] %q: %v", line, err)
			}
			resp = Response(err)
		}
		if resp != "" {
			if _, err := fmt.Fprintln(e.out, resp); err != nil {
				return err
			}
		}
	}
	e.finishGame()
	return nil
}

func (e *Engine) readLine() (string, error) {
	line, err := e.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Handle executes a single command line and returns the response line,
// which is empty for commands that produce no output.
func (e *Engine) Handle(ctx context.Context, line string) (string, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return "", nil
	}
	switch e.upper.String(words[0]) {
	case "START":
		return e.start(words)
	case "RESTART":
		return e.restart(words)
	case "BEGIN":
		return e.begin(ctx, words)
	case "TURN":
		return e.turn(ctx, words)
	case "BOARD":
		return e.readBoard(ctx, words)
	case "TAKEBACK":
		return e.takeback(words)
	case "INFO":
		return "", e.storeInfo(words)
	case "ABOUT":
		return e.About.String(), nil
	case "END":
		e.done = true
		return "", nil
	default:
		return "", &UnknownCommandError{Line: line}
	}
}

func (e *Engine) Board() *gomoku.Board {
	return e.board
}

func (e *Engine) Info(key string) (string, bool) {
	v, ok := e.info[key]
	return v, ok
}

func (e *Engine) Done() bool {
	return e.done
}

func (e *Engine) start(words []string) (string, error) {
	if len(words) != 2 {
		return "", errWrongArity
	}
	for _, r := range words[1] {
		if r < '0' || r > '9' {
			return "", &ParameterError{Reason: fmt.Sprintf("invalid parameter %q", words[1])}
		}
	}
	size, err := strconv.Atoi(words[1])
	if err != nil {
		return "", &ParameterError{Reason: fmt.Sprintf("invalid parameter %q", words[1])}
	}
	b, err := gomoku.New(size)
	if err != nil {
		return "", err
	}
	e.finishGame()
	e.board = b
	if e.PlayerFactory != nil {
		e.player = e.PlayerFactory(size)
	} else {
		e.player = ai.NewStrategy(ai.StrategyConfig{Debug: e.Debug})
	}
	return "OK", nil
}

func (e *Engine) restart(words []string) (string, error) {
	if len(words) != 1 {
		return "", errWrongArity
	}
	if e.board == nil {
		return "", errNotStarted
	}
	e.finishGame()
	e.board.Clear()
	return "OK", nil
}

func (e *Engine) begin(ctx context.Context, words []string) (string, error) {
	if len(words) != 1 {
		return "", errWrongArity
	}
	if e.board == nil {
		return "", errNotStarted
	}
	c := e.board.Center()
	if e.board.IsValidMove(c.X, c.Y) {
		e.place(c, gomoku.Self)
		return notation.FormatMove(c), nil
	}
	return e.reply(ctx)
}

func (e *Engine) turn(ctx context.Context, words []string) (string, error) {
	if len(words) != 2 {
		return "", errWrongArity
	}
	if e.board == nil {
		return "", errNotStarted
	}
	m, err := e.parseTarget(words[1])
	if err != nil {
		return "", err
	}
	if !e.board.IsValidMove(m.X, m.Y) {
		return "", &OccupancyError{Move: m}
	}
	e.place(m, gomoku.Opponent)
	return e.reply(ctx)
}

func (e *Engine) takeback(words []string) (string, error) {
	if len(words) != 2 {
		return "", errWrongArity
	}
	if e.board == nil {
		return "", errNotStarted
	}
	m, err := e.parseTarget(words[1])
	if err != nil {
		return "", err
	}
	if e.board.At(m.X, m.Y) == gomoku.Empty {
		return "", &ParameterError{Reason: fmt.Sprintf("no stone at %d,%d", m.X, m.Y)}
	}
	e.board.PlaceStone(m.X, m.Y, gomoku.Empty, true)
	for i := len(e.history) - 1; i >= 0; i-- {
		if e.history[i].Move == m {
			e.history = append(e.history[:i], e.history[i+1:]...)
			break
		}
	}
	return "OK", nil
}

// parseTarget parses an "x,y" argument naming a cell on the board.
func (e *Engine) parseTarget(arg string) (gomoku.Move, error) {
	m, err := notation.ParseMove(arg)
	if err != nil {
		return gomoku.Move{}, &ParameterError{Reason: "malformed coordinate", Err: err}
	}
	if !e.board.InBounds(m.X, m.Y) {
		v := m.X
		if v >= 0 && v < e.board.Size() {
			v = m.Y
		}
		return gomoku.Move{}, &gomoku.RangeError{What: "coordinate", Value: v, Min: 0, Max: e.board.Size() - 1}
	}
	return m, nil
}

// readBoard consumes the lines of a BOARD dump through DONE, even when
// there is no board to apply them to, so the stream stays in step. A
// dump that keeps every stone already on the board continues the
// current game; any other dump ends it and starts a new one.
func (e *Engine) readBoard(ctx context.Context, words []string) (string, error) {
	var dump []Stone
	for {
		line, err := e.readLine()
		if err == io.EOF {
			return "", errUnexpectedEOF
		}
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if e.upper.String(line) == "DONE" {
			break
		}
		if e.board == nil || line == "" {
			continue
		}
		m, c, err := notation.ParseStone(line)
		if err == nil && !e.board.InBounds(m.X, m.Y) {
			err = fmt.Errorf("%q: off the board", line)
		}
		if err != nil {
			log.Printf("[protocol] skipping board line: %v", err)
			continue
		}
		dump = append(dump, Stone{Move: m, Cell: c})
	}
	if len(words) != 1 {
		return "", errWrongArity
	}
	if e.board == nil {
		return "", errNotStarted
	}

	prev := e.board.Clone()
	e.board.Clear()
	for _, s := range dump {
		e.board.PlaceStone(s.X, s.Y, s.Cell, true)
	}
	cont := extends(e.board, prev)
	if !cont {
		cur := e.board
		e.board = prev
		e.finishGame()
		e.board = cur
	}
	for _, s := range dump {
		if !cont || prev.At(s.X, s.Y) != s.Cell {
			e.history = append(e.history, s)
		}
	}
	return e.reply(ctx)
}

// extends reports whether every stone on prev is also on b.
func extends(b, prev *gomoku.Board) bool {
	for y := 0; y < prev.Size(); y++ {
		for x := 0; x < prev.Size(); x++ {
			if c := prev.At(x, y); c != gomoku.Empty && b.At(x, y) != c {
				return false
			}
		}
	}
	return true
}

func (e *Engine) storeInfo(words []string) error {
	if len(words) < 2 {
		return errWrongArity
	}
	e.info[words[1]] = strings.Join(words[2:], " ")
	return nil
}

func (e *Engine) reply(ctx context.Context) (string, error) {
	if e.Debug > 1 {
		log.Printf("[protocol] thinking on\n%s", notation.FormatBoard(e.board))
	}
	m, ok := e.player.GetMove(ctx, e.board)
	if !ok {
		return "", errNoLegalMove
	}
	e.place(m, gomoku.Self)
	return notation.FormatMove(m), nil
}

func (e *Engine) place(m gomoku.Move, c gomoku.Cell) {
	e.board.PlaceStone(m.X, m.Y, c, true)
	e.history = append(e.history, Stone{Move: m, Cell: c})
}

func (e *Engine) finishGame() {
	if e.board == nil || len(e.history) == 0 {
		e.history = nil
		return
	}
	if e.OnGameEnd != nil {
		g := &GameRecord{
			Size:   e.board.Size(),
			Stones: e.history,
			Info:   make(map[string]string, len(e.info)),
		}
		for _, c := range []gomoku.Cell{gomoku.Self, gomoku.Opponent} {
			if e.board.CheckWin(c) {
				g.Winner = c
			}
		}
		for k, v := range e.info {
			g.Info[k] = v
		}
		e.OnGameEnd(g)
	}
	e.history = nil
}
