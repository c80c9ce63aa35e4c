package protocol

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/gomokutician/ai"
	"github.com/nelhage/gomokutician/gomoku"
)

func run(t *testing.T, input string) []string {
	t.Helper()
	var out bytes.Buffer
	e := NewEngine(strings.NewReader(input), &out)
	require.NoError(t, e.Run(context.Background()))
	s := strings.TrimRight(out.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestStart(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"START 20", "OK"},
		{"start 5", "OK"},
		{"START 100", "OK"},
		{"START", "ERROR wrong parameter count"},
		{"START 20 20", "ERROR wrong parameter count"},
		{"START abc", `ERROR invalid parameter "abc"`},
		{"START -5", `ERROR invalid parameter "-5"`},
		{"START 4", "ERROR board size 4 out of range [5,100]"},
		{"START 101", "ERROR board size 101 out of range [5,100]"},
	}
	for _, tc := range cases {
		assert.Equal(t, []string{tc.want}, run(t, tc.in+"\n"), tc.in)
	}
}

func TestBegin(t *testing.T) {
	assert.Equal(t, []string{"OK", "10,10"}, run(t, "START 20\nBEGIN\n"))
	assert.Equal(t, []string{"OK", "7,7"}, run(t, "START 15\nBEGIN\n"))
	assert.Equal(t, []string{"ERROR board not initialized"}, run(t, "BEGIN\n"))
}

func TestTurn(t *testing.T) {
	out := run(t, "START 20\nTURN 10,10\n")
	require.Len(t, out, 2)
	assert.Equal(t, "OK", out[0])
	assert.Regexp(t, `^\d+,\d+$`, out[1])
	assert.NotEqual(t, "10,10", out[1])

	cases := []struct {
		in   string
		want string
	}{
		{"TURN 10,10", "ERROR board not initialized"},
		{"START 20\nTURN", "ERROR wrong parameter count"},
		{"START 20\nTURN 1 2", "ERROR wrong parameter count"},
		{"START 20\nTURN 1;2", `ERROR malformed coordinate: "1;2": malformed coordinate`},
		{"START 20\nTURN a,2", `ERROR malformed coordinate: "a,2": malformed coordinate`},
		{"START 20\nTURN 20,3", "ERROR coordinate 20 out of range [0,19]"},
		{"START 20\nTURN 3,-1", "ERROR coordinate -1 out of range [0,19]"},
		{"START 20\nBEGIN\nTURN 10,10", "ERROR cell 10,10 is occupied"},
	}
	for _, tc := range cases {
		out := run(t, tc.in+"\n")
		require.NotEmpty(t, out, tc.in)
		assert.Equal(t, tc.want, out[len(out)-1], tc.in)
	}
}

func TestTurnBlocks(t *testing.T) {
	out := run(t, "START 20\nBOARD\n10,10,2\n11,10,2\n12,10,2\n0,0,1\nDONE\n")
	require.Len(t, out, 2)
	assert.Contains(t, []string{"9,10", "13,10"}, out[1])
}

func TestBoardScenarios(t *testing.T) {
	cases := []struct {
		name  string
		dump  string
		moves []string
	}{
		{"win in 1", "5,5,1\n6,5,1\n7,5,1\n8,5,1", []string{"4,5", "9,5"}},
		{"lose in 1", "10,10,2\n11,10,2\n12,10,2\n13,10,2", []string{"9,10", "14,10"}},
		{"win in 2", "4,4,1\n5,4,1\n7,4,1", []string{"6,4", "3,4", "8,4"}},
		{"lose in 2", "8,8,2\n9,8,2\n11,8,2", []string{"10,8", "7,8", "12,8"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := run(t, "START 20\nBOARD\n"+tc.dump+"\nDONE\n")
			require.Len(t, out, 2)
			assert.Contains(t, tc.moves, out[1])
		})
	}
}

func TestBoardSkipsBadLines(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(strings.NewReader(
		"START 20\nBOARD\n5,5,1\ngarbage\n6,5,1\n7,5\n99,5,1\n7,5,3\n7,5,1\n8,5,1\ndone\nEND\n"), &out)
	require.NoError(t, e.Run(context.Background()))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, []string{"4,5", "9,5"}, lines[1])
	assert.Equal(t, 5, e.Board().Stones())
}

func TestBoardWithoutStart(t *testing.T) {
	out := run(t, "BOARD\n1,1,1\nDONE\nSTART 20\n")
	assert.Equal(t, []string{"ERROR board not initialized", "OK"}, out)
}

func TestBoardTruncated(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(strings.NewReader("START 20\nBOARD\n1,1,1\n"), &out)
	assert.Error(t, e.Run(context.Background()))
}

func TestUnknownAndInfo(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(strings.NewReader(
		"INFO timeout_turn 5000\nINFO folder C:\\some dir\nFROB 1 2\nINFO\nEND\nSTART 20\n"), &out)
	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, "UNKNOWN FROB 1 2\nERROR wrong parameter count\n", out.String())
	v, ok := e.Info("timeout_turn")
	assert.True(t, ok)
	assert.Equal(t, "5000", v)
	v, _ = e.Info("folder")
	assert.Equal(t, `C:\some dir`, v)
	assert.True(t, e.Done())
	assert.Nil(t, e.Board(), "input after END is not processed")
}

func TestAbout(t *testing.T) {
	out := run(t, "ABOUT\n")
	assert.Equal(t, []string{`name="gomokutician", version="1.0", author="Nelson Elhage", country="USA"`}, out)
}

func TestRestartAndTakeback(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(strings.NewReader(
		"RESTART\nSTART 20\nBEGIN\nTAKEBACK 10,10\nTAKEBACK 10,10\nTURN 3,3\nRESTART\n"), &out)
	require.NoError(t, e.Run(context.Background()))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "ERROR board not initialized", lines[0])
	assert.Equal(t, "OK", lines[1])
	assert.Equal(t, "10,10", lines[2])
	assert.Equal(t, "OK", lines[3])
	assert.Equal(t, "ERROR no stone at 10,10", lines[4])
	assert.Equal(t, "OK", lines[6])
	assert.Equal(t, 0, e.Board().Stones())
}

func TestNoLegalMove(t *testing.T) {
	var dump strings.Builder
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			dump.WriteString(strings.Join([]string{itoa(x), itoa(y), itoa(1 + (x+y)%2)}, ","))
			dump.WriteString("\n")
		}
	}
	out := run(t, "START 5\nBOARD\n"+dump.String()+"DONE\n")
	assert.Equal(t, []string{"OK", "ERROR no legal move available"}, out)
}

func itoa(i int) string {
	return string(rune('0' + i))
}

func TestGameRecords(t *testing.T) {
	var games []*GameRecord
	var out bytes.Buffer
	e := NewEngine(strings.NewReader(
		"START 20\nINFO rule 0\nBEGIN\nTURN 0,0\nSTART 15\nBOARD\n1,1,1\n2,2,2\nDONE\nEND\n"), &out)
	e.OnGameEnd = func(g *GameRecord) { games = append(games, g) }
	e.PlayerFactory = func(size int) ai.GomokuPlayer {
		return ai.NewMinimax(ai.MinimaxConfig{Depth: 1})
	}
	require.NoError(t, e.Run(context.Background()))

	require.Len(t, games, 2)
	assert.Equal(t, 20, games[0].Size)
	require.Len(t, games[0].Stones, 3)
	assert.Equal(t, Stone{Move: gomoku.Move{X: 10, Y: 10}, Cell: gomoku.Self}, games[0].Stones[0])
	assert.Equal(t, Stone{Move: gomoku.Move{X: 0, Y: 0}, Cell: gomoku.Opponent}, games[0].Stones[1])
	assert.Equal(t, gomoku.Empty, games[0].Winner)
	assert.Equal(t, "0", games[0].Info["rule"])

	assert.Equal(t, 15, games[1].Size)
	assert.Len(t, games[1].Stones, 3)
}

type scripted struct {
	moves []gomoku.Move
}

func (s *scripted) GetMove(ctx context.Context, b *gomoku.Board) (gomoku.Move, bool) {
	m := s.moves[0]
	s.moves = s.moves[1:]
	return m, true
}

func TestGameRecordsBoardDumps(t *testing.T) {
	var games []*GameRecord
	var out bytes.Buffer
	e := NewEngine(strings.NewReader(strings.Join([]string{
		"START 20",
		"BOARD", "0,0,2", "DONE",
		"BOARD", "0,0,2", "10,10,1", "1,1,2", "DONE",
		"BOARD", "0,0,2", "10,10,1", "1,1,2", "11,10,1", "2,2,2", "DONE",
		"BOARD", "5,5,2", "DONE",
		"END",
	}, "\n")), &out)
	e.OnGameEnd = func(g *GameRecord) { games = append(games, g) }
	e.PlayerFactory = func(size int) ai.GomokuPlayer {
		return &scripted{moves: []gomoku.Move{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 12, Y: 10}, {X: 13, Y: 10}}}
	}
	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, "OK\n10,10\n11,10\n12,10\n13,10\n", out.String())

	require.Len(t, games, 2)
	stone := func(x, y int, c gomoku.Cell) Stone {
		return Stone{Move: gomoku.Move{X: x, Y: y}, Cell: c}
	}
	assert.Equal(t, []Stone{
		stone(0, 0, gomoku.Opponent),
		stone(10, 10, gomoku.Self),
		stone(1, 1, gomoku.Opponent),
		stone(11, 10, gomoku.Self),
		stone(2, 2, gomoku.Opponent),
		stone(12, 10, gomoku.Self),
	}, games[0].Stones)
	assert.Equal(t, []Stone{
		stone(5, 5, gomoku.Opponent),
		stone(13, 10, gomoku.Self),
	}, games[1].Stones)
}

func TestHandleCRLF(t *testing.T) {
	out := run(t, "START 20\r\nBEGIN\r\n")
	assert.Equal(t, []string{"OK", "10,10"}, out)
}
