package selfplay

import (
	"strings"

	"github.com/nelhage/gomokutician/ai"
	"github.com/nelhage/gomokutician/cmd/internal/opt"
	"github.com/nelhage/gomokutician/protocol"
)

// A seat produces a player for each new game. Each worker opens its
// own seats, so implementations need not be safe for concurrent use.
type seat interface {
	NewGame(size int) (ai.GomokuPlayer, error)
	Close()
}

const execPrefix = "exec:"

// openSeat interprets spec as either a built-in player name or, with
// an "exec:" prefix, the command line of an external engine.
func openSeat(spec string, debug int) (seat, error) {
	if strings.HasPrefix(spec, execPrefix) {
		cl, err := protocol.NewClient(strings.Fields(spec[len(execPrefix):]))
		if err != nil {
			return nil, err
		}
		cl.Debug = debug
		return cl, nil
	}
	if _, err := opt.ParsePlayer(spec, debug); err != nil {
		return nil, err
	}
	return &builtin{spec: spec, debug: debug}, nil
}

type builtin struct {
	spec  string
	debug int
}

func (b *builtin) NewGame(size int) (ai.GomokuPlayer, error) {
	return opt.ParsePlayer(b.spec, b.debug)
}

func (b *builtin) Close() {}
