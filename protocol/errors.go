package protocol

import (
	"errors"
	"fmt"

	"github.com/nelhage/gomokutician/gomoku"
)

// ParameterError reports a malformed argument or the wrong number of
// arguments to a command.
type ParameterError struct {
	Reason string
	Err    error
}

func (e *ParameterError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ParameterError) Unwrap() error { return e.Err }

// StateError reports a command that is not valid in the current
// session state, such as a move before START.
type StateError struct {
	Reason string
}

func (e *StateError) Error() string { return e.Reason }

// OccupancyError reports a move onto a cell that already holds a
// stone.
type OccupancyError struct {
	Move gomoku.Move
}

func (e *OccupancyError) Error() string {
	return fmt.Sprintf("cell %d,%d is occupied", e.Move.X, e.Move.Y)
}

type UnknownCommandError struct {
	Line string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Line)
}

var (
	errWrongArity    = &ParameterError{Reason: "wrong parameter count"}
	errNotStarted    = &StateError{Reason: "board not initialized"}
	errNoLegalMove   = &StateError{Reason: "no legal move available"}
	errUnexpectedEOF = errors.New("unexpected end of input inside BOARD")
)

// Response renders err as the single line the protocol sends back for
// it.
func Response(err error) string {
	var unknown *UnknownCommandError
	if errors.As(err, &unknown) {
		return "UNKNOWN " + unknown.Line
	}
	return "ERROR " + err.Error()
}
