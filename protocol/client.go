package protocol

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"

	"github.com/nelhage/gomokutician/ai"
	"github.com/nelhage/gomokutician/gomoku"
	"github.com/nelhage/gomokutician/notation"
)

// Client drives an engine that speaks this protocol, either as a
// subprocess or over an arbitrary pair of streams.
type Client struct {
	cmd *exec.Cmd

	stdinPipe  io.WriteCloser
	stdoutPipe io.ReadCloser

	read  *bufio.Reader
	write io.Writer

	Debug  int
	gameid int
}

// RemoteError is an ERROR or UNKNOWN reply from the engine.
type RemoteError struct {
	Line string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("engine: %s", e.Line)
}

func NewClient(cmdline []string) (*Client, error) {
	if len(cmdline) == 0 {
		return nil, errors.New("empty command line")
	}
	cmd := &exec.Cmd{
		Args: cmdline,
	}
	if path, err := exec.LookPath(cmdline[0]); err != nil {
		return nil, err
	} else {
		cmd.Path = path
	}

	cl := &Client{
		cmd: cmd,
	}

	if stdin, err := cmd.StdinPipe(); err != nil {
		cl.Close()
		return nil, err
	} else {
		cl.stdinPipe = stdin
		cl.write = stdin
	}

	if stdout, err := cmd.StdoutPipe(); err != nil {
		cl.Close()
		return nil, err
	} else {
		cl.stdoutPipe = stdout
		cl.read = bufio.NewReader(stdout)
	}

	if err := cl.cmd.Start(); err != nil {
		cl.cmd = nil
		cl.Close()
		return nil, err
	}
	return cl, nil
}

// NewConn returns a Client talking to an engine over r and w.
func NewConn(r io.Reader, w io.Writer) *Client {
	return &Client{
		read:  bufio.NewReader(r),
		write: w,
	}
}

func (c *Client) About() (string, error) {
	return c.sendCommand("ABOUT")
}

// NewGame starts a fresh game of the given size. Players returned by
// earlier calls become invalid.
func (c *Client) NewGame(size int) (ai.GomokuPlayer, error) {
	c.gameid++
	reply, err := c.sendCommand(fmt.Sprintf("START %d", size))
	if err != nil {
		return nil, err
	}
	if reply != "OK" {
		return nil, fmt.Errorf("START %d: unexpected reply %q", size, reply)
	}
	return &player{
		client: c,
		gameid: c.gameid,
	}, nil
}

func (c *Client) Close() {
	if c.write != nil {
		fmt.Fprintln(c.write, "END")
	}
	if c.stdinPipe != nil {
		c.stdinPipe.Close()
	}
	if c.stdoutPipe != nil {
		c.stdoutPipe.Close()
	}
	if c.cmd != nil && c.cmd.Process != nil {
		c.cmd.Wait()
	}
}

func (c *Client) sendCommand(cmd string) (string, error) {
	if c.Debug > 1 {
		log.Printf("[client] > %s", strings.Replace(cmd, "\n", " | ", -1))
	}
	if _, err := fmt.Fprintln(c.write, cmd); err != nil {
		return "", err
	}
	return c.readReply()
}

// readReply returns the next response line, skipping the engine's
// MESSAGE and DEBUG chatter.
func (c *Client) readReply() (string, error) {
	for {
		line, err := c.read.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimRight(line, "\r\n")
		if c.Debug > 1 {
			log.Printf("[client] < %s", line)
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		switch strings.ToUpper(words[0]) {
		case "MESSAGE", "DEBUG":
			continue
		case "ERROR", "UNKNOWN":
			return "", &RemoteError{Line: line}
		}
		return line, nil
	}
}

type player struct {
	client *Client
	gameid int
}

func (p *player) GetMove(ctx context.Context, b *gomoku.Board) (gomoku.Move, bool) {
	if p.gameid != p.client.gameid {
		panic("bad gameid: calling GetMove on a dead player")
	}
	var cmd bytes.Buffer
	cmd.WriteString("BOARD\n")
	notation.WriteDump(&cmd, b)
	cmd.WriteString("DONE")
	reply, err := p.client.sendCommand(cmd.String())
	if err != nil {
		log.Printf("[client] BOARD: %v", err)
		return gomoku.Move{}, false
	}
	m, err := notation.ParseMove(reply)
	if err != nil {
		log.Printf("[client] bad move from engine: %v", err)
		return gomoku.Move{}, false
	}
	return m, true
}
