package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/google/subcommands"
	"github.com/nelhage/gomokutician/cmd/internal/analyze"
	"github.com/nelhage/gomokutician/cmd/internal/pbrain"
	"github.com/nelhage/gomokutician/cmd/internal/play"
	"github.com/nelhage/gomokutician/cmd/internal/selfplay"
	"github.com/nelhage/gomokutician/cmd/internal/serve"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&pbrain.Command{}, "")
	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&serve.Command{}, "")

	flag.Parse()
	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		<-sigs
		cancel()
	}()
	os.Exit(int(subcommands.Execute(ctx)))
}
