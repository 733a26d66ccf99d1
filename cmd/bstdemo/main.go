package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&cmdDemo{}, "")
	subcommands.Register(&cmdSort{}, "")
	subcommands.Register(&cmdTraverse{}, "")
	subcommands.Register(&cmdDot{}, "")
	subcommands.Register(&cmdCheck{}, "")
	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
