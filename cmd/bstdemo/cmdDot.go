package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
)

type cmdDot struct {
	argKeys   string
	argDelete string
}

func (cmd *cmdDot) Name() string     { return "dot" }
func (cmd *cmdDot) Synopsis() string { return "dump a tree as GraphViz .dot" }
func (cmd *cmdDot) Usage() string    { return "dot -keys 13,6,15 [-delete 6] | dot -Tpng > tree.png\n" }

func (cmd *cmdDot) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.argKeys, "keys", "", "Comma-separated integers, inserted in order")
	f.StringVar(&cmd.argDelete, "delete", "", "Comma-separated integers to delete once each after inserting")
}

func (cmd *cmdDot) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	keys, err := parseKeys(cmd.argKeys)
	if err != nil {
		log.Fatalln("invalid -keys:", err)
	}
	dels, err := parseKeys(cmd.argDelete)
	if err != nil {
		log.Fatalln("invalid -delete:", err)
	}
	tree, err := buildTree(keys, dels, 0)
	if err != nil {
		log.Fatalln("could not build tree:", err)
	}
	tree.DumpDOT(os.Stdout)
	return subcommands.ExitSuccess
}
