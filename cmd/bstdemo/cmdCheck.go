package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"

	bst "github.com/tuanngocfun/Binary-Search-Tree"
)

type cmdCheck struct {
	argKeys   string
	argDelete string
}

func (cmd *cmdCheck) Name() string { return "check" }
func (cmd *cmdCheck) Synopsis() string {
	return "build a tree, verify its invariants and print statistics"
}
func (cmd *cmdCheck) Usage() string { return "check -keys 13,6,15 [-delete 6]\n" }

func (cmd *cmdCheck) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.argKeys, "keys", "", "Comma-separated integers, inserted in order")
	f.StringVar(&cmd.argDelete, "delete", "", "Comma-separated integers to delete once each after inserting")
}

func (cmd *cmdCheck) Execute(_ context.Context,
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
	if err := tree.Check(); err != nil {
		log.Println("check FAILED:", err)
		return subcommands.ExitFailure
	}
	writeStats(os.Stdout, tree)
	return subcommands.ExitSuccess
}

func writeStats(w io.Writer, tree *bst.Tree[int]) {
	fmt.Fprintf(w, "nodes:  %v\n", tree.Count())
	fmt.Fprintf(w, "height: %v\n", tree.Height())
	if tree.Empty() {
		return
	}
	fmt.Fprintf(w, "min:    %v\n", tree.Minimum().Key())
	fmt.Fprintf(w, "max:    %v\n", tree.Maximum().Key())
}
