package main

import (
	"context"
	"flag"
	"fmt"
	"iter"
	"log"
	"os"

	"github.com/google/subcommands"

	bst "github.com/tuanngocfun/Binary-Search-Tree"
)

type cmdTraverse struct {
	argKeys   string
	argDelete string
	argOrder  string
	argLimit  int
}

func (cmd *cmdTraverse) Name() string     { return "traverse" }
func (cmd *cmdTraverse) Synopsis() string { return "build a tree and print one traversal" }
func (cmd *cmdTraverse) Usage() string {
	return "traverse -keys 13,6,15 [-order in|pre|post] [-delete 6]\n"
}

func (cmd *cmdTraverse) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.argKeys, "keys", "", "Comma-separated integers, inserted in order")
	f.StringVar(&cmd.argDelete, "delete", "", "Comma-separated integers to delete once each after inserting")
	f.StringVar(&cmd.argOrder, "order", "in", "Traversal order: in, pre or post")
	f.IntVar(&cmd.argLimit, "limit", 0, "Maximum number of nodes; 0 means no limit")
}

func (cmd *cmdTraverse) Execute(_ context.Context,
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
	tree, err := buildTree(keys, dels, cmd.argLimit)
	if err != nil {
		log.Fatalln("could not build tree:", err)
	}
	var seq iter.Seq[int]
	switch cmd.argOrder {
	case "in":
		seq = tree.InOrder()
	case "pre":
		seq = tree.PreOrder()
	case "post":
		seq = tree.PostOrder()
	default:
		log.Println("unknown -order", cmd.argOrder)
		return subcommands.ExitUsageError
	}
	if err := bst.WriteKeys(os.Stdout, seq); err != nil {
		log.Fatalln("could not print keys:", err)
	}
	fmt.Println()
	return subcommands.ExitSuccess
}
