package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"

	bst "github.com/tuanngocfun/Binary-Search-Tree"
)

type cmdSort struct {
	argKeys string
}

func (cmd *cmdSort) Name() string     { return "sort" }
func (cmd *cmdSort) Synopsis() string { return "sort integers by way of a search tree" }
func (cmd *cmdSort) Usage() string    { return "sort -keys 5,3,8\n" }

func (cmd *cmdSort) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.argKeys, "keys", "", "Comma-separated integers to sort")
}

func (cmd *cmdSort) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	keys, err := parseKeys(cmd.argKeys)
	if err != nil {
		log.Fatalln("invalid -keys:", err)
	}
	if err := bst.Sort(os.Stdout, keys); err != nil {
		log.Fatalln("could not sort:", err)
	}
	fmt.Println()
	return subcommands.ExitSuccess
}
