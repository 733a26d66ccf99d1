package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/pkg/errors"

	bst "github.com/tuanngocfun/Binary-Search-Tree"
)

type cmdDemo struct{}

func (cmd *cmdDemo) Name() string     { return "demo" }
func (cmd *cmdDemo) Synopsis() string { return "build two sample trees and print their traversals" }
func (cmd *cmdDemo) Usage() string    { return "demo\n" }

func (cmd *cmdDemo) SetFlags(f *flag.FlagSet) {}

func (cmd *cmdDemo) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	if err := writeDemo(os.Stdout); err != nil {
		log.Fatalln("demo failed:", err)
	}
	return subcommands.ExitSuccess
}

// writeDemo builds the same key set in two insertion orders, then inserts
// and deletes the same keys in both, printing the in-order walk each time.
func writeDemo(w io.Writer) error {
	t1, err := bst.OrderedFromKeys([]int{13, 6, 15, 17, 20, 9, 4, 3, 7, 2, 18})
	if err != nil {
		return err
	}
	t2, err := bst.OrderedFromKeys([]int{15, 6, 18, 3, 7, 17, 20, 2, 4, 13, 9})
	if err != nil {
		return err
	}
	trees := []struct {
		name string
		tree *bst.Tree[int]
	}{{"T1", t1}, {"T2", t2}}

	show := func(suffix string) error {
		for _, v := range trees {
			fmt.Fprintf(w, "%v inorder traversal%v: ", v.name, suffix)
			if err := bst.WriteKeys(w, v.tree.InOrder()); err != nil {
				return errors.Wrapf(err, "printing %v", v.name)
			}
			fmt.Fprint(w, "\n")
		}
		_, err := fmt.Fprint(w, "\n")
		return err
	}

	if err := show(""); err != nil {
		return err
	}
	for _, v := range trees {
		for _, k := range []int{18, 11, 25} {
			if err := v.tree.Insert(k); err != nil {
				return err
			}
		}
	}
	if err := show(" after inserting 18, 11 and 25"); err != nil {
		return err
	}
	for _, v := range trees {
		for _, k := range []int{6, 13, 18} {
			v.tree.Delete(k)
		}
	}
	return show(" after deleting 6, 13 and 18")
}
