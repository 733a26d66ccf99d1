package bst

import (
	"fmt"
	"io"

	"github.com/tuanngocfun/Binary-Search-Tree/internal/arena"
)

// DumpDOT dumps a GraphViz .dot of the tree shape for debugging.
func (t *Tree[K]) DumpDOT(out io.Writer) {
	fmt.Fprintf(out, "digraph G {\nrankdir=\"TB\"\n")
	defer fmt.Fprintf(out, "}\n")
	t.preOrderHandles(t.root, func(h arena.Handle) {
		r := t.rec(h)
		fmt.Fprintf(out, "\"n%v\" [label=\"%v\"]\n", h.Index(), r.key)
		if !r.left.IsNil() {
			fmt.Fprintf(out, "\"n%v\" -> \"n%v\" [label=\"L\"]\n", h.Index(), r.left.Index())
		}
		if !r.right.IsNil() {
			fmt.Fprintf(out, "\"n%v\" -> \"n%v\" [label=\"R\"]\n", h.Index(), r.right.Index())
		}
	})
}
