package bst

import (
	"github.com/tuanngocfun/Binary-Search-Tree/internal/arena"
)

// record is a node as stored in the arena. parent always names the node
// whose left or right holds this one; the link helpers below keep both
// sides in step.
type record[K any] struct {
	key    K
	hasKey bool
	left   arena.Handle
	right  arena.Handle
	parent arena.Handle
}

// Node is a read-only handle to a node of a Tree. The zero Node is the empty
// node. A Node taken before a Delete or Clear may become stale, after which
// it behaves like the empty node.
type Node[K any] struct {
	nodes *arena.Arena[record[K]]
	h     arena.Handle
}

func (n Node[K]) rec() *record[K] {
	if n.nodes == nil {
		return nil
	}
	return n.nodes.Get(n.h)
}

func (n Node[K]) at(h arena.Handle) Node[K] {
	if h.IsNil() {
		return Node[K]{}
	}
	return Node[K]{n.nodes, h}
}

// IsNil reports whether n is the empty node (or a stale one).
func (n Node[K]) IsNil() bool { return n.rec() == nil }

// Key returns the key stored at n. It panics with ErrNoKey when n is empty;
// nodes returned by a Tree are never keyless unless they are empty.
func (n Node[K]) Key() K {
	r := n.rec()
	if r == nil || !r.hasKey {
		panic(ErrNoKey)
	}
	return r.key
}

// Left returns the left child of n.
func (n Node[K]) Left() Node[K] {
	if r := n.rec(); r != nil {
		return n.at(r.left)
	}
	return Node[K]{}
}

// Right returns the right child of n.
func (n Node[K]) Right() Node[K] {
	if r := n.rec(); r != nil {
		return n.at(r.right)
	}
	return Node[K]{}
}

// Parent returns the parent of n, or the empty node for the root.
func (n Node[K]) Parent() Node[K] {
	if r := n.rec(); r != nil {
		return n.at(r.parent)
	}
	return Node[K]{}
}

// Equal reports whether n and o are the same node. All empty nodes are equal.
func (n Node[K]) Equal(o Node[K]) bool {
	if n.IsNil() || o.IsNil() {
		return n.IsNil() && o.IsNil()
	}
	return n.nodes == o.nodes && n.h == o.h
}

// rec returns the live record behind h.
func (t *Tree[K]) rec(h arena.Handle) *record[K] {
	return t.nodes.MustGet(h)
}

// node wraps h as a public handle.
func (t *Tree[K]) node(h arena.Handle) Node[K] {
	if h.IsNil() {
		return Node[K]{}
	}
	return Node[K]{t.nodes, h}
}

// handle unwraps a caller-supplied node, refusing nodes of other trees and stale ones.
func (t *Tree[K]) handle(n Node[K]) arena.Handle {
	if n.nodes != t.nodes || !t.nodes.Valid(n.h) {
		return arena.Nil
	}
	return n.h
}

func (t *Tree[K]) setKey(h arena.Handle, key K) {
	r := t.rec(h)
	r.key, r.hasKey = key, true
}

// setLeft replaces the left child of h. The old child is detached, not released.
func (t *Tree[K]) setLeft(h, child arena.Handle) {
	r := t.rec(h)
	if !r.left.IsNil() {
		t.rec(r.left).parent = arena.Nil
	}
	r.left = child
	if !child.IsNil() {
		t.rec(child).parent = h
	}
}

// setRight replaces the right child of h. The old child is detached, not released.
func (t *Tree[K]) setRight(h, child arena.Handle) {
	r := t.rec(h)
	if !r.right.IsNil() {
		t.rec(r.right).parent = arena.Nil
	}
	r.right = child
	if !child.IsNil() {
		t.rec(child).parent = h
	}
}

// detach unlinks h from whichever slot of its parent holds it.
func (t *Tree[K]) detach(h arena.Handle) {
	p := t.rec(h).parent
	if p.IsNil() {
		return
	}
	if t.rec(p).left == h {
		t.setLeft(p, arena.Nil)
	} else {
		t.setRight(p, arena.Nil)
	}
}

// setParentLeft moves h, with its subtree, to be the left child of p.
func (t *Tree[K]) setParentLeft(h, p arena.Handle) {
	t.detach(h)
	if !p.IsNil() {
		t.setLeft(p, h)
	}
}

// setParentRight moves h, with its subtree, to be the right child of p.
func (t *Tree[K]) setParentRight(h, p arena.Handle) {
	t.detach(h)
	if !p.IsNil() {
		t.setRight(p, h)
	}
}

func (t *Tree[K]) newRecord(key K) (arena.Handle, error) {
	return t.nodes.Alloc(record[K]{key: key, hasKey: true})
}

// createLeft allocates a node for key as the left child of h. An occupied
// slot is left alone.
func (t *Tree[K]) createLeft(h arena.Handle, key K) error {
	if !t.rec(h).left.IsNil() {
		return nil
	}
	child, err := t.newRecord(key)
	if err != nil {
		return err
	}
	t.setLeft(h, child)
	return nil
}

// createRight allocates a node for key as the right child of h. An occupied
// slot is left alone.
func (t *Tree[K]) createRight(h arena.Handle, key K) error {
	if !t.rec(h).right.IsNil() {
		return nil
	}
	child, err := t.newRecord(key)
	if err != nil {
		return err
	}
	t.setRight(h, child)
	return nil
}

// release drops h from the tree and returns its slot to the arena. Children
// still pointing back at h are orphaned, not released.
func (t *Tree[K]) release(h arena.Handle) {
	r := t.rec(h)
	for _, c := range [2]arena.Handle{r.left, r.right} {
		if c.IsNil() {
			continue
		}
		if cr := t.rec(c); cr.parent == h {
			cr.parent = arena.Nil
		}
	}
	t.detach(h)
	if t.root == h {
		t.root = arena.Nil
	}
	if err := t.nodes.Release(h); err != nil {
		panic(err)
	}
}
