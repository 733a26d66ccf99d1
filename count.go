package bst

import (
	"github.com/tuanngocfun/Binary-Search-Tree/internal/arena"
)

// Count walks the whole tree and returns the number of nodes.
func (t *Tree[K]) Count() int { return t.count(t.root) }

// CountFrom returns the number of nodes in the subtree rooted at n.
func (t *Tree[K]) CountFrom(n Node[K]) int { return t.count(t.handle(n)) }

// CountKey returns the number of nodes equal to key, wherever they are.
func (t *Tree[K]) CountKey(key K) int { return t.countKey(t.root, key) }

// CountKeyFrom is CountKey restricted to the subtree rooted at n.
func (t *Tree[K]) CountKeyFrom(n Node[K], key K) int { return t.countKey(t.handle(n), key) }

// CountIf returns the number of nodes whose key satisfies pred.
func (t *Tree[K]) CountIf(pred func(K) bool) int { return t.countIf(t.root, pred) }

// CountIfFrom is CountIf restricted to the subtree rooted at n.
func (t *Tree[K]) CountIfFrom(n Node[K], pred func(K) bool) int {
	return t.countIf(t.handle(n), pred)
}

func (t *Tree[K]) count(h arena.Handle) int {
	return t.countIf(h, func(K) bool { return true })
}

func (t *Tree[K]) countKey(h arena.Handle, key K) int {
	return t.countIf(h, func(k K) bool { return t.equal(k, key) })
}

func (t *Tree[K]) countIf(h arena.Handle, pred func(K) bool) int {
	if h.IsNil() {
		return 0
	}
	r := t.rec(h)
	c := t.countIf(r.left, pred) + t.countIf(r.right, pred)
	if pred(r.key) {
		c++
	}
	return c
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K]) Height() int { return t.height(t.root) }

func (t *Tree[K]) height(h arena.Handle) int {
	if h.IsNil() {
		return 0
	}
	r := t.rec(h)
	return 1 + max(t.height(r.left), t.height(r.right))
}
