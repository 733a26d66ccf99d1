package bst

import (
	"iter"

	"github.com/tuanngocfun/Binary-Search-Tree/internal/arena"
)

// The traversals return sequences that walk the tree afresh on every range
// over them. The tree must not be modified while a sequence is being ranged
// over.

// InOrder yields every key in non-decreasing order.
func (t *Tree[K]) InOrder() iter.Seq[K] { return t.InOrderFrom(t.Root()) }

// InOrderFrom yields the keys of the subtree rooted at n in order.
func (t *Tree[K]) InOrderFrom(n Node[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		start := t.handle(n)
		if start.IsNil() {
			return
		}
		// walk successor links, stopping once we climb out of start's subtree
		stop := t.successorOutside(start)
		for h := t.minimum(start); h != stop; h = t.successor(h) {
			if !yield(t.rec(h).key) {
				return
			}
		}
	}
}

// successorOutside returns the first node after the subtree rooted at h in
// in-order, or Nil.
func (t *Tree[K]) successorOutside(h arena.Handle) arena.Handle {
	return t.successor(t.maximum(h))
}

// PreOrder yields each key before the keys of its subtrees.
func (t *Tree[K]) PreOrder() iter.Seq[K] { return t.PreOrderFrom(t.Root()) }

// PreOrderFrom is PreOrder for the subtree rooted at n.
func (t *Tree[K]) PreOrderFrom(n Node[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		t.preOrder(t.handle(n), yield)
	}
}

func (t *Tree[K]) preOrder(h arena.Handle, yield func(K) bool) bool {
	if h.IsNil() {
		return true
	}
	r := t.rec(h)
	left, right := r.left, r.right
	return yield(r.key) && t.preOrder(left, yield) && t.preOrder(right, yield)
}

// PostOrder yields each key after the keys of its subtrees.
func (t *Tree[K]) PostOrder() iter.Seq[K] { return t.PostOrderFrom(t.Root()) }

// PostOrderFrom is PostOrder for the subtree rooted at n.
func (t *Tree[K]) PostOrderFrom(n Node[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		t.postOrder(t.handle(n), yield)
	}
}

func (t *Tree[K]) postOrder(h arena.Handle, yield func(K) bool) bool {
	if h.IsNil() {
		return true
	}
	r := t.rec(h)
	left, right := r.left, r.right
	return t.postOrder(left, yield) && t.postOrder(right, yield) && yield(t.rec(h).key)
}

// preOrderHandles calls visit with every handle below h, parents first.
func (t *Tree[K]) preOrderHandles(h arena.Handle, visit func(arena.Handle)) {
	if h.IsNil() {
		return
	}
	visit(h)
	r := t.rec(h)
	t.preOrderHandles(r.left, visit)
	t.preOrderHandles(r.right, visit)
}
