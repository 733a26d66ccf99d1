package bst

import (
	"github.com/tuanngocfun/Binary-Search-Tree/internal/arena"
)

// Insert adds key to the tree. Keys equal to an existing one go to its right.
// The only possible error is ErrExhausted, in which case the tree is unchanged.
func (t *Tree[K]) Insert(key K) error {
	var pivot arena.Handle
	for n := t.root; !n.IsNil(); {
		pivot = n
		if t.less(key, t.rec(n).key) {
			n = t.rec(n).left
		} else {
			n = t.rec(n).right
		}
	}
	if pivot.IsNil() {
		h, err := t.newRecord(key)
		if err != nil {
			return err
		}
		t.root = h
		return nil
	}
	if t.less(key, t.rec(pivot).key) {
		return t.createLeft(pivot, key)
	}
	return t.createRight(pivot, key)
}

// InsertNode inserts a copy of n's key. n may belong to another tree and is
// left untouched.
func (t *Tree[K]) InsertNode(n Node[K]) error {
	return t.Insert(n.Key())
}

// Search returns the first node equal to key on the descent from the root,
// or the empty node. A duplicate that is not on that path is not found even
// though CountKey counts it.
func (t *Tree[K]) Search(key K) Node[K] {
	return t.node(t.search(t.root, key))
}

// SearchFrom is Search restricted to the subtree rooted at n.
func (t *Tree[K]) SearchFrom(n Node[K], key K) Node[K] {
	return t.node(t.search(t.handle(n), key))
}

func (t *Tree[K]) search(n arena.Handle, key K) arena.Handle {
	for !n.IsNil() {
		r := t.rec(n)
		switch {
		case t.less(key, r.key):
			n = r.left
		case t.less(r.key, key):
			n = r.right
		default:
			return n
		}
	}
	return arena.Nil
}

// Minimum returns the node with the smallest key, or the empty node.
func (t *Tree[K]) Minimum() Node[K] { return t.node(t.minimum(t.root)) }

// MinimumFrom returns the leftmost node of the subtree rooted at n.
func (t *Tree[K]) MinimumFrom(n Node[K]) Node[K] { return t.node(t.minimum(t.handle(n))) }

// Maximum returns the node with the largest key, or the empty node.
func (t *Tree[K]) Maximum() Node[K] { return t.node(t.maximum(t.root)) }

// MaximumFrom returns the rightmost node of the subtree rooted at n.
func (t *Tree[K]) MaximumFrom(n Node[K]) Node[K] { return t.node(t.maximum(t.handle(n))) }

func (t *Tree[K]) minimum(n arena.Handle) arena.Handle {
	if n.IsNil() {
		return n
	}
	for l := t.rec(n).left; !l.IsNil(); l = t.rec(n).left {
		n = l
	}
	return n
}

func (t *Tree[K]) maximum(n arena.Handle) arena.Handle {
	if n.IsNil() {
		return n
	}
	for r := t.rec(n).right; !r.IsNil(); r = t.rec(n).right {
		n = r
	}
	return n
}

// Successor returns the in-order successor of the root.
func (t *Tree[K]) Successor() Node[K] { return t.node(t.successor(t.root)) }

// SuccessorOf returns the node that follows n in in-order, or the empty node
// when n is the last one.
func (t *Tree[K]) SuccessorOf(n Node[K]) Node[K] { return t.node(t.successor(t.handle(n))) }

func (t *Tree[K]) successor(n arena.Handle) arena.Handle {
	if n.IsNil() {
		return n
	}
	if r := t.rec(n).right; !r.IsNil() {
		return t.minimum(r)
	}
	p := t.rec(n).parent
	for !p.IsNil() && t.rec(p).right == n {
		n, p = p, t.rec(p).parent
	}
	return p
}

// Delete removes one node equal to key, the first on the descent from the
// root, and reports whether there was one. A node with two children keeps
// its place and takes its successor's key; the successor's node is released
// instead. Nodes taken before a Delete must not be relied upon afterwards.
func (t *Tree[K]) Delete(key K) bool {
	_, removed := t.deleteFrom(t.root, key)
	return removed
}

// DeleteFrom is Delete restricted to the subtree rooted at n. It returns the
// node now heading that subtree, which differs from n when n itself was
// removed.
func (t *Tree[K]) DeleteFrom(n Node[K], key K) (Node[K], bool) {
	h, removed := t.deleteFrom(t.handle(n), key)
	return t.node(h), removed
}

// DeleteAll removes every node equal to key and returns how many there were.
// Each removal descends from the root again.
func (t *Tree[K]) DeleteAll(key K) int {
	_, n := t.deleteAllFrom(t.root, key)
	return n
}

// DeleteAllFrom is DeleteAll restricted to the subtree rooted at n.
func (t *Tree[K]) DeleteAllFrom(n Node[K], key K) (Node[K], int) {
	h, count := t.deleteAllFrom(t.handle(n), key)
	return t.node(h), count
}

func (t *Tree[K]) deleteAllFrom(start arena.Handle, key K) (arena.Handle, int) {
	total := t.countKey(start, key)
	for i := 0; i < total; i++ {
		start, _ = t.deleteFrom(start, key)
	}
	return start, total
}

// deleteFrom removes the first node equal to key below start, returning the
// handle now heading start's subtree.
func (t *Tree[K]) deleteFrom(start arena.Handle, key K) (arena.Handle, bool) {
	n := start
	for !n.IsNil() {
		r := t.rec(n)
		if t.less(key, r.key) {
			n = r.left
		} else if t.less(r.key, key) {
			n = r.right
		} else {
			break
		}
	}
	if n.IsNil() {
		return start, false
	}
	heir := t.remove(n)
	if n == start {
		return heir, true
	}
	return start, true
}

// remove takes n out of the tree and returns the handle now in its place.
func (t *Tree[K]) remove(n arena.Handle) arena.Handle {
	r := t.rec(n)
	switch {
	case r.left.IsNil() && r.right.IsNil():
		t.release(n)
		return arena.Nil
	case r.left.IsNil():
		return t.promote(n, r.right)
	case r.right.IsNil():
		return t.promote(n, r.left)
	}

	// two children: the successor is the leftmost node of the right subtree
	succParent, succ := n, r.right
	for l := t.rec(succ).left; !l.IsNil(); l = t.rec(succ).left {
		succParent, succ = succ, l
	}
	sr := t.rec(succ)
	key, orphan := sr.key, sr.right
	t.setRight(succ, arena.Nil)
	if succParent == n {
		t.setRight(succParent, orphan)
	} else {
		t.setLeft(succParent, orphan)
	}
	t.setKey(n, key)
	t.release(succ)
	return n
}

// promote moves child, the only child of n, into n's slot and releases n.
func (t *Tree[K]) promote(n, child arena.Handle) arena.Handle {
	p := t.rec(n).parent
	switch {
	case p.IsNil():
		t.detach(child)
		t.root = child
	case t.rec(p).left == n:
		t.setParentLeft(child, p)
	default:
		t.setParentRight(child, p)
	}
	t.release(n)
	return child
}
