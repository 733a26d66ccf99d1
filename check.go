package bst

import (
	"github.com/pkg/errors"

	"github.com/tuanngocfun/Binary-Search-Tree/internal/arena"
)

// Check verifies the ordering invariant and that every parent link mirrors
// the child link pointing at it. A tree only ever modified through its
// methods always passes.
func (t *Tree[K]) Check() error {
	if !t.root.IsNil() && !t.rec(t.root).parent.IsNil() {
		return errors.Wrapf(ErrBrokenLink, "root %v has a parent", t.rec(t.root).key)
	}
	seen, err := t.check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if seen != t.nodes.Len() {
		return errors.Wrapf(ErrBrokenLink, "%v nodes reachable but %v allocated", seen, t.nodes.Len())
	}
	return nil
}

// check walks the subtree at h, whose keys must lie within [lo, hi] when
// those are given, and returns how many nodes it holds.
func (t *Tree[K]) check(h arena.Handle, lo, hi *K) (int, error) {
	if h.IsNil() {
		return 0, nil
	}
	r := t.rec(h)
	if !r.hasKey {
		return 0, errors.Wrap(ErrNoKey, "keyless node reachable from root")
	}
	if lo != nil && t.less(r.key, *lo) {
		return 0, errors.Wrapf(ErrOrdering, "key %v sits right of %v but is below it", r.key, *lo)
	}
	if hi != nil && t.less(*hi, r.key) {
		return 0, errors.Wrapf(ErrOrdering, "key %v sits left of %v but is above it", r.key, *hi)
	}
	for _, c := range [2]arena.Handle{r.left, r.right} {
		if !c.IsNil() && t.rec(c).parent != h {
			return 0, errors.Wrapf(ErrBrokenLink, "child %v of %v points elsewhere", t.rec(c).key, r.key)
		}
	}
	key := r.key
	nl, err := t.check(r.left, lo, &key)
	if err != nil {
		return 0, err
	}
	nr, err := t.check(r.right, &key, hi)
	if err != nil {
		return 0, err
	}
	return nl + nr + 1, nil
}
