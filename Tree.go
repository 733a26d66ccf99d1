// Package bst is an unbalanced binary search tree. Nodes live in an arena
// owned by the tree and link to their children and parent by handle, so
// successor walks need no recursion and no node is ever shared between trees.
//
// Duplicate keys are allowed and go to the right subtree. Nothing is
// rebalanced: the shape depends on insertion order, and depth is O(n) in the
// worst case. A Tree is not safe for concurrent use.
package bst

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/tuanngocfun/Binary-Search-Tree/internal/arena"
)

// ErrNoKey is the panic value for reading the key of an empty node.
var ErrNoKey = errors.New("bst: node holds no key")

// ErrExhausted is returned when a tree created WithLimit is full.
var ErrExhausted = arena.ErrExhausted

// ErrOrdering is returned by Check when a key sits on the wrong side of an ancestor.
var ErrOrdering = errors.New("bst: ordering invariant violated")

// ErrBrokenLink is returned by Check when a parent link does not mirror the child link.
var ErrBrokenLink = errors.New("bst: parent link out of step")

// Tree is an unbalanced binary search tree ordered by a less function.
type Tree[K any] struct {
	nodes *arena.Arena[record[K]]
	root  arena.Handle
	less  func(a, b K) bool
}

type config struct {
	limit int
}

// Option configures a Tree.
type Option func(*config)

// WithLimit caps the number of nodes a tree may hold. Inserting past the cap
// fails with ErrExhausted.
func WithLimit(n int) Option {
	return func(c *config) { c.limit = n }
}

// New creates an empty tree ordered by less.
func New[K any](less func(a, b K) bool, opts ...Option) *Tree[K] {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	return &Tree[K]{
		nodes: arena.New[record[K]](cfg.limit),
		less:  less,
	}
}

// NewWithRoot creates a tree holding the single key.
func NewWithRoot[K any](less func(a, b K) bool, key K, opts ...Option) (*Tree[K], error) {
	t := New(less, opts...)
	if err := t.SetRoot(key); err != nil {
		return nil, err
	}
	return t, nil
}

// FromKeys creates a tree by inserting keys in the given order. The shape of
// the result depends on that order.
func FromKeys[K any](less func(a, b K) bool, keys []K, opts ...Option) (*Tree[K], error) {
	t := New(less, opts...)
	for i, k := range keys {
		if err := t.Insert(k); err != nil {
			return nil, errors.Wrapf(err, "inserting key %v of %v", i, len(keys))
		}
	}
	return t, nil
}

func orderedLess[K constraints.Ordered](a, b K) bool { return a < b }

// NewOrdered creates an empty tree of naturally ordered keys.
func NewOrdered[K constraints.Ordered](opts ...Option) *Tree[K] {
	return New(orderedLess[K], opts...)
}

// OrderedFromKeys is FromKeys for naturally ordered keys.
func OrderedFromKeys[K constraints.Ordered](keys []K, opts ...Option) (*Tree[K], error) {
	return FromKeys(orderedLess[K], keys, opts...)
}

// Root returns the root node, or the empty node for an empty tree.
func (t *Tree[K]) Root() Node[K] { return t.node(t.root) }

// Len returns the number of nodes in the tree. It always agrees with Count.
func (t *Tree[K]) Len() int { return t.nodes.Len() }

// Empty reports whether the tree has no nodes.
func (t *Tree[K]) Empty() bool { return t.root.IsNil() }

// SetRoot discards every node and makes key the only one.
func (t *Tree[K]) SetRoot(key K) error {
	t.Clear()
	h, err := t.newRecord(key)
	if err != nil {
		return err
	}
	t.root = h
	return nil
}

// Clear releases every node, children before parents. Slots no longer
// reachable from the root are reclaimed as well.
func (t *Tree[K]) Clear() {
	t.releaseSubtree(t.root)
	t.root = arena.Nil
	t.nodes.Reset()
}

func (t *Tree[K]) releaseSubtree(h arena.Handle) {
	if h.IsNil() {
		return
	}
	r := t.rec(h)
	left, right := r.left, r.right
	t.releaseSubtree(left)
	t.releaseSubtree(right)
	t.release(h)
}

// Clone returns an independent copy built by re-inserting the keys in
// pre-order. Both trees have the same in-order sequence; node handles of one
// are meaningless to the other.
func (t *Tree[K]) Clone() *Tree[K] {
	c := New(t.less, WithLimit(t.nodes.Limit()))
	for k := range t.PreOrder() {
		if err := c.Insert(k); err != nil {
			// same limit and no more keys than the source
			panic(err)
		}
	}
	return c
}

// Move hands every node to a new tree and leaves t empty. Nodes taken from t
// before the move stay valid and now belong to the returned tree.
func (t *Tree[K]) Move() *Tree[K] {
	moved := &Tree[K]{
		nodes: t.nodes,
		root:  t.root,
		less:  t.less,
	}
	t.nodes = arena.New[record[K]](t.nodes.Limit())
	t.root = arena.Nil
	return moved
}

func (t *Tree[K]) equal(a, b K) bool {
	return !t.less(a, b) && !t.less(b, a)
}
