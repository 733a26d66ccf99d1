package bst

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	firstOrder  = []int{13, 6, 15, 17, 20, 9, 4, 3, 7, 2, 18}
	secondOrder = []int{15, 6, 18, 3, 7, 17, 20, 2, 4, 13, 9}
	sortedKeys  = []int{2, 3, 4, 6, 7, 9, 13, 15, 17, 18, 20}
)

func mustOrdered(t *testing.T, keys []int, opts ...Option) *Tree[int] {
	t.Helper()
	tree, err := OrderedFromKeys(keys, opts...)
	require.NoError(t, err)
	return tree
}

func TestEmptyTree(t *testing.T) {
	assert := assert.New(t)
	tree := NewOrdered[int]()
	assert.True(tree.Empty())
	assert.True(tree.Root().IsNil())
	assert.True(tree.Minimum().IsNil())
	assert.True(tree.Maximum().IsNil())
	assert.True(tree.Successor().IsNil())
	assert.True(tree.Search(1).IsNil())
	assert.False(tree.Delete(1))
	assert.Equal(0, tree.DeleteAll(1))
	assert.Equal(0, tree.Count())
	assert.Equal(0, tree.Height())
	assert.Empty(slices.Collect(tree.InOrder()))
	assert.NoError(tree.Check())
}

func TestNewWithRoot(t *testing.T) {
	tree, err := NewWithRoot(func(a, b string) bool { return a < b }, "m")
	require.NoError(t, err)
	require.Equal(t, "m", tree.Root().Key())
	require.True(t, tree.Root().Parent().IsNil())
	require.Equal(t, 1, tree.Len())
}

func TestSetRootClears(t *testing.T) {
	tree := mustOrdered(t, firstOrder)
	require.NoError(t, tree.SetRoot(42))
	require.Equal(t, []int{42}, slices.Collect(tree.InOrder()))
	require.Equal(t, 1, tree.Len())
	require.NoError(t, tree.Check())
}

func TestCountConservation(t *testing.T) {
	tree := mustOrdered(t, firstOrder)
	require.Equal(t, len(firstOrder), tree.Count())
	require.Equal(t, len(firstOrder), tree.Len())
	require.Equal(t, 1, tree.CountKey(9))
	require.Equal(t, 0, tree.CountKey(10))
	require.Equal(t, 5, tree.CountIf(func(k int) bool { return k%2 == 0 }))
	require.NoError(t, tree.Insert(9))
	require.NoError(t, tree.Insert(9))
	require.Equal(t, 3, tree.CountKey(9))
	require.Equal(t, len(firstOrder)+2, tree.Count())
}

func TestSubtreeCounts(t *testing.T) {
	tree := mustOrdered(t, firstOrder)
	six := tree.Search(6)
	require.Equal(t, 6, tree.CountFrom(six))
	require.Equal(t, 1, tree.CountKeyFrom(six, 7))
	require.Equal(t, 0, tree.CountKeyFrom(six, 15))
	require.Equal(t, 3, tree.CountIfFrom(six, func(k int) bool { return k < 5 }))
}

func TestHeight(t *testing.T) {
	require.Equal(t, 5, mustOrdered(t, firstOrder).Height())
	require.Equal(t, 5, mustOrdered(t, secondOrder).Height())
	// sorted input degenerates into a list
	require.Equal(t, 11, mustOrdered(t, sortedKeys).Height())
}

func TestClear(t *testing.T) {
	tree := mustOrdered(t, firstOrder)
	old := tree.Search(9)
	tree.Clear()
	require.True(t, tree.Empty())
	require.Equal(t, 0, tree.Len())
	require.True(t, old.IsNil(), "nodes must go stale on Clear")
	require.NoError(t, tree.Insert(1))
	require.Equal(t, []int{1}, slices.Collect(tree.InOrder()))
	require.True(t, old.IsNil(), "reused slot must not revive a stale node")
}

func TestCloneIndependence(t *testing.T) {
	src := mustOrdered(t, firstOrder)
	cp := src.Clone()
	require.Equal(t, slices.Collect(src.InOrder()), slices.Collect(cp.InOrder()))
	require.Equal(t, slices.Collect(src.PreOrder()), slices.Collect(cp.PreOrder()))

	require.NoError(t, cp.Insert(100))
	require.Equal(t, 2, cp.DeleteAll(6)+cp.DeleteAll(13))
	require.Equal(t, sortedKeys, slices.Collect(src.InOrder()))
	require.NoError(t, src.Check())
	require.NoError(t, cp.Check())

	// nodes of one tree are foreign to the other
	require.True(t, cp.SuccessorOf(src.Search(9)).IsNil())
}

func TestMove(t *testing.T) {
	src := mustOrdered(t, firstOrder)
	nine := src.Search(9)
	dst := src.Move()

	require.True(t, src.Empty())
	require.Equal(t, 0, src.Len())
	require.Equal(t, sortedKeys, slices.Collect(dst.InOrder()))
	require.Equal(t, 13, dst.SuccessorOf(nine).Key())

	// the source stays usable
	require.NoError(t, src.Insert(5))
	require.Equal(t, []int{5}, slices.Collect(src.InOrder()))
	require.Equal(t, len(sortedKeys), dst.Len())
}

func TestLimit(t *testing.T) {
	tree := mustOrdered(t, []int{1, 2, 3}, WithLimit(3))
	err := tree.Insert(4)
	require.ErrorIs(t, err, ErrExhausted)
	require.Equal(t, []int{1, 2, 3}, slices.Collect(tree.InOrder()))
	require.NoError(t, tree.Check())

	require.True(t, tree.Delete(2))
	require.NoError(t, tree.Insert(4))

	cp := tree.Clone()
	require.ErrorIs(t, cp.Insert(5), ErrExhausted)
	moved := tree.Move()
	require.ErrorIs(t, moved.Insert(5), ErrExhausted)
	for _, k := range []int{6, 7, 8} {
		require.NoError(t, tree.Insert(k))
	}
	require.ErrorIs(t, tree.Insert(9), ErrExhausted)

	_, err = OrderedFromKeys(firstOrder, WithLimit(5))
	require.ErrorIs(t, err, ErrExhausted)
	require.Contains(t, err.Error(), "inserting key 5 of 11")
}

func TestKeyOnEmptyNodePanics(t *testing.T) {
	require.PanicsWithValue(t, ErrNoKey, func() { Node[int]{}.Key() })
	tree := NewOrdered[int]()
	require.PanicsWithValue(t, ErrNoKey, func() { tree.Minimum().Key() })
}

func TestNodeNavigation(t *testing.T) {
	tree := mustOrdered(t, firstOrder)
	root := tree.Root()
	require.Equal(t, 13, root.Key())
	require.Equal(t, 6, root.Left().Key())
	require.Equal(t, 15, root.Right().Key())
	require.True(t, root.Parent().IsNil())
	require.True(t, root.Left().Parent().Equal(root))
	require.True(t, root.Right().Left().IsNil())
	require.True(t, Node[int]{}.Equal(tree.Search(99)))
	require.False(t, root.Equal(root.Left()))
}

func TestDumpDOT(t *testing.T) {
	tree := mustOrdered(t, []int{2, 1, 3})
	var buf bytes.Buffer
	tree.DumpDOT(&buf)
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "digraph G {"))
	require.True(t, strings.HasSuffix(out, "}\n"))
	require.Equal(t, 5, strings.Count(out, "[label="))
	require.Equal(t, 2, strings.Count(out, " -> "))
	require.Contains(t, out, "[label=\"L\"]")
	require.Contains(t, out, "[label=\"R\"]")
}

func BenchmarkInsert(b *testing.B) {
	tree := NewOrdered[int]()
	for i := 0; i < b.N; i++ {
		tree.Insert((i * 7919) % 100003)
	}
}

func BenchmarkSearch(b *testing.B) {
	tree := NewOrdered[int]()
	for i := 0; i < 10000; i++ {
		tree.Insert((i * 7919) % 10007)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Search(i % 10007)
	}
}
