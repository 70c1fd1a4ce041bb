package bst

import (
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the search-tree ordering and that every child
// points back at its parent.
func checkInvariants[T any](t testing.TB, tree *Tree[T]) {
	t.Helper()
	if tree.root == nil {
		return
	}
	require.Nil(t, tree.root.parent, "root must not have a parent")

	var check func(n *Node[T], lower, upper *T)
	check = func(n *Node[T], lower, upper *T) {
		if lower != nil {
			require.False(t, tree.less(n.value, *lower), "%v sorts before its lower bound %v", n.value, *lower)
		}
		if upper != nil {
			require.True(t, tree.less(n.value, *upper), "%v does not sort before its upper bound %v", n.value, *upper)
		}
		if n.left != nil {
			require.Same(t, n, n.left.parent, "left child of %v has a stale parent", n.value)
			check(n.left, lower, &n.value)
		}
		if n.right != nil {
			require.Same(t, n, n.right.parent, "right child of %v has a stale parent", n.value)
			check(n.right, &n.value, upper)
		}
	}
	check(tree.root, nil, nil)
}

func TestTreeInsertKeepsInvariants(t *testing.T) {
	tree := sampleTree(t)
	checkInvariants(t, tree)
	assert.Equal(t, len(sampleValues), tree.Size())
	assert.False(t, tree.Empty())
	assert.Equal(t, "[4 10 12 15 18 22 24 25 31 35 44 50 66 70 90]", tree.String())
}

func TestTreeInsertReturnsIteratorAtNewElement(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{5, 3, 8, 5} {
		it, err := tree.Insert(v)
		require.NoError(t, err)
		require.True(t, it.Valid())
		assert.Equal(t, v, it.Value())
		assert.Equal(t, InOrder, it.Order())
	}

	it, err := tree.Insert(4)
	require.NoError(t, err)
	require.True(t, it.Next())
	assert.Equal(t, 5, it.Value())
}

func TestTreeDuplicatesAreKept(t *testing.T) {
	tree := buildTree(t, New[int](), 5, 3, 5, 7, 5, 1)
	checkInvariants(t, tree)

	assert.Equal(t, []int{1, 3, 5, 5, 5, 7}, forward(tree, InOrder))
	assert.Equal(t, 3, tree.Count(5))
	assert.Equal(t, 0, tree.Count(4))

	lo, hi := tree.EqualRange(5)
	assert.Equal(t, 3, hi.Sub(lo))
	for it := lo; !it.Equal(hi); it.Next() {
		assert.Equal(t, 5, it.Value())
	}

	require.True(t, tree.Erase(5))
	assert.Equal(t, 2, tree.Count(5))
	checkInvariants(t, tree)
}

func TestTreeEraseShapes(t *testing.T) {
	cases := []struct {
		name  string
		erase int
	}{
		{"leaf", 4},
		{"inner with two children", 15},
		{"root", 25},
		{"inner on the right spine", 50},
		{"last", 90},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree := sampleTree(t)
			require.True(t, tree.Erase(tc.erase))
			checkInvariants(t, tree)
			assert.Equal(t, len(sampleValues)-1, tree.Size())
			assert.False(t, tree.Contains(tc.erase))

			var want []int
			for _, v := range sampleOrders[InOrder] {
				if v != tc.erase {
					want = append(want, v)
				}
			}
			assert.Equal(t, want, forward(tree, InOrder))
			for _, order := range Orders {
				assert.Equal(t, reversed(reference(tree, order)), backward(tree, order))
			}
		})
	}
}

func TestTreeEraseSuccessorWithRightChild(t *testing.T) {
	tree := buildTree(t, New[int](), 10, 5, 20, 15, 17, 16)
	require.True(t, tree.Erase(10))
	checkInvariants(t, tree)

	assert.Equal(t, []int{5, 15, 16, 17, 20}, forward(tree, InOrder))
	assert.Equal(t, []int{15, 5, 20, 17, 16}, forward(tree, PreOrder))
}

func TestTreeEraseSingleChildSplices(t *testing.T) {
	tree := buildTree(t, New[byte](), []byte("eorqdaf")...)

	require.True(t, tree.Erase('r'))
	require.True(t, tree.Erase('d'))
	checkInvariants(t, tree)

	assert.Equal(t, 5, tree.Size())
	assert.True(t, tree.Find('d').Equal(tree.End(InOrder)))
	front, ok := tree.Front(InOrder)
	require.True(t, ok)
	assert.Equal(t, byte('a'), front)
	back, ok := tree.Back(InOrder)
	require.True(t, ok)
	assert.Equal(t, byte('q'), back)
}

func TestTreeEraseMissing(t *testing.T) {
	tree := sampleTree(t)
	assert.False(t, tree.Erase(100))
	assert.False(t, New[int]().Erase(1))
	assert.Equal(t, len(sampleValues), tree.Size())
}

func TestTreeEraseUntilEmpty(t *testing.T) {
	r := newRNGWithSeed(7)
	tree := sampleTree(t)
	for _, i := range r.perm(len(sampleValues)) {
		require.True(t, tree.Erase(sampleValues[i]))
		checkInvariants(t, tree)
	}
	assert.True(t, tree.Empty())
	assert.Nil(t, tree.root)
}

func TestTreePostOrderAfterErase(t *testing.T) {
	tree := sampleTree(t)
	require.True(t, tree.Erase(15))
	assert.Equal(t, 14, tree.Size())

	front, _ := tree.Front(PostOrder)
	assert.Equal(t, 4, front)
	back, _ := tree.Back(PostOrder)
	assert.Equal(t, 25, back)
	assert.True(t, tree.Contains(31))

	tree.Clear()
	assert.True(t, tree.Empty())
}

func TestTreeFrontBack(t *testing.T) {
	tree := sampleTree(t)
	for order, want := range sampleOrders {
		front, ok := tree.Front(order)
		require.True(t, ok)
		assert.Equal(t, want[0], front, order.String())
		back, ok := tree.Back(order)
		require.True(t, ok)
		assert.Equal(t, want[len(want)-1], back, order.String())
	}

	empty := New[int]()
	_, ok := empty.Front(PreOrder)
	assert.False(t, ok)
	_, ok = empty.Back(PostOrder)
	assert.False(t, ok)
}

func TestTreeSizeAgreesAcrossOrders(t *testing.T) {
	tree := sampleTree(t)
	for _, order := range Orders {
		assert.Equal(t, tree.Size(), tree.End(order).Sub(tree.Begin(order)))
	}
}

func TestTreeBounds(t *testing.T) {
	tree := sampleTree(t)

	assert.True(t, tree.UpperBound(25).Equal(tree.Find(31)))
	assert.Equal(t, 25, tree.LowerBound(25).Value())
	assert.Equal(t, 31, tree.LowerBound(26).Value())
	assert.Equal(t, 4, tree.LowerBound(-1).Value())
	assert.True(t, tree.LowerBound(91).Equal(tree.End(InOrder)))
	assert.True(t, tree.UpperBound(90).Equal(tree.End(InOrder)))
	assert.Equal(t, 1, tree.Count(25))

	lo, hi := tree.EqualRange(30)
	assert.True(t, lo.Equal(hi))
	assert.Equal(t, 31, lo.Value())
}

func TestTreeBoundsAgreeWithBTree(t *testing.T) {
	r := newRNGWithSeed(99)
	tree := New[int]()
	oracle := btree.NewG[int](8, btree.Less[int]())
	for _, v := range r.perm(512) {
		v *= 2
		_, err := tree.Insert(v)
		require.NoError(t, err)
		oracle.ReplaceOrInsert(v)
	}
	for _, v := range r.perm(256) {
		tree.Erase(v * 4)
		oracle.Delete(v * 4)
	}

	var want []int
	oracle.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	require.Equal(t, want, forward(tree, InOrder))
	checkInvariants(t, tree)

	for q := -1; q <= 1025; q++ {
		lower, lowerOK := 0, false
		oracle.AscendGreaterOrEqual(q, func(v int) bool {
			lower, lowerOK = v, true
			return false
		})
		upper, upperOK := 0, false
		oracle.AscendGreaterOrEqual(q+1, func(v int) bool {
			upper, upperOK = v, true
			return false
		})

		lb := tree.LowerBound(q)
		require.Equal(t, lowerOK, lb.Valid(), "LowerBound(%d)", q)
		if lowerOK {
			require.Equal(t, lower, lb.Value(), "LowerBound(%d)", q)
		}
		ub := tree.UpperBound(q)
		require.Equal(t, upperOK, ub.Valid(), "UpperBound(%d)", q)
		if upperOK {
			require.Equal(t, upper, ub.Value(), "UpperBound(%d)", q)
		}
		_, has := oracle.Get(q)
		require.Equal(t, has, tree.Contains(q), "Contains(%d)", q)
	}
}

func TestTreeExtract(t *testing.T) {
	tree := sampleTree(t)

	v, ok := tree.Extract(15)
	require.True(t, ok)
	assert.Equal(t, 15, v)
	assert.False(t, tree.Contains(15))
	checkInvariants(t, tree)

	v, ok = tree.Extract(15)
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestTreeExtractReturnsStoredValue(t *testing.T) {
	type entry struct {
		key   int
		label string
	}
	tree := NewWithLess[entry](func(a, b entry) bool { return a.key < b.key })
	buildTree(t, tree, entry{2, "two"}, entry{1, "one"}, entry{3, "three"})

	v, ok := tree.Extract(entry{key: 2})
	require.True(t, ok)
	assert.Equal(t, "two", v.label)
	assert.Equal(t, 2, tree.Size())
}

func TestTreeEquality(t *testing.T) {
	a := sampleTree(t)
	b := sampleTree(t)
	assert.True(t, a.Equal(b))

	_, ok := a.Extract(15)
	require.True(t, ok)
	assert.False(t, a.Equal(b))
	assert.False(t, b.Equal(a))

	_, ok = b.Extract(15)
	require.True(t, ok)
	assert.True(t, a.Equal(b))

	assert.True(t, New[int]().Equal(New[int]()))
}

func TestTreeEqualityComparesShape(t *testing.T) {
	a := buildTree(t, New[int](), 2, 1, 3)
	b := buildTree(t, New[int](), 1, 2, 3)
	assert.Equal(t, forward(a, InOrder), forward(b, InOrder))
	assert.False(t, a.Equal(b))
}

func TestTreeCustomComparator(t *testing.T) {
	tree := NewWithLess[int](func(a, b int) bool { return a > b })
	buildTree(t, tree, 3, 1, 4, 1, 5, 9, 2, 6)
	checkInvariants(t, tree)

	assert.Equal(t, []int{9, 6, 5, 4, 3, 2, 1, 1}, forward(tree, InOrder))
	assert.Equal(t, 4, tree.LowerBound(4).Value())
	assert.Equal(t, 3, tree.UpperBound(4).Value())
	assert.True(t, tree.Comparator()(2, 1))
}

func TestTreeClear(t *testing.T) {
	tree := sampleTree(t)
	tree.Clear()
	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Size())
	for _, order := range Orders {
		assert.True(t, tree.Begin(order).Equal(tree.End(order)))
	}

	_, err := tree.Insert(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, forward(tree, InOrder))

	New[int]().Clear()
}

func TestTreeCloneIsDeep(t *testing.T) {
	tree := sampleTree(t)
	clone, err := tree.Clone()
	require.NoError(t, err)
	checkInvariants(t, clone)
	assert.True(t, tree.Equal(clone))

	for _, order := range Orders {
		assert.Equal(t, forward(tree, order), forward(clone, order))
	}
	assert.NotSame(t, tree.root, clone.root)

	require.True(t, clone.Erase(25))
	assert.True(t, tree.Contains(25))
	assert.False(t, tree.Equal(clone))
}

func TestTreeAssign(t *testing.T) {
	src := sampleTree(t)
	dst := buildTree(t, New[int](), 1, 2, 3)

	require.NoError(t, dst.Assign(src))
	checkInvariants(t, dst)
	assert.True(t, dst.Equal(src))

	require.NoError(t, dst.Assign(dst))
	assert.True(t, dst.Equal(src))

	src.Clear()
	assert.Equal(t, len(sampleValues), dst.Size())
}

func TestTreeSwap(t *testing.T) {
	a := sampleTree(t)
	b := buildTree(t, NewWithLess[int](func(x, y int) bool { return x > y }), 1, 2)

	a.Swap(b)
	assert.Equal(t, []int{2, 1}, forward(a, InOrder))
	assert.Equal(t, sampleOrders[InOrder], forward(b, InOrder))

	_, err := a.Insert(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, forward(a, InOrder))
}

func TestTreeFindOnEmpty(t *testing.T) {
	tree := New[string]()
	assert.False(t, tree.Find("x").Valid())
	assert.False(t, tree.LowerBound("x").Valid())
	assert.False(t, tree.UpperBound("x").Valid())
	assert.False(t, tree.Contains("x"))
	assert.Equal(t, 0, tree.Count("x"))
	assert.Equal(t, "[]", tree.String())
}

func TestTreeSpliceRelinksParent(t *testing.T) {
	var splices int
	spliceHook = func(removed, replacement any) {
		splices++
		gone := removed.(*Node[int])
		child := replacement.(*Node[int])
		if child != nil {
			require.Same(t, gone.parent, child.parent)
		}
	}
	t.Cleanup(func() { spliceHook = nil })

	tree := sampleTree(t)
	for _, v := range []int{10, 25, 90, 4} {
		require.True(t, tree.Erase(v))
	}
	assert.Equal(t, 4, splices)
	checkInvariants(t, tree)
}
