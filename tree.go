// Package bst provides an ordered multiset on an unbalanced binary search
// tree whose nodes carry parent links, so the same structure can be walked
// in-order, pre-order and post-order with bidirectional iterators.
//
// The tree does not rebalance: inserting sorted input produces a list-shaped
// tree. A Tree is not safe for concurrent use; readers may share an
// unmodified tree, but any mutation must be serialized by the caller.
package bst

import "golang.org/x/exp/constraints"

// Tree is an ordered multiset ordered by an injected Less.
type Tree[T any] struct {
	root  *Node[T]
	less  Less[T]
	alloc Allocator[T]
}

// Option configures a Tree at construction.
type Option[T any] func(*Tree[T])

// WithAllocator makes the tree obtain and release nodes through a.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(t *Tree[T]) {
		if a != nil {
			t.alloc = a
		}
	}
}

// New returns an empty tree ordered by the natural order of T.
func New[T constraints.Ordered](opts ...Option[T]) *Tree[T] {
	return NewWithLess[T](OrderedLess[T], opts...)
}

// NewWithLess returns an empty tree ordered by less.
func NewWithLess[T any](less Less[T], opts ...Option[T]) *Tree[T] {
	t := &Tree[T]{
		less:  less,
		alloc: HeapAllocator[T]{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Comparator returns the ordering the tree was built with.
func (t *Tree[T]) Comparator() Less[T] {
	return t.less
}

// Allocator returns the allocator nodes are obtained from.
func (t *Tree[T]) Allocator() Allocator[T] {
	return t.alloc
}

func (t *Tree[T]) mutator() mutatorImpl[T] {
	return mutatorImpl[T]{t: t}
}

func (t *Tree[T]) iter(n *Node[T], order Order) Iterator[T] {
	return Iterator[T]{node: n, tree: t, order: order}
}

// Insert adds value and returns an in-order iterator at the new element.
// Duplicates are kept, so insertion only fails when the allocator does;
// in that case the tree is left unchanged and the allocator's error is
// returned.
func (t *Tree[T]) Insert(value T) (Iterator[T], error) {
	n, err := t.mutator().insert(value)
	if err != nil {
		return t.End(InOrder), err
	}
	return t.iter(n, InOrder), nil
}

// Erase removes one element equal to value and reports whether one existed.
// When the removed element had two children, its in-order successor's value
// is moved into its node and the successor's node is released instead, so
// iterators at that successor are invalidated too.
func (t *Tree[T]) Erase(value T) bool {
	_, ok := t.mutator().remove(&t.root, value)
	return ok
}

// Extract removes one element equal to value and returns it. The boolean is
// false, and the value the zero value, when no element matched.
func (t *Tree[T]) Extract(value T) (T, bool) {
	return t.mutator().remove(&t.root, value)
}

// Clear releases every node.
func (t *Tree[T]) Clear() {
	root := t.root
	t.root = nil
	t.mutator().destroy(root)
}

// Clone returns a deep copy sharing the comparator and allocator.
func (t *Tree[T]) Clone() (*Tree[T], error) {
	return t.CloneWithAllocator(t.alloc)
}

// CloneWithAllocator returns a deep copy whose nodes come from a.
func (t *Tree[T]) CloneWithAllocator(a Allocator[T]) (*Tree[T], error) {
	c := NewWithLess(t.less, WithAllocator(a))
	root, err := c.mutator().clone(t.root, nil)
	if err != nil {
		return nil, err
	}
	c.root = root
	return c, nil
}

// Assign replaces the contents, comparator and allocator of t with a deep
// copy of src. On error t is left unchanged.
func (t *Tree[T]) Assign(src *Tree[T]) error {
	if t == src {
		return nil
	}
	c, err := src.Clone()
	if err != nil {
		return err
	}
	t.Clear()
	t.root, t.less, t.alloc = c.root, c.less, c.alloc
	return nil
}

// Swap exchanges the contents of two trees. Iterators obtained before the
// swap are invalidated.
func (t *Tree[T]) Swap(other *Tree[T]) {
	t.root, other.root = other.root, t.root
	t.less, other.less = other.less, t.less
	t.alloc, other.alloc = other.alloc, t.alloc
}

// find returns the first node on the descent that is equivalent to value.
func (t *Tree[T]) find(value T) *Node[T] {
	cur := t.root
	for cur != nil {
		switch {
		case t.less(value, cur.value):
			cur = cur.left
		case t.less(cur.value, value):
			cur = cur.right
		default:
			return cur
		}
	}
	return nil
}

// lowerBound returns the first node in order that does not sort before key.
func (t *Tree[T]) lowerBound(key T) *Node[T] {
	var candidate *Node[T]
	for cur := t.root; cur != nil; {
		if t.less(cur.value, key) {
			cur = cur.right
		} else {
			candidate = cur
			cur = cur.left
		}
	}
	return candidate
}

// upperBound returns the first node in order that sorts after key.
func (t *Tree[T]) upperBound(key T) *Node[T] {
	var candidate *Node[T]
	for cur := t.root; cur != nil; {
		if t.less(key, cur.value) {
			candidate = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return candidate
}

// Find returns an in-order iterator at an element equal to value, or End.
func (t *Tree[T]) Find(value T) Iterator[T] {
	return t.iter(t.find(value), InOrder)
}

// LowerBound returns an in-order iterator at the first element not less
// than key, or End.
func (t *Tree[T]) LowerBound(key T) Iterator[T] {
	return t.iter(t.lowerBound(key), InOrder)
}

// UpperBound returns an in-order iterator at the first element greater than
// key, or End.
func (t *Tree[T]) UpperBound(key T) Iterator[T] {
	return t.iter(t.upperBound(key), InOrder)
}

// EqualRange returns the half-open range [LowerBound(key), UpperBound(key)).
func (t *Tree[T]) EqualRange(key T) (Iterator[T], Iterator[T]) {
	return t.LowerBound(key), t.UpperBound(key)
}
