package bst

import (
	"fmt"
	"iter"
	"slices"
)

// Begin returns an iterator at the first element of order, or End when the
// tree is empty.
func (t *Tree[T]) Begin(order Order) Iterator[T] {
	return t.iter(first(order, t.root), order)
}

// End returns the past-the-end iterator of order.
func (t *Tree[T]) End(order Order) Iterator[T] {
	return t.iter(nil, order)
}

func (t *Tree[T]) CBegin(order Order) ConstIterator[T] {
	return t.Begin(order).Const()
}

func (t *Tree[T]) CEnd(order Order) ConstIterator[T] {
	return t.End(order).Const()
}

// RBegin returns a reverse iterator at the last element of order.
func (t *Tree[T]) RBegin(order Order) ReverseIterator[T] {
	return Reverse(t.End(order))
}

// REnd returns the reverse iterator one before the first element of order.
func (t *Tree[T]) REnd(order Order) ReverseIterator[T] {
	return Reverse(t.Begin(order))
}

func (t *Tree[T]) CRBegin(order Order) ConstReverseIterator[T] {
	return t.RBegin(order).Const()
}

func (t *Tree[T]) CREnd(order Order) ConstReverseIterator[T] {
	return t.REnd(order).Const()
}

// Front returns the first element of order. The boolean is false for an
// empty tree.
func (t *Tree[T]) Front(order Order) (T, bool) {
	it := t.Begin(order)
	return it.Value(), it.Valid()
}

// Back returns the last element of order. The boolean is false for an empty
// tree.
func (t *Tree[T]) Back(order Order) (T, bool) {
	it := t.End(order)
	ok := it.Prev()
	return it.Value(), ok
}

// Size counts the elements by walking the tree; it is O(n).
func (t *Tree[T]) Size() int {
	return t.End(InOrder).Sub(t.Begin(InOrder))
}

// Empty reports whether the tree holds no elements.
func (t *Tree[T]) Empty() bool {
	return t.Begin(InOrder).Equal(t.End(InOrder))
}

// Contains reports whether an element equal to value is stored.
func (t *Tree[T]) Contains(value T) bool {
	return t.find(value) != nil
}

// Count returns how many stored elements are equal to value. It scans the
// whole tree.
func (t *Tree[T]) Count(value T) int {
	count := 0
	for v := range t.All(InOrder) {
		if t.less.equivalent(value, v) {
			count++
		}
	}
	return count
}

// Equal reports whether both trees have the same shape and equivalent
// values at every position.
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	if t.Size() != other.Size() {
		return false
	}
	return equalNodes(t.less, t.root, other.root)
}

func equalNodes[T any](less Less[T], a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return less.equivalent(a.value, b.value) &&
		equalNodes(less, a.left, b.left) &&
		equalNodes(less, a.right, b.right)
}

// All yields the elements in the given order.
func (t *Tree[T]) All(order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := first(order, t.root); n != nil; n = next(order, n) {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields the elements of the given order from last to first.
func (t *Tree[T]) Backward(order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := last(order, t.root); n != nil; n = prev(order, n) {
			if !yield(n.value) {
				return
			}
		}
	}
}

// String formats the elements in order, e.g. "[1 2 3]".
func (t *Tree[T]) String() string {
	return fmt.Sprint(slices.Collect(t.All(InOrder)))
}
