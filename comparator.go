package bst

import (
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"golang.org/x/exp/constraints"
)

// Less reports whether a sorts before b. It must be a strict weak ordering.
type Less[T any] func(a, b T) bool

// OrderedLess is the natural ordering of builtin ordered types.
func OrderedLess[T constraints.Ordered](a, b T) bool {
	return a < b
}

// FromComparator adapts a three-way gods comparator.
func FromComparator[T any](c utils.Comparator) Less[T] {
	return func(a, b T) bool {
		return c(a, b) < 0
	}
}

// FromLessFunc adapts a google/btree ordering.
func FromLessFunc[T any](less btree.LessFunc[T]) Less[T] {
	return Less[T](less)
}

// ItemLess orders values that implement llrb.Item by their own Less method.
func ItemLess[T llrb.Item]() Less[T] {
	return func(a, b T) bool {
		return a.Less(b)
	}
}

// equivalent reports whether neither value sorts before the other.
func (less Less[T]) equivalent(a, b T) bool {
	return !less(a, b) && !less(b, a)
}
