package bst

// Iterator is a bidirectional cursor over a Tree in one traversal order.
// It is anchored at a node, so it stays valid across mutations that do not
// remove that node. The zero value is not usable; obtain iterators from a
// Tree.
//
// A nil node is the end position. Next on the end position does nothing;
// Prev on the end position moves to the last element of the order, and Prev
// on the first element moves to the end position.
type Iterator[T any] struct {
	node  *Node[T]
	tree  *Tree[T]
	order Order
}

// Order reports the traversal order the iterator steps in.
func (it Iterator[T]) Order() Order {
	return it.order
}

// In returns an iterator at the same node that steps in the given order.
func (it Iterator[T]) In(order Order) Iterator[T] {
	it.order = order
	return it
}

// Valid reports whether the iterator is positioned at an element.
func (it Iterator[T]) Valid() bool {
	return it.node != nil
}

// Value returns the element at the iterator's position, or the zero value
// at the end position.
func (it Iterator[T]) Value() T {
	if it.node == nil {
		var zero T
		return zero
	}
	return it.node.value
}

// Pointer returns the address of the stored element, or nil at the end
// position. Writes through it must not change the element's ordering
// relative to its neighbours.
func (it Iterator[T]) Pointer() *T {
	if it.node == nil {
		return nil
	}
	return &it.node.value
}

// Node exposes the node the iterator is anchored at.
func (it Iterator[T]) Node() *Node[T] {
	return it.node
}

// Next advances to the following element and reports whether the iterator
// is still positioned at an element.
func (it *Iterator[T]) Next() bool {
	if it.node == nil {
		return false
	}
	it.node = next(it.order, it.node)
	return it.node != nil
}

// Prev steps back to the preceding element and reports whether the iterator
// is positioned at an element.
func (it *Iterator[T]) Prev() bool {
	if it.node == nil {
		if it.tree == nil {
			return false
		}
		it.node = last(it.order, it.tree.root)
		return it.node != nil
	}
	it.node = prev(it.order, it.node)
	return it.node != nil
}

// Equal reports whether both iterators sit on the same node of the same tree.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node && it.tree == other.tree
}

// stepsTo walks forward from it until it meets target or runs off the end
// of the order.
func (it Iterator[T]) stepsTo(target Iterator[T]) (int, bool) {
	steps := 0
	for cur := it; ; steps++ {
		if cur.Equal(target) {
			return steps, true
		}
		if cur.node == nil {
			return steps, false
		}
		cur.Next()
	}
}

// Sub returns it - other: the number of forward steps that lead from other
// to it, negative when it comes before other. It costs O(n) because no
// positions are cached.
func (it Iterator[T]) Sub(other Iterator[T]) int {
	if steps, ok := it.stepsTo(other); ok {
		return -steps
	}
	steps, _ := other.stepsTo(it)
	return steps
}

// Less reports whether it comes strictly before other in the iterator's
// order. Like Sub it walks the order and costs O(n).
func (it Iterator[T]) Less(other Iterator[T]) bool {
	if it.Equal(other) {
		return false
	}
	_, ok := it.stepsTo(other)
	return ok
}

func (it Iterator[T]) LessEqual(other Iterator[T]) bool {
	_, ok := it.stepsTo(other)
	return ok
}

func (it Iterator[T]) Greater(other Iterator[T]) bool {
	return other.Less(it)
}

func (it Iterator[T]) GreaterEqual(other Iterator[T]) bool {
	return !it.Less(other)
}

// Const returns a read-only view of the iterator.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

// ConstIterator is an Iterator that does not hand out element addresses.
type ConstIterator[T any] struct {
	it Iterator[T]
}

func (c ConstIterator[T]) Order() Order {
	return c.it.order
}

func (c ConstIterator[T]) In(order Order) ConstIterator[T] {
	return c.it.In(order).Const()
}

func (c ConstIterator[T]) Valid() bool {
	return c.it.Valid()
}

func (c ConstIterator[T]) Value() T {
	return c.it.Value()
}

func (c *ConstIterator[T]) Next() bool {
	return c.it.Next()
}

func (c *ConstIterator[T]) Prev() bool {
	return c.it.Prev()
}

func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return c.it.Equal(other.it)
}

func (c ConstIterator[T]) Sub(other ConstIterator[T]) int {
	return c.it.Sub(other.it)
}

func (c ConstIterator[T]) Less(other ConstIterator[T]) bool {
	return c.it.Less(other.it)
}

func (c ConstIterator[T]) LessEqual(other ConstIterator[T]) bool {
	return c.it.LessEqual(other.it)
}

func (c ConstIterator[T]) Greater(other ConstIterator[T]) bool {
	return c.it.Greater(other.it)
}

func (c ConstIterator[T]) GreaterEqual(other ConstIterator[T]) bool {
	return c.it.GreaterEqual(other.it)
}
