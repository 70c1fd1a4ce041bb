package bst

// ReverseIterator walks an order backwards. It wraps a base iterator and
// refers to the element just before the base, so the reverse of End is the
// last element and the reverse of Begin is one past the first.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// Reverse adapts an iterator into a reverse iterator whose base is it.
func Reverse[T any](it Iterator[T]) ReverseIterator[T] {
	return ReverseIterator[T]{base: it}
}

// Base returns the underlying forward iterator.
func (r ReverseIterator[T]) Base() Iterator[T] {
	return r.base
}

func (r ReverseIterator[T]) current() Iterator[T] {
	cur := r.base
	cur.Prev()
	return cur
}

func (r ReverseIterator[T]) Valid() bool {
	return r.current().Valid()
}

func (r ReverseIterator[T]) Value() T {
	return r.current().Value()
}

func (r ReverseIterator[T]) Pointer() *T {
	return r.current().Pointer()
}

func (r *ReverseIterator[T]) Next() bool {
	r.base.Prev()
	return r.Valid()
}

func (r *ReverseIterator[T]) Prev() bool {
	r.base.Next()
	return r.Valid()
}

func (r ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return r.base.Equal(other.base)
}

// Sub returns r - other counted in reverse steps.
func (r ReverseIterator[T]) Sub(other ReverseIterator[T]) int {
	return other.base.Sub(r.base)
}

func (r ReverseIterator[T]) Less(other ReverseIterator[T]) bool {
	return other.base.Less(r.base)
}

func (r ReverseIterator[T]) LessEqual(other ReverseIterator[T]) bool {
	return other.base.LessEqual(r.base)
}

func (r ReverseIterator[T]) Greater(other ReverseIterator[T]) bool {
	return other.Less(r)
}

func (r ReverseIterator[T]) GreaterEqual(other ReverseIterator[T]) bool {
	return !r.Less(other)
}

// Const returns a read-only view of the reverse iterator.
func (r ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{r: r}
}

// ConstReverseIterator is a ReverseIterator that does not hand out element
// addresses.
type ConstReverseIterator[T any] struct {
	r ReverseIterator[T]
}

func (c ConstReverseIterator[T]) Base() ConstIterator[T] {
	return c.r.base.Const()
}

func (c ConstReverseIterator[T]) Valid() bool {
	return c.r.Valid()
}

func (c ConstReverseIterator[T]) Value() T {
	return c.r.Value()
}

func (c *ConstReverseIterator[T]) Next() bool {
	return c.r.Next()
}

func (c *ConstReverseIterator[T]) Prev() bool {
	return c.r.Prev()
}

func (c ConstReverseIterator[T]) Equal(other ConstReverseIterator[T]) bool {
	return c.r.Equal(other.r)
}

func (c ConstReverseIterator[T]) Sub(other ConstReverseIterator[T]) int {
	return c.r.Sub(other.r)
}

func (c ConstReverseIterator[T]) Less(other ConstReverseIterator[T]) bool {
	return c.r.Less(other.r)
}

func (c ConstReverseIterator[T]) LessEqual(other ConstReverseIterator[T]) bool {
	return c.r.LessEqual(other.r)
}

func (c ConstReverseIterator[T]) Greater(other ConstReverseIterator[T]) bool {
	return c.r.Greater(other.r)
}

func (c ConstReverseIterator[T]) GreaterEqual(other ConstReverseIterator[T]) bool {
	return c.r.GreaterEqual(other.r)
}
