package bst

// Allocator hands out and takes back tree nodes. The tree constructs a node
// after Allocate and clears it before Deallocate, so an allocator only
// manages storage. A failing Allocate aborts the operation that needed the
// node and its error is returned to the caller unchanged.
//
// Allocators are stored by value inside a tree and are shared by clones,
// mirroring how a copied container copies its allocator.
type Allocator[T any] interface {
	Allocate() (*Node[T], error)
	Deallocate(n *Node[T])
}

// HeapAllocator allocates every node with new and leaves reclamation to the
// garbage collector.
type HeapAllocator[T any] struct{}

func (HeapAllocator[T]) Allocate() (*Node[T], error) {
	return new(Node[T]), nil
}

func (HeapAllocator[T]) Deallocate(*Node[T]) {}

// LimitedAllocator caps the number of live nodes obtained from Base.
// It is not safe for concurrent use.
type LimitedAllocator[T any] struct {
	Base    Allocator[T]
	Limit   int
	Metrics *Metrics

	live int
}

// NewLimitedAllocator returns an allocator that fails with
// ErrAllocatorExhausted once limit nodes are live.
func NewLimitedAllocator[T any](base Allocator[T], limit int) *LimitedAllocator[T] {
	if base == nil {
		base = HeapAllocator[T]{}
	}
	return &LimitedAllocator[T]{Base: base, Limit: limit, Metrics: new(Metrics)}
}

func (a *LimitedAllocator[T]) Allocate() (*Node[T], error) {
	if a.live >= a.Limit {
		a.Metrics.IncFailure()
		return nil, ErrAllocatorExhausted
	}
	n, err := a.Base.Allocate()
	if err != nil {
		a.Metrics.IncFailure()
		return nil, err
	}
	a.live++
	a.Metrics.IncAllocation()
	return n, nil
}

func (a *LimitedAllocator[T]) Deallocate(n *Node[T]) {
	if n == nil {
		return
	}
	a.live--
	a.Metrics.IncDeallocation()
	a.Base.Deallocate(n)
}

// Live returns the number of nodes handed out and not yet returned.
func (a *LimitedAllocator[T]) Live() int {
	return a.live
}
