package bst

import "sync"

// PoolAllocator recycles released nodes through a sync.Pool. It is safe to
// share between trees used on different goroutines.
type PoolAllocator[T any] struct {
	nodePool sync.Pool
	metrics  *Metrics
}

// NewPoolAllocator returns a pooling allocator. A nil metrics disables
// counting.
func NewPoolAllocator[T any](metrics *Metrics) *PoolAllocator[T] {
	a := &PoolAllocator[T]{metrics: metrics}
	a.nodePool.New = func() any {
		return new(Node[T])
	}
	return a
}

// Metrics returns the counters the allocator reports to, possibly nil.
func (a *PoolAllocator[T]) Metrics() *Metrics {
	return a.metrics
}

func (a *PoolAllocator[T]) Allocate() (*Node[T], error) {
	n := a.nodePool.Get().(*Node[T])
	a.metrics.IncAllocation()
	return n, nil
}

func (a *PoolAllocator[T]) Deallocate(n *Node[T]) {
	if n == nil {
		return
	}
	n.destroy()
	a.metrics.IncDeallocation()
	a.nodePool.Put(n)
}
