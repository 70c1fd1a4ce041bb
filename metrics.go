package bst

import "sync/atomic"

// Metrics counts allocator traffic. Counters are atomic so one Metrics may be
// shared by allocators serving trees on different goroutines.
type Metrics struct {
	allocations   atomic.Int64
	deallocations atomic.Int64
	failures      atomic.Int64
}

func (m *Metrics) IncAllocation() {
	if m == nil {
		return
	}
	m.allocations.Add(1)
}

func (m *Metrics) IncDeallocation() {
	if m == nil {
		return
	}
	m.deallocations.Add(1)
}

func (m *Metrics) IncFailure() {
	if m == nil {
		return
	}
	m.failures.Add(1)
}

// Allocations returns the number of nodes handed out.
func (m *Metrics) Allocations() int64 {
	return m.allocations.Load()
}

// Deallocations returns the number of nodes given back.
func (m *Metrics) Deallocations() int64 {
	return m.deallocations.Load()
}

// Failures returns the number of refused allocations.
func (m *Metrics) Failures() int64 {
	return m.failures.Load()
}

// Live returns the number of nodes currently held by trees.
func (m *Metrics) Live() int64 {
	return m.allocations.Load() - m.deallocations.Load()
}
