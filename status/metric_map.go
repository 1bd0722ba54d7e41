package status

import (
	"iter"
	"maps"
	"slices"
	"sync"
)

// MetricMap holds named metrics of type T
// Lookups create on first use and return a stable pointer, callers cache it and update the atomic directly
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, creating it if absent
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// All yields metrics in key order
func (m *MetricMap[T]) All() iter.Seq2[string, *T] {
	return func(yield func(string, *T) bool) {
		m.mu.RLock()
		keys := slices.Sorted(maps.Keys(m.items))
		ptrs := make([]*T, len(keys))
		for i, k := range keys {
			ptrs[i] = m.items[k]
		}
		m.mu.RUnlock()

		for i, k := range keys {
			if !yield(k, ptrs[i]) {
				return
			}
		}
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
