// Package memo provides a partitioned, insert-only map for memoizing pure
// functions from many goroutines.
package memo

import (
	"hash/maphash"
	"sync"
)

// Key is a map key that can pick its partition.
type Key interface {
	comparable
	MapHash(seed maphash.Seed) uint64
}

type part[K Key, V any] struct {
	mu sync.Mutex
	m  map[K]V
}

// Map is a concurrent map split into partitions, each with its own lock.
// Entries are never replaced or removed.
type Map[K Key, V any] struct {
	numPart uint64
	seed    maphash.Seed
	parts   []*part[K, V]
}

// New returns a Map with numPart partitions.
func New[K Key, V any](numPart uint64) *Map[K, V] {
	if numPart == 0 {
		numPart = 1
	}
	pm := &Map[K, V]{
		numPart: numPart,
		seed:    maphash.MakeSeed(),
		parts:   make([]*part[K, V], numPart),
	}
	for i := range pm.parts {
		pm.parts[i] = &part[K, V]{m: make(map[K]V)}
	}
	return pm
}

func (pm *Map[K, V]) part(k K) *part[K, V] {
	return pm.parts[k.MapHash(pm.seed)%pm.numPart]
}

func (pm *Map[K, V]) Load(k K) (V, bool) {
	part := pm.part(k)
	part.mu.Lock()
	v, ok := part.m[k]
	part.mu.Unlock()
	return v, ok
}

// Store stores v under k unless k is already present. It reports whether v
// was stored.
func (pm *Map[K, V]) Store(k K, v V) bool {
	part := pm.part(k)
	part.mu.Lock()
	defer part.mu.Unlock()
	if _, ok := part.m[k]; ok {
		return false
	}
	part.m[k] = v
	return true
}

// Len returns the number of entries.
func (pm *Map[K, V]) Len() int {
	size := 0
	for _, part := range pm.parts {
		part.mu.Lock()
		size += len(part.m)
		part.mu.Unlock()
	}
	return size
}
