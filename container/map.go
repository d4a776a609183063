package container

import (
	"fmt"

	"github.com/hashindex/robinidx"
)

// Map is a keyed hash map built on top of robinidx.Table. It owns the
// per-element record array the index's protocol requires: records stay
// compact at indices 0..Size()-1, and a Remove drives the tail-swap
// protocol (robinidx.Table.Remove + UpdateValue) to keep it that way.
type Map[K comparable, V any] struct {
	table   robinidx.Table
	records []record[K, V]
	hasher  HashFn[K]
}

// New creates a ready-to-use Map with the default hasher for K.
func New[K comparable, V any]() *Map[K, V] {
	return NewWithHasher[K, V](GetHasher[K]())
}

// NewWithHasher creates a ready-to-use Map using the given hash function,
// for key types the default reflect-based dispatch doesn't cover.
func NewWithHasher[K comparable, V any](hasher HashFn[K]) *Map[K, V] {
	return &Map[K, V]{hasher: hasher}
}

func (m *Map[K, V]) loadFactor() float32 { return m.table.LoadFactor() }

// Size returns the number of key/value pairs stored in the map.
func (m *Map[K, V]) Size() int { return int(m.table.Size()) }

// Empty reports whether the map holds no elements.
func (m *Map[K, V]) Empty() bool { return m.table.Size() == 0 }

// Load returns the current load of the map (size / number of entries).
func (m *Map[K, V]) Load() float32 {
	n := m.table.NumEntries()
	if n == 0 {
		return 0
	}
	return float32(m.table.Size()) / float32(n)
}

// MaxLoad changes the load factor used for future grows. Valid values are
// in the open range (0.0, 1.0).
func (m *Map[K, V]) MaxLoad(lf float32) error {
	if lf <= 0.0 || lf >= 1.0 {
		return fmt.Errorf("%f: %w", lf, ErrOutOfRange)
	}
	m.table.SetLoadFactor(lf)
	return nil
}

// Get returns the value stored for key, or false if it isn't present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	hash := m.hasher(key)
	var scan, idx uint32
	for m.table.Find(hash, &scan, &idx) {
		if m.records[idx].key == key {
			return m.records[idx].value, true
		}
	}
	var zero V
	return zero, false
}

// Put maps key to val, overwriting any existing value. It returns true if
// key is new to the map.
func (m *Map[K, V]) Put(key K, val V) bool {
	hash := m.hasher(key)

	var scan, idx uint32
	for m.table.Find(hash, &scan, &idx) {
		if m.records[idx].key == key {
			m.records[idx].value = val
			return false
		}
	}

	if m.table.Full() {
		m.grow()
		// The rehash moved every bucket, so scan from Find's previous
		// pass is stale; redrive it from scratch purely to land at the
		// right insertion cursor (we already know key isn't present).
		scan = 0
		for m.table.Find(hash, &scan, &idx) {
		}
	}

	newIndex := m.table.Size()
	m.table.Insert(hash, scan, newIndex)
	m.records = append(m.records, record[K, V]{key: key, value: val})
	return true
}

// Remove deletes key from the map. It returns true if key was present.
func (m *Map[K, V]) Remove(key K) bool {
	hash := m.hasher(key)

	var scan, idx uint32
	for m.table.Find(hash, &scan, &idx) {
		if m.records[idx].key != key {
			continue
		}

		removedIndex := m.table.Remove(hash, scan)
		newSize := m.table.Size()

		if removedIndex < newSize {
			tail := m.records[newSize]
			swapHash := m.hasher(tail.key)
			m.table.UpdateValue(swapHash, newSize, removedIndex)
			m.records[removedIndex] = tail
		}

		var zero record[K, V]
		m.records[newSize] = zero
		m.records = m.records[:newSize]
		return true
	}
	return false
}

// Reserve grows the map's backing storage so it can hold at least n
// elements without a further grow. If n is lower than the current
// capacity, it has no effect.
func (m *Map[K, V]) Reserve(n uint32) {
	if m.table.Capacity() >= n {
		return
	}
	entryCount, capacity, _ := robinidx.NextSize(n, m.table.Size(), m.loadFactor())
	m.rehashTo(entryCount, capacity)
}

// Clear removes every key/value pair, preserving the current allocation.
func (m *Map[K, V]) Clear() {
	m.table.Clear()
	m.records = m.records[:0]
}

// Reset releases the map's backing storage entirely, returning it to its
// pristine, pre-Reserve state.
func (m *Map[K, V]) Reset() {
	m.table.Reset()
	m.records = nil
}

// Each calls fn for every key/value pair in element-index order. If fn
// returns true, Each stops early.
func (m *Map[K, V]) Each(fn func(key K, val V) bool) {
	for i := range m.records {
		if fn(m.records[i].key, m.records[i].value) {
			return
		}
	}
}

// Compact rehashes the map's index down to the smallest table that still
// fits the current number of elements, the mirror image of the automatic
// grow Put performs. The record array keeps its capacity.
func (m *Map[K, V]) Compact() {
	m.shrink()
}

// Copy returns an independent deep copy of the map.
func (m *Map[K, V]) Copy() *Map[K, V] {
	newM := NewWithHasher[K, V](m.hasher)
	newM.Reserve(m.table.Capacity())
	if lf := m.loadFactor(); lf > 0 {
		_ = newM.MaxLoad(lf)
	}
	m.Each(func(key K, val V) bool {
		newM.Put(key, val)
		return false
	})
	return newM
}

func (m *Map[K, V]) grow() {
	desired := robinidx.GrowSize(m.table.NumEntries(), m.table.Size(), m.loadFactor())
	entryCount, capacity, _ := robinidx.NextSize(desired, m.table.Size(), m.loadFactor())
	m.rehashTo(entryCount, capacity)
}

func (m *Map[K, V]) shrink() {
	desired := robinidx.ShrinkSize(m.table.Size())
	entryCount, capacity, _ := robinidx.NextSize(desired, m.table.Size(), m.loadFactor())
	m.rehashTo(entryCount, capacity)
}

func (m *Map[K, V]) rehashTo(entryCount, capacity uint32) {
	newEntries := make([]uint32, entryCount)
	newHashes := make([]uint32, capacity)
	m.table.Rehash(capacity, newEntries, newHashes)

	if uint32(cap(m.records)) < capacity {
		grown := make([]record[K, V], len(m.records), capacity)
		copy(grown, m.records)
		m.records = grown
	}
}
