package container

// Set is a keyed set built on Map with an empty struct{} value, so each
// element carries no payload. Method names follow the zyedidia/generic set
// packages (Add/Has/Remove/Each/Union/Intersect) rather than the teacher's
// Put/Get naming, since a set has no value to "get".
type Set[K comparable] struct {
	m *Map[K, struct{}]
}

// NewSet creates a ready-to-use Set with the default hasher for K.
func NewSet[K comparable]() *Set[K] {
	return &Set[K]{m: New[K, struct{}]()}
}

// NewSetWithHasher creates a ready-to-use Set using the given hash
// function.
func NewSetWithHasher[K comparable](hasher HashFn[K]) *Set[K] {
	return &Set[K]{m: NewWithHasher[K, struct{}](hasher)}
}

// Size returns the number of elements in the set.
func (s *Set[K]) Size() int { return s.m.Size() }

// Empty reports whether the set holds no elements.
func (s *Set[K]) Empty() bool { return s.m.Empty() }

// Has reports whether key is a member of the set.
func (s *Set[K]) Has(key K) bool {
	_, ok := s.m.Get(key)
	return ok
}

// Add inserts key into the set. It returns true if key is new.
func (s *Set[K]) Add(key K) bool {
	return s.m.Put(key, struct{}{})
}

// Remove deletes key from the set. It returns true if key was present.
func (s *Set[K]) Remove(key K) bool {
	return s.m.Remove(key)
}

// Reserve grows the set's backing storage to fit at least n elements.
func (s *Set[K]) Reserve(n uint32) { s.m.Reserve(n) }

// Compact rehashes the set's index into the smallest power-of-two table
// that still fits its current size. The record array keeps its capacity.
func (s *Set[K]) Compact() { s.m.Compact() }

// Clear removes every element, preserving the current allocation.
func (s *Set[K]) Clear() { s.m.Clear() }

// Reset releases the set's backing storage entirely.
func (s *Set[K]) Reset() { s.m.Reset() }

// Each calls fn for every element. If fn returns true, Each stops early.
func (s *Set[K]) Each(fn func(key K) bool) {
	s.m.Each(func(key K, _ struct{}) bool {
		return fn(key)
	})
}

// Copy returns an independent deep copy of the set.
func (s *Set[K]) Copy() *Set[K] {
	return &Set[K]{m: s.m.Copy()}
}

// Union returns a new set containing every element of s and other.
func (s *Set[K]) Union(other *Set[K]) *Set[K] {
	result := s.Copy()
	other.Each(func(key K) bool {
		result.Add(key)
		return false
	})
	return result
}

// Intersect returns a new set containing only the elements present in
// both s and other.
func (s *Set[K]) Intersect(other *Set[K]) *Set[K] {
	result := NewSetWithHasher[K](s.m.hasher)
	s.Each(func(key K) bool {
		if other.Has(key) {
			result.Add(key)
		}
		return false
	})
	return result
}
