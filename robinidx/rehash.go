package robinidx

// Clear empties the table in place, preserving the current allocation.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = 0
	}
	t.size = 0
}

// Reset returns the index to its pristine zero state and hands back the
// entries allocation it was using, exactly as the zero value would have
// been before any rehash. The caller owns the returned slice's backing
// array and is responsible for it; a subsequent Rehash starts fresh.
func (t *Table) Reset() []uint32 {
	old := t.entries
	t.entries = nil
	t.hashes = nil
	t.mask = 0
	t.capacity = 0
	t.size = 0
	t.loadFactor = 0
	return old
}

// Rehash moves every live element into a freshly caller-supplied
// allocation and returns the old entries allocation for the caller to
// free. newEntries must have a power-of-two length >= 4 (as produced by
// NextSize/GrowSize/ShrinkSize) and newHashes must have length >=
// newCapacity. Because element indices are re-established in the same
// 0..size-1 order they already had, the caller's own record array never
// needs permuting across a rehash, only copying (or reallocating) into the
// same shape before calling Rehash.
func (t *Table) Rehash(newCapacity uint32, newEntries, newHashes []uint32) []uint32 {
	oldEntries := t.entries
	oldHashes := t.hashes
	oldSize := t.size

	for i := range newEntries {
		newEntries[i] = 0
	}

	t.entries = newEntries
	t.hashes = newHashes
	t.mask = uint32(len(newEntries)) - 1
	t.capacity = newCapacity
	t.size = 0

	for i := uint32(0); i < oldSize; i++ {
		hash := oldHashes[i]
		var scan, candidate uint32
		for t.Find(hash, &scan, &candidate) {
			// No key to compare during a rehash: every candidate is just
			// a partial-hash collision with an already-placed distinct
			// element, so keep asking for the next one.
		}
		t.Insert(hash, scan, i)
	}

	return oldEntries
}
