// Package robinidx implements a Robin Hood open-addressed hash index that
// maps a 32-bit hash to a compact, contiguous element index. It is
// deliberately not a full hash-map container: it owns no keys, no values,
// and no memory. It exposes the low-level find/insert/remove/iterate
// protocol a typed container drives while it keeps its own side array of
// records in insertion-compact layout (see package container).
//
// A Table must be accessed by a single mutator at a time; concurrent finds
// are safe only while no mutator is active. There is no internal
// synchronization, no incremental rehash, and no allocation: every
// operation that changes the backing storage (Rehash, Reset) hands the old
// allocation back to the caller and accepts a new one, never touching an
// allocator itself.
package robinidx

// Table is the Robin Hood index state. Its zero value is immediately
// usable for Find (which reports no matches until the first rehash
// establishes a capacity) and is equivalent to an explicit init; this lets
// a caller embed a Table inside a larger struct without a constructor.
type Table struct {
	entries    []uint32
	hashes     []uint32
	mask       uint32
	capacity   uint32
	size       uint32
	loadFactor float32
}

// Size returns the number of live elements.
//
//go:inline
func (t *Table) Size() uint32 { return t.size }

// Capacity returns the maximum number of elements before a grow is
// required.
//
//go:inline
func (t *Table) Capacity() uint32 { return t.capacity }

// NumEntries returns N, the current power-of-two entry table size.
//
//go:inline
func (t *Table) NumEntries() uint32 {
	if t.entries == nil {
		return 0
	}
	return t.mask + 1
}

// LoadFactor returns the configured load factor, defaulting to
// DefaultLoadFactor when unset.
//
//go:inline
func (t *Table) LoadFactor() float32 { return normalizeLoadFactor(t.loadFactor) }

// SetLoadFactor changes the load factor used by future sizing decisions.
// It does not itself trigger a rehash.
func (t *Table) SetLoadFactor(lf float32) { t.loadFactor = lf }

// Full reports whether the table has no room for another element without
// a grow.
//
//go:inline
func (t *Table) Full() bool { return t.size >= t.capacity }

// Find drives one step of the probe engine (C3). scan and index are a
// caller-held cursor: pass scan == 0 to start a fresh search for hash. If
// Find returns true, index names a find *candidate* the caller must verify
// with a real key comparison (the partial hash / clamped probe match is
// necessary but not sufficient: hashes equal in their low 28 bits always
// match, and once probe saturates so can other partial-hash twins); to get the next
// candidate after a verification failure, call Find again with the same
// scan value. Find returns false once no further candidate can exist.
func (t *Table) Find(hash uint32, scan *uint32, index *uint32) bool {
	if t.capacity == 0 {
		return false
	}
	mask := t.mask
	for {
		bucket := (hash + *scan) & mask
		entry := t.entries[bucket]
		*scan++
		probe := clampProbe(*scan)

		if entry == 0 {
			return false
		}
		if matchEntry(entry, hash, probe, mask) {
			*index = decodeIndex(entry, mask)
			return true
		}
		if decodeProbe(entry) < probe {
			return false
		}
		// Otherwise this occupied, non-matching, not-yet-poorer bucket
		// can't prove absence yet; keep scanning forward.
	}
}

// Insert places hash at element index newIndex. It must be called right
// after a Find sequence returned false; scan is Find's final cursor value
// and newIndex must equal Size(). Insert never touches the caller's side
// array; the caller is responsible for writing records[newIndex] itself.
func (t *Table) Insert(hash uint32, scan uint32, newIndex uint32) {
	assertf(t.size < t.capacity, "robinidx: insert into full table (size=%d capacity=%d)", t.size, t.capacity)
	assertf(newIndex == t.size, "robinidx: insert newIndex %d must equal size %d", newIndex, t.size)
	assertf(t.size < MaxSize, "robinidx: size overflow")

	mask := t.mask
	bucket := (hash + scan - 1) & mask
	trueProbe := scan

	if t.entries[bucket] == 0 {
		t.entries[bucket] = encodeEntry(hash, clampProbe(trueProbe), newIndex, mask)
	} else {
		carryHash := hash
		carryIndex := newIndex

		for {
			resident := t.entries[bucket]
			residentIndex := decodeIndex(resident, mask)
			residentField := decodeProbe(resident)

			residentTrue := residentField
			if residentField == maxInlineProbe {
				residentTrue = trueProbeAt(bucket, t.hashes[residentIndex], mask)
			}

			if residentTrue < trueProbe {
				t.entries[bucket] = encodeEntry(carryHash, clampProbe(trueProbe), carryIndex, mask)
				carryHash = t.hashes[residentIndex]
				carryIndex = residentIndex
				trueProbe = residentTrue
			}

			bucket = (bucket + 1) & mask
			trueProbe++

			if t.entries[bucket] == 0 {
				t.entries[bucket] = encodeEntry(carryHash, clampProbe(trueProbe), carryIndex, mask)
				break
			}
		}
	}

	t.hashes[newIndex] = hash
	t.size++
}

// Next iterates live elements in element-index order (not bucket order),
// which keeps iteration coherent with a caller's compact side array even
// though the backing entries table is ordered by bucket. Pass hash == 0 and
// scan == 0 to start a fresh iteration (a genuine cursor never has scan ==
// 0, since the minimum probe distance is 1); Next returns false once every
// live index has been visited.
func (t *Table) Next(hash *uint32, scan *uint32, index *uint32) bool {
	if t.capacity == 0 {
		return false
	}
	mask := t.mask

	var wantIndex, startBucket uint32
	if *scan == 0 {
		wantIndex = 0
		startBucket = 0
	} else {
		prevBucket := (*hash + *scan - 1) & mask
		wantIndex = decodeIndex(t.entries[prevBucket], mask) + 1
		startBucket = (prevBucket + 1) & mask
	}

	if wantIndex >= t.size {
		return false
	}

	bucket := startBucket
	for {
		entry := t.entries[bucket]
		if entry != 0 && decodeIndex(entry, mask) == wantIndex {
			*index = wantIndex
			*hash = t.hashes[wantIndex]
			*scan = trueProbeAt(bucket, *hash, mask)
			return true
		}
		bucket = (bucket + 1) & mask
	}
}
