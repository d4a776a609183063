package robinidx

// newTestTable builds a ready-to-use Table with entryCount buckets (must be
// a power of two) and room for capacity elements, grounded on the same
// "rehash into a fresh allocation" protocol a real container would use.
func newTestTable(entryCount, capacity uint32) *Table {
	var t Table
	entries := make([]uint32, entryCount)
	hashes := make([]uint32, capacity)
	t.Rehash(capacity, entries, hashes)
	return &t
}

// insertHash drives the full find-then-insert protocol for a hash that is
// known not to be present yet (tests never hold real keys to compare, so
// every Find candidate is treated as a miss).
func insertHash(t *Table, hash uint32) uint32 {
	var scan, candidate uint32
	for t.Find(hash, &scan, &candidate) {
	}
	index := t.Size()
	t.Insert(hash, scan, index)
	return index
}

// locateAndRemove finds the bucket holding the element at index (via
// FindValue) and removes it, returning the index robinidx reports as
// removed (always == index).
func locateAndRemove(tbl *Table, hash uint32, index uint32) uint32 {
	var scan uint32
	ok := tbl.FindValue(hash, &scan, index)
	if !ok {
		panic("locateAndRemove: index not found for hash")
	}
	return tbl.Remove(hash, scan)
}

// iterateAll drains Next into a slice of (index, hash) pairs in
// element-index order.
type iterPair struct {
	index uint32
	hash  uint32
}

func iterateAll(tbl *Table) []iterPair {
	var out []iterPair
	var hash, scan, index uint32
	for tbl.Next(&hash, &scan, &index) {
		out = append(out, iterPair{index: index, hash: hash})
	}
	return out
}
