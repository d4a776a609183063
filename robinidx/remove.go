package robinidx

// Remove deletes the element located by a verified Find match; scan is one
// past the matching bucket, exactly as Find left it. Remove shifts
// following entries back until the Robin Hood invariant holds again
// (no tombstones), and decrements Size. It does not touch the caller's
// side array: the removed element's slot there, records[removedIndex], is
// left for the caller to fill via the tail-swap protocol (see
// UpdateValue).
func (t *Table) Remove(hash uint32, scan uint32) (removedIndex uint32) {
	mask := t.mask
	bucket := (hash + scan - 1) & mask

	assertf(t.entries[bucket] != 0, "robinidx: remove on empty bucket")

	removedIndex = decodeIndex(t.entries[bucket], mask)

	i := bucket
	for {
		next := (i + 1) & mask
		nextEntry := t.entries[next]
		if nextEntry == 0 {
			break
		}
		nextField := decodeProbe(nextEntry)
		if nextField == 1 {
			break
		}

		nextIndex := decodeIndex(nextEntry, mask)

		var newField uint32
		if nextField == maxInlineProbe {
			newField = clampProbe(trueProbeAt(next, t.hashes[nextIndex], mask) - 1)
		} else {
			newField = nextField - 1
		}

		t.entries[i] = encodeEntry(t.hashes[nextIndex], newField, nextIndex, mask)
		i = next
	}

	t.entries[i] = 0
	t.size--
	return removedIndex
}

// FindValue scans candidates for hash, the same way Find does, until one
// decodes to the given element index, leaving scan one past the match. It
// is used by a caller that already knows the target index (and so has no
// key to compare) and just needs the index's bucket located before calling
// Remove.
func (t *Table) FindValue(hash uint32, scan *uint32, index uint32) bool {
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
			if decodeIndex(entry, mask) == index {
				return true
			}
			continue
		}
		if decodeProbe(entry) < probe {
			return false
		}
	}
}

// UpdateValue renames the entry currently pointing at oldIndex to point at
// newIndex instead, and records swapHash as the hash stored for newIndex.
// It implements the index-rename half of the tail-swap-on-remove protocol:
// after Remove, if the removed index was not the last live index, the
// caller moves its last record into the hole and calls UpdateValue with
// that record's hash to keep the index in sync. The partial-hash and probe
// bits of the entry are left untouched, which preserves the Robin Hood
// invariant without re-probing.
func (t *Table) UpdateValue(swapHash uint32, oldIndex, newIndex uint32) {
	mask := t.mask
	bucket := swapHash & mask

	for {
		entry := t.entries[bucket]
		assertf(entry != 0, "robinidx: update_value scanned past an empty bucket looking for index %d", oldIndex)

		if decodeIndex(entry, mask) == oldIndex {
			t.entries[bucket] = (entry &^ mask) | (newIndex & mask)
			t.hashes[newIndex] = swapHash
			return
		}
		bucket = (bucket + 1) & mask
	}
}
