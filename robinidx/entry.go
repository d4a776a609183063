package robinidx

// An entry word packs three co-resident fields into one uint32:
//
//	bits [0 : log2(N)-1]  element index, masked by the table's mask
//	bits [log2(N) : 27]   the high bits of the caller's hash
//	bits [28 : 31]        clamped probe distance: 0 means empty, 1..14 are
//	                      exact, 15 means "15 or more"
//
// Only the low 28 bits of a caller-supplied hash participate in slotting;
// the top 4 bits of the word are reserved for the probe field regardless of
// how small the table's mask is.
const (
	probeShift          = 28
	maxInlineProbe      = uint32(15)
	hashSignificantBits = uint32(0x0FFFFFFF)
)

// encodeEntry packs hash, a clamped probe distance and an element index
// into one entry word. probe must already be clamped to [0,15].
//
//go:inline
func encodeEntry(hash, probe, index, mask uint32) uint32 {
	return (hash & hashSignificantBits &^ mask) | (probe << probeShift) | (index & mask)
}

// decodeIndex extracts the element index from an entry word.
//
//go:inline
func decodeIndex(word, mask uint32) uint32 {
	return word & mask
}

// decodeProbe extracts the clamped probe field, 0..15.
//
//go:inline
func decodeProbe(word uint32) uint32 {
	return word >> probeShift
}

// matchEntry reports whether word's partial hash and clamped probe field
// both coincide with hash/probe. A true result is only a find candidate:
// the caller must still verify it with a real key comparison, because
// distinct keys can share the low 28 hash bits, and once probe saturates at
// 15 entries from different home buckets can match as well.
//
//go:inline
func matchEntry(word, hash, probe, mask uint32) bool {
	return (word^((hash&hashSignificantBits)|(probe<<probeShift)))&^mask == 0
}

// clampProbe saturates a probe distance to the 4-bit inline representation.
//
//go:inline
func clampProbe(p uint32) uint32 {
	if p > maxInlineProbe {
		return maxInlineProbe
	}
	return p
}

// trueProbeAt recomputes the exact (unclamped) probe distance of the
// element whose home hash is hash, currently sitting at bucket, using the
// recomputation rule from the data model: distance = ((bucket - home) mod
// N) + 1. It is only needed once the inline field has saturated at 15.
//
//go:inline
func trueProbeAt(bucket, hash, mask uint32) uint32 {
	home := hash & mask
	return ((bucket - home) & mask) + 1
}
