package robinidx

import "math"

const (
	// DefaultLoadFactor is used whenever a Table's load factor is unset
	// (the zero value), per the data model's "default 0.75 if unset".
	DefaultLoadFactor = 0.75

	// initialFloor is the smallest desired size a Grow will ever request,
	// regardless of how small the table currently is.
	initialFloor = 16

	// minEntries is the smallest entry-table size ever produced.
	minEntries = 4

	// MaxSize is the largest number of live elements the index supports;
	// exceeding it is a protocol violation (spec §7: "Overflow").
	MaxSize = uint32(1<<31 - 1)
)

// NextPowerOf2 returns the smallest power of two greater than or equal to
// n. n == 0 returns 0.
func NextPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n++
	return n
}

func nextPow2Uint32(n uint32) uint32 {
	return uint32(NextPowerOf2(uint64(n)))
}

// alignUp rounds n up to the next multiple of align, align a power of two.
func alignUp(n, align uint32) uint32 {
	return (n + align - 1) &^ (align - 1)
}

func normalizeLoadFactor(loadFactor float32) float32 {
	if loadFactor <= 0 || loadFactor > 1 {
		return DefaultLoadFactor
	}
	return loadFactor
}

// NextSize implements the sizer (C2): from a desired element count, the
// current live size, and a load factor, derive the next
// (entryCount, elementCapacity, allocSize) triple. entryCount is always a
// power of two >= 4; allocSize is the size in bytes of the entries table
// followed by the per-element hashes table (4 bytes per word), rounded up
// to a multiple of 16 so a caller may append a record array in the same
// allocation.
func NextSize(desiredSize, size uint32, loadFactor float32) (entryCount, capacity, allocSize uint32) {
	loadFactor = normalizeLoadFactor(loadFactor)

	needed := uint32(math.Ceil(float64(desiredSize) / float64(loadFactor)))
	entryCount = nextPow2Uint32(needed)
	if entryCount < minEntries {
		entryCount = minEntries
	}

	capacity = uint32(float64(entryCount) * float64(loadFactor))
	for capacity < size {
		entryCount *= 2
		capacity = uint32(float64(entryCount) * float64(loadFactor))
	}

	allocSize = alignUp((entryCount+capacity)*4, 16)
	return entryCount, capacity, allocSize
}

// GrowSize computes the desired_size argument NextSize should be called
// with in order to grow a table currently holding size live elements out
// of currentEntryCount entries.
func GrowSize(currentEntryCount, size uint32, loadFactor float32) uint32 {
	loadFactor = normalizeLoadFactor(loadFactor)

	desired := size + 1
	if doubled := uint32(float64(currentEntryCount) * float64(loadFactor) * 2); doubled > desired {
		desired = doubled
	}
	if initialFloor > desired {
		desired = initialFloor
	}
	return desired
}

// ShrinkSize computes the desired_size argument NextSize should be called
// with in order to shrink a table down to exactly its current live size.
func ShrinkSize(size uint32) uint32 {
	return size
}
