package robinidx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	const mask = uint32(15) // N = 16

	word := encodeEntry(0x12345678, 7, 3, mask)
	assert.Equal(t, uint32(3), decodeIndex(word, mask))
	assert.Equal(t, uint32(7), decodeProbe(word))
}

func TestMatchRequiresHashAndProbe(t *testing.T) {
	const mask = uint32(15)

	word := encodeEntry(0xAAAAAAAA, 2, 1, mask)
	assert.True(t, matchEntry(word, 0xAAAAAAAA, 2, mask))
	assert.False(t, matchEntry(word, 0xAAAAAAAA, 3, mask))
	assert.False(t, matchEntry(word, 0xBBBBBBBB, 2, mask))
}

func TestMatchIgnoresIndexBits(t *testing.T) {
	const mask = uint32(15)

	wordA := encodeEntry(0xCAFEBABE, 4, 0, mask)
	wordB := encodeEntry(0xCAFEBABE, 4, 15, mask)
	assert.True(t, matchEntry(wordA, 0xCAFEBABE, 4, mask))
	assert.True(t, matchEntry(wordB, 0xCAFEBABE, 4, mask))
}

func TestClampProbeSaturatesAtFifteen(t *testing.T) {
	assert.Equal(t, uint32(1), clampProbe(1))
	assert.Equal(t, uint32(14), clampProbe(14))
	assert.Equal(t, uint32(15), clampProbe(15))
	assert.Equal(t, uint32(15), clampProbe(100))
}

func TestTrueProbeAtHomeBucketIsOne(t *testing.T) {
	const mask = uint32(15)
	hash := uint32(5) // home bucket == 5
	assert.Equal(t, uint32(1), trueProbeAt(5, hash, mask))
	assert.Equal(t, uint32(2), trueProbeAt(6, hash, mask))
	assert.Equal(t, uint32(16), trueProbeAt(4, hash, mask)) // wrapped all the way around
}
