package container

import (
	"math/bits"
	"reflect"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/cpuid/v2"
)

// HashFn returns a 32-bit hash of t. Only the low 28 bits of the result
// are significant to robinidx: the lowest bits pick the home bucket and the
// rest, up to bit 27, form the entry word's partial hash. The top 4 bits
// are ignored for slotting and matching, since that part of the entry word
// holds the clamped probe field.
type HashFn[T any] func(t T) uint32

// hasBMI2 gates which integer-mixing path GetHasher installs: the
// rotate-based finalizer is a better fit for cores that fold the rotate
// into BMI2's rorx, the shift-based one for cores that don't. Both are full
// avalanche finalizers (every output bit depends on every input bit), but
// they are different functions: the same key hashes to different values
// depending on which one is installed.
var hasBMI2 = cpuid.CPU.Supports(cpuid.BMI2)

// GetHasher returns a hasher for Go's built-in integer and floating-point
// types and strings, mirroring the teacher's reflect-kind dispatch. It
// panics for any other key kind (use HashBytes to build a []byte hasher).
func GetHasher[Key any]() HashFn[Key] {
	var key Key
	kind := reflect.ValueOf(&key).Elem().Type().Kind()

	switch kind {
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		switch unsafe.Sizeof(key) {
		case 4:
			return *(*func(Key) uint32)(unsafe.Pointer(&hashDword))
		case 8:
			return *(*func(Key) uint32)(unsafe.Pointer(&hashQword))
		default:
			panic("container: unsupported integer byte size")
		}
	case reflect.Int8, reflect.Uint8:
		return *(*func(Key) uint32)(unsafe.Pointer(&hashByte))
	case reflect.Int16, reflect.Uint16:
		return *(*func(Key) uint32)(unsafe.Pointer(&hashWord))
	case reflect.Int32, reflect.Uint32:
		return *(*func(Key) uint32)(unsafe.Pointer(&hashDword))
	case reflect.Int64, reflect.Uint64:
		return *(*func(Key) uint32)(unsafe.Pointer(&hashQword))
	case reflect.Float32:
		return *(*func(Key) uint32)(unsafe.Pointer(&hashFloat32))
	case reflect.Float64:
		return *(*func(Key) uint32)(unsafe.Pointer(&hashFloat64))
	case reflect.String:
		return *(*func(Key) uint32)(unsafe.Pointer(&hashString))
	default:
		panic("container: unsupported key kind for the default hasher, supply a HashFn explicitly")
	}
}

var hashByte = func(in uint8) uint32 {
	return mix32(uint32(in))
}

var hashWord = func(in uint16) uint32 {
	return mix32(uint32(in))
}

var hashDword = func(in uint32) uint32 {
	return mix32(in)
}

var hashFloat32 = func(in float32) uint32 {
	return mix32(*(*uint32)(unsafe.Pointer(&in)))
}

var hashFloat64 = func(in float64) uint32 {
	raw := *(*uint64)(unsafe.Pointer(&in))
	return uint32(mix64(raw))
}

var hashQword = func(in uint64) uint32 {
	return uint32(mix64(in))
}

// hashString hashes the underlying bytes of s with xxhash and folds the
// 64-bit digest down to 32 bits.
var hashString = func(s string) uint32 {
	sum := xxhash.Sum64String(s)
	return uint32(sum) ^ uint32(sum>>32)
}

// HashBytes hashes a byte slice with xxhash, for container types keyed on
// []byte (not usable as a Go map key, so it has no place in GetHasher's
// reflect dispatch, but callers building a HashFn[[]byte] by hand want it).
func HashBytes(b []byte) uint32 {
	sum := xxhash.Sum64(b)
	return uint32(sum) ^ uint32(sum>>32)
}

// mix32 avalanches a 32-bit key for byte/word/dword-sized integer and float
// keys, used as the partial hash the entry word's high bits carry. Both
// branches are full Murmur3-family finalizers; they return different values
// for the same key.
func mix32(k uint32) uint32 {
	if hasBMI2 {
		return mix32Rotate(k)
	}
	return mix32Shift(k)
}

// mix32Rotate is MurmurHash3_x86_32 specialized to a single 4-byte block
// with seed 0: block scramble, fold into the running hash, then the
// standard length-tagged fmix32 finalizer. The rotates are a better fit for
// cores with BMI2's rorx than the shift-only path below.
func mix32Rotate(k uint32) uint32 {
	const c1, c2 = 0xcc9e2d51, 0x1b873593

	k *= c1
	k = bits.RotateLeft32(k, 15)
	k *= c2

	h := bits.RotateLeft32(k, 13)
	h = h*5 + 0xe6546b64

	h ^= 4 // block length in bytes
	return mix32Shift(h)
}

// mix32Shift is Murmur3's fmix32 avalanche finalizer.
func mix32Shift(k uint32) uint32 {
	k ^= k >> 16
	k *= 0x85ebca6b
	k ^= k >> 13
	k *= 0xc2b2ae35
	k ^= k >> 16
	return k
}

// mix64 is Murmur3's 64-bit finalizer, used for qword-sized integer and
// float keys.
func mix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}
