package container

// Config configures a Map built by NewFromConfig. Unlike the teacher's factory,
// which dispatched across several hashmap algorithms, there is only one
// algorithm here, so Config carries no Type field.
type Config[K comparable, V any] struct {
	// Size reserves storage for at least this many elements up front.
	// If zero, the map starts out empty and grows lazily on Put.
	Size uint32
	// MaxLoad changes the load factor used for future grows. If zero,
	// robinidx.DefaultLoadFactor is used.
	MaxLoad float32
	// Hasher is used in place of the reflect-based default. Required for
	// key types GetHasher doesn't cover (structs, slices, custom types).
	Hasher HashFn[K]
}

// NewFromConfig is a factory function for Map, mirroring the teacher's
// NewHashMap without the algorithm-selection switch this spec's scope has
// no use for.
func NewFromConfig[K comparable, V any](cfg Config[K, V]) (*Map[K, V], error) {
	hasher := cfg.Hasher
	if hasher == nil {
		hasher = GetHasher[K]()
	}

	m := NewWithHasher[K, V](hasher)

	if cfg.MaxLoad != 0 {
		if err := m.MaxLoad(cfg.MaxLoad); err != nil {
			return nil, err
		}
	}

	if cfg.Size > 0 {
		m.Reserve(cfg.Size)
	}

	return m, nil
}

// MustNewFromConfig is the same as NewFromConfig but panics if an error
// occurs.
func MustNewFromConfig[K comparable, V any](cfg Config[K, V]) *Map[K, V] {
	m, err := NewFromConfig[K, V](cfg)
	if err != nil {
		panic(err.Error())
	}
	return m
}
