package container

import "errors"

// ErrOutOfRange signals a load factor request outside the open range
// (0.0, 1.0), mirroring the teacher's RobinHood.MaxLoad validation.
var ErrOutOfRange = errors.New("out of range")
