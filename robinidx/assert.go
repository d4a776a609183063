package robinidx

import "fmt"

// Debug gates the protocol-violation assertions: insert into a full table, remove from an empty bucket, driving the
// protocol before a rehash established a capacity, and similar misuse are
// programmer errors, not recoverable runtime errors. Production callers
// that have already fuzzed their call sites may turn this off to shave the
// check off the hot path; tests always want it on.
var Debug = true

func assertf(cond bool, format string, args ...interface{}) {
	if !Debug || cond {
		return
	}
	panic(fmt.Sprintf(format, args...))
}
