// Command robinidx-bench measures Insert/Find/Remove throughput of
// container.Map against a chosen key count, the way the teacher's
// TestCrossCheck exercises the three operations against a reference map,
// but timed instead of cross-checked.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/hashindex/robinidx/container"
)

func main() {
	var (
		entries    = pflag.IntP("entries", "n", 1_000_000, "number of keys to insert")
		loadFactor = pflag.Float32P("load-factor", "l", 0, "load factor to reserve at, 0 uses the default")
		ops        = pflag.IntP("ops", "o", 0, "number of find operations to run, 0 means one pass over entries")
		seed       = pflag.Int64P("seed", "s", 1, "PRNG seed for the generated key set")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: robinidx-bench [flags]\n\nMeasures Insert/Find/Remove throughput for container.Map[uint64, uint32].\n\nFlags:\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *ops <= 0 {
		*ops = *entries
	}

	cfg := container.Config[uint64, uint32]{Size: uint32(*entries)}
	if *loadFactor > 0 {
		cfg.MaxLoad = *loadFactor
	}
	m := container.MustNewFromConfig(cfg)

	rng := rand.New(rand.NewSource(*seed))
	keys := make([]uint64, *entries)
	for i := range keys {
		keys[i] = rng.Uint64()
	}

	report("insert", len(keys), func() {
		for i, k := range keys {
			m.Put(k, uint32(i))
		}
	})

	var hits int
	report("find", *ops, func() {
		for i := 0; i < *ops; i++ {
			if _, ok := m.Get(keys[i%len(keys)]); ok {
				hits++
			}
		}
	})
	fmt.Fprintf(os.Stderr, "  hits: %s / %s\n", humanize.Comma(int64(hits)), humanize.Comma(int64(*ops)))

	report("remove", len(keys), func() {
		for _, k := range keys {
			m.Remove(k)
		}
	})

	fmt.Fprintf(os.Stderr, "final size: %s\n", humanize.Comma(int64(m.Size())))
}

func report(label string, n int, fn func()) {
	start := time.Now()
	fn()
	elapsed := time.Since(start)

	perOp := time.Duration(0)
	if n > 0 {
		perOp = elapsed / time.Duration(n)
	}

	fmt.Fprintf(os.Stderr, "%-8s %8s ops in %-12s (%s/op)\n",
		label, humanize.Comma(int64(n)), elapsed.Round(time.Microsecond), perOp)
}
