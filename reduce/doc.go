// Package reduce implements an associative reduction over an index range
// with pluggable concurrency — the aggregation step under the vector
// log-likelihood, decoupled from all numerical code so the concurrency
// strategy can change without touching the density math.
//
// 🚀 How it works:
//
//	[0, n) is partitioned into at most Workers contiguous slices. Each
//	slice is reduced independently into a private accumulator (no shared
//	mutable state, no locks on the hot path); the partials are then
//	combined in slice order. For a fixed worker count the result is
//	bit-for-bit deterministic; across worker counts it is identical up to
//	floating-point reassociation of an associative operator.
//
// ✨ Key features:
//   - Sum — addition of per-element terms (the log-likelihood case)
//   - MapReduce — any associative, commutative, side-effect-free combiner
//   - Workers=1 — exact sequential fallback, no goroutines spawned
//   - All-or-nothing: a term error aborts the whole reduction; no partial
//     aggregate is ever returned
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nigfield/reduce"
//
//	opts := reduce.DefaultOptions() // Workers = GOMAXPROCS
//	total, err := reduce.Sum(n, func(i int) (float64, error) {
//	  return nig.LogDensity(lam[i], etaStar, zetaStar, h[i])
//	}, &opts)
//
// Errors:
//   - ErrNegativeCount — n < 0
//   - ErrNilTerm       — nil term function
//   - ErrNilCombine    — nil combiner (MapReduce only)
//
// Complexity: O(n) work, O(Workers) extra memory.
package reduce
