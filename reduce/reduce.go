package reduce

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TermFunc produces the i-th element of the reduction. It must be pure with
// respect to the reduction: no writes to shared state, same value for the
// same i within one call.
type TermFunc func(i int) (float64, error)

// CombineFunc merges two partial aggregates. It must be associative,
// commutative and side-effect-free; the slice decomposition is only valid
// under those laws.
type CombineFunc func(a, b float64) float64

// Sum reduces term(0) + term(1) + ... + term(n-1).
// Thin facade over MapReduce with addition and identity 0 — the
// log-likelihood aggregation case.
func Sum(n int, term TermFunc, opts *Options) (float64, error) {
	return MapReduce(n, term, func(a, b float64) float64 { return a + b }, 0, opts)
}

// MapReduce reduces the index range [0, n) under an associative combiner.
//
// Stage 1 (Validate): n ≥ 0, term and combine non-nil.
// Stage 2 (Partition): split [0, n) into ≤ Workers contiguous slices.
// Stage 3 (Execute): one goroutine per slice, private accumulator each.
// Stage 4 (Finalize): combine partials in slice order, or propagate the
// first term error with no result.
//
// Determinism: partials are combined in ascending slice order, so the result
// depends only on (n, Workers), never on goroutine scheduling. Errors abort
// the whole reduction — there is no partial-failure mode.
//
// Complexity: O(n) term evaluations, O(Workers) goroutines and extra memory.
func MapReduce(n int, term TermFunc, combine CombineFunc, identity float64, opts *Options) (float64, error) {
	// Validate inputs before spawning anything.
	if n < 0 {
		return 0, ErrNegativeCount
	}
	if term == nil {
		return 0, ErrNilTerm
	}
	if combine == nil {
		return 0, ErrNilCombine
	}
	if n == 0 {
		return identity, nil
	}

	// Resolve the worker count: default to available parallelism, cap at n.
	workers := 0
	if opts != nil {
		workers = opts.Workers
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	// Sequential fallback: no goroutines, one left-to-right accumulation.
	if workers == 1 {
		acc := identity
		for i := 0; i < n; i++ {
			v, err := term(i)
			if err != nil {
				return 0, err
			}
			acc = combine(acc, v)
		}
		return acc, nil
	}

	// Partition [0, n) into contiguous slices of near-equal size.
	chunk := (n + workers - 1) / workers
	partials := make([]float64, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			partials[w] = identity
			continue
		}
		g.Go(func() error {
			// Private accumulator; the only shared write is partials[w],
			// owned exclusively by this slice.
			acc := identity
			for i := lo; i < hi; i++ {
				v, err := term(i)
				if err != nil {
					return err
				}
				acc = combine(acc, v)
			}
			partials[w] = acc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err // whole reduction aborts; no partial result escapes
	}

	// Combine in slice order for a scheduling-independent result.
	acc := partials[0]
	for w := 1; w < workers; w++ {
		acc = combine(acc, partials[w])
	}

	return acc, nil
}
