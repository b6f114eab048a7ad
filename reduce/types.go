package reduce

import "errors"

// ErrNegativeCount indicates a negative index-range length.
var ErrNegativeCount = errors.New("reduce: element count must be ≥ 0")

// ErrNilTerm indicates a nil per-element term function.
var ErrNilTerm = errors.New("reduce: term function must not be nil")

// ErrNilCombine indicates a nil combiner passed to MapReduce.
var ErrNilCombine = errors.New("reduce: combine function must not be nil")

// Options configures a reduction.
//   - Workers: number of concurrent slices. 0 (the default) means
//     runtime.GOMAXPROCS(0); 1 forces the sequential fallback. Values above
//     the element count are capped.
type Options struct {
	Workers int
}

// DefaultOptions returns the defaults: Workers=0 (one slice per available P).
func DefaultOptions() Options {
	return Options{Workers: 0}
}
