package reduce_test

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/nigfield/reduce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// pseudoRandomValues builds the fixed 10_000-element vector shared by the
// determinism tests. Seeded, so every run sees the same data.
func pseudoRandomValues(n int) []float64 {
	rng := rand.New(rand.NewSource(1))
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = rng.NormFloat64() * 10
	}
	return vals
}

// TestSum_WorkerCountInvariance: the sum of a fixed 10_000-element vector is
// identical within 1e-9 relative for 1, 2 and 8 workers, and matches the
// plain sequential reference.
func TestSum_WorkerCountInvariance(t *testing.T) {
	vals := pseudoRandomValues(10_000)
	ref := floats.Sum(vals)

	for _, workers := range []int{1, 2, 8} {
		opts := reduce.Options{Workers: workers}
		got, err := reduce.Sum(len(vals), func(i int) (float64, error) {
			return vals[i], nil
		}, &opts)
		require.NoError(t, err, "workers=%d", workers)
		assert.InEpsilon(t, ref, got, 1e-9, "workers=%d", workers)
	}
}

// TestSum_DeterministicPerWorkerCount: for a fixed worker count the result
// is bit-for-bit reproducible across repeated runs.
func TestSum_DeterministicPerWorkerCount(t *testing.T) {
	vals := pseudoRandomValues(10_000)
	opts := reduce.Options{Workers: 8}
	term := func(i int) (float64, error) { return vals[i], nil }

	first, err := reduce.Sum(len(vals), term, &opts)
	require.NoError(t, err)
	for run := 0; run < 20; run++ {
		again, err := reduce.Sum(len(vals), term, &opts)
		require.NoError(t, err)
		assert.Equal(t, first, again, "run %d: slice-ordered combine must be exact", run)
	}
}

// TestSum_ErrorAbortsWholeReduction: a failing term aborts the call with
// that error and no partial aggregate.
func TestSum_ErrorAbortsWholeReduction(t *testing.T) {
	boom := errors.New("term blew up")
	for _, workers := range []int{1, 4} {
		opts := reduce.Options{Workers: workers}
		got, err := reduce.Sum(10_000, func(i int) (float64, error) {
			if i == 7_777 {
				return 0, boom
			}
			return 1, nil
		}, &opts)
		require.ErrorIs(t, err, boom, "workers=%d", workers)
		assert.Zero(t, got, "no partial result may escape a failed reduction")
	}
}

// TestMapReduce_CustomCombiner reduces with max instead of addition.
func TestMapReduce_CustomCombiner(t *testing.T) {
	vals := []float64{3, -8, 12.5, 0, 7}
	maxCombine := func(a, b float64) float64 {
		if a > b {
			return a
		}
		return b
	}
	got, err := reduce.MapReduce(len(vals), func(i int) (float64, error) {
		return vals[i], nil
	}, maxCombine, vals[0], &reduce.Options{Workers: 3})
	require.NoError(t, err)
	assert.Equal(t, 12.5, got)
}

// TestMapReduce_EdgeCases: empty range yields the identity; invalid inputs
// yield the sentinel errors.
func TestMapReduce_EdgeCases(t *testing.T) {
	got, err := reduce.Sum(0, func(int) (float64, error) { return 1, nil }, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "empty range must yield the additive identity")

	_, err = reduce.Sum(-1, func(int) (float64, error) { return 0, nil }, nil)
	assert.ErrorIs(t, err, reduce.ErrNegativeCount)

	_, err = reduce.Sum(3, nil, nil)
	assert.ErrorIs(t, err, reduce.ErrNilTerm)

	_, err = reduce.MapReduce(3, func(int) (float64, error) { return 0, nil }, nil, 0, nil)
	assert.ErrorIs(t, err, reduce.ErrNilCombine)
}

// TestSum_ConcurrentCallers: independent reductions may run concurrently
// with no shared mutable state (each call owns its accumulators).
func TestSum_ConcurrentCallers(t *testing.T) {
	vals := pseudoRandomValues(5_000)
	ref := floats.Sum(vals)
	term := func(i int) (float64, error) { return vals[i], nil }

	const callers = 16
	var wg sync.WaitGroup
	wg.Add(callers)
	for c := 0; c < callers; c++ {
		go func() {
			defer wg.Done()
			got, err := reduce.Sum(len(vals), term, &reduce.Options{Workers: 4})
			assert.NoError(t, err)
			assert.InEpsilon(t, ref, got, 1e-9)
		}()
	}
	wg.Wait()
}
