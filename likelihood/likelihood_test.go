package likelihood_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/nigfield/likelihood"
	"github.com/katalvlaran/nigfield/nig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// fixture3 is the hand-chosen 3×3 system shared by the decomposition tests:
// strictly diagonally dominant, so DᵀD is comfortably positive definite.
func fixture3() (D *mat.Dense, x, h []float64) {
	D = mat.NewDense(3, 3, []float64{
		1.2, -0.3, 0.0,
		-0.3, 1.1, -0.2,
		0.0, -0.2, 1.05,
	})
	x = []float64{0.5, -1.0, 0.25}
	h = []float64{1.0, 0.8, 1.3}
	return
}

// TestLogLikelihood_MatchesScalarSum: with the determinant term on, the
// vector likelihood equals the sum of three scalar densities of the whitened
// elements plus Σ ln diag(chol(DᵀD)); with it off, just the sum. 1e-9 both.
func TestLogLikelihood_MatchesScalarSum(t *testing.T) {
	D, x, h := fixture3()
	const etaStar, zetaStar = 2.0, -0.7

	// Reference: whiten by hand and sum scalar densities.
	lam := mat.NewVecDense(3, nil)
	lam.MulVec(D, mat.NewVecDense(3, x))
	want := 0.0
	for i := 0; i < 3; i++ {
		ld, err := nig.LogDensity(lam.AtVec(i), etaStar, zetaStar, h[i])
		require.NoError(t, err)
		want += ld
	}

	// Reference determinant term via an independent Cholesky.
	var gram mat.Dense
	gram.Mul(D.T(), D)
	sym := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			sym.SetSym(i, j, gram.At(i, j))
		}
	}
	var chol mat.Cholesky
	require.True(t, chol.Factorize(sym))
	wantDet := want + 0.5*chol.LogDet()

	opts := likelihood.DefaultOptions()
	got, err := likelihood.LogLikelihood(D, x, h, etaStar, zetaStar, &opts)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-9, "ComputeLogDet=false must equal the plain sum")

	opts.ComputeLogDet = true
	gotDet, err := likelihood.LogLikelihood(D, x, h, etaStar, zetaStar, &opts)
	require.NoError(t, err)
	assert.InDelta(t, wantDet, gotDet, 1e-9, "ComputeLogDet=true must add ½·lndet(DᵀD)")
}

// TestLogLikelihood_EndToEnd pins the fixed constant of the smallest
// complete system: N=3, D=I, x=0, η*=1, ζ*=0, h=1 — three copies of the
// scalar density at the origin.
func TestLogLikelihood_EndToEnd(t *testing.T) {
	D := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		D.Set(i, i, 1)
	}
	opts := likelihood.DefaultOptions()
	got, err := likelihood.LogLikelihood(D, []float64{0, 0, 0}, []float64{1, 1, 1}, 1, 0, &opts)
	require.NoError(t, err)
	assert.InDelta(t, -1.9571454948553859, got, 1e-9,
		"must equal 3·(1 − lnπ + lnK₁(1))")

	single, err := nig.LogDensity(0, 1, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 3*single, got, 1e-12, "identity whitening must reduce to 3 scalar calls")
}

// TestLogLikelihood_WorkerInvariance: the value does not depend on the
// reduction's worker count beyond floating-point reassociation.
func TestLogLikelihood_WorkerInvariance(t *testing.T) {
	const n = 512
	D := mat.NewDense(n, n, nil)
	x := make([]float64, n)
	h := make([]float64, n)
	for i := 0; i < n; i++ {
		D.Set(i, i, 1)
		if i+1 < n {
			D.Set(i, i+1, -0.2)
		}
		x[i] = math.Sin(float64(i)) * 2
		h[i] = 1 + 0.1*math.Cos(float64(i))
	}

	var ref float64
	for k, workers := range []int{1, 2, 8} {
		opts := likelihood.Options{Workers: workers}
		got, err := likelihood.LogLikelihood(D, x, h, 0.8, 0.4, &opts)
		require.NoError(t, err, "workers=%d", workers)
		if k == 0 {
			ref = got
			continue
		}
		assert.InEpsilon(t, ref, got, 1e-9, "workers=%d", workers)
	}
}

// TestLogLikelihood_ShapeErrors: every dimension mismatch is a ShapeError.
func TestLogLikelihood_ShapeErrors(t *testing.T) {
	D, x, h := fixture3()
	opts := likelihood.DefaultOptions()

	var se likelihood.ShapeError
	_, err := likelihood.LogLikelihood(D, x[:2], h, 1, 0, &opts)
	require.ErrorAs(t, err, &se, "short x must be a ShapeError")

	_, err = likelihood.LogLikelihood(D, x, h[:1], 1, 0, &opts)
	require.ErrorAs(t, err, &se, "short h must be a ShapeError")

	rect := mat.NewDense(3, 2, nil)
	_, err = likelihood.LogLikelihood(rect, x[:2], h[:2], 1, 0, &opts)
	require.ErrorAs(t, err, &se, "rectangular D must be a ShapeError")
}

// TestLogLikelihood_ParameterErrors: setup-time parameter violations surface
// as the nig sentinels before any numerical work.
func TestLogLikelihood_ParameterErrors(t *testing.T) {
	D, x, h := fixture3()
	opts := likelihood.DefaultOptions()

	_, err := likelihood.LogLikelihood(D, x, h, -1, 0, &opts)
	assert.ErrorIs(t, err, nig.ErrFlexibility)

	_, err = likelihood.LogLikelihood(D, x, []float64{1, 0, 1}, 1, 0, &opts)
	assert.ErrorIs(t, err, nig.ErrScale)
}

// TestLogLikelihood_DecompositionError: a singular D (zero row) makes DᵀD
// rank deficient; requesting the determinant term must fail loudly.
func TestLogLikelihood_DecompositionError(t *testing.T) {
	D := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 0, // zero row ⇒ det D = 0
	})
	opts := likelihood.Options{ComputeLogDet: true}
	_, err := likelihood.LogLikelihood(D, []float64{0, 0, 0}, []float64{1, 1, 1}, 1, 0, &opts)
	assert.ErrorIs(t, err, likelihood.ErrDecomposition)

	// Without the determinant term the same system evaluates fine.
	opts.ComputeLogDet = false
	_, err = likelihood.LogLikelihood(D, []float64{0, 0, 0}, []float64{1, 1, 1}, 1, 0, &opts)
	assert.NoError(t, err)
}

// TestWhitening builds D = I − ρ·W and checks entries and shape validation.
func TestWhitening(t *testing.T) {
	W := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	D, err := likelihood.Whitening(W, 0.4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, D.At(0, 0), 1e-15)
	assert.InDelta(t, -0.4, D.At(0, 1), 1e-15)
	assert.InDelta(t, -0.4, D.At(1, 0), 1e-15)
	assert.InDelta(t, 1.0, D.At(1, 1), 1e-15)

	_, err = likelihood.Whitening(mat.NewDense(2, 3, nil), 0.4)
	var se likelihood.ShapeError
	assert.ErrorAs(t, err, &se, "non-square W must be a ShapeError")
}

// TestLogLikelihood_ConcurrentChains simulates independent sampling chains
// hammering the same inputs; results must agree with the sequential value.
func TestLogLikelihood_ConcurrentChains(t *testing.T) {
	D, x, h := fixture3()
	seq, err := likelihood.LogLikelihood(D, x, h, 2, -0.7, &likelihood.Options{Workers: 1})
	require.NoError(t, err)

	const chains = 12
	var wg sync.WaitGroup
	wg.Add(chains)
	for c := 0; c < chains; c++ {
		go func() {
			defer wg.Done()
			got, cerr := likelihood.LogLikelihood(D, x, h, 2, -0.7, &likelihood.Options{Workers: 2})
			assert.NoError(t, cerr)
			assert.InEpsilon(t, seq, got, 1e-9)
		}()
	}
	wg.Wait()
}
