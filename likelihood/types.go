package likelihood

import "fmt"

// ErrDecomposition is returned when the Cholesky factorization of DᵀD fails,
// i.e. the Gram matrix is not symmetric positive definite and the requested
// log-determinant term does not exist.
var ErrDecomposition = fmt.Errorf("likelihood: %w", errDecomposition)
var errDecomposition = fmt.Errorf("Cholesky of DᵗD failed: matrix not positive definite")

// ShapeError reports a dimension mismatch among the whitening operator, the
// field vector and the scale vector.
type ShapeError struct {
	Op         string // entry point that detected the mismatch
	Rows, Cols int    // operator dimensions
	NX, NH     int    // vector lengths (−1 when not applicable)
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("likelihood: %s: incompatible shapes: D is %d×%d, len(x)=%d, len(h)=%d",
		e.Op, e.Rows, e.Cols, e.NX, e.NH)
}

// Options configures LogLikelihood.
//   - ComputeLogDet: add Σ ln diag(chol(DᵀD)). Leave false when the
//     determinant term is constant across proposals and tracked externally.
//   - Workers: concurrency of the per-element reduction (0 = GOMAXPROCS,
//     1 = sequential).
type Options struct {
	ComputeLogDet bool
	Workers       int
}

// DefaultOptions returns the defaults: no determinant term, automatic
// worker count.
func DefaultOptions() Options {
	return Options{ComputeLogDet: false, Workers: 0}
}

// FitOptions configures Fit.
//   - InitEtaStar, InitZetaStar: starting point of the search
//     (InitEtaStar ≤ 0 falls back to 1).
//   - Workers: forwarded to every LogLikelihood evaluation.
type FitOptions struct {
	InitEtaStar  float64
	InitZetaStar float64
	Workers      int
}

// DefaultFitOptions starts the search at the symmetric unit-flexibility
// point (η*=1, ζ*=0).
func DefaultFitOptions() FitOptions {
	return FitOptions{InitEtaStar: 1, InitZetaStar: 0, Workers: 0}
}
