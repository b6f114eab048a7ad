package likelihood

import "gonum.org/v1/gonum/mat"

// Whitening builds the whitening operator D = I − ρ·W from an adjacency (or
// generally row-standardized neighbor) matrix W and a correlation parameter
// ρ. With W row-stochastic and ρ strictly inside (−1, 1), D is invertible
// and DᵀD is symmetric positive definite, which is exactly the precondition
// the determinant term of LogLikelihood relies on.
//
// D depends on ρ, so it must be rebuilt for every proposal that moves ρ;
// the construction is a single O(N²) pass and allocates the result, leaving
// W untouched.
func Whitening(W mat.Matrix, rho float64) (*mat.Dense, error) {
	r, c := W.Dims()
	if r != c {
		return nil, ShapeError{Op: "Whitening", Rows: r, Cols: c, NX: -1, NH: -1}
	}

	D := mat.NewDense(r, r, nil)
	D.Scale(-rho, W)
	for i := 0; i < r; i++ {
		D.Set(i, i, 1+D.At(i, i))
	}

	return D, nil
}
