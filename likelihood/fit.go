package likelihood

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// Fit estimates the flexibility/skew parameters (η*, ζ*) of the NIG noise by
// maximum likelihood, holding the whitening operator D and scales h fixed.
//
// The search runs Nelder–Mead over u = (ln η*, ζ*): the log transform keeps
// η* strictly positive without constraints, and ζ* is unconstrained by
// construction. Evaluations that fail numerically (domain errors deep in the
// density) score +Inf, which the simplex simply walks away from — the same
// reject-invalid policy the outer sampler applies to bad proposals.
//
// Derivative-free on purpose: the objective is smooth but its gradient is
// not worth hand-deriving for a setup-time estimate.
//
// Complexity: O(evals · N²) with the per-evaluation cost of LogLikelihood.
func Fit(D mat.Matrix, x, h []float64, opts *FitOptions) (etaStar, zetaStar float64, err error) {
	o := DefaultFitOptions()
	if opts != nil {
		o = *opts
	}
	if o.InitEtaStar <= 0 || math.IsNaN(o.InitEtaStar) || math.IsInf(o.InitEtaStar, 0) {
		o.InitEtaStar = 1
	}

	// Validate shapes once up front with a throwaway evaluation at the
	// starting point, so discoverable setup errors surface as themselves
	// rather than as a failed optimization.
	evalOpts := Options{Workers: o.Workers}
	if _, err = LogLikelihood(D, x, h, o.InitEtaStar, o.InitZetaStar, &evalOpts); err != nil {
		return 0, 0, err
	}

	problem := optimize.Problem{
		Func: func(u []float64) float64 {
			ll, lerr := LogLikelihood(D, x, h, math.Exp(u[0]), u[1], &evalOpts)
			if lerr != nil {
				return math.Inf(1) // invalid region: repel the simplex
			}
			return -ll
		},
	}

	init := []float64{math.Log(o.InitEtaStar), o.InitZetaStar}
	result, oerr := optimize.Minimize(problem, init, nil, &optimize.NelderMead{})
	if oerr != nil {
		return 0, 0, fmt.Errorf("likelihood: fit did not converge: %w", oerr)
	}

	return math.Exp(result.X[0]), result.X[1], nil
}
