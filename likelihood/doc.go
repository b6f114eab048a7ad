// Package likelihood assembles the vector log-likelihood of a correlated
// latent field under NIG noise: whiten the field through a linear operator,
// sum per-element NIG log-densities in parallel, optionally add the
// log-determinant correction of the whitening operator.
//
// 🚀 The hot path:
//
//	An outer MCMC/HMC sampler calls LogLikelihood once per proposal. The
//	call is a pure function of its inputs — no caches, no shared mutable
//	state — so independent sampling chains may invoke it concurrently.
//
//	Λ = D·x                      (whitened field)
//	ℓ = Σᵢ nig.LogDensity(Λᵢ)    (parallel reduction)
//	ℓ += Σ ln diag(chol(DᵀD))    (if ComputeLogDet)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nigfield/likelihood"
//
//	D, err := likelihood.Whitening(W, rho) // D = I − ρ·W
//	opts := likelihood.DefaultOptions()
//	opts.ComputeLogDet = true
//	ll, err := likelihood.LogLikelihood(D, x, h, etaStar, zetaStar, &opts)
//
// Determinant policy:
//
//	The determinant term is valid only when DᵀD is symmetric positive
//	definite — true whenever D is invertible, e.g. I − ρ·W with W
//	row-stochastic and ρ strictly inside (−1, 1). Behavior for other D is
//	undefined: a failed Cholesky surfaces as ErrDecomposition, nothing is
//	silently repaired. When ComputeLogDet is false the caller owns the
//	(constant) determinant term; mixing calls with different settings within
//	one inference run is a caller error this package cannot detect.
//
// Errors:
//   - ShapeError        — dimension mismatch among D, x, h (or non-square W)
//   - ErrDecomposition  — Cholesky of DᵀD failed (not positive definite)
//   - nig.ErrFlexibility, nig.ErrScale, *nig.DomainError — propagated from
//     the per-element density; the outer sampler typically maps in-evaluation
//     numerical failures to a rejected proposal (log-density −∞) and treats
//     shape/parameter errors as fatal setup mistakes
package likelihood
