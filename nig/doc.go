// Package nig evaluates the scalar log-density of a Normal-Inverse-Gaussian
// (NIG) observation under the variance-corrected reparametrization used for
// estimation.
//
// 🚀 What is the NIG density here?
//
//	A heavy-tailed, possibly skewed noise model for one element of a
//	whitened latent field. Estimation works on the stable flexibility/skew
//	pair (η*, ζ*) — η* > 0 controls tail heaviness, ζ* (unconstrained)
//	controls asymmetry — which Canonical maps to the canonical (η, ζ):
//
//	  η = η*·(1 + ζ*² − |ζ*|·√(1+ζ*²))²
//	  ζ = ζ*/√η
//
//	Canonical is the single source of this transform. The vector likelihood
//	and the posterior mixing-variable sampler both call it; evaluating the
//	density in one parametrization and sampling in another silently produces
//	wrong results, so nothing else in the module re-derives it.
//
// ✨ Key features:
//   - LogDensity — closed-form log-density with scaled Bessel evaluation,
//     finite for every valid parameter combination, no naive K₁-then-ln
//   - Canonical / Hyper — the reparametrization chain, exported separately
//     so downstream components stay in lockstep
//   - Strict rejection — δ ≤ 0 or a negative radicand beyond floating
//     tolerance is a DomainError, never a silent clamp
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/nigfield/nig"
//
//	ld, err := nig.LogDensity(x, etaStar, zetaStar, h)
//	if err != nil {
//	  // ErrFlexibility / ErrScale: bad inputs, abort setup
//	  // *nig.DomainError: numerically invalid proposal, reject it
//	}
//
// Errors:
//   - ErrFlexibility — η* ≤ 0 or non-finite parameters
//   - ErrScale      — h ≤ 0 or non-finite
//   - DomainError   — δ ≤ 0 or α²−β² < 0 beyond tolerance inside the density
package nig
