package nig

import (
	"math"

	"github.com/katalvlaran/nigfield/specfn"
)

// Canonical maps the estimable flexibility/skew pair (η*, ζ*) to the
// canonical NIG parameters (η, ζ):
//
//	η = η*·(1 + ζ*² − |ζ*|·√(1+ζ*²))²
//	ζ = ζ*/√η
//
// This is the single authoritative implementation of the transform; density
// evaluation and posterior mixing-variable sampling must both go through it.
//
// Validation: η* must be strictly positive and finite, ζ* finite, and the
// resulting η must itself be positive and finite (for |ζ*| large enough that
// ζ*² overflows, the transform degenerates and the inputs are rejected).
// Complexity: O(1).
func Canonical(etaStar, zetaStar float64) (eta, zeta float64, err error) {
	if math.IsNaN(etaStar) || math.IsInf(etaStar, 0) || etaStar <= 0 {
		return 0, 0, ErrFlexibility
	}
	if math.IsNaN(zetaStar) || math.IsInf(zetaStar, 0) {
		return 0, 0, ErrFlexibility
	}

	// t = 1 + ζ*² − |ζ*|·√(1+ζ*²); t → 1/2 as |ζ*| → ∞, t = 1 at ζ* = 0.
	z2 := zetaStar * zetaStar
	t := 1 + z2 - math.Abs(zetaStar)*math.Sqrt(1+z2)
	eta = etaStar * t * t
	if math.IsNaN(eta) || math.IsInf(eta, 0) || eta <= 0 {
		return 0, 0, ErrFlexibility
	}
	zeta = zetaStar / math.Sqrt(eta)

	return eta, zeta, nil
}

// Hyper derives the variance-corrected hyperbolic parameters (α, β, δ, μ)
// from canonical (η, ζ) and a scale h:
//
//	σ_s = 1/√(1+ζ²η)
//	α = √(1/η+ζ²)/σ_s   β = ζ/σ_s
//	δ = σ_s·√(1/η)·h    μ = −σ_s·ζ·h
//
// The σ_s correction keeps the marginal variance fixed while (η, ζ) move,
// which is what makes (η*, ζ*) estimable in the first place.
// Inputs are assumed validated (callers go through Canonical).
// Complexity: O(1).
func Hyper(eta, zeta, h float64) (alpha, beta, delta, mu float64) {
	sigma := 1 / math.Sqrt(1+zeta*zeta*eta)
	alpha = math.Sqrt(1/eta+zeta*zeta) / sigma
	beta = zeta / sigma
	delta = sigma * math.Sqrt(1/eta) * h
	mu = -sigma * zeta * h
	return
}

// LogDensity evaluates the log-density of one NIG-distributed observation x
// with flexibility/skew (η*, ζ*) and scale h > 0:
//
//	√(α²−β²)·δ + β·(x−μ) + ln α + ln δ − ln π − ½·ln(δ²+(x−μ)²) + ln K₁(α·√(δ²+(x−μ)²))
//
// ln K₁ is evaluated on the log scale (specfn), so large α·r cannot overflow
// or underflow the result. In exact arithmetic α²−β² = 1/(η·σ_s²) > 0; a
// slightly negative radicand from rounding (within radTol, relative to α²)
// is clamped to zero, anything beyond is a *DomainError, as is δ ≤ 0.
//
// Pure function; safe for concurrent use.
// Complexity: O(1).
func LogDensity(x, etaStar, zetaStar, h float64) (float64, error) {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return 0, ErrScale
	}
	eta, zeta, err := Canonical(etaStar, zetaStar)
	if err != nil {
		return 0, err
	}
	alpha, beta, delta, mu := Hyper(eta, zeta, h)

	// Preconditions of the closed form.
	if !(delta > 0) || math.IsInf(delta, 0) {
		return 0, &DomainError{Delta: delta, BadDelta: true}
	}
	rad := alpha*alpha - beta*beta
	if rad < 0 {
		if rad < -radTol*alpha*alpha {
			return 0, &DomainError{Radicand: rad}
		}
		rad = 0 // rounding noise near ζ* → ±∞
	}

	dx := x - mu
	r2 := delta*delta + dx*dx
	lnK1, err := specfn.LogBesselK1(alpha * math.Sqrt(r2))
	if err != nil {
		return 0, &DomainError{Radicand: rad}
	}

	return math.Sqrt(rad)*delta + beta*dx +
		math.Log(alpha) + math.Log(delta) - lnPi -
		0.5*math.Log(r2) + lnK1, nil
}

// lnPi is ln π, hoisted so the hot path does not recompute it.
var lnPi = math.Log(math.Pi)
