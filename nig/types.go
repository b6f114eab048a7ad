package nig

import "fmt"

// ErrFlexibility is returned when the flexibility/skew parameters are outside
// their domain: η* must be strictly positive and finite, ζ* finite.
var ErrFlexibility = fmt.Errorf("nig: %w", errFlexibility)
var errFlexibility = fmt.Errorf("flexibility parameter η* must be > 0 and finite, ζ* finite")

// ErrScale is returned when a scale (distance/area weight) h is not strictly
// positive and finite.
var ErrScale = fmt.Errorf("nig: %w", errScale)
var errScale = fmt.Errorf("scale h must be > 0 and finite")

// DomainError reports a numerical domain violation inside the density:
// a non-positive δ or a radicand α²−β² negative beyond floating tolerance.
// Such states arise from rounding near ζ* → ±∞ and must surface to the
// caller (typically translated into a rejected proposal), never be clamped
// silently.
type DomainError struct {
	Radicand float64 // value of α²−β² that failed (when BadDelta is false)
	Delta    float64 // value of δ that failed (when BadDelta is true)
	BadDelta bool    // discriminates which precondition was violated
}

func (e *DomainError) Error() string {
	if e.BadDelta {
		return fmt.Sprintf("nig: non-positive δ = %g in density evaluation", e.Delta)
	}
	return fmt.Sprintf("nig: negative radicand α²−β² = %g beyond tolerance", e.Radicand)
}

// radTol is the relative tolerance under which a negative radicand is
// attributed to rounding and clamped to zero. Anything worse is rejected.
const radTol = 1e-12
