// Package specfn provides the special functions the NIG likelihood engine
// needs and the standard library does not ship: modified Bessel functions of
// the second kind, evaluated on a scaled or logarithmic scale.
//
// 🚀 Why scaled evaluation?
//
//	K₀(x) and K₁(x) decay like e^(−x)/√x, so a naive K₁ followed by ln
//	underflows to ln(0) = −Inf long before the log-density it feeds becomes
//	meaningless (K₁ underflows near x ≈ 700, while ln K₁ stays a perfectly
//	ordinary float). All entry points therefore work with e^x·Kν(x) or with
//	ln Kν(x) directly and stay finite on the whole positive axis.
//
// ✨ Key features:
//   - BesselK0Scaled / BesselK1Scaled — e^x·K₀(x), e^x·K₁(x), no under/overflow
//   - LogBesselK0 / LogBesselK1 — ln K₀(x), ln K₁(x)
//   - LogBesselK — ln Kν(x) for integer and half-integer orders via the
//     three-term upward recurrence on scaled values
//
// Accuracy:
//
//	The polynomial fits are the classical Abramowitz & Stegun §9.8 ones
//	(|relative error| ≲ 2e-7). Good enough for log-likelihoods; not intended
//	as a general-purpose Bessel library.
//
// Errors:
//   - ErrNonPositiveArg   — x ≤ 0 or non-finite
//   - ErrUnsupportedOrder — ν not an integer or half-integer, or too large
package specfn
