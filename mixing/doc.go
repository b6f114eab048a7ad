// Package mixing reconstructs the latent per-location mixing variables of
// the NIG variance mixture from stored posterior draws — the post-hoc step
// that turns a finished inference run into a map of local tail behavior.
//
// 🚀 What happens per draw d and location i?
//
//	(η_d, ζ_d) = nig.Canonical(η*_d, ζ*_d)     — same transform as the density
//	σ_d = 1/√(1+ζ_d²)
//	D_d = I − ρ_d·W,  DX_d = D_d·X_d           — whitened field of the draw
//	V[d,i] ~ GIG(λ=−1, ψ_d, χ_{d,i})           — exact conditional law
//	V[d,i] /= h_i                              — back to the per-unit scale
//
//	with ψ_d = 1/η_d + ζ_d² and χ_{d,i} = h_i²/η_d + (DX_{d,i}/σ_d + ζ_d·h_i)²
//	(ChiStandardized; ChiRaw omits the division by σ_d — see Params).
//
// Every output cell is produced by exactly one independent unit of work, so
// the draws are fanned out over workers; per-draw RNG streams are derived
// from one seed, which makes the result matrix identical for every worker
// count.
//
// ✨ Key features:
//   - Sample — the full D×N reconstruction, reproducible and parallel
//   - Params — the exported (ψ, χ) derivation, pinned by its own test so
//     the transcription can be audited against the reference publication
//   - ColumnStats — per-location posterior mean/sd for the visualization
//     hand-off
//
// The component is a pure function of its inputs plus a seed; it keeps no
// internal state between calls.
//
// Errors:
//   - likelihood.ShapeError — location-dimension mismatch among X, W, h
//   - DrawShapeError — ρ, η* or ζ* length differs from the draw count of X
//   - nig.ErrFlexibility / nig.ErrScale — inadmissible draw parameters
package mixing
