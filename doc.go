// Package nigfield is a likelihood engine for latent spatial fields with
// heavy-tailed, possibly skewed noise — Normal-Inverse-Gaussian (NIG)
// densities, whitened vector log-likelihoods and posterior mixing-variable
// reconstruction, built for use inside an outer MCMC/HMC sampler.
//
// 🚀 What is nigfield?
//
//	A numerical library that brings together:
//		• Scalar NIG log-density in the stable (η*, ζ*) reparametrization
//		• Whitened vector log-likelihood with optional Cholesky log-det term
//		• An explicit, swappable parallel reduction over per-element terms
//		• A Generalized Inverse Gaussian (GIG) sampling primitive
//		• Posterior reconstruction of per-location mixing variables
//
// ✨ Why choose nigfield?
//
//   - Deterministic – fixed seeds, derived per-draw streams, reproducible sums
//   - Pure functions – no hidden state, safe for concurrent sampling chains
//   - Stable numerics – scaled Bessel evaluation, no naive K₁-then-log
//   - Explicit errors – shape, parameter, numerical and decomposition failures
//     are distinct types, so callers can reject a proposal instead of aborting
//
// Under the hood, everything is organized under six subpackages:
//
//	specfn/     — scaled modified Bessel functions of the second kind
//	nig/        — canonical parameter transform & scalar NIG log-density
//	reduce/     — index-range map-reduce with pluggable concurrency
//	likelihood/ — whitening operator, vector log-likelihood, MLE fit
//	gig/        — GIG distribution primitive (distuv-style value type)
//	mixing/     — posterior mixing-variable sampler & column summaries
//
// Data flow, hot path first:
//
//	outer sampler ──▶ likelihood.LogLikelihood ──▶ nig.LogDensity (per element)
//	                                          └──▶ reduce.Sum (aggregation)
//
//	stored draws ──▶ mixing.Sample ──▶ V matrix ──▶ visualization layer
//
//	go get github.com/katalvlaran/nigfield
package nigfield
