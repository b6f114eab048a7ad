package mixing

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/nigfield/gig"
	"github.com/katalvlaran/nigfield/likelihood"
	"github.com/katalvlaran/nigfield/nig"
)

// Params derives the per-cell GIG parameters (ψ, χ) from one draw's
// flexibility/skew pair, one whitened residual dx = (D_d·X_d)_i and one
// scale h:
//
//	ψ = 1/η + ζ²
//	χ = h²/η + (dx/σ + ζ·h)²   (ChiStandardized, σ = 1/√(1+ζ²))
//	χ = h²/η + (dx  + ζ·h)²    (ChiRaw)
//
// Exported separately from Sample so the transcription can be pinned by a
// dedicated test and audited against the governing publication without
// Monte Carlo noise in the way. The canonical transform is nig.Canonical —
// the same call the density makes; mismatched parametrizations between
// evaluation and sampling silently corrupt results, so there is exactly one.
//
// Complexity: O(1).
func Params(etaStar, zetaStar, dx, h float64, variant ChiVariant) (psi, chi float64, err error) {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return 0, 0, nig.ErrScale
	}
	eta, zeta, err := nig.Canonical(etaStar, zetaStar)
	if err != nil {
		return 0, 0, err
	}

	psi = 1/eta + zeta*zeta
	res := dx
	if variant == ChiStandardized {
		sigma := 1 / math.Sqrt(1+zeta*zeta)
		res /= sigma
	}
	t := res + zeta*h
	chi = h*h/eta + t*t

	return psi, chi, nil
}

// Sample reconstructs the latent mixing variables from stored posterior
// draws. X holds one draw of the latent field per row (D×N), rho, etaStar
// and zetaStar one scalar per draw, W is the N×N neighbor matrix and h the
// length-N scale vector. The result is a D×N matrix whose row d holds the
// draw's mixing variables, already divided element-wise by h.
//
// Stage 1 (Validate): all dimensions commensurate, every hᵢ > 0.
// Stage 2 (Fan out): draws are distributed over Workers goroutines; each
// draw whitens its field through D_d = I − ρ_d·W, derives (ψ, χ) per
// location via Params and samples GIG(λ=−1, ψ, χ) from its own derived
// stream.
// Stage 3 (Finalize): on any error the whole call fails with no result;
// otherwise the caller owns the returned matrix exclusively.
//
// Inputs are read-only for the duration of the call. The output is a pure
// function of (inputs, Seed): worker count and scheduling cannot change it.
//
// Complexity: O(D·N²) for the whitening products, O(D·N) GIG draws.
func Sample(X *mat.Dense, rho []float64, W mat.Matrix, etaStar, zetaStar, h []float64, opts *Options) (*mat.Dense, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	draws, nloc := X.Dims()
	wr, wc := W.Dims()
	if wr != wc || wc != nloc || len(h) != nloc {
		return nil, likelihood.ShapeError{Op: "mixing.Sample", Rows: wr, Cols: wc, NX: nloc, NH: len(h)}
	}
	if len(rho) != draws || len(etaStar) != draws || len(zetaStar) != draws {
		return nil, DrawShapeError{Draws: draws, NRho: len(rho), NEta: len(etaStar), NZeta: len(zetaStar)}
	}
	for i := 0; i < nloc; i++ {
		if math.IsNaN(h[i]) || math.IsInf(h[i], 0) || h[i] <= 0 {
			return nil, nig.ErrScale
		}
	}

	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := mat.NewDense(draws, nloc, nil)
	var g errgroup.Group
	g.SetLimit(workers)
	for d := 0; d < draws; d++ {
		d := d
		g.Go(func() error {
			// Whitened field of this draw: DX_d = (I − ρ_d·W)·X_d.
			Dd, err := likelihood.Whitening(W, rho[d])
			if err != nil {
				return err
			}
			row := mat.NewVecDense(nloc, mat.Row(nil, d, X))
			dx := mat.NewVecDense(nloc, nil)
			dx.MulVec(Dd, row)

			// One derived stream per draw: reproducible under any fan-out.
			src := sourceFor(o.Seed, d)
			for i := 0; i < nloc; i++ {
				psi, chi, err := Params(etaStar[d], zetaStar[d], dx.AtVec(i), h[i], o.Variant)
				if err != nil {
					return err
				}
				v := gig.GIG{Lambda: -1, Chi: chi, Psi: psi, Src: src}.Rand()
				out.Set(d, i, v/h[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err // whole reconstruction aborts; no partial matrix
	}

	return out, nil
}

// ColumnStats summarizes a mixing-variable matrix per location: the
// posterior mean and standard deviation of each column. This is the summary
// the (external) visualization layer consumes.
//
// Complexity: O(D·N).
func ColumnStats(V *mat.Dense) (mean, sd []float64) {
	draws, nloc := V.Dims()
	mean = make([]float64, nloc)
	sd = make([]float64, nloc)
	col := make([]float64, draws)
	for j := 0; j < nloc; j++ {
		mat.Col(col, j, V)
		m, s := stat.MeanStdDev(col, nil)
		mean[j] = m
		sd[j] = s
	}
	return mean, sd
}
