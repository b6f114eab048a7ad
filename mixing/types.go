package mixing

import "fmt"

// DrawShapeError reports a mismatch between the number of stored draws
// (rows of X) and the lengths of the per-draw parameter vectors, naming
// every length so the offending vector is visible in the message.
type DrawShapeError struct {
	Draws             int // rows of X
	NRho, NEta, NZeta int // len(rho), len(etaStar), len(zetaStar)
}

func (e DrawShapeError) Error() string {
	return fmt.Sprintf("mixing: per-draw vectors must match the draw count: X has %d rows, len(rho)=%d, len(etaStar)=%d, len(zetaStar)=%d",
		e.Draws, e.NRho, e.NEta, e.NZeta)
}

// ChiVariant selects between the two transcriptions of the GIG χ parameter
// found in the reference material, which disagree on whether the whitened
// residual is divided by σ before squaring. The derivations are otherwise
// identical; Params documents both. Until the discrepancy is settled against
// the governing publication, both stay selectable and the default is the
// variant consistent with the density's own standardization.
type ChiVariant int

const (
	// ChiStandardized uses χ = h²/η + (DX/σ + ζ·h)²: the whitened residual
	// enters the quadratic form on the σ-standardized scale. Default.
	ChiStandardized ChiVariant = iota

	// ChiRaw uses χ = h²/η + (DX + ζ·h)²: the residual enters unscaled.
	ChiRaw
)

// Options configures Sample.
//   - Variant: χ transcription, see ChiVariant.
//   - Workers: concurrent draws (0 = GOMAXPROCS, 1 = sequential).
//   - Seed: base seed for the per-draw streams; 0 selects the stable
//     default. Identical seeds yield identical output for any Workers.
type Options struct {
	Variant ChiVariant
	Workers int
	Seed    uint64
}

// DefaultOptions returns the defaults: standardized χ, automatic worker
// count, fixed default seed.
func DefaultOptions() Options {
	return Options{Variant: ChiStandardized, Workers: 0, Seed: 0}
}
