// Package core provides the shared data model for EM parameter learning on
// the fixed binary v-structure X → Z ← Y.
//
// It has three responsibilities:
//
//   - Observations. A parent value is a tagged variant, Observed(0|1) or
//     Missing, so "unknown" is a first-class state rather than an in-band
//     sentinel. The child Z is a plain int because it is never missing.
//     Dataset.Validate enforces the binary domain on every present value.
//
//   - Parameter tables. Marginal (qx, qy) and Conditional (qz, indexed
//     [x][y][z]) are fixed-size value types. Params bundles the triple for
//     one EM iteration. Tables are never mutated in place: the maximization
//     step produces a whole new Params, so references to an earlier
//     iteration's triple remain valid snapshots.
//
//   - Initialization and validation. NewParams builds a triple in Uniform
//     mode (exact halves) or Random mode (entries from [0,1), normalized per
//     row) with an explicitly owned, seeded RNG — never process-global
//     random state. Params.Validate checks every simplex invariant and
//     reports the offending table via wrapped sentinel errors.
//
// Determinism:
//
//	Uniform initialization is constant. Random initialization is a pure
//	function of the supplied seed (WithSeed) or RNG (WithRand); with neither
//	option a fixed default seed applies, so repeated runs are bit-identical.
//
// All errors are package-level sentinels; branch with errors.Is:
//
//	p, err := core.NewParams(core.Random, core.WithSeed(42))
//	if errors.Is(err, core.ErrNotSimplex) {
//	  // defensive validation failed — engine bug, not a data problem
//	}
package core
