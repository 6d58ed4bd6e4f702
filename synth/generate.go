// SPDX-License-Identifier: MIT
// Package: bayem/synth
//
// generate.go — sampling datasets from ground-truth parameter tables.
//
// Design:
//   • Values are drawn first (x, then y, then z | x,y), missingness after,
//     so the hiding policy never influences the underlying outcomes.
//   • Missingness is applied only to parents; the child z is never hidden.
//   • Draw order is fixed, so a given seed reproduces the dataset exactly.

package synth

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bayem/core"
)

// Policy controls which parent values are hidden after sampling.
//
//   - PartiallyObserved=false — no missingness at all; NeverCoobserved is
//     ignored.
//   - PartiallyObserved=true, NeverCoobserved=false — each parent is hidden
//     by an independent draw with the configured missing rate (default 0.5).
//   - PartiallyObserved=true, NeverCoobserved=true — exactly one of {x,y}
//     is hidden per observation, never both, never neither: the
//     MAR-violating regime under which qz is not identifiable.
type Policy struct {
	PartiallyObserved bool
	NeverCoobserved   bool
}

// Generate samples n observations from the ground-truth triple truth and
// applies the missingness policy pol. The RNG is owned and deterministic:
// pass WithSeed (or WithRand) for explicit control, or rely on the fixed
// default seed.
//
// Errors:
//   - ErrTooFewSamples — n < 1.
//   - ErrBadTruth      — truth fails its simplex invariants.
//
// Complexity: O(n) time and space.
func Generate(n int, truth core.Params, pol Policy, opts ...Option) (core.Dataset, error) {
	if n < 1 {
		return nil, fmt.Errorf("synth: n=%d: %w", n, ErrTooFewSamples)
	}
	if err := truth.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadTruth, err)
	}
	cfg := newGenConfig(opts...)

	data := make(core.Dataset, n)
	for i := 0; i < n; i++ {
		x := bernoulli(cfg.rng, truth.X[1])
		y := bernoulli(cfg.rng, truth.Y[1])
		z := bernoulli(cfg.rng, truth.Z[x][y][1])

		obs := core.Observation{X: core.Observed(x), Y: core.Observed(y), Z: z}
		switch {
		case !pol.PartiallyObserved:
			// fully observed
		case pol.NeverCoobserved:
			// Perfectly anti-correlated hiding: exactly one parent missing.
			if cfg.rng.Float64() < 0.5 {
				obs.X = core.Missing()
			} else {
				obs.Y = core.Missing()
			}
		default:
			// Independent per-parent hiding.
			if cfg.rng.Float64() < cfg.missingRate {
				obs.X = core.Missing()
			}
			if cfg.rng.Float64() < cfg.missingRate {
				obs.Y = core.Missing()
			}
		}
		data[i] = obs
	}
	return data, nil
}

// bernoulli draws 1 with probability p1, else 0.
func bernoulli(rng *rand.Rand, p1 float64) int {
	if rng.Float64() < p1 {
		return 1
	}
	return 0
}
