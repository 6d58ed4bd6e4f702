// Package core - parameter tables for the v-structure and their lifecycle.
//
// This file contains the Parameter Store: the Marginal and Conditional table
// types, the Params triple, initialization (Uniform | Random) with an
// explicitly owned RNG, and the simplex validation shared by every consumer.
//
// Design principles:
//   - Tables are plain value types; "mutation" is wholesale replacement.
//     A Params held from a prior iteration remains a valid snapshot.
//   - Deterministic by default: Random initialization without WithSeed or
//     WithRand falls back to a fixed seed, never to time-based entropy.
//   - No panics on user input - only sentinel errors from types.go.
package core

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// SimplexTol is the absolute tolerance used when checking that a probability
// row sums to 1. Rows are produced by explicit normalization, so violations
// beyond this tolerance signal an engine bug, not rounding noise.
const SimplexTol = 1e-9

// defaultRNGSeed is the fixed seed used when Random initialization is
// requested without an explicit WithSeed/WithRand. Arbitrary but stable.
const defaultRNGSeed int64 = 1

// InitMode selects how NewParams fills the three tables.
//
//   - Uniform — every row is [1/2, 1/2]; fully deterministic.
//   - Random  — entries drawn independently from [0,1), then normalized
//     per row/table so every invariant holds by construction.
type InitMode int

const (
	// Uniform mode: all rows exactly [0.5, 0.5].
	Uniform InitMode = iota

	// Random mode: rows drawn from the owned RNG and normalized.
	Random
)

// String implements fmt.Stringer for InitMode.
func (m InitMode) String() string {
	switch m {
	case Uniform:
		return "Uniform"
	case Random:
		return "Random"
	default:
		return fmt.Sprintf("InitMode(%d)", int(m))
	}
}

// Marginal is a categorical distribution over a binary variable:
// Marginal[v] = P(V=v). Invariant: both entries ≥ 0 and they sum to 1.
type Marginal [2]float64

// Conditional is the child's table, indexed [x][y][z]:
// Conditional[a][b][c] = P(Z=c | X=a, Y=b). Invariant: for every parent
// configuration (a,b) the two z-entries form a simplex row.
type Conditional [2][2][2]float64

// Params bundles the three tables θ = (qx, qy, qz) of one EM iteration.
type Params struct {
	// X is the marginal table qx for the first parent.
	X Marginal

	// Y is the marginal table qy for the second parent.
	Y Marginal

	// Z is the conditional table qz for the child.
	Z Conditional
}

// ParamsOption customizes NewParams (RNG policy for Random mode).
type ParamsOption func(*paramsConfig)

// paramsConfig carries the resolved initialization knobs.
type paramsConfig struct {
	rng *rand.Rand
}

// WithSeed creates a deterministic RNG with the given seed for Random mode.
// Policy: seed==0 ⇒ the fixed default seed; otherwise the seed verbatim.
func WithSeed(seed int64) ParamsOption {
	return func(c *paramsConfig) {
		s := seed
		if s == 0 {
			s = defaultRNGSeed
		}
		c.rng = rand.New(rand.NewSource(s))
	}
}

// WithRand provides an explicit RNG for Random mode.
// Panics on nil to surface programmer error early; prefer WithSeed.
func WithRand(r *rand.Rand) ParamsOption {
	if r == nil {
		panic("core: WithRand(nil)")
	}
	return func(c *paramsConfig) {
		c.rng = r
	}
}

// NewParams produces a fresh, invariant-satisfying parameter triple.
//
// Uniform mode ignores any RNG options. Random mode draws every entry
// independently from [0,1) and normalizes each row; when no RNG option is
// supplied a fixed default seed is used, keeping tests reproducible without
// explicit plumbing.
//
// The returned triple is re-validated before returning; a failure here is
// defensive and signals a construction bug, surfaced as ErrNotSimplex.
//
// Complexity: O(1) time and space (12 table entries).
func NewParams(mode InitMode, opts ...ParamsOption) (Params, error) {
	var cfg paramsConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var p Params
	switch mode {
	case Uniform:
		p.X = Marginal{0.5, 0.5}
		p.Y = Marginal{0.5, 0.5}
		for a := 0; a < 2; a++ {
			for b := 0; b < 2; b++ {
				p.Z[a][b] = [2]float64{0.5, 0.5}
			}
		}
	case Random:
		rng := cfg.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(defaultRNGSeed))
		}
		p.X = randomRow(rng)
		p.Y = randomRow(rng)
		for a := 0; a < 2; a++ {
			for b := 0; b < 2; b++ {
				p.Z[a][b] = randomRow(rng)
			}
		}
	default:
		return Params{}, fmt.Errorf("core: mode %d: %w", int(mode), ErrUnknownInitMode)
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// randomRow draws a 2-entry row from [0,1) and normalizes it to sum to 1.
// A zero total cannot occur with float64 draws from [0,1) except with
// probability ~0; it is retried rather than returned unnormalized.
func randomRow(rng *rand.Rand) [2]float64 {
	for {
		row := [2]float64{rng.Float64(), rng.Float64()}
		total := floats.Sum(row[:])
		if total > 0 {
			floats.Scale(1/total, row[:])
			return row
		}
	}
}

// Validate checks every simplex invariant of the triple:
// qx and qy are non-negative and sum to 1; every qz row qz[a][b][:] is
// non-negative and sums to 1. The wrapped error names the offending table.
//
// Complexity: O(1).
func (p Params) Validate() error {
	if err := checkRow(p.X[:]); err != nil {
		return fmt.Errorf("core: table qx: %w", err)
	}
	if err := checkRow(p.Y[:]); err != nil {
		return fmt.Errorf("core: table qy: %w", err)
	}
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			if err := checkRow(p.Z[a][b][:]); err != nil {
				return fmt.Errorf("core: table qz row (x=%d,y=%d): %w", a, b, err)
			}
		}
	}
	return nil
}

// checkRow verifies one simplex row: entries ≥ 0 and sum ≈ 1.
func checkRow(row []float64) error {
	for _, v := range row {
		if v < 0 {
			return fmt.Errorf("entry %g negative: %w", v, ErrNotSimplex)
		}
	}
	if sum := floats.Sum(row); !scalar.EqualWithinAbs(sum, 1, SimplexTol) {
		return fmt.Errorf("sum %g: %w", sum, ErrNotSimplex)
	}
	return nil
}
