// Package em - the convergence driver.
//
// Orchestrates INIT → T × (EXPECT → validate statistics → MAXIMIZE →
// validate parameters) and returns the final triple. Any invariant
// violation is fatal and reported with the failing iteration; the driver
// never retries or self-corrects, because a violation signals an engine
// bug rather than a data problem.
package em

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/bayem/core"
)

// massTolPerObs is the per-observation absolute tolerance for the
// mass-conservation identities; the effective tolerance scales with n so
// accumulated rounding over large datasets is not misreported as a bug.
const massTolPerObs = 1e-9

// Run executes EM over data and returns the final parameter triple.
//
// opts==nil means DefaultOptions(). The loop runs exactly opts.Iterations
// iterations unless opts.Tol > 0 enables log-likelihood early stopping.
//
// Stages per iteration t:
//  1. EXPECT    — expected sufficient statistics under θ⁽ᵗ⁾;
//  2. validate  — the six mass-conservation identities of Stats;
//  3. MAXIMIZE  — statistics → θ⁽ᵗ⁺¹⁾;
//  4. validate  — simplex invariants of θ⁽ᵗ⁺¹⁾.
//
// Errors: ErrEmptyDataset, ErrBadOptions, core.ErrBadValue,
// core.ErrUnknownInitMode, and — wrapped with the failing iteration —
// ErrDegenerate, ErrStatsMass, core.ErrNotSimplex.
//
// Complexity: O(T·n) time, O(1) space beyond the parameter triple.
func Run(data core.Dataset, opts *Options) (core.Params, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateOptions(o); err != nil {
		return core.Params{}, err
	}
	if len(data) == 0 {
		return core.Params{}, ErrEmptyDataset
	}
	if err := data.Validate(); err != nil {
		return core.Params{}, err
	}

	p, err := core.NewParams(o.Init, core.WithSeed(o.Seed))
	if err != nil {
		return core.Params{}, err
	}

	prevLL := math.Inf(-1)
	for t := 0; t < o.Iterations; t++ {
		st, err := expect(p, data, o.Workers)
		if err != nil {
			return core.Params{}, fmt.Errorf("em: iteration %d: %w", t, err)
		}
		if err = checkMass(st, len(data)); err != nil {
			return core.Params{}, fmt.Errorf("em: iteration %d: %w", t, err)
		}

		next, err := Maximize(st)
		if err != nil {
			return core.Params{}, fmt.Errorf("em: iteration %d: %w", t, err)
		}
		if err = next.Validate(); err != nil {
			return core.Params{}, fmt.Errorf("em: iteration %d: %w", t, err)
		}
		p = next

		if o.Tol > 0 {
			ll, err := LogLikelihood(p, data)
			if err != nil {
				return core.Params{}, fmt.Errorf("em: iteration %d: %w", t, err)
			}
			if ll-prevLL < o.Tol {
				break
			}
			prevLL = ll
		}
	}
	return p, nil
}

// validateOptions checks internal consistency of Options.
// Complexity: O(1).
func validateOptions(o Options) error {
	if o.Iterations <= 0 {
		return fmt.Errorf("em: iterations %d must be positive: %w", o.Iterations, ErrBadOptions)
	}
	if o.Tol < 0 {
		return fmt.Errorf("em: tolerance %g must be non-negative: %w", o.Tol, ErrBadOptions)
	}
	if o.Workers < 0 {
		return fmt.Errorf("em: workers %d must be non-negative: %w", o.Workers, ErrBadOptions)
	}
	return nil
}

// checkMass validates the statistics conservation identities after one
// expectation pass over n observations:
//
//	ΣMx = ΣMy = n
//	ΣMz[a][:][:] = Mx[a] and ΣMz[:][b][:] = My[b] for a,b ∈ {0,1}
//
// The wrapped error names the first identity that failed.
// Complexity: O(1).
func checkMass(st Stats, n int) error {
	tol := massTolPerObs * float64(n+1)

	if sum := floats.Sum(st.X[:]); !scalar.EqualWithinAbs(sum, float64(n), tol) {
		return fmt.Errorf("em: ΣMx=%g, want %d: %w", sum, n, ErrStatsMass)
	}
	if sum := floats.Sum(st.Y[:]); !scalar.EqualWithinAbs(sum, float64(n), tol) {
		return fmt.Errorf("em: ΣMy=%g, want %d: %w", sum, n, ErrStatsMass)
	}
	for a := 0; a < 2; a++ {
		slice := floats.Sum(st.Z[a][0][:]) + floats.Sum(st.Z[a][1][:])
		if !scalar.EqualWithinAbs(slice, st.X[a], tol) {
			return fmt.Errorf("em: ΣMz[x=%d]=%g, want Mx[%d]=%g: %w", a, slice, a, st.X[a], ErrStatsMass)
		}
	}
	for b := 0; b < 2; b++ {
		slice := floats.Sum(st.Z[0][b][:]) + floats.Sum(st.Z[1][b][:])
		if !scalar.EqualWithinAbs(slice, st.Y[b], tol) {
			return fmt.Errorf("em: ΣMz[y=%d]=%g, want My[%d]=%g: %w", b, slice, b, st.Y[b], ErrStatsMass)
		}
	}
	return nil
}
