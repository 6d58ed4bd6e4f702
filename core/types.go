// Package core defines the central data model shared by every bayem
// subpackage: tagged observed/missing values, observations over the fixed
// v-structure X → Z ← Y, datasets, and the three parameter tables.
//
// This file declares Value, Observation, Dataset, sentinel errors, and the
// dataset validation entry point.
//
// Errors:
//
//	ErrBadValue        - an observed value lies outside {0,1}.
//	ErrNotSimplex      - a probability row is negative or does not sum to 1.
//	ErrUnknownInitMode - an initialization mode is not Uniform or Random.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the core data model.
var (
	// ErrBadValue indicates an observed value outside the binary domain {0,1}.
	ErrBadValue = errors.New("core: value outside {0,1}")

	// ErrNotSimplex indicates a probability table row that is negative or does
	// not sum to 1 within floating tolerance.
	ErrNotSimplex = errors.New("core: probabilities must be non-negative and sum to 1")

	// ErrUnknownInitMode indicates an unrecognized initialization mode.
	ErrUnknownInitMode = errors.New("core: unknown initialization mode")
)

// Value is a tagged binary parent value: either Observed(0|1) or Missing.
// The zero Value is Missing, so uninitialized fields are safely "unknown".
type Value struct {
	val  int
	seen bool
}

// Observed returns a Value carrying an observed binary outcome v.
// Domain errors (v outside {0,1}) are deferred to Dataset.Validate so that
// construction stays infallible; see Observation.Validate.
func Observed(v int) Value { return Value{val: v, seen: true} }

// Missing returns the unobserved Value.
func Missing() Value { return Value{} }

// Get reports the observed outcome and whether one is present.
func (x Value) Get() (int, bool) { return x.val, x.seen }

// IsMissing reports whether the value is unobserved.
func (x Value) IsMissing() bool { return !x.seen }

// String renders "0", "1", or "?" for a missing value.
func (x Value) String() string {
	if !x.seen {
		return "?"
	}
	return fmt.Sprintf("%d", x.val)
}

// Observation is a single datum over the v-structure. The child Z is
// structurally always observed; only the parents X and Y may be Missing.
type Observation struct {
	// X is the first parent's value, possibly Missing.
	X Value

	// Y is the second parent's value, possibly Missing.
	Y Value

	// Z is the child's observed value, 0 or 1.
	Z int
}

// Validate checks that every present value lies in {0,1}.
// Complexity: O(1).
func (o Observation) Validate() error {
	if v, ok := o.X.Get(); ok && v != 0 && v != 1 {
		return fmt.Errorf("x=%d: %w", v, ErrBadValue)
	}
	if v, ok := o.Y.Get(); ok && v != 0 && v != 1 {
		return fmt.Errorf("y=%d: %w", v, ErrBadValue)
	}
	if o.Z != 0 && o.Z != 1 {
		return fmt.Errorf("z=%d: %w", o.Z, ErrBadValue)
	}
	return nil
}

// Dataset is an ordered sequence of observations.
type Dataset []Observation

// Validate checks every observation's value domains.
// Returns the index of the first offending observation in the wrapped error.
// Complexity: O(n).
func (d Dataset) Validate() error {
	for i, o := range d {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("core: observation %d: %w", i, err)
		}
	}
	return nil
}
