// SPDX-License-Identifier: MIT
// Package: bayem/synth
//
// errors.go — sentinel errors for the synth package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w wrapping.
//   • Generators MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package synth

import "errors"

// ErrTooFewSamples indicates a requested dataset size below the minimum (1).
// Classification: Validation error (parameters).
// Usage: if errors.Is(err, ErrTooFewSamples) { /* report invalid n */ }.
var ErrTooFewSamples = errors.New("synth: sample count too small")

// ErrBadTruth indicates the ground-truth parameter triple fails its simplex
// invariants and cannot be sampled from.
// Usage: if errors.Is(err, ErrBadTruth) { /* fix the ground-truth tables */ }.
var ErrBadTruth = errors.New("synth: invalid ground-truth parameters")
