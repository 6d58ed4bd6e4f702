// Package em - types, options and sentinel errors for the EM engines.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Call sites attach context (iteration, observation, table row) via %w.
//   - Engines never panic on user input and never emit NaN: degenerate
//     denominators are surfaced as ErrDegenerate instead.
package em

import (
	"errors"

	"github.com/katalvlaran/bayem/core"
)

// Sentinel errors for the EM engines and driver.
var (
	// ErrEmptyDataset indicates the driver was invoked with no observations.
	ErrEmptyDataset = errors.New("em: dataset must be non-empty")

	// ErrBadOptions indicates an invalid Options combination
	// (non-positive iteration count, negative tolerance or worker count).
	ErrBadOptions = errors.New("em: invalid options")

	// ErrDegenerate indicates a zero denominator: either an observation has
	// probability 0 for every candidate assignment of its missing parents
	// under current parameters, or a parent configuration accumulated zero
	// expected visits. No smoothing is applied; the error is propagated.
	ErrDegenerate = errors.New("em: zero-probability event under current parameters")

	// ErrStatsMass indicates a sufficient-statistics mass-conservation
	// violation. Always an engine bug, never a data problem.
	ErrStatsMass = errors.New("em: sufficient statistics mass mismatch")
)

// Stats holds the expected sufficient statistics of one expectation pass:
// Mx and My (expected counts per parent value) and Mz (expected counts per
// (x,y,z) cell). After a pass over n observations the masses are conserved:
//
//	ΣMx = ΣMy = n
//	ΣMz[a][:][:] = Mx[a]   for a ∈ {0,1}
//	ΣMz[:][b][:] = My[b]   for b ∈ {0,1}
type Stats struct {
	// X is Mx: expected count of each value of the first parent.
	X [2]float64

	// Y is My: expected count of each value of the second parent.
	Y [2]float64

	// Z is Mz: expected count of each (x,y,z) configuration.
	Z [2][2][2]float64
}

// merge adds o element-wise into s. Addition is associative and commutative,
// so chunked expectation passes reduce to the same statistics.
func (s *Stats) merge(o Stats) {
	for v := 0; v < 2; v++ {
		s.X[v] += o.X[v]
		s.Y[v] += o.Y[v]
	}
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for c := 0; c < 2; c++ {
				s.Z[a][b][c] += o.Z[a][b][c]
			}
		}
	}
}

// Options configures the EM driver.
//
// Fields:
//   - Iterations — number of EM iterations T (> 0). The loop always runs
//     exactly T iterations unless Tol-based early stopping is enabled.
//   - Init       — initialization mode for θ⁽⁰⁾ (core.Uniform | core.Random).
//   - Seed       — RNG seed for Random initialization (0 ⇒ fixed default).
//   - Tol        — if > 0, stop early once the observed-data log-likelihood
//     improves by less than Tol between iterations. 0 disables detection.
//   - Workers    — expectation-pass parallelism. Values ≤ 1 mean a single
//     sequential pass; higher values partition the dataset into that many
//     chunks whose partial statistics are merged in fixed chunk order, so
//     results are reproducible for a fixed worker count.
type Options struct {
	Iterations int
	Init       core.InitMode
	Seed       int64
	Tol        float64
	Workers    int
}

// DefaultOptions returns the recommended defaults: 10 iterations, uniform
// initialization, no early stopping, sequential expectation.
func DefaultOptions() Options {
	return Options{
		Iterations: 10,
		Init:       core.Uniform,
		Seed:       0,
		Tol:        0,
		Workers:    1,
	}
}
