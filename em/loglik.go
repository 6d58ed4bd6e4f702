// Package em - observed-data log-likelihood.
package em

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bayem/core"
)

// LogLikelihood returns the observed-data log-likelihood of data under p:
// the sum over observations of log P(observed values | θ), marginalizing
// the missing parent(s). EM guarantees this quantity never decreases across
// iterations, which the driver's Tol-based stopping and the test suite rely
// on.
//
// The per-observation likelihood is exactly the normalizer of the gated
// joint table built by the expectation engine, so both stay consistent by
// construction.
//
// Errors:
//   - ErrDegenerate — an observation has probability 0 under p (wrapped
//     with the observation index).
//
// Complexity: O(n) time, O(1) space.
func LogLikelihood(p core.Params, data core.Dataset) (float64, error) {
	var ll float64
	for i, o := range data {
		_, total := joint(p, o)
		if total <= 0 {
			return 0, fmt.Errorf("em: observation %d: %w", i, ErrDegenerate)
		}
		ll += math.Log(total)
	}
	return ll, nil
}
