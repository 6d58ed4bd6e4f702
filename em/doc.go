// Package em implements Expectation-Maximization parameter learning for the
// fixed binary v-structure X → Z ← Y, where observations may be missing
// either parent (never the child).
//
// 🚀 What does em do?
//
//	Given a dataset of (x-or-missing, y-or-missing, z) triples, em recovers
//	maximum-likelihood estimates of the three categorical tables
//	qx = P(X), qy = P(Y), qz = P(Z|X,Y) by alternating:
//
//	  E-step  Expect(p, data)  → expected sufficient statistics (Stats):
//	          per incomplete observation, the posterior responsibility over
//	          the missing parent(s) under current parameters, with observed
//	          parents always counted as exact units;
//	  M-step  Maximize(stats)  → a fresh parameter triple of count ratios.
//
//	Run(data, opts) drives T iterations, validating mass-conservation and
//	simplex invariants after every step, and returns the final triple.
//
// ✨ Key properties:
//   - Complete data reduces to exact empirical counts, so one iteration
//     reaches the closed-form MLE.
//   - The observed-data log-likelihood (LogLikelihood) never decreases
//     across iterations — the standard EM ascent guarantee.
//   - Deterministic: Uniform initialization is constant; Random uses the
//     caller's seed. Fixed inputs reproduce bit-identical parameter runs.
//   - No smoothing: zero-mass denominators surface as ErrDegenerate rather
//     than silent NaNs. Small datasets and extreme ground truths can
//     legitimately hit this.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bayem/em"
//
//	opts := em.DefaultOptions()
//	opts.Iterations = 10
//	opts.Init = core.Uniform
//
//	p, err := em.Run(data, &opts)
//	if err != nil {
//	  // errors.Is(err, em.ErrDegenerate), em.ErrStatsMass, ...
//	}
//
// ⚠️ Known failure mode: when X and Y are never observed in the same row,
// the missingness mechanism violates MAR and qz is not identifiable — EM
// converges, but the recovered conditionals can be far from ground truth.
// The test suite documents this instead of hiding it.
//
// Performance: each iteration is O(n); the E-step may be chunked across
// Options.Workers goroutines (partial statistics merged in fixed chunk
// order, keeping runs reproducible for a fixed worker count).
package em
