// Package synth generates synthetic datasets for the binary v-structure
// X → Z ← Y from known ground-truth parameter tables, with configurable
// missingness of the parent values.
//
// The generator exists to exercise the EM engines: sample from a known
// truth, hide some parent values, then check how well em.Run recovers the
// tables. Three regimes are supported via Policy:
//
//   - fully observed (the closed-form MLE baseline),
//   - independent per-parent missingness (the MAR regime EM handles well),
//   - never-co-observed parents (exactly one parent hidden per row — the
//     documented failure mode where qz is not identifiable).
//
// Determinism:
//
//	All randomness flows through an explicitly owned *rand.Rand, seeded via
//	WithSeed or injected via WithRand; omitting both uses a fixed default
//	seed. There is no process-global RNG state, so parallel tests cannot
//	interfere with each other's draws.
//
// ⚙️ Usage:
//
//	truth := core.Params{
//	  X: core.Marginal{0.6, 0.4},
//	  Y: core.Marginal{0.3, 0.7},
//	  Z: core.Conditional{ ... },
//	}
//	data, err := synth.Generate(500, truth,
//	  synth.Policy{PartiallyObserved: true},
//	  synth.WithSeed(42))
package synth
