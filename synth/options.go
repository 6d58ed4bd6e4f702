// SPDX-License-Identifier: MIT
// Package: bayem/synth
//
// options.go — functional options for the synthetic data generator.
//
// Contract (strict):
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Generate itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand,
//     and omitting both falls back to a fixed default seed — never to
//     time-based entropy.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible datasets in tests/golden files.
//   • WithMissingRate affects only the independent-missingness policy
//     (PartiallyObserved=true, NeverCoobserved=false).

package synth

import (
	"math/rand" // RNG source for sampling values and missingness
)

// defaultRNGSeed is the fixed seed used when neither WithSeed nor WithRand
// is supplied. Arbitrary but stable, for reproducible defaults.
const defaultRNGSeed int64 = 1

// defaultMissingRate is the per-parent independent missingness probability,
// hiding roughly half of each parent column.
const defaultMissingRate = 0.5

// Option customizes Generate by mutating a genConfig before sampling begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*genConfig)

// genConfig aggregates all generator knobs.
type genConfig struct {
	// RNG for value and missingness draws; resolved to a seeded default
	// when no option supplies one.
	rng *rand.Rand

	// Per-parent missingness probability for the independent policy.
	missingRate float64
}

// WithSeed creates a new deterministic *rand.Rand with the given seed.
// Policy: seed==0 ⇒ the fixed default seed; otherwise the seed verbatim.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		s := seed
		if s == 0 {
			s = defaultRNGSeed
		}
		c.rng = rand.New(rand.NewSource(s))
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithMissingRate overrides the independent missingness probability.
// Panics if p is outside [0,1].
// Complexity: O(1).
func WithMissingRate(p float64) Option {
	if p < 0 || p > 1 {
		panic("synth: WithMissingRate(p outside [0,1])")
	}
	return func(c *genConfig) {
		c.missingRate = p
	}
}

// newGenConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:         nil, // resolved below so WithRand can win
		missingRate: defaultMissingRate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultRNGSeed))
	}
	return cfg
}
