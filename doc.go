// Package bayem is your in-memory playground for learning the parameters
// of a binary v-structure Bayesian network — X → Z ← Y — from data with
// missing parent observations, using Expectation-Maximization.
//
// 🚀 What is bayem?
//
//	A small, deterministic library that brings together:
//		• Core primitives: tagged observed/missing values, observations, datasets
//		• Parameter tables: marginals for X and Y, a conditional table for Z,
//		  with strict simplex validation and immutable-by-replacement updates
//		• Expectation engine: per-observation posterior responsibilities over
//		  the missing parent(s), accumulated into expected sufficient statistics
//		• Maximization engine: expected counts → maximum-likelihood parameters
//		• Driver: fixed-iteration EM loop with invariant validation each step,
//		  optional log-likelihood early stopping, optional parallel E-step
//		• Synthetic data: seeded generators with configurable missingness
//
// ✨ Why choose bayem?
//
//   - Deterministic – explicit seeded RNGs, bit-reproducible runs
//   - Strict guarantees – simplex and mass-conservation invariants are
//     validated every iteration and surfaced as sentinel errors
//   - Pure Go – no cgo; gonum for the numeric plumbing
//   - Honest about failure modes – degenerate parameters and MAR violations
//     error out loudly instead of producing silent NaNs
//
// Everything is organized under four subpackages:
//
//	core/   — Value, Observation, Dataset, Marginal, Conditional, Params
//	em/     — Expect, Maximize, Run, Stats, LogLikelihood
//	synth/  — Generate: sample datasets from ground-truth tables
//	render/ — human-readable parameter tables, marginals and statistics
//
// Quick ASCII example:
//
//	    X       Y
//	     \     /
//	      ▼   ▼
//	        Z
//
//	the fixed v-structure: two independent binary parents, one binary child.
//
// Dive into examples/ for end-to-end demos: recovering ground-truth tables
// from complete data, and watching recovery degrade when X and Y are never
// observed together.
//
//	go get github.com/katalvlaran/bayem
package bayem
