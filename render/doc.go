// Package render turns bayem parameter triples and sufficient statistics
// into short human-readable text blocks for demos and debugging.
//
// It consumes nothing the core does not already expose via return values:
// every function is a pure string formatter over core.Params or em.Stats.
package render
