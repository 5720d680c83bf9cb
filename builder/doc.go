// Package builder provides "functional-options"-style constructors for
// synthetic search graphs. It exists so tests, benchmarks and the generate
// command share one deterministic source of topologies.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG and the cost function.
//   - Cost distributions (for core.Labeled graphs only):
//     – default:        constant cost 1.
//     – UniformCost:    uniform integer costs in [lo, hi].
//   - Constructors:
//     – Path, Cycle, Star, Complete, Grid: deterministic shapes.
//     – RandomSparse:   Erdős–Rényi G(n,p); needs WithSeed or WithRand for 0<p<1.
//
// Guarantees:
//
//   - Determinism: the same kind, options, seed and constructor order give
//     identical graphs, action order included, so search results are reproducible.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ...) for invalid
//     build parameters, wrapped with the constructor name.
package builder
