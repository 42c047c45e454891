// Package builder generates deterministic map fixtures for tests, examples
// and benchmarks. It follows the functional-options style used across
// bcmaps: constructors take the topology parameters, options tune naming,
// randomness and coordinate policy.
//
// Constructors:
//
//   - RandomMap(n, p):      n cities scattered uniformly over a square, each
//     unordered pair joined with probability p (Erdős–Rényi-like).
//   - GridMap(cols, rows):  a full reticle with cities named "x:y" at integer
//     coordinates, 4- or 8-connected.
//
// Options:
//
//   - WithSeed / WithRand: RNG for stochastic constructors (required by RandomMap).
//   - WithIDScheme:        city naming function for RandomMap (default "C0", "C1", …).
//   - WithExtent:          side length of the square RandomMap scatters over (default 100).
//   - WithIntegerCoords:   round RandomMap coordinates, which produces many
//     equal-length alternatives and exercises tie-breaking.
//   - WithDiagonals:       8-connectivity for GridMap.
//
// Determinism:
//
//   - City order, road order and coordinates depend only on the parameters,
//     options and seed.
//
// Errors:
//
//   - ErrTooFewCities:       non-positive size parameter.
//   - ErrInvalidProbability: p outside [0,1].
//   - ErrNeedRandSource:     RandomMap without WithSeed/WithRand.
package builder
