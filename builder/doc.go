// SPDX-License-Identifier: MIT

// Package builder generates adjacency-matrix rows for canonical directed
// topologies: fixtures for tests, benchmarks and the `allpaths gen` command.
//
// What
//
//   - Constructors: Path, Cycle, Complete, Star, Grid, Layered, RandomSparse.
//   - Rows(con, opts...) returns cleaned '0'/'1' rows; Build(con, opts...) loads
//     them into a *matrix.Adjacency.
//   - Options: WithSeed / WithRand (stochastic constructors), WithBidirectional
//     (emit the reverse of every arc).
//
// Determinism
//
//	Arcs are emitted in a fixed order and RandomSparse draws its Bernoulli
//	trials row-major, so equal inputs and seed give identical matrices.
//
// Errors
//
//   - ErrTooFewVertices      size parameter below the constructor's minimum.
//   - ErrInvalidProbability  p outside [0,1].
//   - ErrNeedRandSource      RandomSparse without WithSeed/WithRand.
//   - ErrNilConstructor      nil Constructor passed to Rows/Build.
package builder
