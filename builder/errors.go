// SPDX-License-Identifier: MIT
// Package: bcmaps/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w; sentinels are never formatted.
//   • Constructors never panic; option constructors may (invalid arguments).

package builder

import "errors"

// ErrTooFewCities indicates a size parameter (n, cols, rows) below 1.
var ErrTooFewCities = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a road probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")
