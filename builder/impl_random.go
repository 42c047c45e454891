// SPDX-License-Identifier: MIT
// Package: bcmaps/builder
//
// impl_random.go: RandomMap(n, p): scattered cities, Bernoulli roads.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewCities); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil (else ErrNeedRandSource); coordinates are always sampled.
//   • Cities are added via cfg.idFn in index order 0..n-1.
//   • Roads are trialled over unordered pairs {i,j}, i<j.
//
// Determinism:
//   • Coordinates are drawn first (x then y per city), then road trials
//     run i asc, j asc. A fixed seed therefore fixes the whole map.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bcmaps/core"
)

const (
	methodRandomMap = "RandomMap"
	minCities       = 1
	probMin         = 0.0
	probMax         = 1.0
)

// RandomMap returns n cities placed uniformly in [0,extent)² with each pair
// joined by a road with probability p.
func RandomMap(n int, p float64, opts ...Option) (*core.Map, error) {
	if n < minCities {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomMap, n, minCities, ErrTooFewCities)
	}
	if !(p >= probMin && p <= probMax) {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomMap, p, probMin, probMax, ErrInvalidProbability)
	}

	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomMap, ErrNeedRandSource)
	}

	m := core.NewMap(core.WithCapacity(n))
	names := make([]string, n)
	for i := 0; i < n; i++ {
		x := cfg.rng.Float64() * cfg.extent
		y := cfg.rng.Float64() * cfg.extent
		if cfg.integer {
			x, y = math.Floor(x), math.Floor(y)
		}
		names[i] = cfg.idFn(i)
		if _, err := m.AddCity(names[i], x, y); err != nil {
			return nil, fmt.Errorf("%s: AddCity(%s): %w", methodRandomMap, names[i], err)
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() >= p {
				continue
			}
			if _, err := m.AddRoad(names[i], names[j]); err != nil {
				return nil, fmt.Errorf("%s: AddRoad(%s, %s): %w", methodRandomMap, names[i], names[j], err)
			}
		}
	}

	return m, nil
}
