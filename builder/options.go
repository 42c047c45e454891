// SPDX-License-Identifier: MIT
// Package: bcmaps/builder
//
// options.go: functional options and the resolved builder configuration.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
	"strconv"
)

// Defaults applied by newConfig.
const (
	defaultExtent   = 100.0
	defaultIDPrefix = "C"
)

// Option customizes a constructor by mutating the config before building.
type Option func(*config)

// config is the resolved, immutable-after-resolution option set.
type config struct {
	rng       *rand.Rand
	idFn      func(int) string
	extent    float64
	integer   bool
	diagonals bool
}

// newConfig applies opts over deterministic defaults, last option wins.
func newConfig(opts ...Option) config {
	cfg := config{
		idFn:   func(i int) string { return defaultIDPrefix + strconv.Itoa(i) },
		extent: defaultExtent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithIDScheme sets the city naming function: index → name.
// The function must return distinct non-empty names. Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}

// WithExtent sets the side of the square [0,extent)² RandomMap scatters
// cities over. Panics unless extent > 0.
func WithExtent(extent float64) Option {
	if !(extent > 0) {
		panic("builder: WithExtent(extent <= 0)")
	}
	return func(c *config) {
		c.extent = extent
	}
}

// WithIntegerCoords rounds RandomMap coordinates down to integers.
func WithIntegerCoords() Option {
	return func(c *config) {
		c.integer = true
	}
}

// WithDiagonals makes GridMap 8-connected.
func WithDiagonals() Option {
	return func(c *config) {
		c.diagonals = true
	}
}
