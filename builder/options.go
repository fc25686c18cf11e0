// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options resolved into an immutable builderConfig.

package builder

import "math/rand"

// Option configures a builderConfig.
type Option func(*builderConfig)

// builderConfig is resolved once per Rows/Build call.
type builderConfig struct {
	rng           *rand.Rand // nil unless WithSeed/WithRand
	bidirectional bool       // also emit v→u for every u→v
}

func newBuilderConfig(opts ...Option) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-owned RNG. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithBidirectional mirrors every arc, turning the topology undirected.
func WithBidirectional() Option {
	return func(c *builderConfig) {
		c.bidirectional = true
	}
}
