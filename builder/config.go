package builder

import "math/rand"

type builderConfig struct {
	// Vertex name strategy: index -> name (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Weight generator for every emitted edge.
	weightFn WeightFn
	// Emit each connection in both directions.
	bidirectional bool
}

// BuilderOption configures a constructor run.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:          DefaultIDFn,
		weightFn:      DefaultWeightFn,
		bidirectional: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed installs a rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs an existing RNG. It is not safe for concurrent use.
func WithRand(rng *rand.Rand) BuilderOption {
	return func(c *builderConfig) { c.rng = rng }
}

// WithWeightFn sets the edge weight generator. nil keeps the default.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithIDFn sets the vertex naming scheme. nil keeps the default.
func WithIDFn(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithDirected emits one-way edges only. Grid ignores it.
func WithDirected() BuilderOption {
	return func(c *builderConfig) { c.bidirectional = false }
}
