// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Bidirectional: iterate unordered pairs {i,j} with i<j.
//   - Directed (WithDirected): iterate ordered pairs (i,j), i != j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc. One Float64 draw per trial,
//     then one weight draw per accepted edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (no side effects on invalid input).
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices 0..n-1.
		ids, err := addVertices(methodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}

		// 3) Trials in a fixed order.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (cfg.bidirectional && j < i) {
					continue
				}
				if !accept(cfg, p) {
					continue
				}
				if err = connect(methodRandomSparse, g, cfg, ids[i], ids[j], cfg.bidirectional); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// accept runs one Bernoulli(p) trial. p ∈ {0, 1} needs no RNG.
func accept(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
