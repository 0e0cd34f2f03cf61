// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_simple.go - Path, Cycle, Star and Complete constructors.
//
// Determinism:
//   • Vertices are added in index order via cfg.idFn.
//   • Edges are emitted in ascending (u, v) order; one weight sample per connection.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
)

// Path returns a Constructor for the chain 0–1–…–(n-1). n ≥ 1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodPath, n, ErrTooFewVertices)
		}
		ids, err := addVertices(methodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = connect(methodPath, g, cfg, ids[i], ids[i+1], cfg.bidirectional); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring 0–1–…–(n-1)–0. n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 3 {
			return fmt.Errorf("%s: n=%d < 3: %w", methodCycle, n, ErrTooFewVertices)
		}
		ids, err := addVertices(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(methodCycle, g, cfg, ids[i], ids[(i+1)%n], cfg.bidirectional); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor with hub 0 joined to leaves 1..n-1. n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < 2: %w", methodStar, n, ErrTooFewVertices)
		}
		ids, err := addVertices(methodStar, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(methodStar, g, cfg, ids[0], ids[i], cfg.bidirectional); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor joining every pair of n vertices. n ≥ 1.
// Directed builds emit both u→v and v→u with independent weights.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodComplete, n, ErrTooFewVertices)
		}
		ids, err := addVertices(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				switch {
				case i == j:
					continue
				case cfg.bidirectional && j < i:
					continue
				}
				if err = connect(methodComplete, g, cfg, ids[i], ids[j], cfg.bidirectional); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
