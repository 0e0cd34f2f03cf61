// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// api.go - Constructor type and the BuildGraph entry point.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Constructor adds a topology to g using the resolved options.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts and applies every constructor in
// order with the same options. The first failure aborts the build.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices binds cfg.idFn(0..n-1) and returns the assigned ids.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) ([]int, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", method, ErrConstructFailed)
	}
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		name := cfg.idFn(i)
		id, err := g.AddVertex(name)
		if err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, name, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// connect emits u→v (and v→u when bidirectional) with one sampled weight.
func connect(method string, g *core.Graph, cfg builderConfig, u, v int, bidirectional bool) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w, bidirectional); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
