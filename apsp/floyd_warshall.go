package apsp

import (
	"github.com/katalvlaran/shortpath/core"
)

// FloydWarshall computes all-pairs shortest paths by dense dynamic programming.
//
// Initialization comes from g.DenseMatrix(): 0 diagonal, lightest edge weight,
// Unreachable elsewhere; Next[i][j] = j for every edge and Next[i][i] = i.
//
// For each intermediate k (sequentially) and every pair (i, j):
//
//	if Dist[i][k] + Dist[k][j] < Dist[i][j] {
//	    Dist[i][j] = Dist[i][k] + Dist[k][j]
//	    Next[i][j] = Next[i][k]
//	}
//
// Row k is copied before each pass so rows can be swept by several workers
// (WithWorkers) without reading a row that another worker writes; the copy
// also makes the serial and parallel results bit-identical.
//
// A negative cycle is not an error: Result.NegativeCycle reports it via a
// negative diagonal and Result.CycleVertices lists the vertices on it.
//
// Complexity: Time O(V³), Space O(V²).
func FloydWarshall(g *core.View, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 1) Seed tables from the dense snapshot.
	n := g.Order()
	res := newResult(n)
	m := g.DenseMatrix()
	for i := 0; i < n; i++ {
		row, _ := m.Row(i) // i < n by construction
		for j, w := range row {
			d := core.Distance(w)
			res.Dist[i][j] = d
			switch {
			case i == j:
				res.Next[i][j] = i
			case d.Reachable():
				res.Next[i][j] = j
			}
		}
	}

	// 2) One pass per intermediate vertex; passes are strictly ordered.
	rowK := make([]core.Distance, n)
	for k := 0; k < n; k++ {
		if err = cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		copy(rowK, res.Dist[k])
		err = forEachChunk(cfg, n, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				relaxThrough(res, rowK, k, i)
			}
		})
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

// relaxThrough improves row i using intermediate k. Only row i is written.
func relaxThrough(res *Result, rowK []core.Distance, k, i int) {
	dik := res.Dist[i][k]
	if !dik.Reachable() {
		return
	}
	rowI, nextI := res.Dist[i], res.Next[i]
	hop := nextI[k]
	for j, dkj := range rowK {
		if !dkj.Reachable() {
			continue
		}
		if cand := dik + dkj; cand < rowI[j] {
			rowI[j] = cand
			nextI[j] = hop
		}
	}
}
