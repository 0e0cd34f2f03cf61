package apsp

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/shortpath/core"
)

// forEachSource calls fn(s) for every s in [0, n). With more than one worker
// the calls run on an errgroup bounded by cfg.Workers; fn must only write
// state owned by row s. The first error cancels the remaining calls.
func forEachSource(cfg Options, n int, fn func(s int) error) error {
	if cfg.Workers == 1 {
		for s := 0; s < n; s++ {
			if err := cfg.Ctx.Err(); err != nil {
				return err
			}
			if err := fn(s); err != nil {
				return err
			}
		}

		return nil
	}

	eg, ctx := errgroup.WithContext(cfg.Ctx)
	eg.SetLimit(cfg.Workers)
	for s := 0; s < n; s++ {
		s := s
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(s)
		})
	}

	return eg.Wait()
}

// forEachChunk splits [0, n) into at most cfg.Workers contiguous ranges and
// runs fn(lo, hi) on each, returning after all ranges complete.
func forEachChunk(cfg Options, n int, fn func(lo, hi int)) error {
	if cfg.Workers == 1 || n < 2 {
		fn(0, n)
		return nil
	}

	chunks := cfg.Workers
	if chunks > n {
		chunks = n
	}
	size := (n + chunks - 1) / chunks

	var eg errgroup.Group
	for lo := 0; lo < n; lo += size {
		lo, hi := lo, min(lo+size, n)
		eg.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}

	return eg.Wait()
}

// nextHopRow derives row s of a next-hop table from a single-source
// predecessor tree: next[v] is the first vertex after s on the tree path s→v.
// Complexity: O(V) amortized (every vertex is resolved once).
func nextHopRow(prev []int, source int) []int {
	n := len(prev)
	next := make([]int, n)
	for v := range next {
		next[v] = core.NoVertex
	}
	if source < 0 || source >= n {
		return next
	}
	next[source] = source

	chain := make([]int, 0, 8)
	for v := 0; v < n; v++ {
		if next[v] != core.NoVertex {
			continue
		}
		chain = chain[:0]
		cur := v
		for next[cur] == core.NoVertex && len(chain) <= n {
			p := prev[cur]
			if p == source {
				next[cur] = cur
				break
			}
			if p == core.NoVertex {
				break
			}
			chain = append(chain, cur)
			cur = p
		}
		hop := next[cur]
		for _, c := range chain {
			next[c] = hop
		}
	}

	return next
}
