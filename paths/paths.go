package paths

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

var (
	// ErrUnreachable indicates that no path exists from source to destination.
	ErrUnreachable = errors.New("paths: destination unreachable")

	// ErrBrokenChain indicates a predecessor or next-hop chain that cycles
	// without reaching its end point.
	ErrBrokenChain = errors.New("paths: broken chain")

	// ErrOutOfRange indicates a source or destination outside the table.
	ErrOutOfRange = errors.New("paths: vertex out of range")
)

// FromPredecessors rebuilds source→…→dest from a predecessor table.
//
// The walk starts at dest and follows prev until it reaches source. Hitting
// core.NoVertex first means dest was not reached from source.
//
// Complexity: O(path length).
func FromPredecessors(prev []int, source, dest int) ([]int, error) {
	n := len(prev)
	if source < 0 || source >= n || dest < 0 || dest >= n {
		return nil, fmt.Errorf("%w: source=%d dest=%d V=%d", ErrOutOfRange, source, dest, n)
	}

	rev := []int{dest}
	for cur := dest; cur != source; {
		cur = prev[cur]
		if cur == core.NoVertex {
			return nil, fmt.Errorf("%w: %d→%d", ErrUnreachable, source, dest)
		}
		if cur < 0 || cur >= n || len(rev) > n {
			return nil, fmt.Errorf("%w: predecessor walk %d→%d", ErrBrokenChain, source, dest)
		}
		rev = append(rev, cur)
	}

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// FromNextHop rebuilds source→…→dest from an all-pairs next-hop table.
//
// Complexity: O(path length).
func FromNextHop(next [][]int, source, dest int) ([]int, error) {
	n := len(next)
	if source < 0 || source >= n || dest < 0 || dest >= n {
		return nil, fmt.Errorf("%w: source=%d dest=%d V=%d", ErrOutOfRange, source, dest, n)
	}
	if source == dest {
		return []int{source}, nil
	}
	if next[source][dest] == core.NoVertex {
		return nil, fmt.Errorf("%w: %d→%d", ErrUnreachable, source, dest)
	}

	path := []int{source}
	for cur := source; cur != dest; {
		cur = next[cur][dest]
		if cur == core.NoVertex {
			return nil, fmt.Errorf("%w: %d→%d", ErrUnreachable, source, dest)
		}
		if cur < 0 || cur >= n || len(path) > n {
			return nil, fmt.Errorf("%w: next-hop walk %d→%d", ErrBrokenChain, source, dest)
		}
		path = append(path, cur)
	}

	return path, nil
}

// Weight sums the lightest edge weight along each consecutive pair of path.
// A single-vertex path weighs 0. A missing edge yields ErrUnreachable.
//
// Complexity: O(Σ deg(path[i])).
func Weight(v *core.View, path []int) (core.Distance, error) {
	if len(path) == 0 {
		return core.Unreachable, fmt.Errorf("%w: empty path", ErrUnreachable)
	}
	var total core.Distance
	for i := 0; i+1 < len(path); i++ {
		w, ok := v.MinWeight(path[i], path[i+1])
		if !ok {
			return core.Unreachable, fmt.Errorf("%w: no edge %d→%d", ErrUnreachable, path[i], path[i+1])
		}
		total = total.Add(w)
	}

	return total, nil
}
