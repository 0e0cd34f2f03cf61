package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/paths"
)

const none = core.NoVertex

func TestFromPredecessors(t *testing.T) {
	// 0 → 1 → 3, 0 → 2; vertex 4 unreached.
	prev := []int{none, 0, 0, 1, none}

	tests := []struct {
		name      string
		src, dest int
		want      []int
		err       error
	}{
		{"chain", 0, 3, []int{0, 1, 3}, nil},
		{"single hop", 0, 2, []int{0, 2}, nil},
		{"source itself", 0, 0, []int{0}, nil},
		{"unreached", 0, 4, nil, paths.ErrUnreachable},
		{"dest out of range", 0, 5, nil, paths.ErrOutOfRange},
		{"negative source", -1, 2, nil, paths.ErrOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := paths.FromPredecessors(prev, tc.src, tc.dest)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFromPredecessors_CycleIsBrokenChain(t *testing.T) {
	// 0 and 1 point at each other; neither reaches source 2.
	prev := []int{1, 0, none}
	_, err := paths.FromPredecessors(prev, 2, 0)
	require.ErrorIs(t, err, paths.ErrBrokenChain)
}

func TestFromNextHop(t *testing.T) {
	// 0 → 1 → 2 directed chain.
	next := [][]int{
		{0, 1, 1},
		{none, 1, 2},
		{none, none, 2},
	}

	got, err := paths.FromNextHop(next, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)

	got, err = paths.FromNextHop(next, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)

	_, err = paths.FromNextHop(next, 2, 0)
	require.ErrorIs(t, err, paths.ErrUnreachable)

	_, err = paths.FromNextHop(next, 0, 3)
	require.ErrorIs(t, err, paths.ErrOutOfRange)
}

func TestFromNextHop_LoopIsBrokenChain(t *testing.T) {
	next := [][]int{
		{0, 1, 1},
		{0, 1, 0},
		{none, none, 2},
	}
	_, err := paths.FromNextHop(next, 0, 2)
	require.ErrorIs(t, err, paths.ErrBrokenChain)
}

func TestWeight(t *testing.T) {
	v, err := core.NewView(3, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: -2},
	})
	require.NoError(t, err)

	w, err := paths.Weight(v, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, core.Distance(-1), w)

	w, err = paths.Weight(v, []int{2})
	require.NoError(t, err)
	assert.Equal(t, core.Distance(0), w)

	_, err = paths.Weight(v, []int{2, 0})
	require.ErrorIs(t, err, paths.ErrUnreachable)

	_, err = paths.Weight(v, nil)
	require.ErrorIs(t, err, paths.ErrUnreachable)
}
