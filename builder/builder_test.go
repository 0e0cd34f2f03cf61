package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
)

func TestTopologyCounts(t *testing.T) {
	cases := []struct {
		name     string
		cons     builder.Constructor
		opts     []builder.BuilderOption
		vertices int
		edges    int
	}{
		{"path", builder.Path(4), nil, 4, 6},
		{"path directed", builder.Path(4), []builder.BuilderOption{builder.WithDirected()}, 4, 3},
		{"single vertex path", builder.Path(1), nil, 1, 0},
		{"cycle", builder.Cycle(4), nil, 4, 8},
		{"cycle directed", builder.Cycle(4), []builder.BuilderOption{builder.WithDirected()}, 4, 4},
		{"star", builder.Star(5), nil, 5, 8},
		{"complete", builder.Complete(4), nil, 4, 12},
		{"complete directed", builder.Complete(4), []builder.BuilderOption{builder.WithDirected()}, 4, 12},
		{"grid", builder.Grid(2, 3), nil, 6, 14},
		{"grid ignores directed", builder.Grid(2, 3), []builder.BuilderOption{builder.WithDirected()}, 6, 14},
		{"random empty", builder.RandomSparse(5, 0), nil, 5, 0},
		{"random full", builder.RandomSparse(4, 1), nil, 4, 12},
		{"random full directed", builder.RandomSparse(4, 1), []builder.BuilderOption{builder.WithDirected()}, 4, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.opts, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestConstructorErrors(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"path", builder.Path(0), nil, builder.ErrTooFewVertices},
		{"cycle", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"star", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"complete", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"grid", builder.Grid(0, 4), nil, builder.ErrTooFewVertices},
		{"random n", builder.RandomSparse(0, 0.5), nil, builder.ErrTooFewVertices},
		{"random p", builder.RandomSparse(3, 1.5), nil, builder.ErrInvalidProbability},
		{"random rng", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.opts, tc.cons)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestDuplicateNamesAcrossConstructors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(2), builder.Star(3))
	require.ErrorIs(t, err, core.ErrDuplicateVertex)
}

func TestRandomSparseDeterministic(t *testing.T) {
	build := func(seed int64) []core.Edge {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.UniformWeightFn(-3, 7)),
		}, builder.RandomSparse(12, 0.4))
		require.NoError(t, err)
		return g.Edges()
	}
	first := build(42)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, build(42))
}

func TestGridNamesAndWeights(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithWeightFn(builder.ConstantWeightFn(2.5)),
	}, builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "0,1", "1,0", "1,1"}, g.Names())
	for _, e := range g.Edges() {
		assert.Equal(t, 2.5, e.Weight)
	}
	assert.Equal(t, "3,7", builder.GridName(3, 7))
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	intFn := builder.IntWeightFn(-2, 3)
	for i := 0; i < 200; i++ {
		w := intFn(rng)
		assert.GreaterOrEqual(t, w, -2.0)
		assert.LessOrEqual(t, w, 3.0)
		assert.Equal(t, float64(int(w)), w)
	}
	assert.Equal(t, -2.0, intFn(nil))

	uni := builder.UniformWeightFn(1, 4)
	for i := 0; i < 200; i++ {
		w := uni(rng)
		assert.GreaterOrEqual(t, w, 1.0)
		assert.Less(t, w, 4.0)
	}
	assert.Equal(t, 1.0, uni(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))

	assert.Panics(t, func() { builder.UniformWeightFn(2, 1) })
	assert.Panics(t, func() { builder.IntWeightFn(2, 1) })
}

func TestIDFns(t *testing.T) {
	for idx, want := range map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"} {
		assert.Equal(t, want, builder.ExcelColumnIDFn(idx))
	}
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "stop-3", builder.PrefixIDFn("stop-")(3))

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithIDFn(builder.ExcelColumnIDFn),
		builder.WithIDFn(nil),
	}, builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Names())
}

func TestGraphOptionsApply(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithoutLoops()}, nil, builder.Complete(3))
	require.NoError(t, err)
	assert.False(t, g.Stats().AllowsLoops)
}
