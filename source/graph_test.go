package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/source"
)

func TestFromGraphRoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(3),
		builder.WithWeightFn(builder.IntWeightFn(-4, 9)),
		builder.WithDirected(),
	}, builder.RandomSparse(6, 0.5))
	require.NoError(t, err)

	spec := source.FromGraph(g)
	require.Len(t, spec.Locations, 6)
	require.Len(t, spec.Connections, g.EdgeCount())
	for _, c := range spec.Connections {
		assert.False(t, c.IsBidirectional())
		require.NotNil(t, c.Weight)
	}

	out, err := spec.Encode()
	require.NoError(t, err)
	decoded, err := source.Decode(out)
	require.NoError(t, err)

	nw, err := decoded.Build()
	require.NoError(t, err)
	assert.Equal(t, g.Names(), nw.Graph().Names())
	assert.Equal(t, g.Edges(), nw.Graph().Edges())
}

func TestFromGraphBidirectionalSplits(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(2))
	require.NoError(t, err)

	spec := source.FromGraph(g)
	require.Len(t, spec.Connections, 2)
	assert.Equal(t, "0", spec.Connections[0].From)
	assert.Equal(t, "1", spec.Connections[1].From)
	assert.Equal(t, 1.0, *spec.Connections[1].Weight)
}
