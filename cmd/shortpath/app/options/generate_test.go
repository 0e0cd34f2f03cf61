package options

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/builder"
)

func TestGenerateFlags(t *testing.T) {
	o := NewGenerateOptions()
	fs := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	o.AddFlags(fs)

	require.NoError(t, fs.Parse([]string{
		"--topology=grid", "--rows=2", "--cols=4",
		"--seed=11", "--min-weight=-1", "--max-weight=5",
		"--directed", "--format=json",
	}))
	assert.Empty(t, o.Validate())

	g, err := o.Graph()
	require.NoError(t, err)
	assert.Equal(t, 8, g.VertexCount())
	assert.Equal(t, 20, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, -1.0)
		assert.LessOrEqual(t, e.Weight, 5.0)
	}
}

func TestGenerateValidate(t *testing.T) {
	o := NewGenerateOptions()
	o.Topology = "hypercube"
	o.MinWeight, o.MaxWeight = 5, 1
	o.Format = "table"
	assert.Len(t, o.Validate(), 3)
}

func TestGeneratePrefixAndSize(t *testing.T) {
	o := NewGenerateOptions()
	o.Topology = TopologyCycle
	o.Vertices = 3
	o.Prefix = "x"
	g, err := o.Graph()
	require.NoError(t, err)
	assert.Equal(t, []string{"x0", "x1", "x2"}, g.Names())

	o.Vertices = 2
	_, err = o.Graph()
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}
