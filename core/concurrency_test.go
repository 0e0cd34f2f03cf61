package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
)

// TestConcurrentAddEdge checks that parallel inserts are all recorded.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	for i := 0; i <= num; i++ {
		_, err := g.AddVertex(fmt.Sprintf("V%d", i))
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, g.AddEdge(0, id, float64(id), false))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Len(t, nbs, num)
}

// TestConcurrentSnapshotWhileWriting mixes writers and snapshot readers.
func TestConcurrentSnapshotWhileWriting(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertex("hub")
	require.NoError(t, err)

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(i int) {
			defer wg.Done()
			id, err := g.AddVertex(fmt.Sprintf("n%d", i))
			if assert.NoError(t, err) {
				assert.NoError(t, g.AddEdge(0, id, 1, true))
			}
		}(i)
		go func() {
			defer wg.Done()
			v := g.Snapshot()
			for _, e := range v.Edges() {
				assert.True(t, v.HasVertex(e.From) && v.HasVertex(e.To))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, rounds+1, g.VertexCount())
	assert.Equal(t, 2*rounds, g.EdgeCount())
}
