package source_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/navigator"
	"github.com/katalvlaran/shortpath/source"
)

// fakeRunner answers queries from canned rows.
type fakeRunner struct {
	rows    map[string][]source.Record
	err     error
	queries []string
}

func (f *fakeRunner) Run(_ context.Context, cypher string, _ map[string]any) ([]source.Record, error) {
	f.queries = append(f.queries, cypher)
	if f.err != nil {
		return nil, f.err
	}

	return f.rows[cypher], nil
}

func TestNeo4jLoader_Load(t *testing.T) {
	r := &fakeRunner{rows: map[string][]source.Record{
		source.DefaultLocationQuery: {
			{"name": "Library", "latitude": 12.8411, "longitude": 80.154},
			{"name": "AB1", "latitude": 12.8438, "longitude": int64(80)},
			{"name": "AB3", "latitude": 12.8437, "longitude": 80.1546},
		},
		source.DefaultConnectionQuery: {
			{"from": "Library", "to": "AB1", "weight": 310.0, "bidirectional": true},
			{"from": "AB1", "to": "AB3", "weight": int64(130), "bidirectional": false},
			{"from": "AB3", "to": "Library", "weight": nil, "bidirectional": true},
		},
	}}

	spec, err := source.NewNeo4jLoader(r).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{source.DefaultLocationQuery, source.DefaultConnectionQuery}, r.queries)

	require.Len(t, spec.Locations, 3)
	assert.Equal(t, navigator.Location{Name: "AB1", Latitude: 12.8438, Longitude: 80}, spec.Locations[1])

	require.Len(t, spec.Connections, 3)
	assert.Equal(t, 130.0, *spec.Connections[1].Weight)
	assert.False(t, spec.Connections[1].IsBidirectional())
	assert.True(t, spec.Connections[2].Geodesic, "a missing weight falls back to great-circle distance")

	nw, err := spec.Build()
	require.NoError(t, err)
	assert.Equal(t, 5, nw.Graph().EdgeCount())
}

func TestNeo4jLoader_Errors(t *testing.T) {
	boom := errors.New("connection refused")
	_, err := source.NewNeo4jLoader(&fakeRunner{err: boom}).Load(context.Background())
	require.ErrorIs(t, err, boom)

	bad := &fakeRunner{rows: map[string][]source.Record{
		source.DefaultLocationQuery: {{"name": "A", "latitude": "north", "longitude": 0.0}},
	}}
	_, err = source.NewNeo4jLoader(bad).Load(context.Background())
	require.ErrorIs(t, err, source.ErrBadRecord)

	noName := &fakeRunner{rows: map[string][]source.Record{
		source.DefaultConnectionQuery: {{"from": "", "to": "B", "weight": 1.0}},
	}}
	_, err = source.NewNeo4jLoader(noName).Load(context.Background())
	require.ErrorIs(t, err, source.ErrBadRecord)
}

func TestNewNeo4jRunner_RequiresURI(t *testing.T) {
	_, err := source.NewNeo4jRunner(context.Background(), source.Neo4jConfig{})
	require.ErrorIs(t, err, source.ErrMissingURI)
}
