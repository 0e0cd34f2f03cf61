package navigator

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/shortpath/core"
)

// NetworkOption configures a Network.
type NetworkOption func(*Network)

// WithWorkers bounds the goroutines used by all-pairs solves. Values < 1 are ignored.
func WithWorkers(n int) NetworkOption {
	return func(nw *Network) {
		if n >= 1 {
			nw.workers = n
		}
	}
}

// Network is a named location graph: the boundary between callers that speak
// in location names and solvers that speak in vertex ids.
type Network struct {
	mu        sync.RWMutex
	graph     *core.Graph
	locations []Location // indexed by vertex id
	workers   int
}

// NewNetwork returns an empty Network that solves serially unless WithWorkers is given.
func NewNetwork(opts ...NetworkOption) *Network {
	nw := &Network{graph: core.NewGraph(), workers: 1}
	for _, opt := range opts {
		opt(nw)
	}

	return nw
}

// AddLocation registers a named coordinate and returns its vertex id.
//
// Errors:
//   - ErrInvalidCoordinate for out-of-range latitude/longitude.
//   - core.ErrDuplicateVertex / core.ErrEmptyVertexName from the binding.
func (nw *Network) AddLocation(name string, latitude, longitude float64) (int, error) {
	if err := validateCoordinate(latitude, longitude); err != nil {
		return core.NoVertex, fmt.Errorf("location %q: %w", name, err)
	}

	nw.mu.Lock()
	defer nw.mu.Unlock()

	id, err := nw.graph.AddVertex(name)
	if err != nil {
		return core.NoVertex, err
	}
	nw.locations = append(nw.locations, Location{Name: name, Latitude: latitude, Longitude: longitude})

	return id, nil
}

// AddConnection adds a weighted connection src→dst (and dst→src when
// bidirectional). Unknown names fail with core.ErrUnknownVertex and leave the
// graph unchanged.
func (nw *Network) AddConnection(src, dst string, weight float64, bidirectional bool) error {
	nw.mu.Lock()
	defer nw.mu.Unlock()

	return nw.graph.AddEdgeByName(src, dst, weight, bidirectional)
}

// AddGeodesicConnection connects src and dst weighted by their great-circle
// distance in meters and returns that weight. It stands in for a mapping
// service's road distance when none is available.
func (nw *Network) AddGeodesicConnection(src, dst string, bidirectional bool) (float64, error) {
	nw.mu.Lock()
	defer nw.mu.Unlock()

	a, err := nw.locationLocked(src)
	if err != nil {
		return 0, err
	}
	b, err := nw.locationLocked(dst)
	if err != nil {
		return 0, err
	}
	w := GreatCircleDistance(a, b)

	return w, nw.graph.AddEdgeByName(src, dst, w, bidirectional)
}

func (nw *Network) locationLocked(name string) (Location, error) {
	id, err := nw.graph.ID(name)
	if err != nil {
		return Location{}, err
	}

	return nw.locations[id], nil
}

// Location returns the named location.
func (nw *Network) Location(name string) (Location, error) {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	return nw.locationLocked(name)
}

// Locations returns every location ordered by vertex id.
func (nw *Network) Locations() []Location {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	return append([]Location(nil), nw.locations...)
}

// Graph exposes the underlying graph. Callers that mutate it directly bypass
// location bookkeeping; use it for read access and snapshots.
func (nw *Network) Graph() *core.Graph { return nw.graph }
