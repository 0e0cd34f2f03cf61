package source

import (
	"k8s.io/utils/ptr"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/navigator"
)

// FromGraph captures g as a Spec. Every stored edge becomes a one-way
// connection, so a bidirectional insert round-trips as two connections.
// Locations carry zero coordinates.
func FromGraph(g *core.Graph) *Spec {
	names := g.Names()
	s := &Spec{
		Locations:   make([]navigator.Location, len(names)),
		Connections: make([]Connection, 0, g.EdgeCount()),
	}
	for i, n := range names {
		s.Locations[i] = navigator.Location{Name: n}
	}
	for _, e := range g.Edges() {
		s.Connections = append(s.Connections, Connection{
			From:          names[e.From],
			To:            names[e.To],
			Weight:        ptr.To(e.Weight),
			Bidirectional: ptr.To(false),
		})
	}

	return s
}
