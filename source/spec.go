package source

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/shortpath/navigator"
)

var (
	// ErrMissingWeight indicates a connection with neither a weight nor geodesic: true.
	ErrMissingWeight = errors.New("source: connection has no weight")

	// ErrMalformedLine indicates an edge-list line that cannot be parsed.
	ErrMalformedLine = errors.New("source: malformed line")
)

// Spec is the graph construction input: ordered locations followed by
// weighted connections. It decodes from YAML or JSON.
type Spec struct {
	Locations   []navigator.Location `json:"locations"`
	Connections []Connection         `json:"connections"`
}

// Connection is one weighted link between two named locations.
//
// Weight is required unless Geodesic is set, in which case the great-circle
// distance between the endpoints is used. Bidirectional defaults to true.
type Connection struct {
	From          string   `json:"from"`
	To            string   `json:"to"`
	Weight        *float64 `json:"weight,omitempty"`
	Bidirectional *bool    `json:"bidirectional,omitempty"`
	Geodesic      bool     `json:"geodesic,omitempty"`
}

// IsBidirectional applies the default of true.
func (c Connection) IsBidirectional() bool { return c.Bidirectional == nil || *c.Bidirectional }

// Decode parses a YAML or JSON document into a Spec.
func Decode(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("source: decode network: %w", err)
	}

	return &s, nil
}

// LoadFile reads and decodes a network file.
func LoadFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}

	return Decode(data)
}

// Encode renders the Spec as YAML.
func (s *Spec) Encode() ([]byte, error) { return yaml.Marshal(s) }

// Build creates a Network from the Spec. The first failing location or
// connection aborts the build; its index is part of the error.
func (s *Spec) Build(opts ...navigator.NetworkOption) (*navigator.Network, error) {
	nw := navigator.NewNetwork(opts...)
	for i, l := range s.Locations {
		if _, err := nw.AddLocation(l.Name, l.Latitude, l.Longitude); err != nil {
			return nil, fmt.Errorf("source: locations[%d]: %w", i, err)
		}
	}
	for i, c := range s.Connections {
		if err := addConnection(nw, c); err != nil {
			return nil, fmt.Errorf("source: connections[%d] %s→%s: %w", i, c.From, c.To, err)
		}
	}

	return nw, nil
}

func addConnection(nw *navigator.Network, c Connection) error {
	if c.Geodesic {
		_, err := nw.AddGeodesicConnection(c.From, c.To, c.IsBidirectional())
		return err
	}
	if c.Weight == nil {
		return ErrMissingWeight
	}

	return nw.AddConnection(c.From, c.To, *c.Weight, c.IsBidirectional())
}
