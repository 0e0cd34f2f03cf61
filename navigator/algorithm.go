package navigator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedAlgorithm indicates an unknown algorithm selector.
var ErrUnsupportedAlgorithm = errors.New("navigator: unsupported algorithm")

// Algorithm names a shortest-path solver.
type Algorithm string

const (
	Dijkstra         Algorithm = "dijkstra"
	FloydWarshall    Algorithm = "floyd-warshall"
	BellmanFord      Algorithm = "bellman-ford"
	Johnsons         Algorithm = "johnsons"
	RepeatedDijkstra Algorithm = "repeated-dijkstra"
)

var displayNames = map[Algorithm]string{
	Dijkstra:         "Dijkstra",
	FloydWarshall:    "Floyd-Warshall",
	BellmanFord:      "Bellman-Ford",
	Johnsons:         "Johnson's",
	RepeatedDijkstra: "Repeated Dijkstra",
}

// Algorithms lists every supported selector in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{Dijkstra, FloydWarshall, BellmanFord, Johnsons, RepeatedDijkstra}
}

// ParseAlgorithm resolves a selector, ignoring case and surrounding space.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := displayNames[a]; !ok {
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedAlgorithm, s, strings.Join(algorithmNames(), ", "))
	}

	return a, nil
}

func algorithmNames() []string {
	all := Algorithms()
	out := make([]string, len(all))
	for i, a := range all {
		out[i] = string(a)
	}

	return out
}

// String returns the selector form.
func (a Algorithm) String() string { return string(a) }

// DisplayName returns the human-readable solver name, e.g. "Floyd-Warshall".
func (a Algorithm) DisplayName() string {
	if n, ok := displayNames[a]; ok {
		return n
	}

	return string(a)
}

// SupportsNegativeWeights reports whether the solver is defined for signed weights.
func (a Algorithm) SupportsNegativeWeights() bool {
	return a == BellmanFord || a == Johnsons || a == FloydWarshall
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseAlgorithm.
func (a *Algorithm) UnmarshalText(b []byte) error {
	parsed, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}
