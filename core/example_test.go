package core_test

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// ExampleGraph shows name binding and an undirected connection.
func ExampleGraph() {
	g := core.NewGraph()
	a, _ := g.AddVertex("Library")
	b, _ := g.AddVertex("AB1")
	_ = g.AddEdge(a, b, 120, true)

	for _, e := range g.Edges() {
		from, _ := g.Name(e.From)
		to, _ := g.Name(e.To)
		fmt.Printf("%s -> %s (%g)\n", from, to, e.Weight)
	}
	// Output:
	// Library -> AB1 (120)
	// AB1 -> Library (120)
}

// ExampleDistance shows how Unreachable behaves.
func ExampleDistance() {
	d := core.Unreachable.Add(5)
	fmt.Println(d, d.Reachable(), core.Distance(3).Add(-1))
	// Output: inf false 2
}
