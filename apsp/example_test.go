package apsp_test

import (
	"fmt"

	"github.com/katalvlaran/shortpath/apsp"
	"github.com/katalvlaran/shortpath/core"
)

// ExampleJohnson solves a graph with one negative edge.
func ExampleJohnson() {
	g, _ := core.NewView(3, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 5},
		{From: 2, To: 1, Weight: -3},
	})
	res, err := apsp.Johnson(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	p, _ := res.Path(0, 1)
	fmt.Println(res.Dist[0][1], p)
	// Output: 2 [0 2 1]
}

// ExampleFloydWarshall shows how a negative cycle is reported.
func ExampleFloydWarshall() {
	g, _ := core.NewView(3, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: -3},
		{From: 2, To: 0, Weight: 1},
	})
	res, _ := apsp.FloydWarshall(g)
	fmt.Println(res.NegativeCycle(), res.CycleVertices())
	// Output: true [0 1 2]
}
