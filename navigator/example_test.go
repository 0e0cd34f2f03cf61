package navigator_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/shortpath/navigator"
)

func ExampleNetwork_ShortestPath() {
	nw := navigator.NewNetwork()
	_, _ = nw.AddLocation("Library", 12.8411, 80.1540)
	_, _ = nw.AddLocation("AB1", 12.8438, 80.1534)
	_, _ = nw.AddLocation("AB3", 12.8437, 80.1546)
	_ = nw.AddConnection("Library", "AB1", 310, true)
	_ = nw.AddConnection("AB1", "AB3", 130, true)
	_ = nw.AddConnection("Library", "AB3", 480, true)

	route, err := nw.ShortestPath(context.Background(), "Library", "AB3", navigator.Dijkstra)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(route.Path, route.Distance)
	// Output: [Library AB1 AB3] 440
}

func ExampleNetwork_AllPairs() {
	nw := navigator.NewNetwork()
	for _, n := range []string{"gate", "hall", "lab"} {
		_, _ = nw.AddLocation(n, 0, 0)
	}
	_ = nw.AddConnection("gate", "hall", 5, false)
	_ = nw.AddConnection("hall", "lab", -2, false)

	table, _ := nw.AllPairs(context.Background(), navigator.FloydWarshall)
	for i, row := range table.Dist {
		fmt.Println(table.Names[i], row)
	}
	// Output:
	// gate [0 5 3]
	// hall [inf 0 -2]
	// lab [inf inf 0]
}
