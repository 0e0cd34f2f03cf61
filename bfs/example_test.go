package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/shortpath/bfs"
	"github.com/katalvlaran/shortpath/core"
)

func ExampleBFS() {
	g := core.NewGraph()
	for _, name := range []string{"gate", "hall", "lab", "roof"} {
		_, _ = g.AddVertex(name)
	}
	_ = g.AddEdgeByName("gate", "hall", 7, true)
	_ = g.AddEdgeByName("hall", "lab", 2, true)
	_ = g.AddEdgeByName("lab", "roof", 1, false)

	res, err := bfs.BFS(g.Snapshot(), 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	path, _ := res.PathTo(3)
	fmt.Println(res.Depth, path)
	// Output: [0 1 2 3] [0 1 2 3]
}
