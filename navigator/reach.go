package navigator

import (
	"context"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/shortpath/bfs"
)

// Reach is one location discovered from a reachability query.
type Reach struct {
	Location string `json:"location"`
	Hops     int    `json:"hops"`
	Via      string `json:"via,omitempty"`
}

// Reachable lists every location reachable from src in visit order, with its
// fewest-hop count and the location it is first reached through. maxHops > 0
// bounds the search; 0 means unbounded. src itself is the first entry.
//
// Errors: core.ErrUnknownVertex, bfs.ErrOptionViolation, context errors.
func (nw *Network) Reachable(ctx context.Context, src string, maxHops int) ([]Reach, error) {
	s, err := nw.graph.ID(src)
	if err != nil {
		return nil, err
	}
	view := nw.graph.Snapshot()
	res, err := bfs.BFS(view, s, bfs.WithContext(ctx), bfs.WithMaxDepth(maxHops))
	if err != nil {
		return nil, err
	}

	out := make([]Reach, 0, len(res.Order))
	for _, id := range res.Order {
		r := Reach{Location: view.Name(id), Hops: res.Depth[id]}
		if p := res.Parent[id]; p >= 0 {
			r.Via = view.Name(p)
		}
		out = append(out, r)
	}
	klog.V(4).InfoS("Reachability", "from", src, "maxHops", maxHops, "reached", len(out), "vertices", view.Order())

	return out, nil
}
